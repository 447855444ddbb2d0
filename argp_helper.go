package argp

import (
	"io"
	"os"
)

// ExitFunc terminates the program with the given code.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit
var stderrWriter io.Writer = os.Stderr
var stdoutWriter io.Writer = os.Stdout

// SetStderrWriter redirects diagnostics written by ParseOrExit.
func SetStderrWriter(writer io.Writer) {
	stderrWriter = writer
}

// SetStdoutWriter redirects dump and completion output.
func SetStdoutWriter(writer io.Writer) {
	stdoutWriter = writer
}

// SetExitFunc replaces os.Exit in ParseOrExit, mainly for tests.
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
