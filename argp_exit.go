package argp

import (
	"errors"
	"fmt"
)

// ParseOrExit parses tokens and returns the result. On a parse error it
// writes one "Error: " line per error to stderr and exits with code 1, or the
// code given by WithExitCode. A requested dump or completion exits with 0.
func (p *Parser) ParseOrExit(tokens []string, opts ...ParseOpt) *Result {
	result, err := p.Parse(tokens, opts...)
	if err == nil {
		return result
	}

	if errors.Is(err, DumpInvokedErr) || errors.Is(err, CompletionInvokedErr) {
		osExit(0)
		return nil
	}

	for _, msg := range errorMessages(err) {
		fmt.Fprintf(stderrWriter, "Error: %s\n", msg)
	}
	osExit(newParseCfg(opts).exitCode)
	return nil
}

// ParseArgsOrExit is ParseOrExit for a process argument vector such as os.Args.
func (p *Parser) ParseArgsOrExit(argv []string, opts ...ParseOpt) *Result {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	return p.ParseOrExit(argv, opts...)
}

// errorMessages flattens joined errors into one message each.
func errorMessages(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, errorMessages(e)...)
		}
		return msgs
	}
	return []string{err.Error()}
}
