package argp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when an Arity is built with "to" lower than "from".
	ErrInvalidRange = errors.New("invalid range")
	// ErrUndefinedParameter is returned when a flag token matches no registered parameter.
	ErrUndefinedParameter = errors.New("undefined parameter")
	// ErrNotEnoughArguments is returned when fewer values were given than an Arity requires.
	ErrNotEnoughArguments = errors.New("not enough arguments")
	// ErrTooManyArguments is returned when more values were given than an Arity allows.
	ErrTooManyArguments = errors.New("too many arguments")
)

// DumpInvokedErr is returned by Parse when a dump was requested via WithDump(true).
// The dump itself has already been written to stdout.
var DumpInvokedErr = errors.New("dump invoked")

// InvalidRangeError reports an Arity range whose upper bound is below its lower bound.
type InvalidRangeError struct {
	From uint
	To   uint
}

func (e *InvalidRangeError) Error() string {
	return `"to" is lower than "from"`
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// UndefinedParameterError reports a flag token that no parameter answers to.
// Suggestions holds the closest registered names and aliases, best first.
type UndefinedParameterError struct {
	Token       string
	Suggestions []string
}

func (e *UndefinedParameterError) Error() string {
	return fmt.Sprintf("undefined parameter: %q", e.Token)
}

func (e *UndefinedParameterError) Unwrap() error {
	return ErrUndefinedParameter
}

// ArityError reports a value count outside of an Arity. Token and Name are
// empty when the positional group is at fault; otherwise Token is the flag
// as typed and Name the parameter's canonical name.
type ArityError struct {
	Kind     error // ErrNotEnoughArguments or ErrTooManyArguments
	Token    string
	Name     string
	Expected Arity
	Got      uint
}

func (e *ArityError) Error() string {
	what := "arguments"
	if e.Token != "" {
		name := fmt.Sprintf("%q", e.Token)
		if e.Token != e.Name {
			name += fmt.Sprintf(" (%q)", e.Name)
		}
		what += " for parameter " + name
	}
	prefix := "too many"
	if e.Kind == ErrNotEnoughArguments {
		prefix = "not enough"
	}
	return fmt.Sprintf("%s %s: expected %s, got %d", prefix, what, e.Expected, e.Got)
}

func (e *ArityError) Unwrap() error {
	return e.Kind
}

// ProgrammingError wraps errors caused by incorrect parser setup.
// These are bugs in the code using argp, not user input errors.
type ProgrammingError struct {
	msg string
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

// NewProgrammingError creates a new programming error
func NewProgrammingError(msg string) *ProgrammingError {
	return &ProgrammingError{msg: msg}
}
