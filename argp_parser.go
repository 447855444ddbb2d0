package argp

import (
	"fmt"
	"log/slog"
	"slices"
)

// DefaultPrefix is the parameter marker used unless WithPrefix says otherwise.
const DefaultPrefix = "-"

// Parser splits token sequences into positional arguments and parameter
// invocations. Its configuration is fixed by NewParser, so a single Parser
// may serve concurrent calls to Parse.
type Parser struct {
	name              string
	prefix            string
	arity             Arity
	params            Registry
	logger            *slog.Logger
	completionEnabled bool
}

// NewParser builds a parser named after the program it serves. The name is
// only used by dumps and completion scripts.
func NewParser(name string, opts ...Option) (*Parser, error) {
	p := &Parser{
		name:   name,
		prefix: DefaultPrefix,
		arity:  Any(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.params = slices.Clone(p.params)

	if p.prefix == "" {
		return nil, NewProgrammingError("parameter prefix cannot be empty")
	}
	for _, param := range p.params {
		if param.name == "" {
			return nil, NewProgrammingError("parameter name cannot be empty")
		}
		if !p.reachable(param) {
			return nil, NewProgrammingError(
				fmt.Sprintf("parameter %q has no name or alias starting with prefix %q", param.name, p.prefix))
		}
	}
	return p, nil
}

// MustNewParser is like NewParser but panics on an invalid configuration.
func MustNewParser(name string, opts ...Option) *Parser {
	p, err := NewParser(name, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) Prefix() string {
	return p.prefix
}

// Arity returns the constraint on the number of positional arguments.
func (p *Parser) Arity() Arity {
	return p.arity
}

// Params returns a copy of the registry.
func (p *Parser) Params() Registry {
	return slices.Clone(p.params)
}

// reachable reports whether some token can open param: its canonical name
// or one of its aliases must look like a parameter. A name that does not is
// still what results report.
func (p *Parser) reachable(param Param) bool {
	if p.isParameter(param.name) {
		return true
	}
	return slices.ContainsFunc(param.aliases, p.isParameter)
}

// isParameter reports whether token names a parameter rather than carrying
// a value. A token equal to the bare prefix is a value.
func (p *Parser) isParameter(token string) bool {
	return len(token) > len(p.prefix) && token[:len(p.prefix)] == p.prefix
}
