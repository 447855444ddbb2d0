package argp

import "log/slog"

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithArity sets how many positional arguments the parser accepts.
// The default is Any().
func WithArity(a Arity) Option {
	return func(p *Parser) {
		p.arity = a
	}
}

// WithPrefix sets the marker that identifies parameter tokens. The default is "-".
func WithPrefix(prefix string) Option {
	return func(p *Parser) {
		p.prefix = prefix
	}
}

// WithParams appends parameters to the registry, keeping their order.
func WithParams(params ...Param) Option {
	return func(p *Parser) {
		p.params = append(p.params, params...)
	}
}

// WithLogger sets the logger that receives debug traces of each parse.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithCompletion enables the hidden __complete command used by the shell
// completion scripts.
func WithCompletion(enable bool) Option {
	return func(p *Parser) {
		p.completionEnabled = enable
	}
}

type parseCfg struct {
	collectErrors bool
	dump          bool
	exitCode      int
}

type ParseOpt func(*parseCfg)

// WithCollectErrors makes Parse report every arity violation found at the end
// of the input, joined, instead of stopping at the first one. Undefined
// parameters always stop the scan immediately.
func WithCollectErrors(collect bool) ParseOpt {
	return func(c *parseCfg) {
		c.collectErrors = collect
	}
}

// WithDump makes Parse write a dump of the parser and its input to stdout
// instead of parsing, and return DumpInvokedErr.
func WithDump(dump bool) ParseOpt {
	return func(c *parseCfg) {
		c.dump = dump
	}
}

// WithExitCode sets the code ParseOrExit exits with on a parse error.
// The default is 1.
func WithExitCode(code int) ParseOpt {
	return func(c *parseCfg) {
		c.exitCode = code
	}
}

func newParseCfg(opts []ParseOpt) *parseCfg {
	cfg := &parseCfg{exitCode: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
