package argp

import (
	"errors"
	"fmt"
)

// frame is a parameter that is still collecting values.
type frame struct {
	token    string // the flag as typed, name or alias
	param    Param
	captured []string
}

// Parse splits tokens into positional arguments and parameter invocations.
//
// A token longer than the prefix and starting with it opens a parameter; it
// does not close the parameters opened before it. Any other token goes to
// the most recently opened parameter, or to the positional arguments when
// none is open. A parameter that already holds its maximum number of values
// is closed on the next value, which is then offered to the parameter below
// it. Parameters still open when the input ends are validated in the order
// they were opened, after the positional count.
//
// Parse either returns a complete Result or an error and no Result.
func (p *Parser) Parse(tokens []string, opts ...ParseOpt) (*Result, error) {
	cfg := newParseCfg(opts)

	if cfg.dump {
		fmt.Fprint(stdoutWriter, p.GenerateDump(tokens, opts...))
		return nil, DumpInvokedErr
	}
	if p.completionEnabled && len(tokens) > 0 && tokens[0] == completeCommand {
		return nil, p.handleCompletion(tokens[1:])
	}

	return p.parse(tokens, cfg)
}

// ParseArgs parses a process argument vector such as os.Args, skipping the
// program name in its first slot.
func (p *Parser) ParseArgs(argv []string, opts ...ParseOpt) (*Result, error) {
	if len(argv) > 0 {
		argv = argv[1:]
	}
	return p.Parse(argv, opts...)
}

func (p *Parser) parse(tokens []string, cfg *parseCfg) (*Result, error) {
	result := newResult()
	var stack []*frame

	for _, token := range tokens {
		if p.isParameter(token) {
			param, err := p.params.Find(token)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &frame{token: token, param: param, captured: []string{}})
			p.logger.Debug("Parameter opened", "token", token, "parameter", param.name, "depth", len(stack))
			continue
		}

		// Offer the value to the innermost open parameter, closing those
		// that are already full, until someone takes it.
		for {
			if len(stack) == 0 {
				result.Arguments = append(result.Arguments, token)
				break
			}
			top := stack[len(stack)-1]
			if uint(len(top.captured)) == top.param.arity.Max() {
				stack = stack[:len(stack)-1]
				result.add(top)
				p.logger.Debug("Parameter closed at maximum", "parameter", top.param.name, "values", len(top.captured))
				continue
			}
			top.captured = append(top.captured, token)
			break
		}
	}

	if err := p.drain(result, stack, cfg); err != nil {
		return nil, err
	}
	return result, nil
}

// drain validates the positional count and every parameter left open, in
// the order they were opened, flushing those that pass into result.
func (p *Parser) drain(result *Result, stack []*frame, cfg *parseCfg) error {
	p.logger.Debug("Draining", "arguments", len(result.Arguments), "open", len(stack))

	var errs []error
	count := uint(len(result.Arguments))
	if kind := p.arity.check(count); kind != nil {
		err := &ArityError{Kind: kind, Expected: p.arity, Got: count}
		if !cfg.collectErrors {
			return err
		}
		errs = append(errs, err)
	}

	for _, f := range stack {
		count := uint(len(f.captured))
		if kind := f.param.arity.check(count); kind != nil {
			err := &ArityError{Kind: kind, Token: f.token, Name: f.param.name, Expected: f.param.arity, Got: count}
			if !cfg.collectErrors {
				return err
			}
			errs = append(errs, err)
			continue
		}
		result.add(f)
	}

	return errors.Join(errs...)
}
