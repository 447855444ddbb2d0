// Package definition loads parser definitions from HCL files, so that the
// argp tool can parse command lines for programs it knows nothing about.
//
// A definition looks like:
//
//	prefix = "-"
//
//	arguments {
//	  exactly = 1
//	}
//
//	param "--param" {
//	  aliases = ["-O"]
//	  usage   = "Values to collect"
//	  arity {
//	    min = 1
//	    max = 5
//	  }
//	}
//
// An omitted arguments or arity block accepts any number of values. Within
// an arity block, exactly excludes min and max; a missing max is unbounded.
package definition

import (
	"fmt"

	"github.com/amterp/argp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Definition is a decoded parser definition.
type Definition struct {
	Prefix string
	Arity  argp.Arity
	Params []argp.Param
}

type hclFile struct {
	Prefix    *string     `hcl:"prefix,optional"`
	Arguments *hclArity   `hcl:"arguments,block"`
	Params    []*hclParam `hcl:"param,block"`
}

type hclParam struct {
	Name    string    `hcl:"name,label"`
	Aliases []string  `hcl:"aliases,optional"`
	Usage   *string   `hcl:"usage,optional"`
	Arity   *hclArity `hcl:"arity,block"`
}

type hclArity struct {
	Exactly *int `hcl:"exactly,optional"`
	Min     *int `hcl:"min,optional"`
	Max     *int `hcl:"max,optional"`
}

// Load reads and decodes the definition file at path.
func Load(path string) (*Definition, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definition %s: %w", path, diags)
	}
	return decode(path, file)
}

// Parse decodes a definition held in memory. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Definition, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse definition %s: %w", filename, diags)
	}
	return decode(filename, file)
}

func decode(filename string, file *hcl.File) (*Definition, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode definition %s: %w", filename, diags)
	}

	def := &Definition{Prefix: argp.DefaultPrefix}
	if parsed.Prefix != nil {
		def.Prefix = *parsed.Prefix
	}

	arity, err := parsed.Arguments.arity()
	if err != nil {
		return nil, fmt.Errorf("%s: arguments: %w", filename, err)
	}
	def.Arity = arity

	for _, p := range parsed.Params {
		arity, err := p.Arity.arity()
		if err != nil {
			return nil, fmt.Errorf("%s: param %q: %w", filename, p.Name, err)
		}
		b := argp.NewParam(p.Name).SetAliases(p.Aliases...).SetArity(arity)
		if p.Usage != nil {
			b = b.SetUsage(*p.Usage)
		}
		param, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		def.Params = append(def.Params, param)
	}

	return def, nil
}

func (a *hclArity) arity() (argp.Arity, error) {
	if a == nil {
		return argp.Any(), nil
	}

	if a.Exactly != nil {
		if a.Min != nil || a.Max != nil {
			return argp.Arity{}, fmt.Errorf("exactly cannot be combined with min or max")
		}
		n, err := count("exactly", *a.Exactly)
		if err != nil {
			return argp.Arity{}, err
		}
		return argp.Exactly(n), nil
	}

	from, to := uint(0), argp.Unbounded
	var err error
	if a.Min != nil {
		if from, err = count("min", *a.Min); err != nil {
			return argp.Arity{}, err
		}
	}
	if a.Max != nil {
		if to, err = count("max", *a.Max); err != nil {
			return argp.Arity{}, err
		}
	}
	return argp.Range(from, to)
}

func count(attr string, n int) (uint, error) {
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", attr, n)
	}
	return uint(n), nil
}

// Options returns the parser options the definition describes.
func (d *Definition) Options() []argp.Option {
	return []argp.Option{
		argp.WithPrefix(d.Prefix),
		argp.WithArity(d.Arity),
		argp.WithParams(d.Params...),
	}
}

// Parser builds a parser from the definition. Extra options are applied
// after the definition's own.
func (d *Definition) Parser(name string, extra ...argp.Option) (*argp.Parser, error) {
	return argp.NewParser(name, append(d.Options(), extra...)...)
}
