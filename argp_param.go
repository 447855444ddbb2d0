package argp

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance bounds the edit distance of a suggested parameter name.
const maxSuggestionDistance = 2

// Param is a named parameter: a canonical name, the aliases it also answers
// to, and the Arity of the values it captures. Params are immutable; build
// them with NewParam.
type Param struct {
	name    string
	aliases []string
	arity   Arity
	usage   string
}

// Name returns the canonical name, which is what results report.
func (p Param) Name() string {
	return p.name
}

// Aliases returns the aliases in declaration order.
func (p Param) Aliases() []string {
	return slices.Clone(p.aliases)
}

func (p Param) Arity() Arity {
	return p.arity
}

func (p Param) Usage() string {
	return p.usage
}

// Matches reports whether token is the canonical name or one of the aliases.
// Matching is exact: no abbreviation and no case folding.
func (p Param) Matches(token string) bool {
	return p.name == token || slices.Contains(p.aliases, token)
}

// String renders the parameter for diagnostics, e.g.
//
//	parameter "--param" with [1..5] arguments, aliases: "-O"
func (p Param) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "parameter %q with %s arguments", p.name, p.arity)
	for i, alias := range p.aliases {
		if i == 0 {
			sb.WriteString(", aliases: ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", alias)
	}
	return sb.String()
}

// ParamBuilder accumulates the name, aliases and Arity of a Param. Every
// setter returns an updated copy, so a partially configured builder can be
// reused as a template.
type ParamBuilder struct {
	p Param
}

// NewParam starts a parameter with the given canonical name. Unless SetArity
// is called, the parameter accepts any number of values.
func NewParam(name string) ParamBuilder {
	return ParamBuilder{p: Param{name: name, arity: Any()}}
}

func (b ParamBuilder) SetName(name string) ParamBuilder {
	b.p.name = name
	return b
}

// SetAlias appends an alias.
func (b ParamBuilder) SetAlias(alias string) ParamBuilder {
	b.p.aliases = append(slices.Clip(b.p.aliases), alias)
	return b
}

// SetAliases appends several aliases, keeping their order.
func (b ParamBuilder) SetAliases(aliases ...string) ParamBuilder {
	b.p.aliases = append(slices.Clip(b.p.aliases), aliases...)
	return b
}

func (b ParamBuilder) SetArity(a Arity) ParamBuilder {
	b.p.arity = a
	return b
}

// SetUsage attaches a description, shown in dumps only.
func (b ParamBuilder) SetUsage(usage string) ParamBuilder {
	b.p.usage = usage
	return b
}

// Build validates and returns the Param.
func (b ParamBuilder) Build() (Param, error) {
	if b.p.name == "" {
		return Param{}, NewProgrammingError("parameter name cannot be empty")
	}
	for _, alias := range b.p.aliases {
		if alias == "" {
			return Param{}, NewProgrammingError(fmt.Sprintf("parameter %q has an empty alias", b.p.name))
		}
	}
	p := b.p
	p.aliases = slices.Clone(p.aliases)
	return p, nil
}

// MustBuild is like Build but panics on an invalid parameter.
func (b ParamBuilder) MustBuild() Param {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Registry is an ordered list of parameters. When several parameters answer
// to the same token the first one declared wins; avoiding such collisions is
// left to the caller.
type Registry []Param

// Find returns the first parameter matching token, or an
// *UndefinedParameterError if there is none.
func (r Registry) Find(token string) (Param, error) {
	for _, p := range r {
		if p.Matches(token) {
			return p, nil
		}
	}
	return Param{}, &UndefinedParameterError{Token: token, Suggestions: r.suggest(token)}
}

// names returns every name and alias, in declaration order.
func (r Registry) names() []string {
	var names []string
	for _, p := range r {
		names = append(names, p.name)
		names = append(names, p.aliases...)
	}
	return names
}

// suggest ranks registered names that are close to token: those containing
// its characters in order, and those within a small edit distance.
func (r Registry) suggest(token string) []string {
	candidates := r.names()
	if len(candidates) == 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(token, candidates)
	seen := make(map[string]bool, len(ranks))
	for _, rank := range ranks {
		seen[rank.Target] = true
	}
	for i, c := range candidates {
		if seen[c] {
			continue
		}
		d := fuzzy.LevenshteinDistance(token, c)
		if d <= maxSuggestionDistance {
			ranks = append(ranks, fuzzy.Rank{Source: token, Target: c, Distance: d, OriginalIndex: i})
			seen[c] = true
		}
	}
	sort.Stable(ranks)

	suggestions := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		suggestions = append(suggestions, rank.Target)
	}
	if len(suggestions) == 0 {
		return nil
	}
	return suggestions
}
