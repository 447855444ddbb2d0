package argp

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// completeCommand is the hidden first token the completion scripts call the
// program with.
const completeCommand = "__complete"

// CompletionDirective is a bitmask that tells the shell how to interpret completion results.
type CompletionDirective int

const (
	// CompletionDirectiveDefault indicates normal completion behavior with file completion fallback.
	CompletionDirectiveDefault CompletionDirective = 0
	// CompletionDirectiveError indicates an error occurred; results should be ignored.
	CompletionDirectiveError CompletionDirective = 1
	// CompletionDirectiveNoSpace tells the shell not to add a trailing space after the completion.
	CompletionDirectiveNoSpace CompletionDirective = 2
	// CompletionDirectiveNoFileComp tells the shell not to fall back to file completion.
	CompletionDirectiveNoFileComp CompletionDirective = 4
)

// CompletionInvokedErr is returned by Parse when completion is invoked (via __complete).
var CompletionInvokedErr = errors.New("completion invoked")

// handleCompletion writes the candidates for the last of args to stdout,
// one per line, followed by the directive.
func (p *Parser) handleCompletion(args []string) error {
	candidates, directive := p.computeCompletions(args)

	var sb strings.Builder
	for _, candidate := range candidates {
		sb.WriteString(candidate)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, ":%d\n", int(directive))

	fmt.Fprint(stdoutWriter, sb.String())
	return CompletionInvokedErr
}

// computeCompletions determines completion candidates for the last of args,
// the word being typed, given the words before it.
func (p *Parser) computeCompletions(args []string) ([]string, CompletionDirective) {
	var toComplete string
	var preceding []string
	if len(args) > 0 {
		toComplete = args[len(args)-1]
		preceding = args[:len(args)-1]
	}

	// A word starting with the prefix, even the bare prefix, is a parameter.
	if strings.HasPrefix(toComplete, p.prefix) {
		return p.completeParamNames(toComplete), CompletionDirectiveNoFileComp
	}

	// An empty word could still become a parameter, so names are offered
	// alongside whatever a value slot would take.
	if p.acceptsValue(preceding) {
		if toComplete == "" {
			return p.completeParamNames(""), CompletionDirectiveDefault
		}
		return nil, CompletionDirectiveDefault
	}

	// Nothing takes another value, so only a parameter can come next.
	if toComplete == "" {
		return p.completeParamNames(""), CompletionDirectiveNoFileComp
	}
	return nil, CompletionDirectiveNoFileComp
}

// completeParamNames returns the names and aliases starting with prefix that
// can open a parameter.
func (p *Parser) completeParamNames(prefix string) []string {
	seen := make(map[string]bool)
	var candidates []string
	for _, name := range p.params.names() {
		if !seen[name] && p.isParameter(name) && strings.HasPrefix(name, prefix) {
			seen[name] = true
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)
	return candidates
}

// acceptsValue replays tokens the way Parse does and reports whether a
// further value would be taken by an open parameter or by the positional
// group. Unknown parameters are skipped rather than reported.
func (p *Parser) acceptsValue(tokens []string) bool {
	var open []uint // values captured by each open parameter
	var maxes []uint
	var positional uint

	for _, token := range tokens {
		if p.isParameter(token) {
			if param, err := p.params.Find(token); err == nil {
				open = append(open, 0)
				maxes = append(maxes, param.arity.Max())
			}
			continue
		}
		for {
			if len(open) == 0 {
				positional++
				break
			}
			top := len(open) - 1
			if open[top] == maxes[top] {
				open, maxes = open[:top], maxes[:top]
				continue
			}
			open[top]++
			break
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		if open[i] < maxes[i] {
			return true
		}
	}
	return positional < p.arity.Max()
}

// completionScript is what the bash and zsh templates are rendered from.
type completionScript struct {
	Program string // as invoked on the command line
	Func    string // shell function that produces the candidates
	Command string

	Error      CompletionDirective
	NoSpace    CompletionDirective
	NoFileComp CompletionDirective
}

func (p *Parser) completionScript() completionScript {
	return completionScript{
		Program:    p.name,
		Func:       "__argp_" + shellIdent(p.name),
		Command:    completeCommand,
		Error:      CompletionDirectiveError,
		NoSpace:    CompletionDirectiveNoSpace,
		NoFileComp: CompletionDirectiveNoFileComp,
	}
}

// shellIdent maps name onto the characters allowed in a shell function name.
func shellIdent(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, filepath.Base(name))
}

// GenBashCompletion writes the bash completion script for this parser to the given writer.
func (p *Parser) GenBashCompletion(w io.Writer) error {
	return bashCompletion.Execute(w, p.completionScript())
}

// GenZshCompletion writes the zsh completion script for this parser to the given writer.
func (p *Parser) GenZshCompletion(w io.Writer) error {
	return zshCompletion.Execute(w, p.completionScript())
}
