package argp

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseCompletion is a test helper that captures completion output.
// Returns the stdout output string and the error from Parse.
func parseCompletion(p *Parser, args []string) (string, error) {
	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	_, err := p.Parse(args)
	return stdout.String(), err
}

// parseCompletionLines parses completion output into candidates and directive.
func parseCompletionLines(output string) ([]string, string) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) == 0 {
		return nil, ""
	}
	directive := lines[len(lines)-1]
	var candidates []string
	for _, c := range lines[:len(lines)-1] {
		if c != "" {
			candidates = append(candidates, c)
		}
	}
	return candidates, directive
}

func completionParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("tool",
		WithArity(Exactly(1)),
		WithCompletion(true),
		WithParams(
			NewParam("--output").SetAlias("-o").SetArity(Exactly(1)).MustBuild(),
			NewParam("--verbose").SetAlias("-v").SetArity(Exactly(0)).MustBuild(),
			NewParam("--version").SetArity(Exactly(0)).MustBuild(),
		),
	)
	require.NoError(t, err)
	return p
}

func TestCompletionDisabledByDefault(t *testing.T) {
	p := demoParser(t)

	// Without WithCompletion, __complete is an ordinary positional argument.
	result, err := p.Parse([]string{"__complete"})
	require.NoError(t, err)
	assert.Equal(t, []string{"__complete"}, result.Arguments)
}

func TestCompletionReturnsCompletionInvokedErr(t *testing.T) {
	p := completionParser(t)

	_, err := parseCompletion(p, []string{"__complete", ""})
	assert.True(t, errors.Is(err, CompletionInvokedErr))
}

func TestCompletionParseOrExitExitsZero(t *testing.T) {
	p := completionParser(t)

	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	var exitCode int
	exitCalled := false
	SetExitFunc(func(code int) {
		exitCode = code
		exitCalled = true
	})
	defer SetExitFunc(os.Exit)

	p.ParseOrExit([]string{"__complete", "--"})
	assert.True(t, exitCalled)
	assert.Equal(t, 0, exitCode)
}

func TestCompletionParameterNames(t *testing.T) {
	p := completionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-"})
	candidates, directive := parseCompletionLines(output)

	assert.Equal(t, []string{"--output", "--verbose", "--version", "-o", "-v"}, candidates)
	assert.Equal(t, ":4", directive) // NoFileComp
}

func TestCompletionParameterPrefix(t *testing.T) {
	p := completionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "--ver"})
	candidates, _ := parseCompletionLines(output)

	assert.Equal(t, []string{"--verbose", "--version"}, candidates)
}

func TestCompletionValuePosition(t *testing.T) {
	p := completionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "--output", "o"})
	candidates, directive := parseCompletionLines(output)

	assert.Empty(t, candidates)
	assert.Equal(t, ":0", directive) // file completion
}

func TestCompletionEmptyWordInValuePosition(t *testing.T) {
	p := completionParser(t)

	// The word may still become a parameter, so names come with file fallback.
	output, _ := parseCompletion(p, []string{"__complete", "--output", ""})
	candidates, directive := parseCompletionLines(output)

	assert.Equal(t, []string{"--output", "--verbose", "--version", "-o", "-v"}, candidates)
	assert.Equal(t, ":0", directive)
}

func TestCompletionOmitsBareCanonicalNames(t *testing.T) {
	p, err := NewParser("tool",
		WithCompletion(true),
		WithParams(NewParam("output").SetAlias("-o").SetArity(Exactly(1)).MustBuild()),
	)
	require.NoError(t, err)

	output, _ := parseCompletion(p, []string{"__complete", ""})
	candidates, _ := parseCompletionLines(output)
	assert.Equal(t, []string{"-o"}, candidates)
}

func TestCompletionPositionalRoomLeft(t *testing.T) {
	p := completionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "-v", "in"})
	candidates, directive := parseCompletionLines(output)

	assert.Empty(t, candidates)
	assert.Equal(t, ":0", directive)
}

func TestCompletionNothingTakesValues(t *testing.T) {
	p := completionParser(t)

	// The single positional is taken and --output is full.
	output, _ := parseCompletion(p, []string{"__complete", "in", "-o", "out", ""})
	candidates, directive := parseCompletionLines(output)

	assert.Equal(t, []string{"--output", "--verbose", "--version", "-o", "-v"}, candidates)
	assert.Equal(t, ":4", directive)

	output, _ = parseCompletion(p, []string{"__complete", "in", "x"})
	candidates, directive = parseCompletionLines(output)
	assert.Empty(t, candidates)
	assert.Equal(t, ":4", directive)
}

func TestCompletionSkipsUnknownParameters(t *testing.T) {
	p := completionParser(t)

	output, _ := parseCompletion(p, []string{"__complete", "--bogus", ""})
	_, directive := parseCompletionLines(output)

	// --bogus is ignored, so the positional slot is still free.
	assert.Equal(t, ":0", directive)
}

func TestGenBashCompletion(t *testing.T) {
	p := completionParser(t)

	var buf bytes.Buffer
	require.NoError(t, p.GenBashCompletion(&buf))

	script := buf.String()
	assert.Contains(t, script, "# bash completion for tool")
	assert.Contains(t, script, "__argp_tool()")
	assert.Contains(t, script, `tool __complete "${COMP_WORDS[@]:1:COMP_CWORD}"`)
	assert.Contains(t, script, "(( directive & 1 ))")
	assert.Contains(t, script, "(( ! (directive & 4) ))")
	assert.Contains(t, script, "(( directive & 2 ))")
	assert.True(t, strings.HasSuffix(script, "complete -F __argp_tool tool\n"))
	assert.NotContains(t, script, "{{")
}

func TestGenZshCompletion(t *testing.T) {
	p := completionParser(t)

	var buf bytes.Buffer
	require.NoError(t, p.GenZshCompletion(&buf))

	script := buf.String()
	assert.True(t, strings.HasPrefix(script, "#compdef tool\n"))
	assert.Contains(t, script, "__argp_tool() {")
	assert.Contains(t, script, `tool __complete "${(@)words[2,CURRENT]}"`)
	assert.Contains(t, script, "(( directive & 1 ))")
	assert.Contains(t, script, "compdef __argp_tool tool")
}

func TestCompletionScriptFunctionName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"tool", "__argp_tool"},
		{"my-tool", "__argp_my_tool"},
		{"./bin/my.tool", "__argp_my_tool"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := MustNewParser(tc.name)
			script := p.completionScript()
			assert.Equal(t, tc.want, script.Func)
			assert.Equal(t, tc.name, script.Program)
		})
	}
}
