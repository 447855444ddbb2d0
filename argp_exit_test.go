package argp

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureExit redirects stderr and the exit function for the duration of a test.
func captureExit(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var stderr bytes.Buffer
	SetStderrWriter(&stderr)
	t.Cleanup(func() { SetStderrWriter(os.Stderr) })

	code := -1
	SetExitFunc(func(c int) { code = c })
	t.Cleanup(func() { SetExitFunc(os.Exit) })
	return &stderr, &code
}

func TestParseOrExitSuccess(t *testing.T) {
	stderr, code := captureExit(t)
	p := demoParser(t)

	result := p.ParseOrExit([]string{"input.txt", "--param", "a"})

	require.NotNil(t, result)
	assert.Equal(t, []string{"input.txt"}, result.Arguments)
	assert.Equal(t, -1, *code)
	assert.Empty(t, stderr.String())
}

func TestParseOrExitUndefinedParameter(t *testing.T) {
	stderr, code := captureExit(t)
	p := demoParser(t)

	result := p.ParseOrExit([]string{"--parm", "a"})

	assert.Nil(t, result)
	assert.Equal(t, 1, *code)
	assert.Equal(t, "Error: undefined parameter: \"--parm\"\n", stderr.String())
}

func TestParseOrExitArityError(t *testing.T) {
	stderr, code := captureExit(t)
	p := demoParser(t)

	p.ParseOrExit([]string{"input.txt", "-O"})

	assert.Equal(t, 1, *code)
	assert.Equal(t, "Error: not enough arguments for parameter \"-O\" (\"--param\"): expected [1..5], got 0\n", stderr.String())
}

func TestParseOrExitCustomCode(t *testing.T) {
	_, code := captureExit(t)
	p := demoParser(t)

	p.ParseOrExit([]string{"a", "b"}, WithExitCode(2))

	assert.Equal(t, 2, *code)
}

func TestParseOrExitPrintsEveryCollectedError(t *testing.T) {
	stderr, code := captureExit(t)
	p := demoParser(t)

	p.ParseOrExit([]string{"-O"}, WithCollectErrors(true))

	assert.Equal(t, 1, *code)
	assert.Equal(t,
		"Error: not enough arguments: expected 1, got 0\n"+
			"Error: not enough arguments for parameter \"-O\" (\"--param\"): expected [1..5], got 0\n",
		stderr.String())
}

func TestParseArgsOrExit(t *testing.T) {
	_, code := captureExit(t)
	p := demoParser(t)

	result := p.ParseArgsOrExit([]string{"demo", "input.txt"})

	require.NotNil(t, result)
	assert.Equal(t, []string{"input.txt"}, result.Arguments)
	assert.Equal(t, -1, *code)
}
