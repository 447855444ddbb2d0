package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amterp/argp"
	"github.com/amterp/argp/internal/definition"
	"github.com/amterp/argp/internal/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	def           string
	name          string
	format        string
	logLevel      string
	logFormat     string
	collectErrors bool
	dump          bool
	completion    bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "argp [flags] -- [tokens...]",
		Short: "Split a command line into positional arguments and parameters",
		Long: `argp parses the tokens after "--" with a parser loaded from an HCL
definition file (--def), or with the built-in demo parser, and prints the
positional arguments and parameter invocations it finds.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, tokens []string) error {
			return runParse(out, errOut, opts, tokens)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.def, "def", "", "Path to an HCL parser definition (demo parser if not set)")
	flags.StringVar(&opts.name, "name", "argp", "Program name used in dumps and completion scripts")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")
	cmd.Flags().BoolVar(&opts.collectErrors, "collect-errors", false, "Report every arity error instead of the first")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Print the parser configuration instead of parsing")
	cmd.Flags().BoolVar(&opts.completion, "completion", false, "Answer __complete requests from completion scripts")

	cmd.AddCommand(newCompletionCmd(out, opts))
	return cmd
}

func runParse(out, errOut io.Writer, opts *rootOptions, tokens []string) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(opts.logFormat)
	if err != nil {
		return err
	}
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("invalid output format %q", opts.format)
	}

	logger := logging.New(logging.WithLevel(level), logging.WithFormat(logFormat), logging.WithWriter(errOut))
	parser, err := loadParser(opts, argp.WithLogger(logger), argp.WithCompletion(opts.completion))
	if err != nil {
		return err
	}
	logger.Debug("Parser ready", "name", parser.Name(), "parameters", len(parser.Params()))

	argp.SetStdoutWriter(out)
	argp.SetStderrWriter(errOut)

	result := parser.ParseOrExit(tokens, argp.WithCollectErrors(opts.collectErrors), argp.WithDump(opts.dump))
	if result == nil {
		return nil
	}

	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	writeText(out, result)
	return nil
}

// loadParser builds the parser from the definition file, or the demo parser.
func loadParser(opts *rootOptions, extra ...argp.Option) (*argp.Parser, error) {
	if opts.def == "" {
		return argp.NewParser(opts.name, append(demoOptions(), extra...)...)
	}
	def, err := definition.Load(opts.def)
	if err != nil {
		return nil, err
	}
	return def.Parser(opts.name, extra...)
}

func demoOptions() []argp.Option {
	return []argp.Option{
		argp.WithArity(argp.Exactly(1)),
		argp.WithParams(argp.NewParam("--param").
			SetAlias("-O").
			SetArity(argp.MustRange(1, 5)).
			SetUsage("Values to collect").
			MustBuild()),
		argp.WithPrefix("-"),
	}
}

func writeText(w io.Writer, result *argp.Result) {
	fmt.Fprintf(w, "Arguments: %s\n", quoteList(result.Arguments))
	for _, inv := range result.Parameters {
		fmt.Fprintf(w, "Parameter %q: %s\n", inv.Name, quoteList(inv.Values))
	}
}

// quoteList renders values as ["a", "b"].
func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
