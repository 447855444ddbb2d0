package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCompletionCmd(out io.Writer, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "completion bash|zsh",
		Short:     "Print a shell completion script for the program named by --name",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := loadParser(opts)
			if err != nil {
				return err
			}
			switch args[0] {
			case "bash":
				return parser.GenBashCompletion(out)
			case "zsh":
				return parser.GenZshCompletion(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
