// Command analyze computes string properties and interprets natural-language
// filter queries without running the HTTP service.
package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"string-analyzer/internal/analyzer"
	"string-analyzer/internal/nlquery"
	"string-analyzer/internal/shared/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "analyze",
		Short:        "Analyze strings and interpret filter queries",
		Long:         longRoot,
		SilenceUsage: true,
	}
	root.AddCommand(newPropsCmd(), newIDCmd(), newParseQueryCmd())
	return root
}

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props [text]",
		Short: "Print the computed properties of text",
		Long:  "Print the computed properties of text as JSON. Without an argument the text is read from stdin verbatim.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), analyzer.Analyze(text))
		},
	}
}

func newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id [text]",
		Short: "Print the identifier of text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), analyzer.ID(text)+"\n")
			return err
		},
	}
}

func newParseQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-query <query>",
		Short: "Print the filter a natural-language query translates to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := nlquery.Translate(strings.Join(args, " "))
			if err != nil {
				if hints := errors.FlattenHints(err); hints != "" {
					cmd.PrintErrln(hints)
				}
				return err
			}
			return writeJSON(cmd.OutOrStdout(), f)
		},
	}
}

func textArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(raw), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var longRoot = `
Analyze strings and interpret filter queries offline.

Examples:
  # Properties of a string.
  analyze props "racecar"

  # Identifier of a string read from stdin.
  printf 'hello' | analyze id

  # Filter for a natural-language query.
  analyze parse-query "single word palindromic strings"
`
