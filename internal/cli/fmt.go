package cli

import (
	"fmt"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	toon "github.com/toonfmt/go-toon"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a TOON file in normative form",
		Long: `Re-serialize a TOON file in normative form: surrounding whitespace is
trimmed from every field, the --- separator is always present, and blank
lines are dropped. The result is printed to stdout unless --write rewrites
the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(rootOpts, cmd, args[0], write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file instead of printing")

	return cmd
}

func runFmt(opts *RootOptions, cmd *cobra.Command, path string, write bool) error {
	var parseOpts []toon.Option
	if opts.Strict {
		parseOpts = append(parseOpts, toon.StrictArity())
	}

	doc, err := toon.ReadFile(path, parseOpts...)
	if err != nil {
		return err
	}
	s, err := toon.Serialize(doc)
	if err != nil {
		return err
	}

	if write {
		return atomic.WriteFile(path, strings.NewReader(s))
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
