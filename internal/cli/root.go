// Package cli implements the toon command-line tool.
package cli

import (
	"github.com/spf13/cobra"

	toon "github.com/toonfmt/go-toon"
	"github.com/toonfmt/go-toon/codec"
)

// RootOptions holds flags shared by all subcommands.
type RootOptions struct {
	Strict bool
}

// NewRootCommand creates the root command for the toon CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "toon",
		Short: "Convert and inspect TOON tabular files",
		Long: `toon works with TOON, a compact line-based notation for tabular data
(an optional @name line, a |-delimited header, an optional --- separator,
then one row per line). It converts between formats by file extension,
prints document summaries, and rewrites files to normative form.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.Strict, "strict", false,
		"reject rows whose field count differs from the header")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewFmtCommand(opts))

	return cmd
}

// newRegistry builds the codec registry the commands dispatch through.
func newRegistry(opts *RootOptions) (*codec.Registry, error) {
	var parseOpts []toon.Option
	if opts.Strict {
		parseOpts = append(parseOpts, toon.StrictArity())
	}

	r := codec.NewRegistry()
	if _, err := r.Register(codec.TOON(parseOpts...)); err != nil {
		return nil, err
	}
	if _, err := r.Register(codec.CSV()); err != nil {
		return nil, err
	}
	return r, nil
}
