package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var tableName string

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a tabular file between formats",
		Long: `Convert a tabular file between formats, chosen by file extension
(.toon, .csv). Values keep their inferred types across the conversion, so a
numeric CSV column stays numeric in TOON and back.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, tableName, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&tableName, "table-name", "",
		"set the table name on the output document")

	return cmd
}

func runConvert(opts *RootOptions, tableName, input, output string) error {
	reg, err := newRegistry(opts)
	if err != nil {
		return err
	}

	in, ok := reg.ByExtension(filepath.Ext(input))
	if !ok {
		return fmt.Errorf("no codec registered for %q", filepath.Ext(input))
	}
	out, ok := reg.ByExtension(filepath.Ext(output))
	if !ok {
		return fmt.Errorf("no codec registered for %q", filepath.Ext(output))
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	doc, err := in.Parse(data)
	if err != nil {
		return err
	}
	if tableName != "" {
		doc.Name = tableName
	}

	encoded, err := out.Serialize(doc)
	if err != nil {
		return err
	}
	return atomic.WriteFile(output, bytes.NewReader(encoded))
}
