package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	toon "github.com/toonfmt/go-toon"
)

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a tabular file",
		Long: `Print a summary of a tabular file: table name, column names, row count,
and the inferred value kind of every column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, cmd, args[0])
		},
	}
}

func runInfo(opts *RootOptions, cmd *cobra.Command, path string) error {
	reg, err := newRegistry(opts)
	if err != nil {
		return err
	}
	c, ok := reg.ByExtension(filepath.Ext(path))
	if !ok {
		return fmt.Errorf("no codec registered for %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := c.Parse(data)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	name := doc.Name
	if name == "" {
		name = "(none)"
	}
	fmt.Fprintf(w, "table:   %s\n", name)
	fmt.Fprintf(w, "columns: %d\n", len(doc.Columns))
	fmt.Fprintf(w, "rows:    %d\n", len(doc.Rows))

	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for i, col := range doc.Columns {
		fmt.Fprintf(tw, "  %s\t%s\n", col, columnKind(doc, i))
	}
	return tw.Flush()
}

// columnKind summarizes the value kinds seen in one column: the single
// non-null kind when the column is homogeneous, "null" when it holds nothing
// else, and "mixed(...)" otherwise.
func columnKind(doc *toon.Document, col int) string {
	seen := map[toon.Kind]bool{}
	order := []toon.Kind{}
	for _, row := range doc.Rows {
		if col >= len(row) {
			continue
		}
		k := row[col].Kind()
		if k == toon.KindNull || seen[k] {
			continue
		}
		seen[k] = true
		order = append(order, k)
	}
	switch len(order) {
	case 0:
		return toon.KindNull.String()
	case 1:
		return order[0].String()
	}
	names := make([]string, len(order))
	for i, k := range order {
		names[i] = k.String()
	}
	return "mixed(" + strings.Join(names, ",") + ")"
}
