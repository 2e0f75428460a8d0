package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_CSVToTOON(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	out := filepath.Join(dir, "data.toon")
	require.NoError(t, os.WriteFile(in, []byte("name,salary\nAlice,95000.0\nBob,75000.0\n"), 0o644))

	_, err := runCommand(t, "convert", "--table-name", "employees", in, out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "@employees\nname|salary\n---\nAlice|95000.0\nBob|75000.0", string(got))
}

func TestConvert_TOONToCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.toon")
	out := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("@employees\nname|salary\n---\nAlice|95000.0\n"), 0o644))

	_, err := runCommand(t, "convert", in, out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "name,salary\nAlice,95000.0\n", string(got))
}

func TestConvert_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.xlsx")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	_, err := runCommand(t, "convert", in, filepath.Join(dir, "out.toon"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no codec registered")
}

func TestConvert_Strict(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ragged.toon")
	require.NoError(t, os.WriteFile(in, []byte("a|b\n---\n1|2|3\n"), 0o644))

	_, err := runCommand(t, "--strict", "convert", in, filepath.Join(dir, "out.csv"))
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.toon")
	require.NoError(t, os.WriteFile(path, []byte("@employees\nname|salary|note\n---\nAlice|95000.0|\nBob|75000.0|hi\n"), 0o644))

	out, err := runCommand(t, "info", path)
	require.NoError(t, err)
	require.Contains(t, out, "table:   employees")
	require.Contains(t, out, "columns: 3")
	require.Contains(t, out, "rows:    2")
	require.Contains(t, out, "name")
	require.Contains(t, out, "float")
}

func TestInfo_NoName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.toon")
	require.NoError(t, os.WriteFile(path, []byte("a\n---\n1\n"), 0o644))

	out, err := runCommand(t, "info", path)
	require.NoError(t, err)
	require.Contains(t, out, "table:   (none)")
	require.Contains(t, out, "int")
}

func TestFmt_Stdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messy.toon")
	require.NoError(t, os.WriteFile(path, []byte("a | b\n1 | 2\n\n3|4\n"), 0o644))

	out, err := runCommand(t, "fmt", path)
	require.NoError(t, err)
	require.Equal(t, "a|b\n---\n1|2\n3|4\n", out)

	// Printing must not touch the file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a | b\n1 | 2\n\n3|4\n", string(data))
}

func TestFmt_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messy.toon")
	require.NoError(t, os.WriteFile(path, []byte("a | b\n1 | 2\n"), 0o644))

	_, err := runCommand(t, "fmt", "--write", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a|b\n---\n1|2", string(data))
}

func TestColumnKindSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.toon")
	require.NoError(t, os.WriteFile(path, []byte("m|empty\n---\n1|\ntext|\n"), 0o644))

	out, err := runCommand(t, "info", path)
	require.NoError(t, err)
	require.Contains(t, out, "mixed(int,string)")
	require.Contains(t, out, "null")
}
