package toon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestGolden parses every testdata/*.toon fixture and compares the
// re-serialized, normative output against its golden file. Regenerate with:
//
//	go test . -update
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.toon")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no fixtures found")

	g := goldie.New(t)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".toon")
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			doc, err := Parse(string(src))
			require.NoError(t, err)

			actual, err := Serialize(doc)
			require.NoError(t, err)

			g.Assert(t, name, []byte(actual))
		})
	}
}
