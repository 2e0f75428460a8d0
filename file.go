package toon

import (
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Ext is the conventional file extension for TOON documents. It is a
// convention only; ReadFile does not check it.
const Ext = ".toon"

// ReadFile parses the TOON document stored at path.
func ReadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), opts...)
}

// WriteFile serializes doc to path. The file is replaced atomically so a
// crash mid-write cannot leave a truncated document behind.
func WriteFile(path string, doc *Document) error {
	s, err := Serialize(doc)
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, strings.NewReader(s))
}
