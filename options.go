package toon

import (
	"fmt"
	"strings"

	"github.com/toonfmt/go-toon/internal/token"
)

// options holds configuration derived from functional options.
type options struct {
	strictArity bool
	tableName   string
}

// Option configures parsing or marshaling.
type Option func(*options) error

// StrictArity returns an Option that makes Parse reject any data row whose
// field count differs from the header's column count, failing with a
// *ParseError that wraps ErrRowArity and names the offending line.
//
// Without it the parser keeps the format's documented leniency: rows pass
// through exactly as split, however wide they are.
func StrictArity() Option {
	return func(o *options) error {
		o.strictArity = true
		return nil
	}
}

// TableName returns an Option that sets the table name Marshal emits. The
// name must fit on the name line, so it may not contain a line break or the
// field delimiter.
func TableName(name string) Option {
	return func(o *options) error {
		if strings.ContainsAny(name, "\n\r"+token.Delimiter) {
			return fmt.Errorf("toon: invalid table name %q", name)
		}
		o.tableName = name
		return nil
	}
}
