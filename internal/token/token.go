package token

// Kind classifies one source line of a TOON document.
type Kind string

// Token represents a single classified line.
type Token struct {
	Kind    Kind
	Literal string // the line as it appeared in the source, without its terminator
	Line    int    // 1-based source line number
}

const (
	// Special tokens
	EOF   Kind = "EOF"
	BLANK Kind = "BLANK" // a line with no content after trimming

	// Structural lines
	NAME      Kind = "NAME"      // @employees
	HEADER    Kind = "HEADER"    // name|department|salary
	SEPARATOR Kind = "SEPARATOR" // ---
	DATA      Kind = "DATA"      // Alice|Engineering|95000.0
)

// Grammar constants. TOON is a fixed pipe/dash grammar; these are not
// configurable.
const (
	Delimiter  = "|"   // separates fields within a header or data line
	Separator  = "---" // marks the boundary between header and data
	NameMarker = "@"   // prefixes the optional table-name line
)
