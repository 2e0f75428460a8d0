// Package lexer splits TOON source text into a stream of classified line
// tokens. The grammar is line-oriented, so the lexer works on whole lines
// rather than characters; the only state it carries is how far through the
// preamble (name line, header line, separator line) it has advanced.
package lexer

import (
	"strings"

	"github.com/toonfmt/go-toon/internal/token"
)

type state int

const (
	stateStart     state = iota // a name line is still possible
	stateHeader                 // name consumed; next non-blank line is the header
	stateSepWindow              // the line directly after the header
	stateBody                   // data region
)

// Lexer transforms TOON source text into a stream of line tokens.
type Lexer struct {
	lines []string
	pos   int
	state state
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{lines: strings.Split(input, "\n")}
}

// NextToken returns the next classified line. After the input is exhausted it
// returns EOF tokens forever.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.lines) {
		return token.Token{Kind: token.EOF, Line: len(l.lines) + 1}
	}

	raw := l.lines[l.pos]
	line := l.pos + 1
	l.pos++

	trimmed := strings.TrimSpace(raw)
	tok := token.Token{Literal: raw, Line: line}

	switch l.state {
	case stateStart:
		switch {
		case trimmed == "":
			// Blank lines before the header carry no structure.
			tok.Kind = token.BLANK
		case strings.HasPrefix(trimmed, token.NameMarker):
			// A name line can only be the first non-blank line.
			tok.Kind = token.NAME
			l.state = stateHeader
		default:
			tok.Kind = token.HEADER
			l.state = stateSepWindow
		}
	case stateHeader:
		if trimmed == "" {
			tok.Kind = token.BLANK
		} else {
			tok.Kind = token.HEADER
			l.state = stateSepWindow
		}
	case stateSepWindow:
		// Only the line immediately after the header can be a separator.
		// Whatever it is, the window closes here.
		l.state = stateBody
		switch {
		case strings.HasPrefix(trimmed, token.Separator):
			tok.Kind = token.SEPARATOR
		case trimmed == "":
			tok.Kind = token.BLANK
		default:
			tok.Kind = token.DATA
		}
	case stateBody:
		if trimmed == "" {
			tok.Kind = token.BLANK
		} else {
			tok.Kind = token.DATA
		}
	}

	return tok
}
