package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toonfmt/go-toon/internal/token"
)

func collect(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexer_FullDocument(t *testing.T) {
	toks := collect("@employees\nname|salary\n---\nAlice|95000.0\n\nBob|75000.0")
	require.Equal(t, []token.Kind{
		token.NAME, token.HEADER, token.SEPARATOR, token.DATA, token.BLANK, token.DATA,
	}, kinds(toks))

	require.Equal(t, "@employees", toks[0].Literal)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 4, toks[3].Line)
}

func TestLexer_NoNameNoSeparator(t *testing.T) {
	toks := collect("a|b\n1|2")
	require.Equal(t, []token.Kind{token.HEADER, token.DATA}, kinds(toks))
}

func TestLexer_NameOnlyOnFirstNonBlankLine(t *testing.T) {
	// Leading blank lines do not use up the name slot.
	toks := collect("\n\n@t\nh\nrow")
	require.Equal(t, []token.Kind{
		token.BLANK, token.BLANK, token.NAME, token.HEADER, token.DATA,
	}, kinds(toks))

	// After the name, a marker-prefixed line is just the header.
	toks = collect("@t\n@weird|cols\nrow|row")
	require.Equal(t, []token.Kind{token.NAME, token.HEADER, token.DATA}, kinds(toks))
}

func TestLexer_SeparatorWindow(t *testing.T) {
	// Only the line directly after the header is a separator.
	toks := collect("h\n---\n---\nx")
	require.Equal(t, []token.Kind{
		token.HEADER, token.SEPARATOR, token.DATA, token.DATA,
	}, kinds(toks))

	// A dashed line further down is data even when no separator was seen.
	toks = collect("h\nx\n---")
	require.Equal(t, []token.Kind{token.HEADER, token.DATA, token.DATA}, kinds(toks))

	// Separator detection tolerates surrounding whitespace and longer dashes.
	toks = collect("h\n  ------  \nx")
	require.Equal(t, []token.Kind{token.HEADER, token.SEPARATOR, token.DATA}, kinds(toks))
}

func TestLexer_BlankAfterHeaderClosesWindow(t *testing.T) {
	toks := collect("h\n\n---\nx")
	require.Equal(t, []token.Kind{
		token.HEADER, token.BLANK, token.DATA, token.DATA,
	}, kinds(toks))
}

func TestLexer_EOFForever(t *testing.T) {
	l := New("h")
	require.Equal(t, token.HEADER, l.NextToken().Kind)
	require.Equal(t, token.EOF, l.NextToken().Kind)
	require.Equal(t, token.EOF, l.NextToken().Kind)
}
