package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextTokenOperators(t *testing.T) {
	input := `x = 1 + 2 ** 3 - 4 / 5; x += 1; x++; x--; a && b || !c; a == b != c; a <= b >= c;`
	want := []TokenType{
		IDENT, ASSIGN, INT, PLUS, INT, STAR_STAR, INT, MINUS, INT, SLASH, INT, SEMICOLON,
		IDENT, PLUS_ASSIGN, INT, SEMICOLON,
		IDENT, INCREMENT, SEMICOLON,
		IDENT, DECREMENT, SEMICOLON,
		IDENT, AND, IDENT, OR, NOT, IDENT, SEMICOLON,
		IDENT, EQ, IDENT, NOT_EQ, IDENT, SEMICOLON,
		IDENT, LTE, IDENT, GTE, IDENT, SEMICOLON,
	}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		require.Equalf(t, tt, tok.Type, "token %d: literal %q", i, tok.Literal)
	}
}

func TestNextTokenKeywordAliases(t *testing.T) {
	input := `? ~ @ ^ ` + "`" + ` -> $ % | >> << !>> # ::`
	want := []TokenType{IF, WHILE, FOR, CONTINUE, BREAK, RETURN, TRUE_LIT, FALSE_LIT, NULL_LIT, PRINT, SCAN, RAISE, REFERENCE, NAMESPACE}

	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		require.Equalf(t, tt, tok.Type, "token %d: literal %q", i, tok.Literal)
	}
}

func TestNextTokenString(t *testing.T) {
	l := New(`"hello \"world\""`)
	tok := l.NextToken()
	require.Equal(t, STRING, tok.Type)
	require.Equal(t, `hello "world"`, tok.Literal)
}

func TestNextTokenRange(t *testing.T) {
	l := New(`1...5`)
	require.Equal(t, INT, l.NextToken().Type)
	require.Equal(t, RANGE, l.NextToken().Type)
	require.Equal(t, INT, l.NextToken().Type)
}

func TestNextTokenFloat(t *testing.T) {
	l := New(`3.14`)
	tok := l.NextToken()
	require.Equal(t, FLOAT, tok.Type)
	require.Equal(t, "3.14", tok.Literal)
}

func TestNextTokenEOF(t *testing.T) {
	l := New(``)
	tok := l.NextToken()
	require.Equal(t, EOF, tok.Type)
}

func TestFormattedStringTextOnly(t *testing.T) {
	l := New(`'hello world'`)
	tok := l.NextToken()
	require.Equal(t, FORMATTED_STRING, tok.Type)
	require.Equal(t, "hello world", tok.Literal)
}

func TestFormattedStringWithEmbeddedExpression(t *testing.T) {
	l := New(`'count: {n}!'`)

	chunk := l.NextToken()
	require.Equal(t, FORMATTED_STRING, chunk.Type)
	require.Equal(t, "count: ", chunk.Literal)

	brace := l.NextToken()
	require.Equal(t, LBRACE, brace.Type)

	ident := l.NextToken()
	require.Equal(t, IDENT, ident.Type)
	require.Equal(t, "n", ident.Literal)

	rbrace := l.NextToken()
	require.Equal(t, RBRACE, rbrace.Type)

	tail := l.NextFormattedStringToken()
	require.Equal(t, FORMATTED_STRING, tail.Type)
	require.Equal(t, "!", tail.Literal)
}
