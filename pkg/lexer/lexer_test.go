package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mython/pkg/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(strings.NewReader(src))
	var toks []token.Token
	for {
		toks = append(toks, l.Current())
		if l.Current().Type == token.Eof {
			break
		}
		l.Next()
	}
	return toks
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}

func TestTrailerIsNewlineThenDedentsThenEof(t *testing.T) {
	toks := collect(t, "if 1:\n  print 1\n")
	require.NotEmpty(t, toks)
	last := toks[len(toks)-1]
	assert.Equal(t, token.Eof, last.Type)
	secondLast := toks[len(toks)-2]
	assert.Equal(t, token.Dedent, secondLast.Type)
}

func TestIndentDedentBalance(t *testing.T) {
	toks := types(collect(t, "if 1:\n  if 2:\n    print 3\n  print 4\n"))
	indents, dedents := 0, 0
	for _, tt := range toks {
		if tt == token.Indent {
			indents++
		}
		if tt == token.Dedent {
			dedents++
		}
	}
	assert.Equal(t, indents, dedents)
}

func TestMisalignedIndentIsError(t *testing.T) {
	l := New(strings.NewReader("if 1:\n   print 1\n"))
	for l.Current().Type != token.Eof {
		l.Next()
	}
	assert.Error(t, l.Err())
}

func TestBlankAndCommentLinesDoNotAffectLevel(t *testing.T) {
	toks := types(collect(t, "if 1:\n\n  # a comment\n  print 1\n"))
	indentCount := 0
	for _, tt := range toks {
		if tt == token.Indent {
			indentCount++
		}
	}
	assert.Equal(t, 1, indentCount)
}

func TestStringEscapes(t *testing.T) {
	toks := collect(t, `"a\tb\nc\"d\'e"`+"\n")
	require.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "a\tb\nc\"d'e", toks[0].Str)
}

func TestUnknownEscapeDropsBackslashAndChar(t *testing.T) {
	toks := collect(t, `"a\qb"`+"\n")
	require.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "ab", toks[0].Str)
}

func TestNumberLiteral(t *testing.T) {
	toks := collect(t, "123\n")
	require.Equal(t, token.Number, toks[0].Type)
	assert.EqualValues(t, 123, toks[0].Num)
}

func TestBareBangEmitsCharNotError(t *testing.T) {
	toks := collect(t, "! x\n")
	require.Equal(t, token.Char, toks[0].Type)
	assert.Equal(t, "!", toks[0].Str)
}

func TestTwoCharacterOperators(t *testing.T) {
	toks := types(collect(t, "a == b != c <= d >= e\n"))
	assert.Contains(t, toks, token.Eq)
	assert.Contains(t, toks, token.NotEq)
	assert.Contains(t, toks, token.LessOrEq)
	assert.Contains(t, toks, token.GreaterOrEq)
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := collect(t, "class classy\n")
	assert.Equal(t, token.Class, toks[0].Type)
	assert.Equal(t, token.Id, toks[1].Type)
	assert.Equal(t, "classy", toks[1].Str)
}

func TestExpectSucceedsOnMatchingVariant(t *testing.T) {
	l := New(strings.NewReader("123\n"))
	assert.NoError(t, l.Expect(token.Number))
}

func TestExpectFailsOnVariantMismatch(t *testing.T) {
	l := New(strings.NewReader("123\n"))
	assert.Error(t, l.Expect(token.Id))
}

func TestExpectValueFailsOnPayloadMismatch(t *testing.T) {
	l := New(strings.NewReader("123\n"))
	err := l.ExpectValue(token.Number, token.Token{Type: token.Number, Num: 456})
	assert.Error(t, err)
}

func TestExpectValueSucceedsOnMatchingPayload(t *testing.T) {
	l := New(strings.NewReader("123\n"))
	err := l.ExpectValue(token.Number, token.Token{Type: token.Number, Num: 123})
	assert.NoError(t, err)
}

func TestExpectNextAdvancesThenChecksVariant(t *testing.T) {
	l := New(strings.NewReader("x 1\n"))
	require.Equal(t, token.Id, l.Current().Type)
	assert.NoError(t, l.ExpectNext(token.Number))
}

func TestExpectNextFailsOnVariantMismatch(t *testing.T) {
	l := New(strings.NewReader("x 1\n"))
	assert.Error(t, l.ExpectNext(token.String))
}

func TestExpectNextValueFailsOnPayloadMismatch(t *testing.T) {
	l := New(strings.NewReader("x y\n"))
	err := l.ExpectNextValue(token.Id, token.Token{Type: token.Id, Str: "z"})
	assert.Error(t, err)
}

func TestExpectNextValueSucceedsOnMatchingPayload(t *testing.T) {
	l := New(strings.NewReader("x y\n"))
	err := l.ExpectNextValue(token.Id, token.Token{Type: token.Id, Str: "y"})
	assert.NoError(t, err)
}

func TestNextStaysAtEofOnceReached(t *testing.T) {
	l := New(strings.NewReader("x\n"))
	for l.Current().Type != token.Eof {
		l.Next()
	}
	before := l.Current()
	after := l.Next()
	assert.Equal(t, token.Eof, before.Type)
	assert.Equal(t, token.Eof, after.Type)
}
