package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualComparesPayloadForValueVariants(t *testing.T) {
	a := Token{Type: Number, Num: 5}
	b := Token{Type: Number, Num: 5}
	c := Token{Type: Number, Num: 6}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestEqualIgnoresPositionOnly(t *testing.T) {
	a := Token{Type: Id, Str: "x", Line: 1, Col: 1}
	b := Token{Type: Id, Str: "x", Line: 9, Col: 9}
	assert.True(t, a.Equal(b))
}

func TestEqualDiffersByVariant(t *testing.T) {
	a := Token{Type: True}
	b := Token{Type: False}
	assert.False(t, a.Equal(b))
}

func TestKeywordsMapCoversReservedWords(t *testing.T) {
	for _, kw := range []string{"class", "return", "if", "else", "def", "print", "or", "and", "not", "None", "True", "False"} {
		_, ok := Keywords[kw]
		assert.True(t, ok, "missing keyword %q", kw)
	}
}

func TestStringRendersPayload(t *testing.T) {
	assert.Equal(t, `String("hi")`, Token{Type: String, Str: "hi"}.String())
	assert.Equal(t, "Number(42)", Token{Type: Number, Num: 42}.String())
	assert.Equal(t, "Eof", Token{Type: Eof}.String())
}
