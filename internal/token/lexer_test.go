package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(src string) []Kind {
	list := Tokenize([]byte(src))
	out := make([]Kind, 0, len(list))
	for _, t := range list {
		if t.Kind == Whitespace || t.Kind == Newline {
			continue
		}
		out = append(out, t.Kind)
	}

	return out
}

func TestTokenizeCoversEntireInput(t *testing.T) {
	src := "struct Foo { int x; } /* c */ // line\n"
	list := Tokenize([]byte(src))
	require.NotEmpty(t, list)

	last := list[len(list)-1]
	assert.Equal(t, EOF, last.Kind)
	assert.Equal(t, len(src), last.Start)

	// Coverage: every byte offset must be claimed by exactly one token.
	covered := 0
	for _, tok := range list[:len(list)-1] {
		assert.Equal(t, covered, tok.Start, "gap before token at %d", tok.Start)
		covered += tok.Len
	}
	assert.Equal(t, len(src), covered)
}

func TestTokenizeUnknownByteIsSingleByteSpan(t *testing.T) {
	list := Tokenize([]byte("a $ b"))
	var found bool
	for _, tok := range list {
		if tok.Kind == Unknown {
			found = true
			assert.Equal(t, 1, tok.Len)
		}
	}
	assert.True(t, found)
}

func TestTokenizeKeywordsAcrossStandards(t *testing.T) {
	for _, kw := range []string{"_Thread_local", "noreturn", "_Noreturn", "static_assert", "typeof"} {
		list := Tokenize([]byte(kw))
		require.Len(t, list, 2)
		assert.Equal(t, Keyword, list[0].Kind)
	}
}

func TestTokenizeNumericLiterals(t *testing.T) {
	cases := map[string]Kind{
		"0x1A":    IntLiteral,
		"0b1011":  IntLiteral,
		"017":     IntLiteral,
		"42":      IntLiteral,
		"42u":     IntLiteral,
		"42ULL":   IntLiteral,
		"3.14":    FloatLiteral,
		"1e10":    FloatLiteral,
		"0x1p4":   FloatLiteral,
		"1.0df":   FloatLiteral,
		".5":      FloatLiteral,
	}
	for lit, want := range cases {
		list := Tokenize([]byte(lit))
		require.GreaterOrEqual(t, len(list), 1, lit)
		assert.Equal(t, want, list[0].Kind, lit)
		assert.Equal(t, lit, list[0].Text([]byte(lit)), lit)
	}
}

func TestTokenizePunctuators(t *testing.T) {
	src := "a::b -> c <<= 1 ... x"
	got := kinds(src)
	want := []Kind{Identifier, ColonColon, Identifier, Arrow, Identifier, LtLtEq, IntLiteral, Ellipsis, Identifier, EOF}
	assert.Equal(t, want, got)
}

func TestTokenizePreservesComments(t *testing.T) {
	src := "/** @route GET /x */\nint f(void);"
	list := Tokenize([]byte(src))
	assert.Equal(t, BlockComment, list[0].Kind)
}
