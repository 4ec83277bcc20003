package inspect

import (
	"testing"

	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseBody(t *testing.T, braceExpr string) InitList {
	t.Helper()
	src := []byte(braceExpr)
	toks := significant(token.Tokenize(src))
	require.Equal(t, token.LBrace, toks[0].Kind)
	end := matchBrace(toks, 0)
	require.GreaterOrEqual(t, end, 0)

	return ParseInitList(src, toks[1:end])
}

func TestParseInitListDesignatedFields(t *testing.T) {
	list := parseBody(t, "{ .x = 1, .y = 2 }")
	require.Len(t, list.Entries, 2)
	assert.Equal(t, ". x", list.Entries[0].Designator)
	assert.Equal(t, "1", list.Entries[0].Expr)
	assert.Equal(t, ". y", list.Entries[1].Designator)
	assert.Equal(t, "2", list.Entries[1].Expr)
}

func TestParseInitListArrayDesignator(t *testing.T) {
	list := parseBody(t, "{ [0] = 1, [1] = 2 }")
	require.Len(t, list.Entries, 2)
	assert.Equal(t, "1", list.Entries[0].Expr)
}

func TestParseInitListPositional(t *testing.T) {
	list := parseBody(t, "{ 1, 2, 3 }")
	require.Len(t, list.Entries, 3)
	for _, e := range list.Entries {
		assert.Empty(t, e.Designator)
	}
}

func TestParseInitListNestedBraceGroup(t *testing.T) {
	list := parseBody(t, "{ .point = { .x = 1, .y = 2 }, .label = 3 }")
	require.Len(t, list.Entries, 2)
	require.NotNil(t, list.Entries[0].Nested)
	assert.Len(t, list.Entries[0].Nested.Entries, 2)
	assert.Equal(t, "3", list.Entries[1].Expr)
}

func TestParseInitListFunctionCallExprNotMistakenForBalancedBrace(t *testing.T) {
	list := parseBody(t, "{ .size = sizeof(int), .count = 4 }")
	require.Len(t, list.Entries, 2)
	assert.Equal(t, "sizeof ( int )", list.Entries[0].Expr)
}
