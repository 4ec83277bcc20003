package cpp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalBasicArithmetic(t *testing.T) {
	ctx := NewContext()
	v, err := Eval("1 + 2 * 3", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestEvalDefined(t *testing.T) {
	ctx := NewContext()
	ctx.Macros["FOO"] = Macro{}
	v, err := Eval("defined(FOO)", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = Eval("defined(BAR)", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestEvalDivisionByZeroYieldsZero(t *testing.T) {
	ctx := NewContext()
	v, err := Eval("5 / 0", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestEvalHasCAttribute(t *testing.T) {
	ctx := NewContext()
	v, err := Eval("__has_c_attribute(nodiscard)", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(201904), v)

	v, err = Eval("__has_c_attribute(noreturn)", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(202202), v)

	v, err = Eval("__has_c_attribute(bogus)", ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestWalkConditionalIncludeSelection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.h"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.h"), []byte(""), 0o644))

	src := []byte("#ifdef FOO\n#include \"a.h\"\n#else\n#include \"b.h\"\n#endif\n")
	ctx := NewContext()

	var resolved []string
	err := Walk(dir, src, ctx, func(p string) bool {
		resolved = append(resolved, filepath.Base(p))

		return false
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.h"}, resolved)
}

func TestWalkNestedConditionals(t *testing.T) {
	src := []byte("#if 1\n#if 0\n#define INNER 1\n#else\n#define OUTER 1\n#endif\n#endif\n")
	ctx := NewContext()
	err := Walk("", src, ctx, func(string) bool { return false })
	require.NoError(t, err)
	_, innerDefined := ctx.Macros["INNER"]
	_, outerDefined := ctx.Macros["OUTER"]
	assert.False(t, innerDefined)
	assert.True(t, outerDefined)
}

func TestWalkMacroIndexing(t *testing.T) {
	src := []byte("#define MAX(a, b) ((a) > (b) ? (a) : (b))\n#define VERSION 42\n")
	ctx := NewContext()
	require.NoError(t, Walk("", src, ctx, func(string) bool { return false }))

	require.Contains(t, ctx.Macros, "MAX")
	assert.True(t, ctx.Macros["MAX"].IsFunctionLike)
	assert.Equal(t, []string{"a", "b"}, ctx.Macros["MAX"].Params)

	require.Contains(t, ctx.Macros, "VERSION")
	assert.Equal(t, "42", ctx.Macros["VERSION"].Value)
}

func TestWalkConditionalStackOverflow(t *testing.T) {
	src := make([]byte, 0)
	for i := 0; i < maxCondDepth+1; i++ {
		src = append(src, []byte("#if 1\n")...)
	}
	ctx := NewContext()
	err := Walk("", src, ctx, func(string) bool { return false })
	assert.ErrorIs(t, err, ErrConditionalStackOverflow)
}
