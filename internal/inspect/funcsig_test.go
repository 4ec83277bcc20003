package inspect

import (
	"testing"

	"github.com/SamuelMarks/cdd-c-sub007/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFunctionSignatureBasic(t *testing.T) {
	src := []byte("int add(int a, int b) {")
	toks := token.Tokenize(src)

	fs, ok := ExtractFunctionSignature(src, toks)
	require.True(t, ok)
	assert.Equal(t, "add", fs.Name)
	assert.Equal(t, "int", fs.ReturnType)
	require.Len(t, fs.Params, 2)
	assert.Equal(t, "a", fs.Params[0].Name)
	assert.Equal(t, "int", fs.Params[0].Type)
	assert.False(t, fs.Variadic)
}

func TestExtractFunctionSignatureStorageAndAttributes(t *testing.T) {
	src := []byte("[[nodiscard]] static inline _Noreturn void panic(const char *msg) {")
	toks := token.Tokenize(src)

	fs, ok := ExtractFunctionSignature(src, toks)
	require.True(t, ok)
	assert.Equal(t, "panic", fs.Name)
	assert.Contains(t, fs.Storage, "static")
	assert.Contains(t, fs.Storage, "inline")
	assert.Contains(t, fs.Storage, "_Noreturn")
	require.Len(t, fs.Attributes, 1)
}

func TestExtractFunctionSignatureVoidParams(t *testing.T) {
	src := []byte("int noop(void) {")
	toks := token.Tokenize(src)

	fs, ok := ExtractFunctionSignature(src, toks)
	require.True(t, ok)
	assert.Empty(t, fs.Params)
	assert.False(t, fs.Variadic)
}

func TestExtractFunctionSignatureVariadic(t *testing.T) {
	src := []byte("int logf(const char *fmt, ...) {")
	toks := token.Tokenize(src)

	fs, ok := ExtractFunctionSignature(src, toks)
	require.True(t, ok)
	assert.True(t, fs.Variadic)
	require.Len(t, fs.Params, 1)
}

func TestRewriteVoidReturnUnchanged(t *testing.T) {
	fs := FunctionSignature{Name: "init", ReturnType: "void"}
	rs := Rewrite(fs)
	assert.True(t, rs.OriginalVoid)
	assert.Nil(t, rs.OutParam)
	assert.Equal(t, "int", rs.ReturnType)
}

func TestRewriteNonVoidReturnAddsOutParam(t *testing.T) {
	fs := FunctionSignature{Name: "compute", ReturnType: "double", Params: []Param{{Type: "int", Name: "n"}}}
	rs := Rewrite(fs)
	assert.False(t, rs.OriginalVoid)
	require.NotNil(t, rs.OutParam)
	assert.Equal(t, "out_result", rs.OutParam.Name)
	assert.Len(t, rs.Params, 2)
}
