package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/errgen/internal/rustdoc"
)

var testEntries = []rustdoc.Entry{
	{Package: "std::io", Name: "Error"},
	{Package: "std::num", Name: "ParseIntError"},
	{Package: "std::str", Name: "Utf8Error"},
}

func testGen() Generator {
	return Generator{TraitName: "LambdaErrorExt", WrapperType: "HandlerError"}
}

func TestRenderHeader(t *testing.T) {
	out := testGen().Render(testEntries)

	assert.True(t, strings.HasPrefix(out, "// Generated code, DO NOT MODIFY!\n"))
	assert.Contains(t, out, "// trait for most of the standard library errors")
}

func TestRenderImportsInEntryOrder(t *testing.T) {
	out := testGen().Render(testEntries)

	ioIdx := strings.Index(out, "use std::io::Error;\n")
	numIdx := strings.Index(out, "use std::num::ParseIntError;\n")
	strIdx := strings.Index(out, "use std::str::Utf8Error;\n")
	crateIdx := strings.Index(out, "use crate::{LambdaErrorExt, HandlerError};\n")

	require.NotEqual(t, -1, ioIdx)
	require.NotEqual(t, -1, crateIdx)
	assert.Less(t, ioIdx, numIdx)
	assert.Less(t, numIdx, strIdx)
	assert.Less(t, strIdx, crateIdx)
}

func TestRenderImplPairs(t *testing.T) {
	out := testGen().Render(testEntries)

	// one trait impl and one From impl per surviving entry
	assert.Equal(t, len(testEntries), strings.Count(out, "impl LambdaErrorExt for "))
	assert.Equal(t, len(testEntries), strings.Count(out, "impl From<"))

	// both halves of each pair name the same type
	for _, e := range testEntries {
		assert.Contains(t, out, "impl LambdaErrorExt for "+e.Name+" {")
		assert.Contains(t, out, "impl From<"+e.Name+"> for HandlerError {")
		assert.Contains(t, out, `"`+e.QualifiedName()+`"`)
	}
}

func TestRenderExactBlocks(t *testing.T) {
	out := testGen().Render(testEntries[:1])

	assert.Contains(t, out, `impl LambdaErrorExt for Error {
    fn error_type(&self) -> &str {
        "std::io::Error"
    }
}
`)
	assert.Contains(t, out, `impl From<Error> for HandlerError {
    fn from(e: Error) -> Self {
        HandlerError::new(e)
    }
}
`)
}

func TestRenderCustomSymbols(t *testing.T) {
	gen := Generator{TraitName: "ErrorExt", WrapperType: "AppError"}
	out := gen.Render(testEntries[:1])

	assert.Contains(t, out, "use crate::{ErrorExt, AppError};")
	assert.Contains(t, out, "impl ErrorExt for Error {")
	assert.Contains(t, out, "AppError::new(e)")
}

func TestRenderDeterministic(t *testing.T) {
	gen := testGen()
	assert.Equal(t, gen.Render(testEntries), gen.Render(testEntries))
}

func TestRenderNoEntries(t *testing.T) {
	out := testGen().Render(nil)

	assert.Contains(t, out, "use crate::{LambdaErrorExt, HandlerError};")
	assert.NotContains(t, out, "impl LambdaErrorExt for ")
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error_ext_impl.rs")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	gen := testGen()
	gen.OutputPath = path
	require.NoError(t, gen.Write(testEntries))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, gen.Render(testEntries), string(got))
}

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rs")

	gen := testGen()
	gen.OutputPath = path
	require.NoError(t, gen.Write(testEntries[:1]))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "// Generated code, DO NOT MODIFY!"))
}
