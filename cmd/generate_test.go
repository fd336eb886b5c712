package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/errgen/internal/rustdoc"
)

func execGenerate(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd.SetArgs(append([]string{"generate", "--ignore-config"}, args...))
	defer rootCmd.SetArgs(nil)

	return rootCmd.Execute()
}

func TestGenerateEmptyBodyLeavesOutputUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "error_ext_impl.rs")
	require.NoError(t, os.WriteFile(out, []byte("previous run"), 0644))

	err := execGenerate(t, "--url", srv.URL, "--output", out)
	require.ErrorIs(t, err, rustdoc.ErrEmptyBody)

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous run", string(got))
}

func TestGenerateFetchFailureLeavesOutputUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "error_ext_impl.rs")
	require.NoError(t, os.WriteFile(out, []byte("previous run"), 0644))

	err := execGenerate(t, "--url", srv.URL, "--output", out)

	var se *rustdoc.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)

	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous run", string(got))
}

func TestGenerateWritesOutputAfterSuccessfulFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<code> Error for </code><a href="../../std/io/struct.Error.html">Error</a>`))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "error_ext_impl.rs")
	require.NoError(t, os.WriteFile(out, []byte("previous run"), 0644))

	require.NoError(t, execGenerate(t, "--url", srv.URL, "--output", out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got), "// Generated code, DO NOT MODIFY!"))
	assert.Contains(t, string(got), "use std::io::Error;")
	assert.Contains(t, string(got), "impl LambdaErrorExt for Error {")
}
