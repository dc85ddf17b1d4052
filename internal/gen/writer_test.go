package gen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src", "Bindings.cpp")
	impl := filepath.Join(dir, "rust", "src", "implementation.rs")

	files := []GeneratedFile{
		{Path: source, Content: []byte("one")},
		{Path: impl, Content: []byte("starter"), WriteOnce: true},
	}

	require.NoError(t, WriteFiles(t.Context(), files))

	got, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "one", string(got))

	got, err = os.ReadFile(impl)
	require.NoError(t, err)
	assert.Equal(t, "starter", string(got))

	t.Run("unchanged content is not rewritten", func(t *testing.T) {
		past := time.Now().Add(-time.Hour).Truncate(time.Second)
		require.NoError(t, os.Chtimes(source, past, past))

		require.NoError(t, WriteFiles(t.Context(), files[:1]))

		info, err := os.Stat(source)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(past))
	})

	t.Run("changed content is rewritten", func(t *testing.T) {
		require.NoError(t, WriteFiles(t.Context(), []GeneratedFile{{Path: source, Content: []byte("two")}}))

		got, err := os.ReadFile(source)
		require.NoError(t, err)
		assert.Equal(t, "two", string(got))
	})

	t.Run("existing write once file is kept", func(t *testing.T) {
		require.NoError(t, os.WriteFile(impl, []byte("edited by hand"), 0o600))

		require.NoError(t, WriteFiles(t.Context(), []GeneratedFile{{Path: impl, Content: []byte("starter"), WriteOnce: true}}))

		got, err := os.ReadFile(impl)
		require.NoError(t, err)
		assert.Equal(t, "edited by hand", string(got))
	})
}

func TestWriteFilesErrorNamesPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "rust")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	path := filepath.Join(blocker, "src", "interface.rs")

	err := WriteFiles(t.Context(), []GeneratedFile{{Path: path, Content: []byte("x")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
