package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyExample copies the binding file and crate manifest of an example so
// generation does not touch the repository.
func copyExample(t *testing.T, name string) string {
	t.Helper()

	src := filepath.Join("..", "..", "examples", name)
	dir := t.TempDir()

	for _, rel := range []string{"bindings.json", filepath.Join("rust", "Cargo.toml")} {
		b, err := os.ReadFile(filepath.Join(src, rel))
		require.NoError(t, err)

		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, rel)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), b, 0o600))
	}

	return dir
}

func TestExamples(t *testing.T) {
	for _, name := range []string{"demo", "todos"} {
		t.Run(name, func(t *testing.T) {
			dir := copyExample(t, name)

			require.NoError(t, run(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-v", filepath.Join(dir, "bindings.json")}))

			for _, rel := range []string{"src/Bindings.h", "src/Bindings.cpp", "rust/src/interface.rs", "rust/src/implementation.rs"} {
				info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
				require.NoError(t, err, rel)
				assert.Positive(t, info.Size(), rel)
			}
		})
	}
}
