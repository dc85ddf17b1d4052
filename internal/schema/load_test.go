package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "demo", "bindings.json")

	cfg, err := Load(t.Context(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, filepath.Join("testdata", "demo", "src", "Bindings.cpp"), cfg.CppFile)
	assert.Equal(t, filepath.Join("testdata", "demo", "rust"), cfg.Rust.Dir)
	assert.Equal(t, Rust2021, cfg.RustEdition)

	demo := cfg.object("Demo")
	require.NotNil(t, demo)
	assert.Same(t, cfg.object("Fibonacci"), demo.Properties[0].Type.Object)
	assert.Same(t, cfg.object("FileSystemTree"), demo.Properties[1].Type.Object)
}

func TestLoad_MissingManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`+header+` "objects": {}}`), 0o644))

	_, err := Load(t.Context(), path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "rust", "Cargo.toml"))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_DefaultEdition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`+header+` "objects": {}}`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rust"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rust", "Cargo.toml"), []byte("[package]\nname = \"x\"\n"), 0o644))

	cfg, err := Load(t.Context(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, Rust2015, cfg.RustEdition)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.Context(), filepath.Join(t.TempDir(), "nope.json"), Options{})
	require.Error(t, err)
}
