package main

import (
	"bytes"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qt-binding-generator/internal/schema"
)

const manifest = `[package]
name = "demo"
version = "0.1.0"
edition = "2018"
`

// writeProject lays out a binding file and its crate manifest in a temp dir.
func writeProject(t *testing.T, bindings string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rust"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rust", "Cargo.toml"), []byte(manifest), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bindings.json"), []byte(bindings), 0o600))

	return dir
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}

			files = append(files, filepath.ToSlash(rel))
		}

		return nil
	})
	require.NoError(t, err)

	sort.Strings(files)

	return files
}

const personBindings = `{
    "cppFile": "src/Person.cpp",
    "rust": { "dir": "rust", "interfaceModule": "interface", "implementationModule": "implementation" },
    "objects": {
        "Person": {
            "type": "Object",
            "properties": {
                "name": { "type": "QString", "write": true },
                "age": { "type": "quint8", "optional": true, "write": true }
            }
        }
    }
}`

func TestRun_Generates(t *testing.T) {
	dir := writeProject(t, personBindings)
	path := filepath.Join(dir, "bindings.json")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(t.Context(), out, errOut, []string{path}))

	assert.Equal(t, []string{
		"bindings.json",
		"rust/Cargo.toml",
		"rust/src/implementation.rs",
		"rust/src/interface.rs",
		"src/Person.cpp",
		"src/Person.h",
	}, listFiles(t, dir))

	iface, err := os.ReadFile(filepath.Join(dir, "rust", "src", "interface.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(iface), "use crate::implementation::*;")
	assert.Contains(t, errOut.String(), "Generated bindings.")

	impl := filepath.Join(dir, "rust", "src", "implementation.rs")
	require.NoError(t, os.WriteFile(impl, []byte("// mine\n"), 0o600))

	t.Run("implementation is kept", func(t *testing.T) {
		require.NoError(t, run(t.Context(), out, errOut, []string{path}))

		got, err := os.ReadFile(impl)
		require.NoError(t, err)
		assert.Equal(t, "// mine\n", string(got))
	})

	t.Run("implementation is overwritten on request", func(t *testing.T) {
		require.NoError(t, run(t.Context(), out, errOut, []string{"-overwrite-implementation", path}))

		got, err := os.ReadFile(impl)
		require.NoError(t, err)
		assert.Contains(t, string(got), "impl PersonTrait for Person {")
	})
}

func TestRun_UnknownTypeWritesNothing(t *testing.T) {
	dir := writeProject(t, `{
    "cppFile": "src/Person.cpp",
    "rust": { "dir": "rust", "interfaceModule": "interface", "implementationModule": "implementation" },
    "objects": {
        "Person": {
            "properties": {
                "gadget": { "type": "Frobnicator" }
            }
        }
    }
}`)

	err := run(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, []string{filepath.Join(dir, "bindings.json")})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnknownType)
	assert.Contains(t, err.Error(), "gadget")
	assert.Contains(t, err.Error(), `"Frobnicator"`)

	assert.Equal(t, []string{"bindings.json", "rust/Cargo.toml"}, listFiles(t, dir))
}

func TestRun_Dump(t *testing.T) {
	dir := writeProject(t, personBindings)
	out := &bytes.Buffer{}

	require.NoError(t, run(t.Context(), out, &bytes.Buffer{}, []string{"-dump", filepath.Join(dir, "bindings.json")}))
	assert.Contains(t, out.String(), "Objects:")
	assert.Contains(t, out.String(), `Name: (string) (len=6) "Person"`)
}

func TestRun_Help(t *testing.T) {
	errOut := &bytes.Buffer{}

	err := run(t.Context(), &bytes.Buffer{}, errOut, []string{"-h"})
	require.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_MissingBindingFile(t *testing.T) {
	errOut := &bytes.Buffer{}

	err := run(t.Context(), &bytes.Buffer{}, errOut, nil)
	require.ErrorIs(t, err, errMissingBindingFile)
	assert.Contains(t, errOut.String(), "BINDING_FILE")
}

func TestRun_ParseError(t *testing.T) {
	err := run(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MalformedDotEnv(t *testing.T) {
	dir := writeProject(t, personBindings)
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("NOT-A-KEY=1\n"), 0o600))

	err := run(t.Context(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"bindings.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading .env")

	_, err = os.Stat(filepath.Join(dir, "src"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParseArgs_EnvironmentDefaults(t *testing.T) {
	t.Setenv(envOverwriteImplementation, "true")
	t.Setenv(envLogLevel, "warn")

	opts, err := parseArgs([]string{"bindings.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, opts.overwriteImplementation)
	assert.Equal(t, "warn", opts.logLevel)

	opts, err = parseArgs([]string{"-v", "bindings.json"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "debug", opts.logLevel)
}
