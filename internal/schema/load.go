package schema

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"qt-binding-generator/internal/config"
	"qt-binding-generator/internal/ctxlog"
)

// ManifestName is the crate manifest looked up in rust.dir.
const ManifestName = "Cargo.toml"

// Load reads, validates and resolves the binding file at path. Relative paths
// in the file are taken relative to its directory, and the crate edition is
// read from the manifest in rust.dir. Validation warnings are logged.
func Load(ctx context.Context, path string, opts Options) (*Config, error) {
	logger := ctxlog.FromContext(ctx).With("config", path)

	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	opts.BaseDir = filepath.Dir(path)

	manifestPath := filepath.Join(opts.BaseDir, f.Rust.Dir, ManifestName)
	if f.Rust.Dir != "" {
		manifest, err := config.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}

		opts.Edition = ParseRustEdition(manifest.Package.Edition)
	}

	cfg, err := Resolve(f, opts)
	if err != nil {
		var te *TypeError
		if errors.As(err, &te) {
			d := te.Diagnostic()
			logger.Debug("type resolution failed", "code", d.Code, "at", d.Location(), "suggestions", d.Suggestions)
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.ConfigFile = path

	for _, w := range cfg.Warnings {
		logger.Warn(w.Message, "code", w.Code, "at", w.Location())
	}

	logger.Debug("resolved binding file",
		"objects", len(cfg.Objects),
		"edition", cfg.RustEdition.String(),
		"manifest", manifestPath)

	return cfg, nil
}
