package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"qt-binding-generator/internal/ctxlog"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every file whose content changed. Unchanged files keep
// their modification time so build tools do not rebuild them.
func WriteFiles(ctx context.Context, files []GeneratedFile) error {
	logger := ctxlog.FromContext(ctx)

	for _, file := range files {
		old, err := os.ReadFile(file.Path)

		switch {
		case err == nil && file.WriteOnce:
			logger.Debug("Skipping existing file.", "path", file.Path)

			continue
		case err == nil && bytes.Equal(old, file.Content):
			logger.Debug("File is up to date.", "path", file.Path)

			continue
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("reading file %s: %w", file.Path, err)
		}

		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		logger.Debug("Wrote file.", "path", file.Path, "bytes", len(file.Content))
	}

	return nil
}
