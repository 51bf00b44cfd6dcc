// Package atomicfile replaces files through a temporary sibling so a failed
// or interrupted write never truncates the previous version.
package atomicfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Write creates path's directory if needed, streams fn's output into a
// temporary file next to path and renames it over path once fn succeeds.
// If fn or the sync fails, path is left untouched.
func Write(path string, perm os.FileMode, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(perm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer func() { _ = pf.Cleanup() }()

	if err := fn(pf); err != nil {
		return err
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
