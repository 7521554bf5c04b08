// Package output persists rendered report artefacts.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/goliatone/go-partyreport/pkg/splice"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Writer writes report files through an afero filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer backed by fs, defaulting to the OS filesystem.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// WriteHTML splices content into shell at splice.ContentMarker and writes the
// page to path, replacing any previous file. Nothing is written when the
// marker is missing.
func (w *Writer) WriteHTML(path, shell, content string) error {
	page, err := splice.Splice(shell, splice.ContentMarker, content)
	if err != nil {
		return fmt.Errorf("output: html shell: %w", err)
	}
	return w.WriteFile(path, []byte(page))
}

// WriteFile writes data to path, creating missing parent directories.
func (w *Writer) WriteFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output: path is required")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := w.fs.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("output: create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(w.fs, path, data, os.FileMode(fileMode)); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}
