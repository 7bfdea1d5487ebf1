package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ExportError signals that a rendered report could not be handed over to its
// destination. The report content itself was built successfully.
type ExportError struct {
	Filename string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("could not export report %s: %v", e.Filename, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter delivers a rendered report to its destination and returns a
// locator for the delivered artifact.
type Exporter interface {
	Export(ctx context.Context, filename string, content string) (string, error)
}

// FileExporter writes reports into a directory on the local filesystem.
type FileExporter struct {
	dir string
}

func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

func (e *FileExporter) Export(_ context.Context, filename string, content string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Error(err)
		return "", &ExportError{Filename: filename, Err: err}
	}
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Error(err)
		return "", &ExportError{Filename: filename, Err: err}
	}
	return path, nil
}
