package out

import (
	"context"
	"fmt"
	"os"

	catalogout "tonica/internal/modules/catalog/port/out"
)

// FileContentSource serves the base pack's content.json from disk.
type FileContentSource struct {
	path string
}

func NewFileContentSource(path string) catalogout.ContentSource {
	return &FileContentSource{path: path}
}

func (s *FileContentSource) Fetch(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", s.path, err)
	}
	return raw, nil
}
