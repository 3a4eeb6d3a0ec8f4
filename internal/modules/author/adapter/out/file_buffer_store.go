package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	authorout "tonica/internal/modules/author/port/out"
)

// FileBufferStore keeps the staging buffer as its own JSON document in the
// data dir, independent from the progress record.
type FileBufferStore struct {
	path string
}

func NewFileBufferStore(dataDir string) authorout.BufferStore {
	return &FileBufferStore{path: filepath.Join(dataDir, "author-buffer.json")}
}

func (s *FileBufferStore) Load(_ context.Context) ([]byte, bool, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read author buffer: %w", err)
	}
	return payload, true, nil
}

func (s *FileBufferStore) Save(_ context.Context, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write author buffer: %w", err)
	}
	return nil
}
