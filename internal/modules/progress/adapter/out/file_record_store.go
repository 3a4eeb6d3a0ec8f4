package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	progressout "tonica/internal/modules/progress/port/out"
)

// FileRecordStore keeps one JSON file per key in the data dir. Keys become
// file names, so callers must stick to plain slugs.
type FileRecordStore struct {
	dir string
}

func NewFileRecordStore(dataDir string) progressout.RecordStore {
	return &FileRecordStore{dir: dataDir}
}

func (s *FileRecordStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	payload, err := os.ReadFile(s.recordPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read record %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *FileRecordStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.recordPath(key), value, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	return nil
}

func (s *FileRecordStore) recordPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}
