package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tonica/internal/modules/pack/domain"
	packout "tonica/internal/modules/pack/port/out"
)

// YAMLManifestStore reads packs.yaml. Relative binary paths resolve against
// the file's directory so a data dir can be moved wholesale.
type YAMLManifestStore struct {
	path string
}

func NewYAMLManifestStore(path string) packout.ManifestStore {
	return &YAMLManifestStore{path: path}
}

type manifestFile struct {
	Packs []domain.Manifest `yaml:"packs"`
}

func (s *YAMLManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read pack manifests: %w", err)
	}
	var file manifestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode pack manifests: %w", err)
	}
	base := filepath.Dir(s.path)
	for i := range file.Packs {
		if file.Packs[i].Binary != "" && !filepath.IsAbs(file.Packs[i].Binary) {
			file.Packs[i].Binary = filepath.Clean(filepath.Join(base, file.Packs[i].Binary))
		}
	}
	if file.Packs == nil {
		file.Packs = []domain.Manifest{}
	}
	return file.Packs, nil
}
