package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir     string
	ContentPath string
	DBPath      string
	PacksPath   string
}

// fileConfig is the optional tonica.yaml in the data dir.
type fileConfig struct {
	ContentPath string `yaml:"content_path"`
	PacksPath   string `yaml:"packs_path"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:     dataDir,
		ContentPath: filepath.Join(dataDir, "packs", "base", "content.json"),
		DBPath:      filepath.Join(dataDir, "tonica.db"),
		PacksPath:   filepath.Join(dataDir, "packs.yaml"),
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "tonica.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	overrides := fileConfig{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if overrides.ContentPath != "" {
		cfg.ContentPath = resolve(dataDir, overrides.ContentPath)
	}
	if overrides.PacksPath != "" {
		cfg.PacksPath = resolve(dataDir, overrides.PacksPath)
	}
	return cfg, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(base, path))
}
