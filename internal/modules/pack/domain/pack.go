package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrPackDisabled     = errors.New("pack is disabled")
	ErrChecksumMismatch = errors.New("pack checksum mismatch")
	ErrPackTimeout      = errors.New("pack timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed content pack. SHA256 is optional; when
// present the binary is verified before every run.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Binary  string `yaml:"binary"`
	SHA256  string `yaml:"sha256"`
	Enabled bool   `yaml:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("pack name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("pack version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("pack binary path is required")
	}
	if m.SHA256 != "" && !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("pack sha256 must be lowercase 64-char hex")
	}
	return nil
}

// Metadata is what a running pack reports about itself.
type Metadata struct {
	Name      string
	Version   string
	ItemCount int
}
