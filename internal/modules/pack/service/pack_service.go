package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"tonica/internal/modules/pack/domain"
	"tonica/internal/modules/pack/dto"
	packout "tonica/internal/modules/pack/port/out"
)

// PackService validates manifests and talks to pack binaries. Fetches pass
// through a rate limiter so a misbehaving caller cannot hammer a pack
// binary with spawn-and-fetch cycles.
type PackService struct {
	store   packout.ManifestStore
	host    packout.Host
	limiter *rate.Limiter
}

func NewPackService(store packout.ManifestStore, host packout.Host, limiter *rate.Limiter) *PackService {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &PackService{store: store, host: host, limiter: limiter}
}

func (s *PackService) List(ctx context.Context) ([]dto.PackInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PackInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.PackInfo{Name: m.Name, Version: m.Version, Binary: m.Binary, Enabled: m.Enabled})
	}
	return out, nil
}

// Check probes every manifest without pulling content: manifest shape,
// binary presence, checksum when declared, then a lifecycle round trip for
// enabled packs.
func (s *PackService) Check(ctx context.Context) ([]dto.CheckResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.CheckResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.CheckResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.BinaryReachable = fileExists(m.Binary)
		if !result.BinaryReachable {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
			results = append(results, result)
			continue
		}
		result.ChecksumValid = checksumMatches(m.Binary, m.SHA256) == nil
		if !result.ChecksumValid {
			result.Error = "checksum mismatch"
			results = append(results, result)
			continue
		}
		if m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *PackService) Metadata(ctx context.Context, packName string) (domain.Metadata, error) {
	manifest, err := s.getRunnableManifest(ctx, packName)
	if err != nil {
		return domain.Metadata{}, err
	}
	return s.host.GetMetadata(ctx, manifest)
}

// Fetch pulls the raw item batch from a pack. The payload is untrusted
// until the import pipeline validates it.
func (s *PackService) Fetch(ctx context.Context, packName string) ([]byte, error) {
	manifest, err := s.getRunnableManifest(ctx, packName)
	if err != nil {
		return nil, err
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return s.host.FetchItems(ctx, manifest)
}

func (s *PackService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate pack name: %s", manifest.Name)
		}
		seen[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *PackService) getRunnableManifest(ctx context.Context, packName string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, manifest := range manifests {
		if manifest.Name != packName {
			continue
		}
		if !manifest.Enabled {
			return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPackDisabled, packName)
		}
		if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			return domain.Manifest{}, err
		}
		if s.host != nil {
			if err := s.host.CheckLifecycle(ctx, manifest); err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrPackTimeout, packName)
				}
				return domain.Manifest{}, err
			}
		}
		return manifest, nil
	}
	return domain.Manifest{}, fmt.Errorf("pack %q not found", packName)
}

func checksumMatches(path, expected string) error {
	if expected == "" {
		return nil
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pack binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
