package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tonica/internal/modules/catalog/domain"
	catalogout "tonica/internal/modules/catalog/port/out"
	apperrors "tonica/internal/platform/errors"
)

// ImportReport is the full outcome of an import attempt. A validation failure
// is a business outcome, not an error: Inserted stays zero and the catalog is
// untouched.
type ImportReport struct {
	Validation domain.Report
	Merge      domain.MergeReport
}

// CatalogService owns the live index. The TUI shell issues commands from
// goroutines, so every entry point takes the lock.
type CatalogService struct {
	mu        sync.RWMutex
	source    catalogout.ContentSource
	projector catalogout.IndexProjector
	idx       *domain.Index
}

func NewCatalogService(source catalogout.ContentSource, projector catalogout.IndexProjector) *CatalogService {
	return &CatalogService{source: source, projector: projector, idx: domain.NewIndex()}
}

// Load replaces the catalog from the content source. All-or-nothing: any
// failure along fetch, decode or validate leaves the catalog empty and
// reports ErrContentUnavailable wrapping the cause.
func (s *CatalogService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.idx.SetItems(nil)
		return fmt.Errorf("%w: %v", apperrors.ErrContentUnavailable, err)
	}
	batch, err := domain.ParseBatch(raw)
	if err != nil {
		s.idx.SetItems(nil)
		return fmt.Errorf("%w: %v", apperrors.ErrContentUnavailable, err)
	}
	report := domain.ValidateBatch(batch)
	if !report.OK {
		s.idx.SetItems(nil)
		return fmt.Errorf("%w: %s", apperrors.ErrContentUnavailable, strings.Join(report.Errors, "; "))
	}

	s.idx.SetItems(domain.NormalizeBatch(batch))
	return s.project(ctx)
}

// ValidateText checks import text without touching the catalog. Malformed
// JSON is an error; rule failures come back in the report.
func (s *CatalogService) ValidateText(_ context.Context, text []byte) (domain.Report, error) {
	batch, err := domain.ParseBatch(text)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.ValidateBatch(batch), nil
}

// ImportText validates and merges import text into the live catalog. The
// read model is re-projected once after the merge.
func (s *CatalogService) ImportText(ctx context.Context, text []byte) (ImportReport, error) {
	batch, err := domain.ParseBatch(text)
	if err != nil {
		return ImportReport{}, err
	}
	report := domain.ValidateBatch(batch)
	if !report.OK {
		return ImportReport{Validation: report}, nil
	}
	return s.ImportItems(ctx, domain.NormalizeBatch(batch), report)
}

// ImportItems merges an already-validated batch.
func (s *CatalogService) ImportItems(ctx context.Context, items []domain.Item, validation domain.Report) (ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merge := domain.Merge(s.idx, items)
	if err := s.project(ctx); err != nil {
		return ImportReport{}, err
	}
	return ImportReport{Validation: validation, Merge: merge}, nil
}

// Snapshot copies the per-type listings so callers can iterate without
// holding the lock.
func (s *CatalogService) Snapshot(_ context.Context) (tracks, lessons, missions, library []domain.Item) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.idx.Tracks), copyItems(s.idx.Lessons), copyItems(s.idx.Missions), copyItems(s.idx.Library)
}

func (s *CatalogService) ItemByID(_ context.Context, id string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.idx.ByID(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("item %s: %w", id, apperrors.ErrNotFound)
	}
	return item, nil
}

func (s *CatalogService) Has(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Has(id)
}

// Reindex rebuilds the read model from the live items.
func (s *CatalogService) Reindex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project(ctx)
}

func (s *CatalogService) project(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return fmt.Errorf("reset index projection: %w", err)
	}
	for _, item := range s.idx.Items {
		if err := s.projector.UpsertItem(ctx, item); err != nil {
			return fmt.Errorf("project item %s: %w", item.ID, err)
		}
	}
	return nil
}

func copyItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
