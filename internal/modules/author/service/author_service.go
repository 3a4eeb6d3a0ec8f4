package service

import (
	"context"
	"fmt"
	"sync"

	"tonica/internal/modules/author/domain"
	authorout "tonica/internal/modules/author/port/out"
	catalogdomain "tonica/internal/modules/catalog/domain"
	"tonica/internal/platform/id"
)

// AddReport is the outcome of a staging attempt. A rejected item is a
// business outcome with reasons, not an error.
type AddReport struct {
	OK      bool
	Reasons []string
	Item    catalogdomain.Item
}

// AuthorService owns the staging buffer. Staged items never reach the
// catalog on their own; export plus the import pipeline is the only path.
type AuthorService struct {
	store   authorout.BufferStore
	catalog authorout.CatalogLookup
	idGen   id.Generator

	mu     sync.Mutex
	loaded bool
	items  []catalogdomain.Item
}

func NewAuthorService(store authorout.BufferStore, catalog authorout.CatalogLookup, idGen id.Generator) *AuthorService {
	return &AuthorService{store: store, catalog: catalog, idGen: idGen}
}

func (s *AuthorService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	raw, ok, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load author buffer: %w", err)
	}
	if !ok {
		s.items = []catalogdomain.Item{}
	} else {
		s.items = domain.DecodeBuffer(raw)
	}
	s.loaded = true
	return nil
}

func (s *AuthorService) persist(ctx context.Context) error {
	payload, err := domain.EncodeBuffer(s.items)
	if err != nil {
		return fmt.Errorf("encode author buffer: %w", err)
	}
	if err := s.store.Save(ctx, payload); err != nil {
		return fmt.Errorf("persist author buffer: %w", err)
	}
	return nil
}

// Add stages one item. The text must decode to a single JSON object; the
// item then runs through the same validation the import pipeline uses, plus
// an id-collision check against both the catalog and the buffer.
func (s *AuthorService) Add(ctx context.Context, text []byte) (AddReport, error) {
	raw, err := catalogdomain.ParseBatch(text)
	if err != nil {
		return AddReport{}, err
	}
	if _, isObject := raw.(map[string]any); !isObject {
		return AddReport{Reasons: []string{"the item must be a single JSON object"}}, nil
	}

	report := catalogdomain.ValidateBatch([]any{raw})
	if !report.OK {
		return AddReport{Reasons: report.Errors}, nil
	}
	item := catalogdomain.Normalize(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return AddReport{}, err
	}

	inCatalog, err := s.catalog.Has(ctx, item.ID)
	if err != nil {
		return AddReport{}, err
	}
	if inCatalog {
		return AddReport{Reasons: []string{fmt.Sprintf("id %s already exists in the catalog", item.ID)}}, nil
	}
	if domain.HasID(s.items, item.ID) {
		return AddReport{Reasons: []string{fmt.Sprintf("id %s is already staged", item.ID)}}, nil
	}

	s.items = append(s.items, item)
	if err := s.persist(ctx); err != nil {
		return AddReport{}, err
	}
	return AddReport{OK: true, Item: item}, nil
}

func (s *AuthorService) List(ctx context.Context) ([]catalogdomain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	out := make([]catalogdomain.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *AuthorService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []catalogdomain.Item{}
	s.loaded = true
	return s.persist(ctx)
}

// ExportText is read-only; the buffer survives the export.
func (s *AuthorService) ExportText(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return domain.EncodeBuffer(s.items)
}

// SuggestID builds an id in the authoring scheme: type prefix, category
// shard, random hex tail.
func (s *AuthorService) SuggestID(itemType catalogdomain.ItemType, category string) string {
	prefix := map[catalogdomain.ItemType]string{
		catalogdomain.ItemTypeTrack:   "trk",
		catalogdomain.ItemTypeLesson:  "les",
		catalogdomain.ItemTypeLibrary: "lib",
		catalogdomain.ItemTypeMission: "mis",
	}[itemType]
	if prefix == "" {
		prefix = "itm"
	}
	shard := "base"
	switch category {
	case "Popular":
		shard = "pop"
	case "Erudito":
		shard = "eru"
	}
	return fmt.Sprintf("%s-%s-%s", prefix, shard, s.idGen.New())
}
