package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tonica/internal/modules/author/service"
	"tonica/internal/platform/id"
	apperrors "tonica/internal/platform/errors"

	catalogdomain "tonica/internal/modules/catalog/domain"
)

type fakeBufferStore struct {
	payload []byte
	stored  bool
	saves   int
}

func (f *fakeBufferStore) Load(context.Context) ([]byte, bool, error) {
	return f.payload, f.stored, nil
}

func (f *fakeBufferStore) Save(_ context.Context, payload []byte) error {
	f.payload = payload
	f.stored = true
	f.saves++
	return nil
}

type fakeCatalogLookup struct {
	ids map[string]bool
}

func (f *fakeCatalogLookup) Has(_ context.Context, id string) (bool, error) {
	return f.ids[id], nil
}

func newService(store *fakeBufferStore, catalogIDs ...string) *service.AuthorService {
	ids := map[string]bool{}
	for _, id := range catalogIDs {
		ids[id] = true
	}
	return service.NewAuthorService(store, &fakeCatalogLookup{ids: ids}, id.ShortHex{})
}

func TestAddStagesAndPersists(t *testing.T) {
	t.Parallel()
	store := &fakeBufferStore{}
	svc := newService(store)

	report, err := svc.Add(context.Background(), []byte(`{"id":"les-base-0001","type":"lesson","title":"Postura"}`))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !report.OK || report.Item.ID != "les-base-0001" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if store.saves != 1 {
		t.Fatalf("add must persist, got %d saves", store.saves)
	}
	if !strings.Contains(string(store.payload), "les-base-0001") {
		t.Fatalf("stored buffer should carry the item: %s", store.payload)
	}
}

func TestAddRejectsInvalidItems(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeBufferStore{})

	report, err := svc.Add(context.Background(), []byte(`{"type":"lesson","title":"No id"}`))
	if err != nil {
		t.Fatalf("invalid item is a business outcome: %v", err)
	}
	if report.OK || len(report.Reasons) == 0 {
		t.Fatalf("expected rejection with reasons, got %+v", report)
	}

	report, err = svc.Add(context.Background(), []byte(`[{"id":"x"}]`))
	if err != nil {
		t.Fatalf("array payload is a business outcome: %v", err)
	}
	if report.OK {
		t.Fatalf("arrays must be rejected, got %+v", report)
	}
}

func TestAddMalformedIsAnError(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeBufferStore{})
	if _, err := svc.Add(context.Background(), []byte("{{")); !errors.Is(err, apperrors.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestAddRejectsCollisions(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeBufferStore{}, "l1")
	ctx := context.Background()

	report, err := svc.Add(ctx, []byte(`{"id":"l1","type":"lesson","title":"Clash"}`))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if report.OK || !strings.Contains(report.Reasons[0], "already exists in the catalog") {
		t.Fatalf("catalog collision should be reported, got %+v", report)
	}

	if _, err := svc.Add(ctx, []byte(`{"id":"l2","type":"lesson","title":"New"}`)); err != nil {
		t.Fatalf("add fresh item: %v", err)
	}
	report, err = svc.Add(ctx, []byte(`{"id":"l2","type":"lesson","title":"Again"}`))
	if err != nil {
		t.Fatalf("add duplicate: %v", err)
	}
	if report.OK || !strings.Contains(report.Reasons[0], "already staged") {
		t.Fatalf("buffer collision should be reported, got %+v", report)
	}
}

func TestCorruptBufferLoadsEmpty(t *testing.T) {
	t.Parallel()
	store := &fakeBufferStore{payload: []byte("not a buffer"), stored: true}
	svc := newService(store)

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("corrupt buffer must load empty, got %+v", items)
	}
}

func TestClearAndExport(t *testing.T) {
	t.Parallel()
	store := &fakeBufferStore{}
	svc := newService(store)
	ctx := context.Background()

	if _, err := svc.Add(ctx, []byte(`{"id":"m1","type":"mission","title":"Aquecimento","xp":5}`)); err != nil {
		t.Fatalf("add: %v", err)
	}
	text, err := svc.ExportText(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(text), "\n") || !strings.Contains(string(text), `"m1"`) {
		t.Fatalf("export should be pretty-printed JSON: %s", text)
	}

	items, _ := svc.List(ctx)
	if len(items) != 1 {
		t.Fatalf("export must not drain the buffer, got %d items", len(items))
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ = svc.List(ctx)
	if len(items) != 0 {
		t.Fatalf("clear should empty the buffer, got %d items", len(items))
	}
	if !strings.Contains(string(store.payload), "[]") {
		t.Fatalf("cleared buffer must persist as an empty array: %s", store.payload)
	}
}

func TestSuggestIDScheme(t *testing.T) {
	t.Parallel()
	svc := newService(&fakeBufferStore{})

	id := svc.SuggestID(catalogdomain.ItemTypeLesson, "Popular")
	if !strings.HasPrefix(id, "les-pop-") || len(id) != len("les-pop-")+4 {
		t.Fatalf("unexpected id %q", id)
	}
	id = svc.SuggestID(catalogdomain.ItemTypeMission, "")
	if !strings.HasPrefix(id, "mis-base-") {
		t.Fatalf("unexpected id %q", id)
	}
	id = svc.SuggestID(catalogdomain.ItemTypeTrack, "Erudito")
	if !strings.HasPrefix(id, "trk-eru-") {
		t.Fatalf("unexpected id %q", id)
	}
}
