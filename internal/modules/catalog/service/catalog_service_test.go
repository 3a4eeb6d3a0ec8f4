package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tonica/internal/modules/catalog/domain"
	"tonica/internal/modules/catalog/service"
	apperrors "tonica/internal/platform/errors"
)

type fakeSource struct {
	payload []byte
	err     error
}

func (f *fakeSource) Fetch(context.Context) ([]byte, error) {
	return f.payload, f.err
}

type fakeProjector struct {
	resets  int
	upserts []string
	fail    bool
}

func (f *fakeProjector) Reset(context.Context) error {
	f.resets++
	f.upserts = nil
	if f.fail {
		return fmt.Errorf("projection down")
	}
	return nil
}

func (f *fakeProjector) UpsertItem(_ context.Context, item domain.Item) error {
	f.upserts = append(f.upserts, item.ID)
	return nil
}

const validContent = `[
	{"id":"t1","type":"track","title":"Base","lessonIds":["l1","l2"]},
	{"id":"l1","type":"lesson","title":"Posture","xp":10},
	{"id":"l2","type":"lesson","title":"Scales"},
	{"id":"m1","type":"mission","title":"Warmup","xp":5}
]`

func TestLoadProjectsCatalog(t *testing.T) {
	t.Parallel()
	projector := &fakeProjector{}
	svc := service.NewCatalogService(&fakeSource{payload: []byte(validContent)}, projector)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	tracks, lessons, missions, _ := svc.Snapshot(context.Background())
	if len(tracks) != 1 || len(lessons) != 2 || len(missions) != 1 {
		t.Fatalf("unexpected snapshot: %d tracks %d lessons %d missions", len(tracks), len(lessons), len(missions))
	}
	if projector.resets != 1 || len(projector.upserts) != 4 {
		t.Fatalf("projection not refreshed: %d resets, %v", projector.resets, projector.upserts)
	}
}

func TestLoadIsAllOrNothing(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		source *fakeSource
	}{
		{"fetch failure", &fakeSource{err: fmt.Errorf("disk gone")}},
		{"malformed payload", &fakeSource{payload: []byte("not json")}},
		{"invalid batch", &fakeSource{payload: []byte(`[{"type":"lesson"}]`)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := service.NewCatalogService(tc.source, &fakeProjector{})
			err := svc.Load(context.Background())
			if !errors.Is(err, apperrors.ErrContentUnavailable) {
				t.Fatalf("expected ErrContentUnavailable, got %v", err)
			}
			_, lessons, _, _ := svc.Snapshot(context.Background())
			if len(lessons) != 0 {
				t.Fatalf("catalog must stay empty after a failed load, got %d lessons", len(lessons))
			}
		})
	}
}

func TestImportTextMergesAndReports(t *testing.T) {
	t.Parallel()
	projector := &fakeProjector{}
	svc := service.NewCatalogService(&fakeSource{payload: []byte(validContent)}, projector)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	report, err := svc.ImportText(context.Background(), []byte(`[
		{"id":"l1","type":"lesson","title":"Impostor"},
		{"id":"l3","type":"lesson","title":"Arpeggios"}
	]`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Merge.Inserted != 1 || report.Merge.Ignored != 1 {
		t.Fatalf("unexpected merge report: %+v", report.Merge)
	}
	if item, err := svc.ItemByID(context.Background(), "l1"); err != nil || item.Title != "Posture" {
		t.Fatalf("existing item must survive import, got %+v err=%v", item, err)
	}
	if len(projector.upserts) != 5 {
		t.Fatalf("projection should carry the merged catalog, got %v", projector.upserts)
	}
}

func TestImportTextValidationFailureLeavesCatalogAlone(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(&fakeSource{payload: []byte(validContent)}, &fakeProjector{})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	report, err := svc.ImportText(context.Background(), []byte(`[{"type":"lesson","title":"No id"}]`))
	if err != nil {
		t.Fatalf("validation failure must not be an error: %v", err)
	}
	if report.Validation.OK || report.Merge.Inserted != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	_, lessons, _, _ := svc.Snapshot(context.Background())
	if len(lessons) != 2 {
		t.Fatalf("catalog must be untouched, got %d lessons", len(lessons))
	}
}

func TestImportTextMalformedIsAnError(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(&fakeSource{payload: []byte(validContent)}, &fakeProjector{})
	if _, err := svc.ImportText(context.Background(), []byte("{{{{")); !errors.Is(err, apperrors.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

func TestItemByIDNotFound(t *testing.T) {
	t.Parallel()
	svc := service.NewCatalogService(&fakeSource{payload: []byte(`[]`)}, &fakeProjector{})
	if _, err := svc.ItemByID(context.Background(), "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
