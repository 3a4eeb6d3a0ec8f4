package usecase_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	catalogout "tonica/internal/modules/catalog/adapter/out"
	"tonica/internal/modules/catalog/service"
	"tonica/internal/modules/catalog/usecase"

	_ "modernc.org/sqlite"
)

func TestLoadImportAndReindex(t *testing.T) {
	t.Parallel()
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, "tonica.db")
	contentPath := filepath.Join(dataDir, "content.json")
	content := `[
		{"id":"t1","type":"track","title":"Fundamentos","order":1,"lessonIds":["l1"]},
		{"id":"l1","type":"lesson","title":"Postura","xp":15},
		{"id":"m1","type":"mission","title":"Aquecimento","xp":5,"repeat":"daily"}
	]`
	if err := os.WriteFile(contentPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write content file: %v", err)
	}

	projector, err := catalogout.NewSQLiteItemProjector(dbPath)
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	uc := usecase.NewInteractor(service.NewCatalogService(catalogout.NewFileContentSource(contentPath), projector))

	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	snapshot, err := uc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snapshot.Tracks) != 1 || len(snapshot.Lessons) != 1 || len(snapshot.Missions) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
	if snapshot.Lessons[0].XP != 15 {
		t.Fatalf("lesson xp should surface in the view model, got %d", snapshot.Lessons[0].XP)
	}

	out, err := uc.ImportText(context.Background(), []byte(`[{"id":"l2","type":"lesson","title":"Escalas"}]`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !out.OK || out.Inserted != 1 || out.Ignored != 0 {
		t.Fatalf("unexpected import output: %+v", out)
	}

	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected four projected items, got %d", count)
	}

	var xp int
	if err := db.QueryRow(`SELECT xp FROM items WHERE id = 'l1'`).Scan(&xp); err != nil {
		t.Fatalf("query lesson xp: %v", err)
	}
	if xp != 15 {
		t.Fatalf("expected projected xp 15, got %d", xp)
	}
}
