package domain_test

import (
	"testing"

	"tonica/internal/modules/catalog/domain"
)

func TestMergeIsAdditiveAndIdempotent(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex()
	batch := []domain.Item{lesson("a", "A"), lesson("b", "B")}

	first := domain.Merge(idx, batch)
	if first.Inserted != 2 || first.Ignored != 0 {
		t.Fatalf("first merge should insert all, got %+v", first)
	}
	second := domain.Merge(idx, batch)
	if second.Inserted != 0 || second.Ignored != 2 {
		t.Fatalf("retried merge should skip all, got %+v", second)
	}
	if idx.Len() != 2 {
		t.Fatalf("catalog must be unchanged after retry, got %d items", idx.Len())
	}
}

func TestMergeNeverOverwrites(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex()
	domain.Merge(idx, []domain.Item{lesson("a", "Original")})
	domain.Merge(idx, []domain.Item{lesson("a", "Impostor")})

	got, _ := idx.ByID("a")
	if got.Title != "Original" {
		t.Fatalf("existing item must win, got %q", got.Title)
	}
}

func TestMergeSingleLessonScenario(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex()
	batch := []domain.Item{lesson("a", "A")}

	report := domain.Merge(idx, batch)
	if report.Inserted != 1 || report.Ignored != 0 || len(report.MissingRefs) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	report = domain.Merge(idx, batch)
	if report.Inserted != 0 || report.Ignored != 1 {
		t.Fatalf("unexpected retry report: %+v", report)
	}
}

func TestMergeReportsMissingRefs(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex()
	report := domain.Merge(idx, []domain.Item{track("t1", "T", nil, "missing1")})

	if report.Inserted != 1 {
		t.Fatalf("track should insert, got %+v", report)
	}
	if len(report.MissingRefs) != 1 || report.MissingRefs[0].TrackID != "t1" || report.MissingRefs[0].LessonID != "missing1" {
		t.Fatalf("unexpected missing refs: %v", report.MissingRefs)
	}
}

func TestMergeResolvesRefsAcrossBatches(t *testing.T) {
	t.Parallel()
	idx := domain.NewIndex()
	domain.Merge(idx, []domain.Item{track("t1", "T", nil, "l1")})

	report := domain.Merge(idx, []domain.Item{lesson("l1", "Arrived")})
	if len(report.MissingRefs) != 0 {
		t.Fatalf("incremental import should clear the missing ref, got %v", report.MissingRefs)
	}
}
