package domain_test

import (
	"errors"
	"strings"
	"testing"

	"tonica/internal/modules/catalog/domain"
	apperrors "tonica/internal/platform/errors"
)

func TestValidateBatchRejectsNonArray(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `{"id":"x"}`))
	if report.OK || len(report.Errors) != 1 {
		t.Fatalf("non-array payload should short-circuit with one error, got %+v", report)
	}
}

func TestValidateBatchHappyPath(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `[
		{"id":"t1","type":"track","title":"Base","lessonIds":["l1"]},
		{"id":"l1","type":"lesson","title":"Posture"},
		{"id":"m1","type":"mission","title":"Warmup","xp":10},
		{"id":"a1","type":"library","title":"Reading"}
	]`))
	if !report.OK || len(report.Errors) != 0 {
		t.Fatalf("valid batch should pass, got %+v", report)
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("no warnings expected, got %v", report.Warnings)
	}
}

func TestValidateBatchRequiredFields(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `[{"type":"lesson"},{"id":"x","title":"T"},{"id":"y","type":"alien","title":"T"}]`))
	if report.OK {
		t.Fatalf("missing fields should fail validation")
	}
	joined := strings.Join(report.Errors, "\n")
	for _, want := range []string{
		`item #1: missing "id"`,
		`item #1: missing "title"`,
		`item #2: missing "type"`,
		`item #3: invalid "type" (alien)`,
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected error %q in:\n%s", want, joined)
		}
	}
}

func TestValidateBatchDuplicateIDs(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `[
		{"id":"a","type":"lesson","title":"One"},
		{"id":"a","type":"lesson","title":"Two"},
		{"id":"a","type":"lesson","title":"Three"}
	]`))
	if report.OK {
		t.Fatalf("duplicates should fail validation")
	}
	count := 0
	for _, e := range report.Errors {
		if strings.Contains(e, "duplicate id in batch (a)") {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected one duplicate error per occurrence after the first, got %d in %v", count, report.Errors)
	}
}

func TestValidateBatchTrackLessonIDsType(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `[{"id":"t1","type":"track","title":"T","lessonIds":{"bad":true}}]`))
	if report.OK {
		t.Fatalf("non-array lessonIds should be an error")
	}
	if !strings.Contains(strings.Join(report.Errors, "\n"), `track t1: "lessonIds" must be an array`) {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
}

func TestValidateBatchMissionXPWarning(t *testing.T) {
	t.Parallel()
	report := domain.ValidateBatch(decode(t, `[{"id":"m1","type":"mission","title":"M"}]`))
	if !report.OK {
		t.Fatalf("zero-xp mission should not block: %+v", report)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "mission m1") {
		t.Fatalf("expected a single xp warning, got %v", report.Warnings)
	}
}

func TestParseBatchMalformed(t *testing.T) {
	t.Parallel()
	if _, err := domain.ParseBatch([]byte("not json")); !errors.Is(err, apperrors.ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
	batch, err := domain.ParseBatch([]byte(`[]`))
	if err != nil {
		t.Fatalf("parse empty array: %v", err)
	}
	if _, ok := batch.([]any); !ok {
		t.Fatalf("expected decoded array, got %T", batch)
	}
}
