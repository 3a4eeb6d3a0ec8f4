package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"tonica/internal/modules/catalog/domain"
)

func decode(t *testing.T, text string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func TestNormalizeCoercesCommonFields(t *testing.T) {
	t.Parallel()
	raw := decode(t, `{"id":"  les1 ","type":"lesson","title":" Scales ","subtitle":7,"tags":["a",2,true],"version":"3","xp":"25"}`)
	item := domain.Normalize(raw)

	if item.ID != "les1" || item.Type != domain.ItemTypeLesson || item.Title != "Scales" {
		t.Fatalf("unexpected identity fields: %+v", item)
	}
	if item.Subtitle != "7" {
		t.Fatalf("subtitle should stringify numbers, got %q", item.Subtitle)
	}
	if len(item.Tags) != 3 || item.Tags[1] != "2" || item.Tags[2] != "true" {
		t.Fatalf("tags should stringify elements, got %v", item.Tags)
	}
	if item.Version == nil || *item.Version != 3 {
		t.Fatalf("version should coerce from string, got %v", item.Version)
	}
	if item.XP == nil || *item.XP != 25 {
		t.Fatalf("lesson xp should coerce from string, got %v", item.XP)
	}
}

func TestNormalizeNeverFails(t *testing.T) {
	t.Parallel()
	for _, raw := range []any{nil, "garbage", 42.0, []any{"nested"}, map[string]any{}} {
		item := domain.Normalize(raw)
		if item.ID != "" || item.Type != "" {
			t.Fatalf("garbage input should yield an empty item, got %+v", item)
		}
	}
}

func TestNormalizeArrayFieldsAlwaysArrays(t *testing.T) {
	t.Parallel()
	raw := decode(t, `{"id":"t1","type":"track","title":"T","lessonIds":"not-an-array"}`)
	item := domain.Normalize(raw)
	if item.LessonIDs == nil || len(item.LessonIDs) != 0 {
		t.Fatalf("non-array lessonIds should coerce to empty array, got %v", item.LessonIDs)
	}

	raw = decode(t, `{"id":"l1","type":"lesson","title":"L","checklist":{"a":1}}`)
	item = domain.Normalize(raw)
	if item.Checklist == nil || len(item.Checklist) != 0 {
		t.Fatalf("non-array checklist should coerce to empty array, got %v", item.Checklist)
	}
}

func TestNormalizeMissionDefaults(t *testing.T) {
	t.Parallel()
	raw := decode(t, `{"id":"m1","type":"mission","title":"Warmup"}`)
	item := domain.Normalize(raw)
	if item.MissionXP() != 0 {
		t.Fatalf("mission without xp should default to 0, got %d", item.MissionXP())
	}
	if item.Repeat != domain.RepeatDaily {
		t.Fatalf("mission without repeat should default to daily, got %q", item.Repeat)
	}

	raw = decode(t, `{"id":"m2","type":"mission","title":"Etude","xp":"oops","repeat":"once"}`)
	item = domain.Normalize(raw)
	if item.MissionXP() != 0 {
		t.Fatalf("non-numeric mission xp should default to 0, got %d", item.MissionXP())
	}
	if item.Repeat != domain.RepeatOnce {
		t.Fatalf("explicit repeat should survive, got %q", item.Repeat)
	}
}

func TestNormalizeDropsUnknownFields(t *testing.T) {
	t.Parallel()
	raw := decode(t, `{"id":"l1","type":"library","title":"Reading","mystery":"gone","readingMinutes":12}`)
	item := domain.Normalize(raw)

	out, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "mystery") {
		t.Fatalf("unknown fields should be dropped, got %s", out)
	}
	if item.ReadingMinutes == nil || *item.ReadingMinutes != 12 {
		t.Fatalf("readingMinutes should survive, got %v", item.ReadingMinutes)
	}
}

func TestItemMarshalTrackKeepsEmptyLessonIDs(t *testing.T) {
	t.Parallel()
	item := domain.Normalize(decode(t, `{"id":"t1","type":"track","title":"T"}`))
	out, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"lessonIds":[]`) {
		t.Fatalf("track export must carry lessonIds even when empty, got %s", out)
	}
}

func TestLessonXPDefault(t *testing.T) {
	t.Parallel()
	item := domain.Normalize(decode(t, `{"id":"l1","type":"lesson","title":"L"}`))
	if item.LessonXP() != domain.DefaultLessonXP {
		t.Fatalf("lesson without xp should award the default, got %d", item.LessonXP())
	}
}
