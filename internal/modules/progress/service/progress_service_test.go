package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tonica/internal/modules/progress/domain"
	"tonica/internal/modules/progress/service"
	"tonica/internal/platform/clock"
	apperrors "tonica/internal/platform/errors"
)

type fakeRecordStore struct {
	records map[string][]byte
	sets    int
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{records: map[string][]byte{}}
}

func (f *fakeRecordStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := f.records[key]
	return raw, ok, nil
}

func (f *fakeRecordStore) Set(_ context.Context, key string, value []byte) error {
	f.records[key] = value
	f.sets++
	return nil
}

func fixedClock(day string) clock.FixedClock {
	t, _ := time.ParseInLocation("2006-01-02", day, time.Local)
	return clock.FixedClock{T: t}
}

func TestEveryMutationPersists(t *testing.T) {
	t.Parallel()
	store := newFakeRecordStore()
	svc := service.NewProgressService(fixedClock("2026-08-30"), store)
	ctx := context.Background()

	if err := svc.SetLessonDone(ctx, "l1", true); err != nil {
		t.Fatalf("set lesson done: %v", err)
	}
	if _, err := svc.GrantXP(ctx, 20); err != nil {
		t.Fatalf("grant xp: %v", err)
	}
	if err := svc.SetChecklistItem(ctx, "l1", 0, true); err != nil {
		t.Fatalf("set checklist: %v", err)
	}
	if err := svc.MarkMissionDoneToday(ctx, "m1"); err != nil {
		t.Fatalf("mark mission: %v", err)
	}
	if store.sets != 4 {
		t.Fatalf("each mutation must write through, got %d writes", store.sets)
	}

	var stored domain.Progress
	if err := json.Unmarshal(store.records["progress"], &stored); err != nil {
		t.Fatalf("decode stored record: %v", err)
	}
	if !stored.LessonDone["l1"] || stored.XP != 20 || !stored.MissionDoneByDay["2026-08-30"]["m1"] {
		t.Fatalf("stored record lags the state: %+v", stored)
	}
}

func TestLoadsExistingRecordOnce(t *testing.T) {
	t.Parallel()
	store := newFakeRecordStore()
	store.records["progress"] = []byte(`{"profileName":"Ana","goal":"Popular","xp":250,"lessonDone":{"l1":true}}`)
	svc := service.NewProgressService(fixedClock("2026-08-30"), store)

	state, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if state.ProfileName != "Ana" || state.Goal != domain.GoalPopular || state.XP != 250 || !state.LessonDone["l1"] {
		t.Fatalf("existing record must load: %+v", state)
	}
}

func TestGrantXPNeverDecreasesTotal(t *testing.T) {
	t.Parallel()
	svc := service.NewProgressService(fixedClock("2026-08-30"), newFakeRecordStore())
	if _, err := svc.GrantXP(context.Background(), 10); err != nil {
		t.Fatalf("grant: %v", err)
	}
	total, err := svc.GrantXP(context.Background(), -50)
	if err != nil {
		t.Fatalf("grant negative: %v", err)
	}
	if total != 10 {
		t.Fatalf("negative grant must leave the total alone: want 10, got %d", total)
	}
}

func TestMissionCompletionIsScopedToTheDay(t *testing.T) {
	t.Parallel()
	store := newFakeRecordStore()
	svc := service.NewProgressService(fixedClock("2026-08-30"), store)
	ctx := context.Background()

	if err := svc.MarkMissionDoneToday(ctx, "m1"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	done, err := svc.IsMissionDoneToday(ctx, "m1")
	if err != nil || !done {
		t.Fatalf("mission should be done today, got %v err=%v", done, err)
	}

	// A new day, loading the same record.
	next := service.NewProgressService(fixedClock("2026-08-31"), store)
	done, err = next.IsMissionDoneToday(ctx, "m1")
	if err != nil || done {
		t.Fatalf("yesterday's completion must not leak, got %v err=%v", done, err)
	}
	ever, err := next.WasMissionEverDone(ctx, "m1")
	if err != nil || !ever {
		t.Fatalf("any-day completion should report, got %v err=%v", ever, err)
	}
}

func TestSetGoalValidatesEnum(t *testing.T) {
	t.Parallel()
	svc := service.NewProgressService(fixedClock("2026-08-30"), newFakeRecordStore())
	if err := svc.SetGoal(context.Background(), "Jazz"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.SetGoal(context.Background(), domain.GoalErudito); err != nil {
		t.Fatalf("valid goal: %v", err)
	}
}

func TestSetProfileNameTrimsAndCaps(t *testing.T) {
	t.Parallel()
	svc := service.NewProgressService(fixedClock("2026-08-30"), newFakeRecordStore())
	ctx := context.Background()

	if err := svc.SetProfileName(ctx, "   "); err != nil {
		t.Fatalf("set blank name: %v", err)
	}
	state, _ := svc.Snapshot(ctx)
	if state.ProfileName != domain.DefaultProfileName {
		t.Fatalf("blank name should fall back to default, got %q", state.ProfileName)
	}

	long := make([]rune, 0, 60)
	for i := 0; i < 60; i++ {
		long = append(long, 'ã')
	}
	if err := svc.SetProfileName(ctx, string(long)); err != nil {
		t.Fatalf("set long name: %v", err)
	}
	state, _ = svc.Snapshot(ctx)
	if got := len([]rune(state.ProfileName)); got != 40 {
		t.Fatalf("name should cap at 40 runes, got %d", got)
	}
}

func TestResetAllWipesState(t *testing.T) {
	t.Parallel()
	store := newFakeRecordStore()
	svc := service.NewProgressService(fixedClock("2026-08-30"), store)
	ctx := context.Background()

	if _, err := svc.GrantXP(ctx, 500); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := svc.SetLessonDone(ctx, "l1", true); err != nil {
		t.Fatalf("set done: %v", err)
	}
	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	state, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if state.XP != 0 || len(state.LessonDone) != 0 || state.ProfileName != domain.DefaultProfileName {
		t.Fatalf("reset must restore defaults: %+v", state)
	}

	reloaded := service.NewProgressService(fixedClock("2026-08-30"), store)
	state, err = reloaded.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot after reload: %v", err)
	}
	if state.XP != 0 || len(state.LessonDone) != 0 {
		t.Fatalf("reset must persist: %+v", state)
	}
}
