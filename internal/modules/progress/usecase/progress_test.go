package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogdto "tonica/internal/modules/catalog/dto"
	progressout "tonica/internal/modules/progress/adapter/out"
	"tonica/internal/modules/progress/service"
	"tonica/internal/modules/progress/usecase"
	"tonica/internal/platform/clock"
	apperrors "tonica/internal/platform/errors"
)

type fakeCatalog struct {
	snapshot catalogdto.SnapshotOutput
}

func (f *fakeCatalog) Load(context.Context) error { return nil }

func (f *fakeCatalog) ValidateText(context.Context, []byte) (catalogdto.ValidationOutput, error) {
	return catalogdto.ValidationOutput{}, nil
}

func (f *fakeCatalog) ImportText(context.Context, []byte) (catalogdto.ImportOutput, error) {
	return catalogdto.ImportOutput{}, nil
}

func (f *fakeCatalog) Snapshot(context.Context) (catalogdto.SnapshotOutput, error) {
	return f.snapshot, nil
}

func (f *fakeCatalog) GetItem(_ context.Context, id string) (catalogdto.ItemOutput, error) {
	for _, items := range [][]catalogdto.ItemOutput{f.snapshot.Tracks, f.snapshot.Lessons, f.snapshot.Missions, f.snapshot.Library} {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return catalogdto.ItemOutput{}, apperrors.ErrNotFound
}

func (f *fakeCatalog) Reindex(context.Context) error { return nil }

func studyCatalog() *fakeCatalog {
	return &fakeCatalog{snapshot: catalogdto.SnapshotOutput{
		Tracks: []catalogdto.ItemOutput{
			{ID: "t1", Type: "track", Title: "Fundamentos", LessonIDs: []string{"l1", "l2"}},
		},
		Lessons: []catalogdto.ItemOutput{
			{ID: "l1", Type: "lesson", Title: "Postura", XP: 15},
			{ID: "l2", Type: "lesson", Title: "Escalas", XP: 20},
		},
		Missions: []catalogdto.ItemOutput{
			{ID: "m1", Type: "mission", Title: "Aquecimento", XP: 5, Repeat: "daily"},
			{ID: "m2", Type: "mission", Title: "Recital", XP: 50, Repeat: "once"},
		},
	}}
}

func TestCompleteLessonAwardsXPOnce(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(t.TempDir()))
	uc := usecase.NewInteractor(svc, studyCatalog())
	ctx := context.Background()

	out, err := uc.CompleteLesson(ctx, "l1")
	if err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if out.AlreadyDone || out.XPAwarded != 15 || out.TotalXP != 15 {
		t.Fatalf("unexpected completion: %+v", out)
	}

	out, err = uc.CompleteLesson(ctx, "l1")
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}
	if !out.AlreadyDone || out.XPAwarded != 0 || out.TotalXP != 15 {
		t.Fatalf("repeat completion must be a no-op: %+v", out)
	}
}

func TestCompleteLessonRejectsNonLessons(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(t.TempDir()))
	uc := usecase.NewInteractor(svc, studyCatalog())

	if _, err := uc.CompleteLesson(context.Background(), "m1"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.CompleteLesson(context.Background(), "ghost"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteMissionIdempotentPerDay(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	dataDir := t.TempDir()
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(dataDir))
	uc := usecase.NewInteractor(svc, studyCatalog())
	ctx := context.Background()

	out, err := uc.CompleteMission(ctx, "m1")
	if err != nil || out.XPAwarded != 5 {
		t.Fatalf("complete mission: %+v err=%v", out, err)
	}
	out, err = uc.CompleteMission(ctx, "m1")
	if err != nil || !out.AlreadyDone {
		t.Fatalf("same-day repeat must be a no-op: %+v err=%v", out, err)
	}

	// Next day: the daily mission opens again, the once mission stays done.
	if _, err := uc.CompleteMission(ctx, "m2"); err != nil {
		t.Fatalf("complete once mission: %v", err)
	}
	nextSvc := service.NewProgressService(clock.FixedClock{T: day.AddDate(0, 0, 1)}, progressout.NewFileRecordStore(dataDir))
	nextUc := usecase.NewInteractor(nextSvc, studyCatalog())

	out, err = nextUc.CompleteMission(ctx, "m1")
	if err != nil || out.AlreadyDone {
		t.Fatalf("daily mission should reopen on a new day: %+v err=%v", out, err)
	}
	out, err = nextUc.CompleteMission(ctx, "m2")
	if err != nil || !out.AlreadyDone {
		t.Fatalf("once mission must stay done: %+v err=%v", out, err)
	}
}

func TestSummaryJoinsCatalogAndState(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(t.TempDir()))
	uc := usecase.NewInteractor(svc, studyCatalog())
	ctx := context.Background()

	if _, err := uc.CompleteLesson(ctx, "l1"); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Level != 1 || summary.XP != 15 {
		t.Fatalf("unexpected level state: %+v", summary)
	}
	if summary.Lessons.Done != 1 || summary.Lessons.Total != 2 || summary.Lessons.Percent != 50 {
		t.Fatalf("unexpected completion: %+v", summary.Lessons)
	}
	if summary.NextLesson == nil || summary.NextLesson.ID != "l2" {
		t.Fatalf("next lesson should follow track order: %+v", summary.NextLesson)
	}
	if summary.MissionOfDay == nil || summary.MissionOfDay.ID != "m1" {
		t.Fatalf("the only daily mission must be picked: %+v", summary.MissionOfDay)
	}
	if summary.MissionOfDay.DoneToday {
		t.Fatalf("mission not completed yet: %+v", summary.MissionOfDay)
	}

	if _, err := uc.CompleteMission(ctx, "m1"); err != nil {
		t.Fatalf("complete mission: %v", err)
	}
	summary, err = uc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary after mission: %v", err)
	}
	if summary.MissionOfDay == nil || !summary.MissionOfDay.DoneToday {
		t.Fatalf("mission completion should surface: %+v", summary.MissionOfDay)
	}
}

func TestLessonsFollowTrackOrder(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	catalog := &fakeCatalog{snapshot: catalogdto.SnapshotOutput{
		Tracks: []catalogdto.ItemOutput{
			{ID: "t1", Type: "track", Title: "Fundamentos", LessonIDs: []string{"l2", "l1"}},
		},
		Lessons: []catalogdto.ItemOutput{
			{ID: "l1", Type: "lesson", Title: "Postura", XP: 15},
			{ID: "l2", Type: "lesson", Title: "Escalas", XP: 20},
			{ID: "l3", Type: "lesson", Title: "Avulsa", XP: 10},
		},
	}}
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(t.TempDir()))
	uc := usecase.NewInteractor(svc, catalog)
	ctx := context.Background()

	if _, err := uc.CompleteLesson(ctx, "l1"); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	lessons, err := uc.Lessons(ctx)
	if err != nil {
		t.Fatalf("lessons: %v", err)
	}
	ids := make([]string, 0, len(lessons))
	for _, l := range lessons {
		ids = append(ids, l.ID)
	}
	if len(ids) != 3 || ids[0] != "l2" || ids[1] != "l1" || ids[2] != "l3" {
		t.Fatalf("track order then orphans, got %v", ids)
	}
	if !lessons[1].Done || lessons[0].Done {
		t.Fatalf("done flags lost: %+v", lessons)
	}
	if lessons[0].TrackTitle != "Fundamentos" || lessons[2].TrackTitle != "" {
		t.Fatalf("track attribution lost: %+v", lessons)
	}
}

func TestTrackStatsAndMissions(t *testing.T) {
	t.Parallel()
	day, _ := time.ParseInLocation("2006-01-02", "2026-08-30", time.Local)
	svc := service.NewProgressService(clock.FixedClock{T: day}, progressout.NewFileRecordStore(t.TempDir()))
	uc := usecase.NewInteractor(svc, studyCatalog())
	ctx := context.Background()

	if _, err := uc.CompleteLesson(ctx, "l2"); err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	stats, err := uc.TrackStats(ctx)
	if err != nil {
		t.Fatalf("track stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Done != 1 || stats[0].Total != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if _, err := uc.CompleteMission(ctx, "m2"); err != nil {
		t.Fatalf("complete mission: %v", err)
	}
	missions, err := uc.Missions(ctx)
	if err != nil {
		t.Fatalf("missions: %v", err)
	}
	if len(missions) != 2 {
		t.Fatalf("unexpected mission list: %+v", missions)
	}
	for _, m := range missions {
		if m.ID == "m2" && !m.Done {
			t.Fatalf("completed once mission should report done: %+v", m)
		}
		if m.ID == "m1" && m.Done {
			t.Fatalf("untouched daily mission should report open: %+v", m)
		}
	}
}
