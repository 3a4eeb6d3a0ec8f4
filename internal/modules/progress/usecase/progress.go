package usecase

import (
	"context"
	"fmt"

	catalogdomain "tonica/internal/modules/catalog/domain"
	catalogdto "tonica/internal/modules/catalog/dto"
	catalogin "tonica/internal/modules/catalog/port/in"
	"tonica/internal/modules/progress/domain"
	"tonica/internal/modules/progress/dto"
	progressin "tonica/internal/modules/progress/port/in"
	"tonica/internal/modules/progress/service"
	apperrors "tonica/internal/platform/errors"
)

// Interactor joins the learner state with the catalog: completion rewards
// need the item's xp, and the derived home view needs both sides.
type Interactor struct {
	svc     *service.ProgressService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.ProgressService, catalog catalogin.Usecase) progressin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	snapshot, err := i.catalog.Snapshot(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	state, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}

	tier := domain.LevelFor(state.XP)
	tracks := toCatalogItems(snapshot.Tracks)
	lessons := toCatalogItems(snapshot.Lessons)
	missions := toCatalogItems(snapshot.Missions)

	out := dto.SummaryOutput{
		ProfileName:  state.ProfileName,
		Goal:         string(state.Goal),
		XP:           state.XP,
		Level:        tier.Level,
		LevelMin:     tier.Min,
		LevelMax:     tier.Max,
		LevelPercent: domain.LevelPercent(state.XP),
	}

	completion := domain.OverallCompletion(lessons, state.LessonDone)
	out.Lessons = dto.CompletionOutput{Done: completion.Done, Total: completion.Total, Percent: completion.Percent}

	if next, ok := domain.NextLesson(tracks, lessons, state.LessonDone); ok {
		out.NextLesson = &dto.NextLessonOutput{ID: next.ID, Title: next.Title}
	}
	if mission, ok := domain.MissionOfDay(i.svc.Today(), missions); ok {
		out.MissionOfDay = &dto.MissionOfDayOutput{
			ID:        mission.ID,
			Title:     mission.Title,
			XP:        mission.MissionXP(),
			DoneToday: state.IsMissionDoneOn(i.svc.Today(), mission.ID),
		}
	}
	return out, nil
}

func (i *Interactor) CompleteLesson(ctx context.Context, lessonID string) (dto.CompleteOutput, error) {
	item, err := i.catalog.GetItem(ctx, lessonID)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	if item.Type != string(catalogdomain.ItemTypeLesson) {
		return dto.CompleteOutput{}, fmt.Errorf("item %s is not a lesson: %w", lessonID, apperrors.ErrInvalidInput)
	}
	done, err := i.svc.IsLessonDone(ctx, lessonID)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	if done {
		state, err := i.svc.Snapshot(ctx)
		if err != nil {
			return dto.CompleteOutput{}, err
		}
		return dto.CompleteOutput{ID: lessonID, AlreadyDone: true, TotalXP: state.XP}, nil
	}
	if err := i.svc.SetLessonDone(ctx, lessonID, true); err != nil {
		return dto.CompleteOutput{}, err
	}
	total, err := i.svc.GrantXP(ctx, item.XP)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	return dto.CompleteOutput{ID: lessonID, XPAwarded: item.XP, TotalXP: total}, nil
}

func (i *Interactor) CompleteMission(ctx context.Context, missionID string) (dto.CompleteOutput, error) {
	item, err := i.catalog.GetItem(ctx, missionID)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	if item.Type != string(catalogdomain.ItemTypeMission) {
		return dto.CompleteOutput{}, fmt.Errorf("item %s is not a mission: %w", missionID, apperrors.ErrInvalidInput)
	}
	done, err := i.missionDone(ctx, item.ID, item.Repeat)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	if done {
		state, err := i.svc.Snapshot(ctx)
		if err != nil {
			return dto.CompleteOutput{}, err
		}
		return dto.CompleteOutput{ID: missionID, AlreadyDone: true, TotalXP: state.XP}, nil
	}
	if err := i.svc.MarkMissionDoneToday(ctx, missionID); err != nil {
		return dto.CompleteOutput{}, err
	}
	total, err := i.svc.GrantXP(ctx, item.XP)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	return dto.CompleteOutput{ID: missionID, XPAwarded: item.XP, TotalXP: total}, nil
}

func (i *Interactor) SetLessonDone(ctx context.Context, lessonID string, done bool) error {
	return i.svc.SetLessonDone(ctx, lessonID, done)
}

func (i *Interactor) GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error) {
	return i.svc.Checklist(ctx, lessonID)
}

func (i *Interactor) SetChecklistItem(ctx context.Context, input dto.ChecklistItemInput) error {
	return i.svc.SetChecklistItem(ctx, input.LessonID, input.Index, input.Checked)
}

func (i *Interactor) TrackStats(ctx context.Context) ([]dto.TrackStatsOutput, error) {
	snapshot, err := i.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	state, err := i.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	lessons := toCatalogItems(snapshot.Lessons)
	out := make([]dto.TrackStatsOutput, 0, len(snapshot.Tracks))
	for _, track := range toCatalogItems(snapshot.Tracks) {
		c := domain.TrackCompletion(track, lessons, state.LessonDone)
		out = append(out, dto.TrackStatsOutput{
			TrackID: track.ID,
			Title:   track.Title,
			Done:    c.Done,
			Total:   c.Total,
			Percent: c.Percent,
		})
	}
	return out, nil
}

// Lessons walks the tracks in display order and lists their lessons, then
// appends lessons no track references. Each entry carries its done flag.
func (i *Interactor) Lessons(ctx context.Context) ([]dto.LessonStatusOutput, error) {
	snapshot, err := i.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	state, err := i.svc.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]catalogdto.ItemOutput, len(snapshot.Lessons))
	for _, lesson := range snapshot.Lessons {
		byID[lesson.ID] = lesson
	}

	out := make([]dto.LessonStatusOutput, 0, len(snapshot.Lessons))
	seen := make(map[string]bool, len(snapshot.Lessons))
	appendLesson := func(lesson catalogdto.ItemOutput, trackID, trackTitle string) {
		seen[lesson.ID] = true
		out = append(out, dto.LessonStatusOutput{
			ID:               lesson.ID,
			Title:            lesson.Title,
			TrackID:          trackID,
			TrackTitle:       trackTitle,
			XP:               lesson.XP,
			EstimatedMinutes: lesson.EstimatedMinutes,
			Done:             state.LessonDone[lesson.ID],
		})
	}
	for _, track := range snapshot.Tracks {
		for _, lessonID := range track.LessonIDs {
			if lesson, ok := byID[lessonID]; ok && !seen[lessonID] {
				appendLesson(lesson, track.ID, track.Title)
			}
		}
	}
	for _, lesson := range snapshot.Lessons {
		if !seen[lesson.ID] {
			appendLesson(lesson, "", "")
		}
	}
	return out, nil
}

// Missions lists every mission with its effective done flag: "once"
// missions stay done after any day, repeating ones reset each day.
func (i *Interactor) Missions(ctx context.Context) ([]dto.MissionStatusOutput, error) {
	snapshot, err := i.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MissionStatusOutput, 0, len(snapshot.Missions))
	for _, mission := range snapshot.Missions {
		done, err := i.missionDone(ctx, mission.ID, mission.Repeat)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.MissionStatusOutput{
			ID:     mission.ID,
			Title:  mission.Title,
			XP:     mission.XP,
			Repeat: mission.Repeat,
			Done:   done,
		})
	}
	return out, nil
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	state, err := i.svc.Snapshot(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return dto.ProfileOutput{
		Name:     state.ProfileName,
		Goal:     string(state.Goal),
		XP:       state.XP,
		Level:    domain.LevelFor(state.XP).Level,
		LastOpen: state.LastOpen,
	}, nil
}

func (i *Interactor) SetProfileName(ctx context.Context, name string) error {
	return i.svc.SetProfileName(ctx, name)
}

func (i *Interactor) SetGoal(ctx context.Context, goal string) error {
	return i.svc.SetGoal(ctx, domain.Goal(goal))
}

func (i *Interactor) Touch(ctx context.Context) error {
	return i.svc.Touch(ctx)
}

func (i *Interactor) ResetAll(ctx context.Context) error {
	return i.svc.ResetAll(ctx)
}

func (i *Interactor) missionDone(ctx context.Context, missionID, repeat string) (bool, error) {
	if repeat == string(catalogdomain.RepeatOnce) {
		return i.svc.WasMissionEverDone(ctx, missionID)
	}
	return i.svc.IsMissionDoneToday(ctx, missionID)
}

// The catalog hands out view models; the derivation helpers work on catalog
// items. Only the fields the derivations read are mapped back.
func toCatalogItems(items []catalogdto.ItemOutput) []catalogdomain.Item {
	out := make([]catalogdomain.Item, 0, len(items))
	for _, item := range items {
		out = append(out, toCatalogItem(item))
	}
	return out
}

func toCatalogItem(item catalogdto.ItemOutput) catalogdomain.Item {
	xp := item.XP
	return catalogdomain.Item{
		ID:        item.ID,
		Type:      catalogdomain.ItemType(item.Type),
		Title:     item.Title,
		LessonIDs: item.LessonIDs,
		XP:        &xp,
		Repeat:    catalogdomain.RepeatKind(item.Repeat),
	}
}
