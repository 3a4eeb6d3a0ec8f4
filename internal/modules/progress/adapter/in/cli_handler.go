package in

import (
	"context"

	"tonica/internal/modules/progress/dto"
	progressin "tonica/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) CompleteLesson(ctx context.Context, lessonID string) (dto.CompleteOutput, error) {
	return h.usecase.CompleteLesson(ctx, lessonID)
}

func (h CLIHandler) CompleteMission(ctx context.Context, missionID string) (dto.CompleteOutput, error) {
	return h.usecase.CompleteMission(ctx, missionID)
}

func (h CLIHandler) SetLessonDone(ctx context.Context, lessonID string, done bool) error {
	return h.usecase.SetLessonDone(ctx, lessonID, done)
}

func (h CLIHandler) SetChecklistItem(ctx context.Context, lessonID string, index int, checked bool) error {
	return h.usecase.SetChecklistItem(ctx, dto.ChecklistItemInput{LessonID: lessonID, Index: index, Checked: checked})
}

func (h CLIHandler) GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error) {
	return h.usecase.GetChecklist(ctx, lessonID)
}

func (h CLIHandler) Lessons(ctx context.Context) ([]dto.LessonStatusOutput, error) {
	return h.usecase.Lessons(ctx)
}

func (h CLIHandler) TrackStats(ctx context.Context) ([]dto.TrackStatsOutput, error) {
	return h.usecase.TrackStats(ctx)
}

func (h CLIHandler) Missions(ctx context.Context) ([]dto.MissionStatusOutput, error) {
	return h.usecase.Missions(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) SetProfileName(ctx context.Context, name string) error {
	return h.usecase.SetProfileName(ctx, name)
}

func (h CLIHandler) SetGoal(ctx context.Context, goal string) error {
	return h.usecase.SetGoal(ctx, goal)
}

func (h CLIHandler) Touch(ctx context.Context) error {
	return h.usecase.Touch(ctx)
}

func (h CLIHandler) ResetAll(ctx context.Context) error {
	return h.usecase.ResetAll(ctx)
}
