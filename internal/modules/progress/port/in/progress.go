package in

import (
	"context"

	"tonica/internal/modules/progress/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	CompleteLesson(ctx context.Context, lessonID string) (dto.CompleteOutput, error)
	CompleteMission(ctx context.Context, missionID string) (dto.CompleteOutput, error)
	SetLessonDone(ctx context.Context, lessonID string, done bool) error
	GetChecklist(ctx context.Context, lessonID string) (map[int]bool, error)
	SetChecklistItem(ctx context.Context, input dto.ChecklistItemInput) error
	TrackStats(ctx context.Context) ([]dto.TrackStatsOutput, error)
	Lessons(ctx context.Context) ([]dto.LessonStatusOutput, error)
	Missions(ctx context.Context) ([]dto.MissionStatusOutput, error)
	Profile(ctx context.Context) (dto.ProfileOutput, error)
	SetProfileName(ctx context.Context, name string) error
	SetGoal(ctx context.Context, goal string) error
	Touch(ctx context.Context) error
	ResetAll(ctx context.Context) error
}
