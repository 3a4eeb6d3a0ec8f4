package usecase

import (
	"context"

	"tonica/internal/modules/catalog/domain"
	"tonica/internal/modules/catalog/dto"
	catalogin "tonica/internal/modules/catalog/port/in"
	"tonica/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) error {
	return i.svc.Load(ctx)
}

func (i *Interactor) ValidateText(ctx context.Context, text []byte) (dto.ValidationOutput, error) {
	report, err := i.svc.ValidateText(ctx, text)
	if err != nil {
		return dto.ValidationOutput{}, err
	}
	return dto.ValidationOutput{OK: report.OK, Errors: report.Errors, Warnings: report.Warnings}, nil
}

func (i *Interactor) ImportText(ctx context.Context, text []byte) (dto.ImportOutput, error) {
	report, err := i.svc.ImportText(ctx, text)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	out := dto.ImportOutput{
		OK:          report.Validation.OK,
		Errors:      report.Validation.Errors,
		Warnings:    report.Validation.Warnings,
		Inserted:    report.Merge.Inserted,
		Ignored:     report.Merge.Ignored,
		MissingRefs: []dto.MissingRefOutput{},
	}
	for _, ref := range report.Merge.MissingRefs {
		out.MissingRefs = append(out.MissingRefs, dto.MissingRefOutput{TrackID: ref.TrackID, LessonID: ref.LessonID})
	}
	return out, nil
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	tracks, lessons, missions, library := i.svc.Snapshot(ctx)
	return dto.SnapshotOutput{
		Tracks:   toItemOutputs(tracks),
		Lessons:  toItemOutputs(lessons),
		Missions: toItemOutputs(missions),
		Library:  toItemOutputs(library),
	}, nil
}

func (i *Interactor) GetItem(ctx context.Context, id string) (dto.ItemOutput, error) {
	item, err := i.svc.ItemByID(ctx, id)
	if err != nil {
		return dto.ItemOutput{}, err
	}
	return toItemOutput(item), nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toItemOutputs(items []domain.Item) []dto.ItemOutput {
	out := make([]dto.ItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, toItemOutput(item))
	}
	return out
}

func toItemOutput(item domain.Item) dto.ItemOutput {
	out := dto.ItemOutput{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		Subtitle:    item.Subtitle,
		Tags:        item.Tags,
		Level:       item.Level,
		Category:    item.Category,
		Body:        item.Body,
		LessonIDs:   item.LessonIDs,
		Order:       item.Order,
		Checklist:   item.Checklist,
		Repeat:      string(item.Repeat),
		MissionKind: item.MissionKind,
		Steps:       item.Steps,
	}
	switch item.Type {
	case domain.ItemTypeLesson:
		out.XP = item.LessonXP()
	case domain.ItemTypeMission:
		out.XP = item.MissionXP()
	}
	if item.EstimatedMinutes != nil {
		out.EstimatedMinutes = *item.EstimatedMinutes
	}
	if item.ReadingMinutes != nil {
		out.ReadingMinutes = *item.ReadingMinutes
	}
	return out
}
