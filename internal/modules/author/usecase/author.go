package usecase

import (
	"context"

	"tonica/internal/modules/author/dto"
	authorin "tonica/internal/modules/author/port/in"
	"tonica/internal/modules/author/service"
	catalogdomain "tonica/internal/modules/catalog/domain"
)

type Interactor struct {
	svc *service.AuthorService
}

func NewInteractor(svc *service.AuthorService) authorin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, text []byte) (dto.AddOutput, error) {
	report, err := i.svc.Add(ctx, text)
	if err != nil {
		return dto.AddOutput{}, err
	}
	return dto.AddOutput{
		OK:      report.OK,
		Reasons: report.Reasons,
		ID:      report.Item.ID,
		Type:    string(report.Item.Type),
		Title:   report.Item.Title,
	}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.StagedItemOutput, error) {
	items, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StagedItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.StagedItemOutput{ID: item.ID, Type: string(item.Type), Title: item.Title})
	}
	return out, nil
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) ExportText(ctx context.Context) ([]byte, error) {
	return i.svc.ExportText(ctx)
}

func (i *Interactor) SuggestID(_ context.Context, input dto.SuggestIDInput) (string, error) {
	return i.svc.SuggestID(catalogdomain.ItemType(input.Type), input.Category), nil
}
