package in

import (
	"context"

	"tonica/internal/modules/author/dto"
	authorin "tonica/internal/modules/author/port/in"
)

type CLIHandler struct {
	usecase authorin.Usecase
}

func NewCLIHandler(usecase authorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, text []byte) (dto.AddOutput, error) {
	return h.usecase.Add(ctx, text)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.StagedItemOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) ExportText(ctx context.Context) ([]byte, error) {
	return h.usecase.ExportText(ctx)
}

func (h CLIHandler) SuggestID(ctx context.Context, itemType, category string) (string, error) {
	return h.usecase.SuggestID(ctx, dto.SuggestIDInput{Type: itemType, Category: category})
}
