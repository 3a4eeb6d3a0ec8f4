package in

import (
	"context"

	"tonica/internal/modules/catalog/dto"
	catalogin "tonica/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) error {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) ValidateText(ctx context.Context, text []byte) (dto.ValidationOutput, error) {
	return h.usecase.ValidateText(ctx, text)
}

func (h CLIHandler) ImportText(ctx context.Context, text []byte) (dto.ImportOutput, error) {
	return h.usecase.ImportText(ctx, text)
}

func (h CLIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) GetItem(ctx context.Context, id string) (dto.ItemOutput, error) {
	return h.usecase.GetItem(ctx, id)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
