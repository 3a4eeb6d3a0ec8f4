package in

import (
	"context"

	"tonica/internal/modules/author/dto"
)

type Usecase interface {
	Add(ctx context.Context, text []byte) (dto.AddOutput, error)
	List(ctx context.Context) ([]dto.StagedItemOutput, error)
	Clear(ctx context.Context) error
	ExportText(ctx context.Context) ([]byte, error)
	SuggestID(ctx context.Context, input dto.SuggestIDInput) (string, error)
}
