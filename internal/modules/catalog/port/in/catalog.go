package in

import (
	"context"

	"tonica/internal/modules/catalog/dto"
)

type Usecase interface {
	Load(ctx context.Context) error
	ValidateText(ctx context.Context, text []byte) (dto.ValidationOutput, error)
	ImportText(ctx context.Context, text []byte) (dto.ImportOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
	GetItem(ctx context.Context, id string) (dto.ItemOutput, error)
	Reindex(ctx context.Context) error
}
