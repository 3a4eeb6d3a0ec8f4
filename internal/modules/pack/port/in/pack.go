package in

import (
	"context"

	"tonica/internal/modules/pack/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PackInfo, error)
	Check(ctx context.Context) ([]dto.CheckResult, error)
	Metadata(ctx context.Context, packName string) (dto.MetadataOutput, error)
	Pull(ctx context.Context, packName string) (dto.PullOutput, error)
}
