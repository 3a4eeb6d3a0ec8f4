package in

import (
	"context"

	"tonica/internal/modules/pack/dto"
	packin "tonica/internal/modules/pack/port/in"
)

type CLIHandler struct {
	usecase packin.Usecase
}

func NewCLIHandler(usecase packin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PackInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Check(ctx context.Context) ([]dto.CheckResult, error) {
	return h.usecase.Check(ctx)
}

func (h CLIHandler) Metadata(ctx context.Context, packName string) (dto.MetadataOutput, error) {
	return h.usecase.Metadata(ctx, packName)
}

func (h CLIHandler) Pull(ctx context.Context, packName string) (dto.PullOutput, error) {
	return h.usecase.Pull(ctx, packName)
}
