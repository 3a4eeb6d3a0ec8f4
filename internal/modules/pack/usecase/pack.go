package usecase

import (
	"context"

	catalogin "tonica/internal/modules/catalog/port/in"
	"tonica/internal/modules/pack/dto"
	packin "tonica/internal/modules/pack/port/in"
	"tonica/internal/modules/pack/service"
)

// Interactor hands pulled pack payloads to the catalog import pipeline, so
// pack content obeys the same validation and additive merge as a paste.
type Interactor struct {
	svc     *service.PackService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.PackService, catalog catalogin.Usecase) packin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PackInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Check(ctx context.Context) ([]dto.CheckResult, error) {
	return i.svc.Check(ctx)
}

func (i *Interactor) Metadata(ctx context.Context, packName string) (dto.MetadataOutput, error) {
	meta, err := i.svc.Metadata(ctx, packName)
	if err != nil {
		return dto.MetadataOutput{}, err
	}
	return dto.MetadataOutput{Name: meta.Name, Version: meta.Version, ItemCount: meta.ItemCount}, nil
}

func (i *Interactor) Pull(ctx context.Context, packName string) (dto.PullOutput, error) {
	payload, err := i.svc.Fetch(ctx, packName)
	if err != nil {
		return dto.PullOutput{}, err
	}
	report, err := i.catalog.ImportText(ctx, payload)
	if err != nil {
		return dto.PullOutput{}, err
	}
	return dto.PullOutput{Pack: packName, Import: report}, nil
}
