package out

import (
	"context"
	"errors"

	authorout "tonica/internal/modules/author/port/out"
	catalogin "tonica/internal/modules/catalog/port/in"
	apperrors "tonica/internal/platform/errors"
)

type CatalogLookupAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogLookupAdapter(catalog catalogin.Usecase) authorout.CatalogLookup {
	return &CatalogLookupAdapter{catalog: catalog}
}

func (a *CatalogLookupAdapter) Has(ctx context.Context, id string) (bool, error) {
	_, err := a.catalog.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
