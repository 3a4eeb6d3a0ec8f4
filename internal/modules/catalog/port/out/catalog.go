package out

import (
	"context"

	"tonica/internal/modules/catalog/domain"
)

// ContentSource delivers the raw content payload, undecoded. Implementations
// range from a local file to a pack plugin.
type ContentSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// IndexProjector maintains the browsable read model of the catalog.
type IndexProjector interface {
	Reset(ctx context.Context) error
	UpsertItem(ctx context.Context, item domain.Item) error
}
