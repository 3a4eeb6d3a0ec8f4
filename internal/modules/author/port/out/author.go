package out

import "context"

// BufferStore persists the staging buffer document.
type BufferStore interface {
	Load(ctx context.Context) (payload []byte, ok bool, err error)
	Save(ctx context.Context, payload []byte) error
}

// CatalogLookup answers id-collision probes against the live catalog.
type CatalogLookup interface {
	Has(ctx context.Context, id string) (bool, error)
}
