package out

import (
	"context"

	"tonica/internal/modules/pack/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host runs a pack binary and speaks the content-pack contract with it.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	FetchItems(ctx context.Context, manifest domain.Manifest) ([]byte, error)
}
