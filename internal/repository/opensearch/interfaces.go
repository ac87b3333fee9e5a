package opensearch

import (
	"context"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
)

//go:generate mockgen -source=interfaces.go -package=opensearch -destination=mock_interfaces.go

type IndexManagerInterface interface {
	EnsureIndex(ctx context.Context, name string, recreate bool) error
	DeleteIndex(ctx context.Context, name string) error
	RefreshIndex(ctx context.Context, name string) error
	CountDocuments(ctx context.Context, name string) (int64, bool, error)
}

type CheckpointRepositoryInterface interface {
	GetCheckpoint(ctx context.Context, index string) (*types.Checkpoint, error)
}

type BulkWriterInterface interface {
	WriteDocuments(ctx context.Context, index string, documents []types.Document) (*types.BulkResult, error)
}
