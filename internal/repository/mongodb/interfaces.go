package mongodb

import (
	"context"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
)

//go:generate mockgen -source=interfaces.go -package=mongodb -destination=mock_interfaces.go

type CollectionRepositoryInterface interface {
	CountDocuments(ctx context.Context, collectionName string, checkpoint *types.Checkpoint) (int64, error)
	FindPages(ctx context.Context, collectionName string, checkpoint *types.Checkpoint, pageSize int) (PageIterator, error)
}

type PageIterator interface {
	NextPage(ctx context.Context) ([]types.Document, error)
	Close(ctx context.Context) error
}
