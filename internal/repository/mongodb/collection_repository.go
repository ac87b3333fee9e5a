package mongodb

import (
	"context"
	"fmt"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxPageSize bounds the documents held in memory per page
const MaxPageSize = 100000

type CollectionRepository struct {
	provider       CollectionProvider
	logger         *logrus.Logger
	updatedAtField string
}

func NewCollectionRepository(logger *logrus.Logger, provider CollectionProvider, updatedAtField string) *CollectionRepository {
	return &CollectionRepository{
		logger:         logger,
		provider:       provider,
		updatedAtField: updatedAtField,
	}
}

// CountDocuments counts documents after the checkpoint, or the whole collection without one
func (r *CollectionRepository) CountDocuments(ctx context.Context, collectionName string, checkpoint *types.Checkpoint) (int64, error) {
	filter := BuildCheckpointFilter(r.updatedAtField, checkpoint)
	count, err := r.provider.Collection(collectionName).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in collection %s: %w", collectionName, err)
	}
	return count, nil
}

func (r *CollectionRepository) FindPages(ctx context.Context, collectionName string, checkpoint *types.Checkpoint, pageSize int) (PageIterator, error) {
	if pageSize <= 0 || pageSize > MaxPageSize {
		return nil, fmt.Errorf("invalid page size %d, must be between 1 and %d", pageSize, MaxPageSize)
	}
	filter := BuildCheckpointFilter(r.updatedAtField, checkpoint)
	opts := options.Find().
		SetSort(BuildSort(r.updatedAtField)).
		SetNoCursorTimeout(true).
		SetBatchSize(int32(pageSize))
	cursor, err := r.provider.Collection(collectionName).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collectionName, err)
	}
	r.logger.WithFields(logrus.Fields{
		"collection_name": collectionName,
		"page_size":       pageSize,
		"incremental":     checkpoint != nil,
	}).Debug("opened cursor")
	return NewPageReader(cursor, pageSize), nil
}
