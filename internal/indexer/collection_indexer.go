package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
	opensearch_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/opensearch"
	redis_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/redis"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/openshift-assisted/assisted-mongodb-sync/pkg/docpath"
	"github.com/openshift-assisted/assisted-mongodb-sync/pkg/stream"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IndexOptions struct {
	// Recreate drops the destination index before syncing, forcing a full run
	Recreate bool
}

type CollectionIndexerInterface interface {
	IndexCollection(ctx context.Context, collectionName string, opts IndexOptions) (*types.SyncRunResult, error)
}

// CollectionIndexer runs one full or incremental pass over a collection
type CollectionIndexer struct {
	logger               *logrus.Logger
	config               *IndexerConfig
	naming               opensearch_repo.IndexNaming
	collectionRepository mongodb_repo.CollectionRepositoryInterface
	indexManager         opensearch_repo.IndexManagerInterface
	checkpointRepository opensearch_repo.CheckpointRepositoryInterface
	bulkWriter           opensearch_repo.BulkWriterInterface
	sanitizer            *Sanitizer
	runRepository        redis_repo.RunRepositoryInterface
	jobLock              redis_repo.JobLockInterface
	notifier             stream.Notifier
	closers              []func(ctx context.Context) error
	newRunID             func() string
	now                  func() time.Time
}

func NewCollectionIndexer(
	logger *logrus.Logger,
	config *IndexerConfig,
	naming opensearch_repo.IndexNaming,
	collectionRepository mongodb_repo.CollectionRepositoryInterface,
	indexManager opensearch_repo.IndexManagerInterface,
	checkpointRepository opensearch_repo.CheckpointRepositoryInterface,
	bulkWriter opensearch_repo.BulkWriterInterface,
) *CollectionIndexer {
	return &CollectionIndexer{
		logger:               logger,
		config:               config,
		naming:               naming,
		collectionRepository: collectionRepository,
		indexManager:         indexManager,
		checkpointRepository: checkpointRepository,
		bulkWriter:           bulkWriter,
		sanitizer:            NewSanitizer(config.ExcludeAttributes),
		newRunID:             uuid.NewString,
		now:                  time.Now,
	}
}

func (i *CollectionIndexer) WithRunRepository(runRepository redis_repo.RunRepositoryInterface) *CollectionIndexer {
	i.runRepository = runRepository
	return i
}

func (i *CollectionIndexer) WithJobLock(jobLock redis_repo.JobLockInterface) *CollectionIndexer {
	i.jobLock = jobLock
	return i
}

func (i *CollectionIndexer) WithNotifier(notifier stream.Notifier) *CollectionIndexer {
	i.notifier = notifier
	return i
}

func (i *CollectionIndexer) IndexName(collectionName string) string {
	return i.naming.IndexName(collectionName)
}

func (i *CollectionIndexer) IndexCollection(ctx context.Context, collectionName string, opts IndexOptions) (*types.SyncRunResult, error) {
	startedAt := i.now()
	index := i.naming.IndexName(collectionName)
	result := &types.SyncRunResult{
		RunID:          i.newRunID(),
		CollectionName: collectionName,
		Index:          index,
		StartedAt:      startedAt,
	}
	log := i.logger.WithFields(logrus.Fields{
		"collection_name": collectionName,
		"index":           index,
		"run_id":          result.RunID,
	})

	if i.jobLock != nil {
		acquired, err := i.jobLock.Acquire(ctx, index, result.RunID)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, NewJobLockedError(index)
		}
		defer i.releaseLock(context.WithoutCancel(ctx), log, index, result.RunID)
	}

	if err := i.indexManager.EnsureIndex(ctx, index, opts.Recreate); err != nil {
		return nil, fmt.Errorf("failed to ensure index %s: %w", index, err)
	}
	checkpoint, err := i.checkpointRepository.GetCheckpoint(ctx, index)
	if err != nil {
		return nil, err
	}
	total, err := i.collectionRepository.CountDocuments(ctx, collectionName, checkpoint)
	if err != nil {
		return nil, err
	}
	result.Total = total
	if checkpoint != nil {
		log = log.WithField("checkpoint", checkpoint.UpdatedAt)
	}
	log.WithField("total", total).Debug("counted new documents")

	if total > 0 {
		if err := i.indexPages(ctx, log, collectionName, checkpoint, result); err != nil {
			return nil, err
		}
	}
	result.Duration = i.now().Sub(startedAt)
	i.afterRun(ctx, log, result)
	return result, nil
}

func (i *CollectionIndexer) indexPages(ctx context.Context, log logrus.FieldLogger, collectionName string, checkpoint *types.Checkpoint, result *types.SyncRunResult) error {
	pages, err := i.collectionRepository.FindPages(ctx, collectionName, checkpoint, i.config.BatchSize)
	if err != nil {
		return err
	}
	defer func() {
		if err := pages.Close(context.WithoutCancel(ctx)); err != nil {
			log.WithError(err).Warn("failed to close cursor")
		}
	}()

	for {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return err
		}
		if page == nil {
			return nil
		}
		if result.HighWaterMark == nil {
			result.HighWaterMark = i.modificationTime(page[0])
		}
		documents := i.sanitizer.Sanitize(collectionName, page, nil)
		bulkResult, err := i.bulkWriter.WriteDocuments(ctx, result.Index, documents)
		if err != nil {
			return err
		}
		result.NumIndexed += int64(bulkResult.Attempted)
		result.NumFailed += int64(len(bulkResult.Failures))
		log.WithFields(logrus.Fields{
			"num_indexed": result.NumIndexed,
			"num_failed":  result.NumFailed,
			"total":       result.Total,
		}).Debug("page indexed")

		if err := i.refreshLock(ctx, result.Index, result.RunID); err != nil {
			return err
		}
	}
}

func (i *CollectionIndexer) modificationTime(document types.Document) *time.Time {
	value, ok := docpath.Get(document, i.config.UpdatedAtField)
	if !ok {
		return nil
	}
	var t time.Time
	switch v := value.(type) {
	case primitive.DateTime:
		t = v.Time().UTC()
	case time.Time:
		t = v.UTC()
	default:
		return nil
	}
	return &t
}

func (i *CollectionIndexer) refreshLock(ctx context.Context, index, owner string) error {
	if i.jobLock == nil {
		return nil
	}
	refreshed, err := i.jobLock.Refresh(ctx, index, owner)
	if err != nil {
		return fmt.Errorf("%w: %v", NewLockLostError(index), err)
	}
	if !refreshed {
		return NewLockLostError(index)
	}
	return nil
}

func (i *CollectionIndexer) releaseLock(ctx context.Context, log logrus.FieldLogger, index, owner string) {
	if err := i.jobLock.Release(ctx, index, owner); err != nil {
		log.WithError(err).Warn("failed to release lock")
	}
}

// afterRun records the run and announces it. Failures here never fail the run.
func (i *CollectionIndexer) afterRun(ctx context.Context, log logrus.FieldLogger, result *types.SyncRunResult) {
	if i.runRepository != nil {
		if err := i.runRepository.SaveRun(ctx, result); err != nil {
			log.WithError(err).Warn("failed to save sync run")
		}
	}
	if i.notifier != nil && result.Total > 0 {
		if err := i.notifier.Notify(ctx, result); err != nil {
			log.WithError(err).Warn("failed to notify sync run")
		}
	}
}

// Close releases the clients the indexer was built with, in reverse order
func (i *CollectionIndexer) Close(ctx context.Context) {
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](ctx); err != nil {
			i.logger.WithError(err).Warn("failed to close client")
		}
	}
	i.closers = nil
}
