package indexer

import (
	"context"

	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
	opensearch_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/opensearch"
	redis_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/redis"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
)

// StatusReporter compares each collection with its index
type StatusReporter struct {
	logger               *logrus.Logger
	naming               opensearch_repo.IndexNaming
	collectionRepository mongodb_repo.CollectionRepositoryInterface
	indexManager         opensearch_repo.IndexManagerInterface
	runRepository        redis_repo.RunRepositoryInterface
}

func NewStatusReporter(
	logger *logrus.Logger,
	naming opensearch_repo.IndexNaming,
	collectionRepository mongodb_repo.CollectionRepositoryInterface,
	indexManager opensearch_repo.IndexManagerInterface,
	runRepository redis_repo.RunRepositoryInterface,
) *StatusReporter {
	return &StatusReporter{
		logger:               logger,
		naming:               naming,
		collectionRepository: collectionRepository,
		indexManager:         indexManager,
		runRepository:        runRepository,
	}
}

func (r *StatusReporter) CollectionStatus(ctx context.Context, collectionName string) (*types.CollectionStatus, error) {
	index := r.naming.IndexName(collectionName)
	sourceCount, err := r.collectionRepository.CountDocuments(ctx, collectionName, nil)
	if err != nil {
		return nil, err
	}
	destinationCount, exists, err := r.indexManager.CountDocuments(ctx, index)
	if err != nil {
		return nil, err
	}
	status := &types.CollectionStatus{
		CollectionName:   collectionName,
		Index:            index,
		IndexExists:      exists,
		SourceCount:      sourceCount,
		DestinationCount: destinationCount,
		State:            collectionState(sourceCount, destinationCount),
	}
	if r.runRepository != nil {
		lastRun, err := r.runRepository.GetRun(ctx, collectionName)
		if err != nil {
			r.logger.WithError(err).WithField("collection_name", collectionName).Warn("could not retrieve last sync run")
		}
		status.LastRun = lastRun
	}
	return status, nil
}

func (r *StatusReporter) CollectionStatuses(ctx context.Context, collectionNames []string) ([]*types.CollectionStatus, error) {
	statuses := make([]*types.CollectionStatus, 0, len(collectionNames))
	for _, collectionName := range collectionNames {
		status, err := r.CollectionStatus(ctx, collectionName)
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func collectionState(sourceCount, destinationCount int64) types.CollectionState {
	switch {
	case sourceCount == destinationCount:
		return types.CollectionStateInSync
	case destinationCount < sourceCount:
		return types.CollectionStateBehind
	default:
		return types.CollectionStateIrregular
	}
}
