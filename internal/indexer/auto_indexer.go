package indexer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
)

type CollectionOutcome struct {
	CollectionName string
	Result         *types.SyncRunResult
	Err            error
}

// AutoIndexer syncs every configured collection on a fixed interval until its context is cancelled
type AutoIndexer struct {
	logger      *logrus.Logger
	indexer     CollectionIndexerInterface
	collections []string
	interval    time.Duration
}

func NewAutoIndexer(logger *logrus.Logger, indexer CollectionIndexerInterface, collections []string, interval time.Duration) *AutoIndexer {
	return &AutoIndexer{
		logger:      logger,
		indexer:     indexer,
		collections: collections,
		interval:    interval,
	}
}

// Run never returns an error from a sync job: each tick isolates failures per collection.
// The interval is measured from the end of a tick to the start of the next one.
func (a *AutoIndexer) Run(ctx context.Context) error {
	a.logger.WithFields(logrus.Fields{
		"collections": a.collections,
		"interval":    a.interval.String(),
	}).Info("starting auto indexer")

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("auto indexer stopped")
			return nil
		case <-timer.C:
		}
		a.RunTick(ctx)
		timer.Reset(a.interval)
	}
}

// RunTick syncs all collections concurrently and waits for every one of them to settle
func (a *AutoIndexer) RunTick(ctx context.Context) []CollectionOutcome {
	outcomes := make([]CollectionOutcome, len(a.collections))
	var wg sync.WaitGroup
	for i, collectionName := range a.collections {
		wg.Add(1)
		go func(i int, collectionName string) {
			defer wg.Done()
			outcomes[i] = a.indexCollection(ctx, collectionName)
		}(i, collectionName)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		a.logOutcome(outcome)
	}
	return outcomes
}

func (a *AutoIndexer) indexCollection(ctx context.Context, collectionName string) (outcome CollectionOutcome) {
	outcome.CollectionName = collectionName
	defer func() {
		if r := recover(); r != nil {
			outcome.Result = nil
			outcome.Err = fmt.Errorf("panic while indexing collection %s: %v", collectionName, r)
		}
	}()
	outcome.Result, outcome.Err = a.indexer.IndexCollection(ctx, collectionName, IndexOptions{})
	return outcome
}

func (a *AutoIndexer) logOutcome(outcome CollectionOutcome) {
	log := a.logger.WithField("collection_name", outcome.CollectionName)
	switch {
	case IsJobLocked(outcome.Err):
		log.WithError(outcome.Err).Info("skipping collection for this tick")
	case outcome.Err != nil:
		log.WithError(outcome.Err).Warn("failed to index collection")
	case outcome.Result != nil && outcome.Result.Total > 0:
		log.WithFields(logrus.Fields{
			"index":       outcome.Result.Index,
			"total":       outcome.Result.Total,
			"num_indexed": outcome.Result.NumIndexed,
			"num_failed":  outcome.Result.NumFailed,
			"duration_ms": outcome.Result.Duration.Milliseconds(),
		}).Info(outcome.Result.Summary())
	}
}
