package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
)

const SyncRunsRedisHKey = "sync_runs"

// RunRepository keeps the last sync run of each collection
type RunRepository struct {
	logger     *logrus.Logger
	redis      redis.Cmdable
	expiration time.Duration
}

func NewRunRepository(logger *logrus.Logger, redis redis.Cmdable, expiration time.Duration) *RunRepository {
	return &RunRepository{
		logger:     logger,
		redis:      redis,
		expiration: expiration,
	}
}

func (r *RunRepository) SaveRun(ctx context.Context, result *types.SyncRunResult) error {
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return err
	}
	if err := r.redis.HSet(ctx, SyncRunsRedisHKey, result.CollectionName, string(resultBytes)).Err(); err != nil {
		return fmt.Errorf("failed to save run of collection %s: %w", result.CollectionName, err)
	}
	return r.redis.Expire(ctx, SyncRunsRedisHKey, r.expiration).Err()
}

// GetRun returns nil when the collection has no recorded run
func (r *RunRepository) GetRun(ctx context.Context, collectionName string) (*types.SyncRunResult, error) {
	resultRaw, err := r.redis.HGet(ctx, SyncRunsRedisHKey, collectionName).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run of collection %s: %w", collectionName, err)
	}
	result := &types.SyncRunResult{}
	if err := json.Unmarshal(resultRaw, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *RunRepository) GetRuns(ctx context.Context) (map[string]*types.SyncRunResult, error) {
	runs := map[string]*types.SyncRunResult{}
	runsRaw, err := r.redis.HGetAll(ctx, SyncRunsRedisHKey).Result()
	if err != nil {
		return runs, err
	}
	for collectionName, v := range runsRaw {
		result := &types.SyncRunResult{}
		if err := json.Unmarshal([]byte(v), result); err != nil {
			r.logger.WithError(err).WithField("collection_name", collectionName).Warn("skipping unreadable sync run")
			continue
		}
		runs[collectionName] = result
	}
	return runs, nil
}
