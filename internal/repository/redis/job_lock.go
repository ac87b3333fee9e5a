package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	LockKeyPrefix = "sync_lock_"

	releaseLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
	refreshLockScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("pexpire", KEYS[1], ARGV[2]) else return 0 end`
)

// JobLock is a lease on an index held by a single sync run. Only the owner can refresh or release it.
type JobLock struct {
	logger *logrus.Logger
	redis  redis.Cmdable
	ttl    time.Duration
}

func NewJobLock(logger *logrus.Logger, redis redis.Cmdable, ttl time.Duration) *JobLock {
	return &JobLock{
		logger: logger,
		redis:  redis,
		ttl:    ttl,
	}
}

func getLockKey(name string) string {
	return LockKeyPrefix + name
}

func (l *JobLock) Acquire(ctx context.Context, name, owner string) (bool, error) {
	acquired, err := l.redis.SetNX(ctx, getLockKey(name), owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock on %s: %w", name, err)
	}
	return acquired, nil
}

// Refresh extends the lease, returning false if it is no longer held by owner
func (l *JobLock) Refresh(ctx context.Context, name, owner string) (bool, error) {
	refreshed, err := l.redis.Eval(ctx, refreshLockScript, []string{getLockKey(name)}, owner, l.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to refresh lock on %s: %w", name, err)
	}
	return refreshed == 1, nil
}

func (l *JobLock) Release(ctx context.Context, name, owner string) error {
	released, err := l.redis.Eval(ctx, releaseLockScript, []string{getLockKey(name)}, owner).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", name, err)
	}
	if released == 0 {
		l.logger.WithFields(logrus.Fields{
			"lock":  name,
			"owner": owner,
		}).Warn("lock expired before being released")
	}
	return nil
}
