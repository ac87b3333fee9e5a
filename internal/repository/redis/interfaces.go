package redis

import (
	"context"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
)

//go:generate mockgen -source=interfaces.go -package=redis -destination=mock_interfaces.go

type RunRepositoryInterface interface {
	SaveRun(ctx context.Context, result *types.SyncRunResult) error
	GetRun(ctx context.Context, collectionName string) (*types.SyncRunResult, error)
}

type JobLockInterface interface {
	Acquire(ctx context.Context, name, owner string) (bool, error)
	Refresh(ctx context.Context, name, owner string) (bool, error)
	Release(ctx context.Context, name, owner string) error
}
