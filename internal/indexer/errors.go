package indexer

import "errors"

type JobLockedError struct {
	index string
}

func NewJobLockedError(index string) error {
	return &JobLockedError{
		index: index,
	}
}

func (e *JobLockedError) Error() string {
	return "index " + e.index + " is being synced by another job"
}

func IsJobLocked(err error) bool {
	var lockedErr *JobLockedError
	return errors.As(err, &lockedErr)
}

type LockLostError struct {
	index string
}

func NewLockLostError(index string) error {
	return &LockLostError{
		index: index,
	}
}

func (e *LockLostError) Error() string {
	return "lost lock on index " + e.index + " during sync"
}
