package types

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	CollectionSyncedNotification = "CollectionSynced"
)

// Checkpoint is the high-water mark of a collection as found in its
// destination index. It is never persisted on its own.
type Checkpoint struct {
	UpdatedAt time.Time
	// ID of the most recent record at UpdatedAt, used as tie-breaker
	ID string
}

type SyncRunResult struct {
	RunID          string        `json:"run_id"`
	CollectionName string        `json:"collection_name"`
	Index          string        `json:"index"`
	Total          int64         `json:"total"`
	NumIndexed     int64         `json:"num_indexed"`
	NumFailed      int64         `json:"num_failed"`
	Duration       time.Duration `json:"duration"`
	StartedAt      time.Time     `json:"started_at"`
	HighWaterMark  *time.Time    `json:"high_water_mark,omitempty"`
}

func (r *SyncRunResult) Summary() string {
	return fmt.Sprintf(
		"Detected %d new documents in collection %s: numIndexed=%d, index=%s, duration=%dms",
		r.Total, r.CollectionName, r.NumIndexed, r.Index, r.Duration.Milliseconds(),
	)
}

func (r *SyncRunResult) NotificationKey() string {
	return r.CollectionName
}

func (r *SyncRunResult) NotificationType() string {
	return CollectionSyncedNotification
}

func (r *SyncRunResult) Payload() any {
	return r
}

type BulkItemFailure struct {
	Status    int             `json:"status"`
	ErrorType string          `json:"error_type"`
	Reason    string          `json:"reason"`
	Retryable bool            `json:"retryable"`
	Action    json.RawMessage `json:"action"`
	Document  json.RawMessage `json:"document"`
}

type BulkResult struct {
	Attempted int
	Failures  []BulkItemFailure
}
