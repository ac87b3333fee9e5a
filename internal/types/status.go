package types

const (
	CollectionStateInSync    CollectionState = "in_sync"
	CollectionStateBehind    CollectionState = "behind"
	CollectionStateIrregular CollectionState = "irregular"
)

type CollectionState string

type CollectionStatus struct {
	CollectionName   string          `json:"collection_name"`
	Index            string          `json:"index"`
	IndexExists      bool            `json:"index_exists"`
	SourceCount      int64           `json:"source_count"`
	DestinationCount int64           `json:"destination_count"`
	State            CollectionState `json:"state"`
	LastRun          *SyncRunResult  `json:"last_run,omitempty"`
}
