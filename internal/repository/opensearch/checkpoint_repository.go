package opensearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
	"github.com/opensearch-project/opensearch-go/opensearchutil"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

var checkpointLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// CheckpointRepository derives the sync high-water mark from what has already been written to an index
type CheckpointRepository struct {
	opensearchClient *opensearch.Client
	logger           *logrus.Logger
	updatedAtField   string
}

func NewCheckpointRepository(logger *logrus.Logger, opensearchClient *opensearch.Client, updatedAtField string) *CheckpointRepository {
	return &CheckpointRepository{
		logger:           logger,
		opensearchClient: opensearchClient,
		updatedAtField:   updatedAtField,
	}
}

// GetCheckpoint returns nil when the index is missing, empty, or none of its records carry the modification field
func (r *CheckpointRepository) GetCheckpoint(ctx context.Context, index string) (*types.Checkpoint, error) {
	query := map[string]interface{}{
		"size":    1,
		"_source": []string{r.updatedAtField, types.DestinationIDField},
		"sort": []interface{}{
			map[string]interface{}{
				r.updatedAtField: map[string]interface{}{"order": "desc", "unmapped_type": "date"},
			},
			map[string]interface{}{
				types.DestinationIDField: map[string]interface{}{"order": "desc", "unmapped_type": "keyword"},
			},
		},
	}
	res, err := opensearchapi.SearchRequest{
		Index: []string{index},
		Body:  opensearchutil.NewJSONReader(query),
	}.Do(ctx, r.opensearchClient)
	if err != nil {
		return nil, fmt.Errorf("failed to search checkpoint in index %s: %w", index, err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		r.logger.WithField("index", index).Debug("index not found, starting from scratch")
		return nil, nil
	}
	if res.IsError() {
		return nil, newResponseError("search checkpoint "+index, res)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint response for index %s: %w", index, err)
	}

	hit := gjson.GetBytes(body, "hits.hits.0._source")
	if !hit.Exists() {
		return nil, nil
	}
	value := hit.Get(r.updatedAtField)
	if !value.Exists() || value.Type == gjson.Null {
		return nil, nil
	}
	updatedAt, err := parseCheckpointTime(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse checkpoint in index %s: %w", index, err)
	}
	return &types.Checkpoint{
		UpdatedAt: updatedAt,
		ID:        hit.Get(types.DestinationIDField).String(),
	}, nil
}

func parseCheckpointTime(value gjson.Result) (time.Time, error) {
	if value.Type == gjson.Number {
		return time.UnixMilli(value.Int()).UTC(), nil
	}
	for _, layout := range checkpointLayouts {
		if t, err := time.Parse(layout, value.String()); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", value.Raw)
}
