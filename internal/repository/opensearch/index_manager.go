package opensearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	indexMappingTemplate = `{"mappings":{"dynamic_templates":[{"strings_as_keywords":{"match_mapping_type":"string","mapping":{"type":"keyword"}}}],"properties":{}}}`

	resourceAlreadyExistsException = "resource_already_exists_exception"
)

type IndexManager struct {
	opensearchClient *opensearch.Client
	logger           *logrus.Logger
	updatedAtField   string
}

func NewIndexManager(logger *logrus.Logger, opensearchClient *opensearch.Client, updatedAtField string) *IndexManager {
	return &IndexManager{
		logger:           logger,
		opensearchClient: opensearchClient,
		updatedAtField:   updatedAtField,
	}
}

// EnsureIndex creates the index with the baseline mapping unless it already exists.
// With recreate set, an existing index is dropped first.
func (m *IndexManager) EnsureIndex(ctx context.Context, name string, recreate bool) error {
	exists, err := m.indexExists(ctx, name)
	if err != nil {
		return err
	}
	if exists && recreate {
		if err := m.deleteIndex(ctx, name); err != nil {
			return err
		}
		exists = false
	}
	if exists {
		return nil
	}
	return m.createIndex(ctx, name)
}

func (m *IndexManager) DeleteIndex(ctx context.Context, name string) error {
	exists, err := m.indexExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return m.deleteIndex(ctx, name)
}

func (m *IndexManager) RefreshIndex(ctx context.Context, name string) error {
	res, err := opensearchapi.IndicesRefreshRequest{
		Index: []string{name},
	}.Do(ctx, m.opensearchClient)
	if err != nil {
		return fmt.Errorf("failed to refresh index %s: %w", name, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return newResponseError("refresh index "+name, res)
	}
	return nil
}

// CountDocuments returns the number of records in the index, and whether the index exists at all
func (m *IndexManager) CountDocuments(ctx context.Context, name string) (int64, bool, error) {
	res, err := opensearchapi.CountRequest{
		Index: []string{name},
	}.Do(ctx, m.opensearchClient)
	if err != nil {
		return 0, false, fmt.Errorf("failed to count documents in index %s: %w", name, err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return 0, false, nil
	}
	if res.IsError() {
		return 0, false, newResponseError("count "+name, res)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, true, fmt.Errorf("failed to read count response for index %s: %w", name, err)
	}
	count := gjson.GetBytes(body, "count")
	if !count.Exists() {
		return 0, true, fmt.Errorf("count response for index %s carries no count", name)
	}
	return count.Int(), true, nil
}

func (m *IndexManager) IndexMapping() ([]byte, error) {
	return sjson.SetBytes([]byte(indexMappingTemplate), "mappings.properties."+escapePathKey(m.updatedAtField)+".type", "date")
}

func (m *IndexManager) indexExists(ctx context.Context, name string) (bool, error) {
	res, err := opensearchapi.IndicesExistsRequest{
		Index: []string{name},
	}.Do(ctx, m.opensearchClient)
	if err != nil {
		return false, fmt.Errorf("failed to check if index %s exists: %w", name, err)
	}
	defer res.Body.Close()
	switch {
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	case res.IsError():
		return false, newResponseError("check index "+name, res)
	}
	return true, nil
}

func (m *IndexManager) createIndex(ctx context.Context, name string) error {
	mapping, err := m.IndexMapping()
	if err != nil {
		return fmt.Errorf("failed to build mapping for index %s: %w", name, err)
	}
	res, err := opensearchapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader(mapping),
	}.Do(ctx, m.opensearchClient)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", name, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		responseErr := newResponseError("create index "+name, res)
		// another process created it between the existence check and now
		if responseErr.ErrorType == resourceAlreadyExistsException {
			return nil
		}
		return responseErr
	}
	m.logger.WithFields(logrus.Fields{
		"index":            name,
		"updated_at_field": m.updatedAtField,
	}).Info("index created")
	return nil
}

func (m *IndexManager) deleteIndex(ctx context.Context, name string) error {
	res, err := opensearchapi.IndicesDeleteRequest{
		Index: []string{name},
	}.Do(ctx, m.opensearchClient)
	if err != nil {
		return fmt.Errorf("failed to delete index %s: %w", name, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return newResponseError("delete index "+name, res)
	}
	m.logger.WithField("index", name).Info("index deleted")
	return nil
}
