package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchutil"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	NumWorkers  = 1
	BulkTimeout = time.Minute
	// a page is flushed on Close, never by the ticker
	FlushInterval = time.Hour
	// room for the action line the indexer writes in front of each record
	actionLineBytes = 64

	indexAction       = "index"
	encodingErrorType = "encoding_exception"
)

type bulkAction struct {
	Index bulkActionMeta `json:"index"`
}

type bulkActionMeta struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
}

// BulkWriter upserts one page of documents per bulk request
type BulkWriter struct {
	opensearchClient *opensearch.Client
	logger           *logrus.Logger
}

func NewBulkWriter(logger *logrus.Logger, opensearchClient *opensearch.Client) *BulkWriter {
	return &BulkWriter{
		logger:           logger,
		opensearchClient: opensearchClient,
	}
}

// pageFailures collects item failures reported by the bulk indexer workers
type pageFailures struct {
	mu       sync.Mutex
	failures []types.BulkItemFailure
	err      error
}

func (p *pageFailures) addFailure(failure types.BulkItemFailure) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, failure)
}

func (p *pageFailures) setError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
	}
}

// WriteDocuments fails only when the request as a whole fails. Rejected items are
// reported in the result and logged, the rest of the page is still written.
func (w *BulkWriter) WriteDocuments(ctx context.Context, index string, documents []types.Document) (*types.BulkResult, error) {
	result := &types.BulkResult{Attempted: len(documents)}
	if len(documents) == 0 {
		return result, nil
	}

	page := &pageFailures{}
	items := make([]opensearchutil.BulkIndexerItem, 0, len(documents))
	pageBytes := 0
	for _, document := range documents {
		id, record, err := NewDestinationRecord(document)
		if err != nil {
			result.Failures = append(result.Failures, types.BulkItemFailure{
				ErrorType: encodingErrorType,
				Reason:    err.Error(),
			})
			continue
		}
		action, err := json.Marshal(bulkAction{Index: bulkActionMeta{Index: index, ID: id}})
		if err != nil {
			return nil, err
		}
		pageBytes += len(action) + len(record) + actionLineBytes
		items = append(items, newBulkItem(index, id, action, record, page))
	}

	if len(items) > 0 {
		if err := w.flushPage(ctx, index, items, pageBytes, page); err != nil {
			return nil, err
		}
		result.Failures = append(result.Failures, page.failures...)
	}
	if len(result.Failures) > 0 {
		w.logFailures(index, result)
	}
	return result, nil
}

func newBulkItem(index, id string, action, record []byte, page *pageFailures) opensearchutil.BulkIndexerItem {
	return opensearchutil.BulkIndexerItem{
		Index:      index,
		Action:     indexAction,
		DocumentID: id,
		Body:       bytes.NewReader(record),
		OnFailure: func(ctx context.Context, item opensearchutil.BulkIndexerItem, res opensearchutil.BulkIndexerResponseItem, err error) {
			failure := types.BulkItemFailure{
				Status:    res.Status,
				ErrorType: res.Error.Type,
				Reason:    res.Error.Reason,
				Retryable: res.Status == http.StatusTooManyRequests,
				Action:    action,
				Document:  record,
			}
			if failure.Reason == "" && err != nil {
				failure.Reason = err.Error()
			}
			page.addFailure(failure)
		},
	}
}

// flushPage sends the whole page in a single request: the flush threshold is
// above the page size and the indexer only flushes when closed.
func (w *BulkWriter) flushPage(ctx context.Context, index string, items []opensearchutil.BulkIndexerItem, pageBytes int, page *pageFailures) error {
	bulkIndexer, err := opensearchutil.NewBulkIndexer(opensearchutil.BulkIndexerConfig{
		NumWorkers:    NumWorkers,
		Client:        w.opensearchClient,
		Index:         index,
		FlushBytes:    pageBytes + 1,
		FlushInterval: FlushInterval,
		Timeout:       BulkTimeout,
		OnError: func(ctx context.Context, err error) {
			page.setError(err)
		},
		OnFlushEnd: func(ctx context.Context) {
			w.logger.WithFields(logrus.Fields{
				"index": index,
				"items": len(items),
			}).Debug("bulk request flushed")
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize bulk indexer for index %s: %w", index, err)
	}
	for _, item := range items {
		if err := bulkIndexer.Add(ctx, item); err != nil {
			_ = bulkIndexer.Close(context.WithoutCancel(ctx))
			return fmt.Errorf("failed to add document %s to bulk request for index %s: %w", item.DocumentID, index, err)
		}
	}
	if err := bulkIndexer.Close(ctx); err != nil {
		return fmt.Errorf("failed to flush bulk request to index %s: %w", index, err)
	}
	if page.err != nil {
		return fmt.Errorf("bulk request to index %s failed: %w", index, page.err)
	}
	return nil
}

func (w *BulkWriter) logFailures(index string, result *types.BulkResult) {
	w.logger.WithFields(logrus.Fields{
		"index":     index,
		"attempted": result.Attempted,
		"failed":    len(result.Failures),
	}).Warn("some documents were rejected by bulk request")
	for _, failure := range result.Failures {
		w.logger.WithFields(logrus.Fields{
			"index":      index,
			"status":     failure.Status,
			"error_type": failure.ErrorType,
			"reason":     failure.Reason,
			"retryable":  failure.Retryable,
			"action":     string(failure.Action),
			"document":   string(failure.Document),
		}).Warn("document not indexed")
	}
}
