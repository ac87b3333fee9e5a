package mongodb

import (
	"context"
	"fmt"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
)

// PageReader groups a cursor into pages of at most pageSize documents
type PageReader struct {
	cursor   Cursor
	pageSize int
	done     bool
}

func NewPageReader(cursor Cursor, pageSize int) *PageReader {
	return &PageReader{
		cursor:   cursor,
		pageSize: pageSize,
	}
}

// NextPage returns nil once the cursor is exhausted. A short page ends the stream.
func (r *PageReader) NextPage(ctx context.Context) ([]types.Document, error) {
	if r.done {
		return nil, nil
	}
	page := make([]types.Document, 0, r.pageSize)
	for len(page) < r.pageSize {
		if !r.cursor.Next(ctx) {
			r.done = true
			if err := r.cursor.Err(); err != nil {
				return nil, fmt.Errorf("failed to read from cursor: %w", err)
			}
			break
		}
		var document types.Document
		if err := r.cursor.Decode(&document); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		page = append(page, document)
	}
	if len(page) < r.pageSize {
		r.done = true
	}
	if len(page) == 0 {
		return nil, nil
	}
	return page, nil
}

func (r *PageReader) Close(ctx context.Context) error {
	r.done = true
	return r.cursor.Close(ctx)
}
