package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// BatchSubmitter buffers documents and upserts them in fixed-size batches.
// It is not safe for concurrent use; concurrent runs use one per worker.
type BatchSubmitter struct {
	index   driven.SearchIndex
	name    string
	size    int
	buf     []domain.Document
	total   int
	onFlush func(total int)
}

// NewBatchSubmitter creates a submitter for the named index.
// onFlush, when non-nil, is called with the running total after every
// batch that filled up; the final partial batch does not trigger it.
func NewBatchSubmitter(index driven.SearchIndex, name string, size int, onFlush func(total int)) *BatchSubmitter {
	if size < 1 {
		size = 1
	}
	return &BatchSubmitter{
		index:   index,
		name:    name,
		size:    size,
		buf:     make([]domain.Document, 0, size),
		onFlush: onFlush,
	}
}

// Add appends documents, submitting a batch whenever the buffer reaches the threshold.
func (b *BatchSubmitter) Add(ctx context.Context, docs ...domain.Document) error {
	for _, doc := range docs {
		b.buf = append(b.buf, doc)
		if len(b.buf) < b.size {
			continue
		}
		if err := b.submit(ctx); err != nil {
			return err
		}
		if b.onFlush != nil {
			b.onFlush(b.total)
		}
	}
	return nil
}

// Flush submits any remaining documents as a final partial batch.
func (b *BatchSubmitter) Flush(ctx context.Context) error {
	if len(b.buf) == 0 {
		return nil
	}
	return b.submit(ctx)
}

// Total returns the number of documents submitted so far.
func (b *BatchSubmitter) Total() int {
	return b.total
}

// Pending returns the number of buffered documents.
func (b *BatchSubmitter) Pending() int {
	return len(b.buf)
}

func (b *BatchSubmitter) submit(ctx context.Context) error {
	logger.Debug("Upserting %d documents into %s", len(b.buf), b.name)
	if err := b.index.Upsert(ctx, b.name, b.buf); err != nil {
		return fmt.Errorf("upsert batch into %s: %w", b.name, err)
	}
	b.total += len(b.buf)
	b.buf = make([]domain.Document, 0, b.size)
	return nil
}
