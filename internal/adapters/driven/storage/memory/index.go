// Package memory provides an in-process SearchIndex used for dry runs and tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SearchIndex = (*Index)(nil)

// Index is an in-memory implementation of driven.SearchIndex.
type Index struct {
	mu      sync.RWMutex
	indices map[string]*entry
	upserts int
}

type entry struct {
	properties []domain.Property
	documents  map[string]domain.Document
}

// NewIndex creates a new in-memory index.
func NewIndex() *Index {
	return &Index{
		indices: make(map[string]*entry),
	}
}

// DeleteIfExists drops the named index.
func (x *Index) DeleteIfExists(_ context.Context, name string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.indices, name)
	return nil
}

// Create registers the index; an existing one keeps its documents.
func (x *Index) Create(_ context.Context, name string, props []domain.Property) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.indices[name]; ok {
		return nil
	}
	x.indices[name] = &entry{
		properties: append([]domain.Property(nil), props...),
		documents:  make(map[string]domain.Document),
	}
	return nil
}

// Upsert inserts or replaces documents by id.
func (x *Index) Upsert(_ context.Context, name string, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	x.mu.Lock()
	defer x.mu.Unlock()

	e, ok := x.indices[name]
	if !ok {
		return fmt.Errorf("%w: index %s", domain.ErrNotFound, name)
	}
	for _, doc := range docs {
		if doc.ID == "" {
			return fmt.Errorf("%w: document without id", domain.ErrBulkRejected)
		}
	}
	for _, doc := range docs {
		e.documents[doc.ID] = domain.Document{ID: doc.ID, Fields: maps.Clone(doc.Fields)}
	}
	x.upserts++
	return nil
}

// Ping always succeeds.
func (x *Index) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (x *Index) Close() error {
	return nil
}

// Count returns the number of documents in the index.
func (x *Index) Count(name string) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if e, ok := x.indices[name]; ok {
		return len(e.documents)
	}
	return 0
}

// Get retrieves a document by id.
func (x *Index) Get(name, id string) (*domain.Document, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.indices[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc, ok := e.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// IDs returns the document ids of the index in sorted order.
func (x *Index) IDs(name string) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.indices[name]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(e.documents))
	for id := range e.documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Upserts returns the number of bulk calls that stored documents.
func (x *Index) Upserts() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.upserts
}
