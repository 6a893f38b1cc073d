package driven

import (
	"context"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// SearchIndex is the external index client.
// Implementations: HTTP (Elasticsearch-compatible), SQLite, memory.
type SearchIndex interface {
	// DeleteIfExists drops the index; a missing index is not an error.
	DeleteIfExists(ctx context.Context, name string) error

	// Create makes sure the index exists with the given properties.
	// Calling it on an existing index leaves its documents untouched.
	Create(ctx context.Context, name string, properties []domain.Property) error

	// Upsert inserts or replaces documents by ID in one bulk request.
	Upsert(ctx context.Context, name string, docs []domain.Document) error

	// Ping checks that the index is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
