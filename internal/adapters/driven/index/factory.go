// Package index provides factory functions for creating SearchIndex backends.
package index

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/docsindex/internal/adapters/driven/index/elastic"
	"github.com/custodia-labs/docsindex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsindex/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for index connectivity validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateSearchIndex creates the configured backend and checks
// that it is reachable.
func CreateAndValidateSearchIndex(settings *domain.IndexSettings) (driven.SearchIndex, error) {
	idx, err := CreateSearchIndex(settings)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := idx.Ping(ctx); err != nil {
		idx.Close()
		return nil, fmt.Errorf("%w: %s backend unreachable (%w). Check [index] in your config",
			domain.ErrIndexUnavailable, settings.Backend, err)
	}

	return idx, nil
}

// CreateSearchIndex creates the search index backend selected by settings.
func CreateSearchIndex(settings *domain.IndexSettings) (driven.SearchIndex, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: index settings are required", domain.ErrInvalidInput)
	}

	switch settings.Backend {
	case domain.BackendHTTP:
		return createHTTPIndex(&settings.HTTP)

	case domain.BackendSQLite:
		return createSQLiteIndex(&settings.SQLite)

	case domain.BackendMemory:
		return memory.NewIndex(), nil

	default:
		return nil, fmt.Errorf("%w: index backend %q", domain.ErrUnsupportedType, settings.Backend)
	}
}

// createHTTPIndex creates an Elasticsearch-compatible index client.
func createHTTPIndex(settings *domain.HTTPSettings) (driven.SearchIndex, error) {
	return elastic.NewClient(elastic.Config{
		URL:               settings.URL,
		APIKey:            settings.APIKey,
		Username:          settings.Username,
		Password:          settings.Password,
		Timeout:           settings.HTTPTimeout(),
		RequestsPerSecond: settings.RequestsPerSecond,
		MaxRetries:        settings.MaxRetries,
		RetryBaseDelay:    settings.RetryBaseDelay(),
	})
}

// createSQLiteIndex opens the local SQLite index.
func createSQLiteIndex(settings *domain.SQLiteSettings) (driven.SearchIndex, error) {
	store, err := sqlite.NewStore(settings.Dir)
	if err != nil {
		return nil, fmt.Errorf("open sqlite index: %w", err)
	}
	return store, nil
}
