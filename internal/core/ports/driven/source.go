package driven

import (
	"context"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// PageSource enumerates and reads documentation pages.
type PageSource interface {
	// List returns every page of every version, sorted by path.
	// A missing root yields domain.ErrMissingSource.
	List(ctx context.Context) ([]domain.SourceDocument, error)

	// ListVersion returns the pages of one version, sorted by path.
	ListVersion(ctx context.Context, version string) ([]domain.SourceDocument, error)

	// Read returns the raw page bytes.
	Read(ctx context.Context, doc domain.SourceDocument) ([]byte, error)
}

// RowSource streams header-keyed rows from a tabular file.
type RowSource interface {
	// Each calls fn for every data row in file order.
	// A missing file yields domain.ErrMissingSource; an error from fn stops iteration.
	Each(ctx context.Context, path string, fn func(row map[string]string) error) error
}

// PageCache stores pre-rendered HTML pages.
type PageCache interface {
	// Write stores the HTML for a page, replacing any previous copy.
	Write(ctx context.Context, doc domain.SourceDocument, html []byte) error

	// Clear removes every cached page.
	Clear(ctx context.Context) error
}
