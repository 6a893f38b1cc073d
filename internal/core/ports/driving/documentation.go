package driving

import (
	"context"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// DocumentationService serves documentation pages for the website.
type DocumentationService interface {
	// Navigation returns the category-grouped page list for a version.
	Navigation(ctx context.Context, version string) ([]domain.NavigationSection, error)

	// RenderPage returns the HTML body of a page with callouts expanded.
	RenderPage(ctx context.Context, doc domain.SourceDocument) ([]byte, error)

	// Cache renders every page into the HTML cache and returns the page count.
	Cache(ctx context.Context) (int, error)

	// ClearCache removes every cached page.
	ClearCache(ctx context.Context) error
}

// Reporter receives user-facing progress lines.
type Reporter interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// NopReporter discards every line.
type NopReporter struct{}

// Info implements Reporter.
func (NopReporter) Info(string, ...any) {}

// Warn implements Reporter.
func (NopReporter) Warn(string, ...any) {}
