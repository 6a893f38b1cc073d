package cli

import (
	"context"

	"github.com/custodia-labs/docsindex/internal/adapters/driven/index"
	csvconnector "github.com/custodia-labs/docsindex/internal/connectors/csv"
	"github.com/custodia-labs/docsindex/internal/connectors/filesystem"
	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
	"github.com/custodia-labs/docsindex/internal/core/services"
	"github.com/custodia-labs/docsindex/internal/indices"
	"github.com/custodia-labs/docsindex/internal/normalisers/frontmatter"
	htmlextract "github.com/custodia-labs/docsindex/internal/normalisers/html"
	"github.com/custodia-labs/docsindex/internal/normalisers/markdown"
)

// PageWatcher streams pages as they are created or written.
type PageWatcher interface {
	Watch(ctx context.Context) (<-chan domain.SourceDocument, error)
}

// Services bundles what a command needs. Fields a command did not ask for
// are nil.
type Services struct {
	Indexer       driving.DocsIndexer
	Ingester      driving.CSVIngester
	Documentation driving.DocumentationService
	Watcher       PageWatcher

	index driven.SearchIndex
}

// Close releases the search index, if one was opened.
func (s *Services) Close() {
	if s.index != nil {
		s.index.Close()
	}
}

// needs selects which services to build.
type needs struct {
	index bool
}

// newServices builds services from settings; tests replace it.
var newServices = buildServices

// newRenderer builds the page renderer with the configured extensions.
func newRenderer(docs domain.DocsSettings) *markdown.Renderer {
	return markdown.New(markdown.WithExtensions(docs.MarkdownExtensions...))
}

func buildServices(s domain.Settings, reporter driving.Reporter, n needs) (*Services, error) {
	pages := filesystem.NewPageSource(s.Docs.Dir)
	parser := frontmatter.New()
	renderer := newRenderer(s.Docs)

	svc := &Services{
		Documentation: services.NewDocumentationService(
			pages, parser, renderer, filesystem.NewPageCache(s.Docs.CacheDir)),
		Watcher: filesystem.NewWatcher(s.Docs.Dir),
	}
	if !n.index {
		return svc, nil
	}

	idx, err := index.CreateAndValidateSearchIndex(&s.Index)
	if err != nil {
		return nil, err
	}
	svc.index = idx
	svc.Indexer = services.NewDocsIndexer(
		pages, parser, renderer, htmlextract.New(), idx, s.Index.DocsIndex, reporter)
	svc.Ingester = services.NewCSVIngester(
		indices.NewDefaultRegistry(s.Ingest.DataDir), csvconnector.New(), idx, reporter)

	return svc, nil
}
