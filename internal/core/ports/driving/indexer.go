package driving

import (
	"context"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// DocsIndexer turns the documentation tree into search records.
type DocsIndexer interface {
	// Run indexes every page under the configured docs directory.
	Run(ctx context.Context, opts IndexOptions) (*IndexSummary, error)

	// IndexPage re-indexes a single page and returns the number of records sent.
	IndexPage(ctx context.Context, doc domain.SourceDocument) (int, error)
}

// IndexOptions controls a docs indexing run.
type IndexOptions struct {
	// Fresh drops the index before creating it.
	Fresh bool

	// BatchSize is the number of records per bulk request.
	BatchSize int

	// Workers is the number of concurrent page workers. Values below 2 run sequentially.
	Workers int
}

// IndexSummary reports the outcome of a run.
type IndexSummary struct {
	// Files is the number of pages found.
	Files int

	// Pages is the number of pages that produced at least one record.
	Pages int

	// Skipped is the number of pages without content.
	Skipped int

	// Records is the number of records submitted.
	Records int
}

// CSVIngester loads a tabular dataset into its own index.
type CSVIngester interface {
	// Ingest streams rows of the target dataset into its index.
	Ingest(ctx context.Context, target domain.IndexTarget, opts IngestOptions) (int, error)

	// Targets lists the available ingestion targets.
	Targets() []domain.IndexTarget
}

// IngestOptions controls a CSV ingestion run.
type IngestOptions struct {
	// Fresh drops the index before creating it.
	Fresh bool

	// ChunkSize is the number of documents per bulk request.
	ChunkSize int

	// File overrides the dataset path of the target.
	File string
}
