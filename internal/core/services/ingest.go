package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Ensure CSVIngester implements the interface.
var _ driving.CSVIngester = (*CSVIngester)(nil)

// CSVIngester streams a dataset into the index of its target.
type CSVIngester struct {
	registry driven.IndexDefinitionRegistry
	rows     driven.RowSource
	index    driven.SearchIndex
	reporter driving.Reporter
}

// NewCSVIngester creates a CSV ingester. A nil reporter discards progress output.
func NewCSVIngester(
	registry driven.IndexDefinitionRegistry,
	rows driven.RowSource,
	index driven.SearchIndex,
	reporter driving.Reporter,
) *CSVIngester {
	if reporter == nil {
		reporter = driving.NopReporter{}
	}
	return &CSVIngester{
		registry: registry,
		rows:     rows,
		index:    index,
		reporter: reporter,
	}
}

// Targets lists the available ingestion targets.
func (s *CSVIngester) Targets() []domain.IndexTarget {
	return s.registry.Targets()
}

// Ingest drops (when fresh) and creates the target index, then streams every
// CSV row through the target mapping into fixed-size batches. The target is
// resolved before any index call.
func (s *CSVIngester) Ingest(ctx context.Context, target domain.IndexTarget, opts driving.IngestOptions) (int, error) {
	logger.Section("Ingest " + target.String())

	def, err := s.registry.Get(target)
	if err != nil {
		return 0, err
	}
	name := def.Name()

	if opts.Fresh {
		if err := s.index.DeleteIfExists(ctx, name); err != nil {
			return 0, fmt.Errorf("drop index %s: %w", name, err)
		}
		s.reporter.Info("Dropped index: %s", name)
	}

	if err := s.index.Create(ctx, name, def.Properties()); err != nil {
		return 0, fmt.Errorf("create index %s: %w", name, err)
	}
	s.reporter.Info("Created index: %s", name)

	path := opts.File
	if path == "" {
		path = def.DataPath()
	}

	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = domain.DefaultCSVChunkSize
	}

	batch := NewBatchSubmitter(s.index, name, chunk, func(total int) {
		s.reporter.Info("Indexed %d documents...", total)
	})

	rowNum := 0
	err = s.rows.Each(ctx, path, func(row map[string]string) error {
		rowNum++
		docs, err := def.ToDocuments(row)
		if err != nil {
			return fmt.Errorf("row %d: %w", rowNum, err)
		}
		return batch.Add(ctx, docs...)
	})
	if err != nil {
		return batch.Total(), fmt.Errorf("ingest %s: %w", path, err)
	}

	if err := batch.Flush(ctx); err != nil {
		return batch.Total(), err
	}

	s.reporter.Info("Successfully indexed %d documents", batch.Total())
	logger.Info("Ingested %d rows from %s", rowNum, path)
	return batch.Total(), nil
}
