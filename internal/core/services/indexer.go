package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Ensure DocsIndexer implements the interface.
var _ driving.DocsIndexer = (*DocsIndexer)(nil)

// DocsIndexer runs the documentation pipeline: read, parse frontmatter,
// render, extract sections, build records, submit in batches.
type DocsIndexer struct {
	source    driven.PageSource
	parser    driven.FrontmatterParser
	renderer  driven.MarkdownRenderer
	extractor driven.SectionExtractor
	index     driven.SearchIndex
	indexName string
	reporter  driving.Reporter
}

// NewDocsIndexer creates a docs indexer writing into indexName.
// A nil reporter discards progress output.
func NewDocsIndexer(
	source driven.PageSource,
	parser driven.FrontmatterParser,
	renderer driven.MarkdownRenderer,
	extractor driven.SectionExtractor,
	index driven.SearchIndex,
	indexName string,
	reporter driving.Reporter,
) *DocsIndexer {
	if reporter == nil {
		reporter = driving.NopReporter{}
	}
	return &DocsIndexer{
		source:    source,
		parser:    parser,
		renderer:  renderer,
		extractor: extractor,
		index:     index,
		indexName: indexName,
		reporter:  reporter,
	}
}

// Run indexes every page. The source is listed before the index is touched,
// so a missing docs directory never leaves a freshly dropped index behind.
func (s *DocsIndexer) Run(ctx context.Context, opts driving.IndexOptions) (*driving.IndexSummary, error) {
	logger.Section("Index documentation")
	defer logger.Timed("index documentation")()

	docs, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documentation: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found", domain.ErrNoSources)
	}

	if opts.Fresh {
		if err := s.index.DeleteIfExists(ctx, s.indexName); err != nil {
			return nil, fmt.Errorf("drop index %s: %w", s.indexName, err)
		}
		s.reporter.Info("Dropped index: %s", s.indexName)
	}

	if err := s.index.Create(ctx, s.indexName, domain.DocsProperties()); err != nil {
		return nil, fmt.Errorf("create index %s: %w", s.indexName, err)
	}
	s.reporter.Info("Created index: %s", s.indexName)
	s.reporter.Info("Found %d documentation files", len(docs))

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = domain.DefaultDocsBatchSize
	}

	var summary *driving.IndexSummary
	if opts.Workers > 1 && len(docs) > 1 {
		summary, err = s.runConcurrent(ctx, docs, batchSize, opts.Workers)
	} else {
		summary, err = s.runSequential(ctx, docs, batchSize)
	}
	if err != nil {
		return nil, err
	}
	summary.Files = len(docs)

	s.reporter.Info("Successfully indexed %d documentation pages", summary.Records)
	logger.Info("Indexed %d records from %d pages (%d skipped)", summary.Records, summary.Pages, summary.Skipped)
	return summary, nil
}

// IndexPage re-indexes one page, submitting its records in a single batch.
// The index must already exist.
func (s *DocsIndexer) IndexPage(ctx context.Context, doc domain.SourceDocument) (int, error) {
	records, err := s.processPage(ctx, doc)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			s.reporter.Warn("Skipping %s (no content)", doc.RelativePath())
			return 0, nil
		}
		return 0, err
	}

	if err := s.index.Upsert(ctx, s.indexName, documents(records)); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", doc.RelativePath(), err)
	}
	s.reporter.Info("Indexed %s", doc.RelativePath())
	return len(records), nil
}

func (s *DocsIndexer) runSequential(
	ctx context.Context,
	docs []domain.SourceDocument,
	batchSize int,
) (*driving.IndexSummary, error) {
	summary := &driving.IndexSummary{}
	batch := NewBatchSubmitter(s.index, s.indexName, batchSize, func(total int) {
		s.reporter.Info("Indexed %d documents...", total)
	})

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.handlePage(ctx, doc, batch, summary); err != nil {
			return nil, err
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return nil, err
	}
	summary.Records = batch.Total()
	return summary, nil
}

// runConcurrent shards pages round-robin across a worker pool. Each shard
// owns its batch submitter; the first failure cancels the other shards.
func (s *DocsIndexer) runConcurrent(
	ctx context.Context,
	docs []domain.SourceDocument,
	batchSize int,
	workers int,
) (*driving.IndexSummary, error) {
	if workers > len(docs) {
		workers = len(docs)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shards := make([][]domain.SourceDocument, workers)
	for i, doc := range docs {
		shards[i%workers] = append(shards[i%workers], doc)
	}

	var (
		mu       sync.Mutex
		summary  = &driving.IndexSummary{}
		progress atomic.Int64
		firstErr error
		wg       sync.WaitGroup
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for _, shard := range shards {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			prev := 0
			batch := NewBatchSubmitter(s.index, s.indexName, batchSize, func(total int) {
				n := progress.Add(int64(total - prev))
				prev = total
				s.reporter.Info("Indexed %d documents...", n)
			})

			local := &driving.IndexSummary{}
			for _, doc := range shard {
				if ctx.Err() != nil {
					return
				}
				if err := s.handlePage(ctx, doc, batch, local); err != nil {
					fail(err)
					return
				}
			}
			if err := batch.Flush(ctx); err != nil {
				fail(err)
				return
			}

			mu.Lock()
			summary.Pages += local.Pages
			summary.Skipped += local.Skipped
			summary.Records += batch.Total()
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("submit shard: %w", err))
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return summary, nil
}

// handlePage processes one page into the batch. Pages without content are
// reported and counted as skipped.
func (s *DocsIndexer) handlePage(
	ctx context.Context,
	doc domain.SourceDocument,
	batch *BatchSubmitter,
	summary *driving.IndexSummary,
) error {
	records, err := s.processPage(ctx, doc)
	if errors.Is(err, domain.ErrNoContent) {
		s.reporter.Warn("Skipping %s (no content)", doc.RelativePath())
		summary.Skipped++
		return nil
	}
	if err != nil {
		return err
	}

	if err := batch.Add(ctx, documents(records)...); err != nil {
		return err
	}
	summary.Pages++
	s.reporter.Info("Indexed %s", doc.RelativePath())
	return nil
}

// processPage runs one page through the pipeline and returns its records.
// A page that yields no sections returns domain.ErrNoContent.
func (s *DocsIndexer) processPage(ctx context.Context, doc domain.SourceDocument) ([]domain.IndexRecord, error) {
	raw, err := s.source.Read(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc.RelativePath(), err)
	}

	meta, body, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.RelativePath(), err)
	}

	rendered, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.RelativePath(), err)
	}

	extraction, err := s.extractor.Extract(rendered)
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			return nil, err
		}
		return nil, fmt.Errorf("extract %s: %w", doc.RelativePath(), err)
	}

	records := BuildRecords(doc, meta, extraction)
	if len(records) == 0 {
		return nil, domain.ErrNoContent
	}
	logger.Debug("%s: %d sections, %d headings", doc.RelativePath(), len(records), len(extraction.Headings))
	return records, nil
}

func documents(records []domain.IndexRecord) []domain.Document {
	docs := make([]domain.Document, len(records))
	for i, r := range records {
		docs[i] = r.Document()
	}
	return docs
}
