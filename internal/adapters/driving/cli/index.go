package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
	"github.com/custodia-labs/docsindex/internal/logger"
)

var (
	indexFresh     bool
	indexDocsDir   string
	indexBatchSize int
	indexWorkers   int
	indexDryRun    bool
	indexWatch     bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the documentation into the search service",
	Long: `Reads every <docs-dir>/<version>/<page>.md file, splits each page into
sections at its h2/h3 headings and upserts one search record per section.
Record ids are deterministic, so re-running the command updates records in
place. With --watch the command keeps running and re-indexes pages as they
are saved.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexFresh, "fresh", false, "drop the index before indexing")
	indexCmd.Flags().StringVar(&indexDocsDir, "docs-dir", "", "documentation directory (overrides config)")
	indexCmd.Flags().IntVar(&indexBatchSize, "batch-size", 0, "records per bulk request (default 50)")
	indexCmd.Flags().IntVar(&indexWorkers, "workers", 0, "concurrent page workers (default 1)")
	indexCmd.Flags().BoolVar(&indexDryRun, "dry-run", false, "build records into a throwaway in-memory index")
	indexCmd.Flags().BoolVar(&indexWatch, "watch", false, "keep running and re-index changed pages")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	s := settings
	if indexDocsDir != "" {
		s.Docs.Dir = indexDocsDir
	}
	if indexBatchSize != 0 {
		s.Docs.BatchSize = indexBatchSize
	}
	if indexWorkers != 0 {
		s.Docs.Workers = indexWorkers
	}
	if indexDryRun {
		s.Index.Backend = domain.BackendMemory
	}
	if err := s.Validate(); err != nil {
		return err
	}

	reporter := newReporter(cmd.OutOrStdout())
	svc, err := newServices(s, reporter, needs{index: true})
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx := commandContext(cmd)
	summary, err := svc.Indexer.Run(ctx, driving.IndexOptions{
		Fresh:     indexFresh,
		BatchSize: s.Docs.BatchSize,
		Workers:   s.Docs.Workers,
	})
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}
	logger.Debug("files=%d pages=%d skipped=%d records=%d",
		summary.Files, summary.Pages, summary.Skipped, summary.Records)

	if indexDryRun {
		reporter.Muted("Dry run: %d records built from %d pages, nothing was written", summary.Records, summary.Pages)
	}

	if !indexWatch {
		return nil
	}
	return watchPages(ctx, svc, reporter, s.Docs.Dir)
}

// watchPages re-indexes pages until ctx is cancelled. A page that fails is
// reported and watching continues.
func watchPages(ctx context.Context, svc *Services, reporter *consoleReporter, dir string) error {
	changes, err := svc.Watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	reporter.Muted("Watching %s for changes (Ctrl+C to stop)", dir)

	for doc := range changes {
		if _, err := svc.Indexer.IndexPage(ctx, doc); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			reporter.Error("Failed to index %s: %v", doc.RelativePath(), err)
		}
	}
	return nil
}
