package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
)

var (
	ingestFresh bool
	ingestChunk int
	ingestFile  string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [target]",
	Short: "Ingest a CSV dataset into its search index",
	Long: `Streams the rows of a CSV dataset into the index of the named target.
Available targets: netflix_titles (default), image_data, resumes,
asos_products. Datasets are read from the configured data directory
unless --file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestFresh, "fresh", false, "drop the index before ingesting")
	ingestCmd.Flags().IntVar(&ingestChunk, "chunk", 0, "documents per bulk request (default 200)")
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "CSV file to read instead of the target's dataset")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	target := domain.DefaultIndexTarget
	if len(args) > 0 {
		target = domain.IndexTarget(args[0])
	}

	// Reject unknown targets before the index is contacted.
	if !target.IsValid() {
		return fmt.Errorf("%w: unknown target %q (available: %s)",
			domain.ErrUnsupportedType, target, joinTargets(domain.AllIndexTargets()))
	}

	s := settings
	if ingestChunk != 0 {
		s.Ingest.ChunkSize = ingestChunk
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

	_, err = svc.Ingester.Ingest(commandContext(cmd), target, driving.IngestOptions{
		Fresh:     ingestFresh,
		ChunkSize: s.Ingest.ChunkSize,
		File:      ingestFile,
	})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	return nil
}

func joinTargets(targets []domain.IndexTarget) string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}
