package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsindex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool

	// settings is loaded by the root command before any subcommand runs.
	settings domain.Settings

	// loadSettings reads the layered configuration; tests replace it.
	loadSettings = defaultLoadSettings
)

var rootCmd = &cobra.Command{
	Use:   "docsindex",
	Short: "Index versioned documentation into a search service",
	Long: `docsindex turns a tree of versioned Markdown pages into heading-scoped
search records and bulk-upserts them into a search index. It also ingests
CSV datasets, builds the documentation sidebar and pre-renders pages.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./docsindex.toml, then ~/.docsindex/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx. Cancelling ctx stops long-running
// commands such as index --watch.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	loaded, err := loadSettings(cfgFile)
	if err != nil {
		return err
	}
	settings = loaded
	return nil
}

func defaultLoadSettings(path string) (domain.Settings, error) {
	loader := file.NewLoader(file.WithConfigPath(path))
	s, err := loader.Load()
	if err != nil {
		return s, err
	}
	if src := loader.Source(); src != "" {
		logger.Debug("using config %s", src)
	}
	return s, nil
}

// commandContext returns the command context, falling back to Background
// when the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
