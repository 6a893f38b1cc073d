package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Pre-render every documentation page to HTML",
	Long: `Renders each <version>/<page>.md into <cache-dir>/<version>/<page>.html
with callout blocks expanded, so the site can serve pages without parsing
Markdown on each request.`,
	Args: cobra.NoArgs,
	RunE: runCache,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached page",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCache(cmd *cobra.Command, _ []string) error {
	reporter := newReporter(cmd.OutOrStdout())
	svc, err := newServices(settings, reporter, needs{})
	if err != nil {
		return err
	}
	defer svc.Close()

	n, err := svc.Documentation.Cache(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("cache failed: %w", err)
	}
	reporter.Info("Cached %d documentation pages in %s", n, settings.Docs.CacheDir)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	reporter := newReporter(cmd.OutOrStdout())
	svc, err := newServices(settings, reporter, needs{})
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Documentation.ClearCache(commandContext(cmd)); err != nil {
		return fmt.Errorf("clear cache failed: %w", err)
	}
	reporter.Info("Cleared documentation cache")
	return nil
}
