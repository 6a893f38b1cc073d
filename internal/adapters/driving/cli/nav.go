package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var navCmd = &cobra.Command{
	Use:   "nav <version>",
	Short: "Print the documentation sidebar of a version as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runNav,
}

func init() {
	rootCmd.AddCommand(navCmd)
}

func runNav(cmd *cobra.Command, args []string) error {
	svc, err := newServices(settings, newReporter(cmd.ErrOrStderr()), needs{})
	if err != nil {
		return err
	}
	defer svc.Close()

	sections, err := svc.Documentation.Navigation(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(sections)
}
