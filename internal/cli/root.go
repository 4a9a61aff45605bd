// Package cli implements the irm command line: scoring from flags,
// inspecting exported reports and serving the web form.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "irm",
	Short:         "Influencer relationship scoring and reporting",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and prints any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(Error("error: "+err.Error()) + "\n"))
	}
	return err
}
