package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hokmsim. It is called once in main.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hokmsim",
		Short:         "Play simulated Hokm rounds between bots",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(NewRunCmd())
	return rootCmd
}
