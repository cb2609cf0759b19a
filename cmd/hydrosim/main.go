package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hydrosim",
		Short: "Run the hydroponics control loop headless.",
		Long: `hydrosim drives the drift, plan and apply loop without the HTTP server. ` +
			`It prints every tick's readings and the corrections planned for them.`,
		SilenceUsage: true,
	}
	root.AddCommand(newSimulateCmd(), newProfileCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
