package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the wizard step machine",
	Long:  `Outputs a Mermaid diagram (graph TD) of the wizard steps, or the raw edges as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return cli.PrintGraph(cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", "mermaid", "Output format: mermaid or json")
}
