package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/cmdassist/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the catalog and the wizard as MCP tools for AI agents.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse (--sse): Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}

		port := 0
		if sse, _ := cmd.Flags().GetBool("sse"); sse {
			port, _ = cmd.Flags().GetInt("port")
		}
		return cli.ServeMCP(cfg, debugFlag(cmd), port)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().Bool("sse", false, "Serve over SSE instead of stdio")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only with --sse)")
}
