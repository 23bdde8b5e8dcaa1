package cmd

import (
	"github.com/huangsam/vegwatch/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Vegwatch MCP server",
	Long:  `Launch an MCP server that allows AI agents to run change evaluations via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP mode talks over stdio, so setup must not require a samples path.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
