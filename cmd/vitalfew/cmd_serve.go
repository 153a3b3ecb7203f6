package main

import (
	"context"

	"github.com/spf13/cobra"

	"vitalfew/internal/insight"
	"vitalfew/internal/logging"
	mcpserver "vitalfew/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	multipliers string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for editor integration",
	Long: `Starts an MCP server over stdin/stdout exposing the Pareto analysis tools
(analyze_pareto, decompose_dimensions, generate_insights, compare_scenarios).

The server monitors for parent process death. When the editor disconnects or
restarts its extension host, the server self-terminates to prevent zombie
processes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.multipliers, "multipliers", "", "YAML file overriding the financial multiplier table")
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := mcpserver.NewServer()

	if serveFlags.multipliers != "" {
		t, err := insight.LoadTable(serveFlags.multipliers)
		if err != nil {
			return err
		}
		srv.Multipliers = t
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting vitalfew MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
