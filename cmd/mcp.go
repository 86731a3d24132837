package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheNeikos/diary/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMCPCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run MCP server on stdio",
		Long: `Starts a Model Context Protocol (MCP) server that exposes the diary
over stdio transport.

Available tools:
  - list_entries: List entries limited by date and filtered by label
  - cat_entry: Read an entry by hash prefix, or the latest one
  - add_entry: Add an entry stamped with the current time
  - label_entry: Add tags or categories to an entry

Example usage in an MCP client config:
  {
    "mcpServers": {
      "diary": {
        "command": "/path/to/diary",
        "args": ["mcp"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x := opts.executor(cmd)
			server := mcptools.CreateMCPServer(x)

			// stdout carries the protocol; logs go to stderr
			opts.logger.Info("starting MCP server", zap.String("transport", "stdio"),
				zap.String("content_dir", x.ContentDir))

			// Handle graceful shutdown
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					cancel()
				case <-ctx.Done():
				}
			}()

			return server.Run(ctx, &mcp.StdioTransport{})
		},
	}
}
