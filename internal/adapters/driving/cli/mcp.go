package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelier-labs/vitrina/internal/adapters/driving/mcp"
	"github.com/atelier-labs/vitrina/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the catalog tools
to a conversational sales assistant.

By default, the server communicates over stdio using JSON-RPC. The
catalog file is watched while the server runs; edits are picked up
without a restart.

Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  vitrina mcp serve --catalog catalog.json

  # HTTP mode
  vitrina mcp serve --catalog catalog.json --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ctx := cmd.Context()
	if err := loadCatalog(ctx); err != nil {
		return err
	}

	// Hot reload: reinstall the catalog whenever the file changes. A
	// failed reload keeps the previous generation serving.
	if cfg.WatchCatalog != nil && flagCatalog != "" {
		watcher, err := cfg.WatchCatalog(flagCatalog)
		if err != nil {
			return fmt.Errorf("watching catalog: %w", err)
		}
		defer watcher.Close() //nolint:errcheck

		go func() {
			err := watcher.Watch(ctx, func() {
				logger.Info("Catalog file changed, reloading")
				if err := loadCatalog(ctx); err != nil {
					logger.Warn("Catalog reload failed: %v", err)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Catalog watcher stopped: %v", err)
			}
		}()
	}

	ports := &mcp.Ports{
		Search:    cfg.Search,
		Catalog:   cfg.Catalog,
		Recommend: cfg.Recommend,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
