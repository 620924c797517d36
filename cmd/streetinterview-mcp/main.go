package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "streetinterview/internal/adapters/mcp"
	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/config"
	"streetinterview/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// stdout carries the protocol
		os.Stderr.WriteString("streetinterview-mcp: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.NewStderr(cfg.Log)

	repo, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		logger.Fatal("failed to open storage", "err", err)
	}
	defer repo.Close()

	mcpServer := server.NewMCPServer(
		"streetinterview-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.Register(mcpServer, mcpadapter.NewTools(repo, logger))

	logger.Info("serving on stdio", "backend", cfg.Storage.Backend, "location", repo.Location())
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "err", err)
		repo.Close()
		os.Exit(1)
	}
}
