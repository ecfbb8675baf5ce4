// go_ytsum-mcp — YouTube video summary MCP server.
//
// Exposes one MCP tool: video_summary.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/anatolykoptev/go_ytsum/internal/summaryserver"
	"github.com/anatolykoptev/go_ytsum/internal/toolutil"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn(".env not loaded", slog.Any("error", err))
	}
	toolutil.InitLogging(env.Str("LOG_LEVEL", "info"))
	engine.Init(toolutil.ConfigFromEnv())

	mcpPort := env.Str("MCP_PORT", "8893")
	slog.Info("starting go_ytsum-mcp",
		slog.String("port", mcpPort),
		slog.String("provider", engine.Cfg.Provider),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ytsum",
		Version: version,
	}, nil)

	summaryserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 1))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ytsum",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 300 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}
