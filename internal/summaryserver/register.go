package summaryserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/anatolykoptev/go_ytsum/internal/engine/sources"
	"github.com/anatolykoptev/go_ytsum/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the video summary tool on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerVideoSummary(server)
}

func registerVideoSummary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_summary",
		Description: "Summarize a YouTube video. Scrapes the watch page for title, channel, chapters and captions, then asks a text-generation provider (anthropic, openai or gemini) for a structured markdown summary. Modes: title (topics from the title), chapters (topics from chapters, inferred when absent), detailed (overall summary plus per-chapter detail).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.VideoSummaryInput) (*mcp.CallToolResult, engine.VideoSummaryOutput, error) {
		out, err := handleVideoSummary(ctx, input)
		if err != nil {
			slog.Warn("video_summary failed", slog.String("url", input.URL), slog.Any("error", err))
			return nil, engine.VideoSummaryOutput{}, err
		}
		return nil, out, nil
	})
}

func handleVideoSummary(ctx context.Context, input engine.VideoSummaryInput) (engine.VideoSummaryOutput, error) {
	if input.URL == "" {
		return engine.VideoSummaryOutput{}, errors.New("url is required")
	}
	mode, err := toolutil.ParseMode(input.Mode)
	if err != nil {
		return engine.VideoSummaryOutput{}, err
	}
	provider, err := toolutil.NewProvider(input.Provider)
	if err != nil {
		return engine.VideoSummaryOutput{}, err
	}

	summary, err := sources.SummarizeVideo(ctx, provider, sources.SummarizeOptions{
		URL:      input.URL,
		Language: toolutil.NormLang(input.Language),
		Mode:     mode,
	})
	if err != nil {
		return engine.VideoSummaryOutput{}, err
	}
	return summary.Output(), nil
}
