package sources

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/google/uuid"
)

// slowSummary is the provider latency above which a run logs a warning.
const slowSummary = 60 * time.Second

// SummarizeOptions configures one SummarizeVideo run.
type SummarizeOptions struct {
	URL             string
	Language        string
	Mode            engine.Mode
	TranscriptLangs []string // nil = engine.Cfg.TranscriptLangs
	ThumbnailDir    string   // "" = do not save a thumbnail
}

// VideoSummary is everything one run produced.
type VideoSummary struct {
	Video         engine.VideoRef
	Metadata      engine.Metadata
	Chapters      []engine.Chapter
	Result        engine.SummaryResult
	ThumbnailPath string
}

// Output converts the summary into the video_summary tool output.
func (s *VideoSummary) Output() engine.VideoSummaryOutput {
	return engine.VideoSummaryOutput{
		VideoID:  s.Video.ID,
		URL:      s.Video.URL,
		Title:    s.Metadata.Title,
		Channel:  s.Metadata.Channel,
		Chapters: s.Chapters,
		Summary:  s.Result.Text,
		Provider: s.Result.Provider,
		Model:    s.Result.Model,
	}
}

// SummarizeVideo runs the whole pipeline for one watch URL: the page is
// fetched once and shared by metadata, chapter and caption extraction,
// then the transcript is summarized by p. A failed thumbnail download is
// logged and does not fail the run.
func SummarizeVideo(ctx context.Context, p engine.Provider, opts SummarizeOptions) (*VideoSummary, error) {
	runID := uuid.NewString()
	log := slog.With(slog.String("run", runID))
	start := time.Now()

	ref, err := ExtractVideoID(opts.URL)
	if err != nil {
		return nil, err
	}
	log.Info("youtube: summarizing", slog.String("id", ref.ID), slog.String("provider", p.Name()))

	// Short links redirect; fetch the watch page directly.
	pageURL := ref.URL
	if !videoIDRE.MatchString(pageURL) {
		pageURL = ref.WatchURL()
	}
	page, err := engine.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	out := &VideoSummary{
		Video:    ref,
		Metadata: ParseMetadata(page),
		Chapters: ExtractChapters(page),
	}
	log.Debug("youtube: page parsed",
		slog.String("title", out.Metadata.Title),
		slog.String("channel", out.Metadata.Channel),
		slog.Int("chapters", len(out.Chapters)))

	transcript, err := FetchTranscript(ctx, ref.ID, page, opts.TranscriptLangs)
	if err != nil {
		return nil, err
	}
	log.Debug("youtube: transcript",
		slog.Int("runes", len([]rune(transcript))),
		slog.String("preview", engine.TruncateRunes(transcript, 80, "...")))

	mode := opts.Mode
	if mode == "" {
		mode = engine.ModeChapters
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	req := engine.SummaryRequest{
		Text:     transcript,
		Language: lang,
		Title:    out.Metadata.Title,
		Chapters: out.Chapters,
		Mode:     mode,
	}
	err = engine.TrackOperation(ctx, "summarize", slowSummary, func(ctx context.Context) error {
		var err error
		out.Result, err = engine.Summarize(ctx, p, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	if opts.ThumbnailDir != "" {
		path, err := SaveThumbnail(ctx, ref.ID, opts.ThumbnailDir)
		if err != nil {
			log.Warn("youtube: thumbnail not saved", slog.String("id", ref.ID), slog.Any("error", err))
		} else {
			out.ThumbnailPath = path
		}
	}

	engine.IncrSummaries()
	log.Info("youtube: summary done",
		slog.String("id", ref.ID),
		slog.String("model", out.Result.Model),
		slog.Duration("elapsed", time.Since(start)))
	return out, nil
}
