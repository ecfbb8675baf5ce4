package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	PageFetches         atomic.Int64
	FetchErrors         atomic.Int64
	TranscriptRequests  atomic.Int64
	TranscriptErrors    atomic.Int64
	ChaptersStructured  atomic.Int64
	ChaptersDescription atomic.Int64
	ChaptersNone        atomic.Int64
	LLMCalls            atomic.Int64
	LLMErrors           atomic.Int64
	Summaries           atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"page_fetches":         metrics.PageFetches.Load(),
		"fetch_errors":         metrics.FetchErrors.Load(),
		"transcript_requests":  metrics.TranscriptRequests.Load(),
		"transcript_errors":    metrics.TranscriptErrors.Load(),
		"chapters_structured":  metrics.ChaptersStructured.Load(),
		"chapters_description": metrics.ChaptersDescription.Load(),
		"chapters_none":        metrics.ChaptersNone.Load(),
		"llm_calls":            metrics.LLMCalls.Load(),
		"llm_errors":           metrics.LLMErrors.Load(),
		"summaries":            metrics.Summaries.Load(),
	}
}

var metricKeys = []string{
	"page_fetches", "fetch_errors",
	"transcript_requests", "transcript_errors",
	"chapters_structured", "chapters_description", "chapters_none",
	"llm_calls", "llm_errors",
	"summaries",
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources sub-package.
func IncrTranscript()          { metrics.TranscriptRequests.Add(1) }
func IncrTranscriptError()     { metrics.TranscriptErrors.Add(1) }
func IncrChaptersStructured()  { metrics.ChaptersStructured.Add(1) }
func IncrChaptersDescription() { metrics.ChaptersDescription.Add(1) }
func IncrChaptersNone()        { metrics.ChaptersNone.Add(1) }
func IncrSummaries()           { metrics.Summaries.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, threshold time.Duration, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > threshold {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
