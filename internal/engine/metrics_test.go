package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatMetricsListsAllKeys(t *testing.T) {
	out := FormatMetrics()
	for _, k := range metricKeys {
		if !strings.Contains(out, k+" ") {
			t.Errorf("FormatMetrics() missing %q:\n%s", k, out)
		}
	}
	if n := strings.Count(out, "\n"); n != len(metricKeys) {
		t.Errorf("got %d lines, want %d", n, len(metricKeys))
	}
}

func TestIncrementors(t *testing.T) {
	before := GetMetrics()
	IncrSummaries()
	IncrChaptersNone()
	IncrTranscript()
	IncrTranscriptError()
	after := GetMetrics()

	for _, k := range []string{"summaries", "chapters_none", "transcript_requests", "transcript_errors"} {
		if after[k] != before[k]+1 {
			t.Errorf("%s: got %d, want %d", k, after[k], before[k]+1)
		}
	}
}

func TestTrackOperationPassesError(t *testing.T) {
	want := errors.New("boom")
	err := TrackOperation(context.Background(), "test", time.Hour, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Errorf("TrackOperation() = %v, want %v", err, want)
	}
}
