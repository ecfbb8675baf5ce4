package toolutil

import (
	"errors"
	"log/slog"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

func withConfig(t *testing.T, c engine.Config) {
	t.Helper()
	engine.Init(c)
	t.Cleanup(func() { engine.Init(engine.Config{}) })
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := LogLevel(tt.in); got != tt.want {
				t.Errorf("LogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormLang(t *testing.T) {
	withConfig(t, engine.Config{Language: "Korean"})
	if got := NormLang(""); got != "Korean" {
		t.Errorf("NormLang(\"\") = %q, want configured default", got)
	}
	if got := NormLang(" Spanish "); got != "Spanish" {
		t.Errorf("NormLang(\" Spanish \") = %q", got)
	}

	withConfig(t, engine.Config{})
	if got := NormLang(""); got != "en" {
		t.Errorf("NormLang(\"\") without default = %q, want en", got)
	}
}

func TestNewProvider(t *testing.T) {
	withConfig(t, engine.Config{Provider: "gemini"})

	tests := []struct {
		name     string
		in       string
		wantName string
		wantErr  bool
	}{
		{"configured default", "", "gemini", false},
		{"explicit", "openai", "openai", false},
		{"case insensitive", "Anthropic", "anthropic", false},
		{"unknown", "cohere", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && p.Name() != tt.wantName {
				t.Errorf("NewProvider(%q).Name() = %q, want %q", tt.in, p.Name(), tt.wantName)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	withConfig(t, engine.Config{Mode: "detailed"})
	if got, err := ParseMode(""); err != nil || got != engine.ModeDetailed {
		t.Errorf("ParseMode(\"\") = %q, %v; want detailed", got, err)
	}
	if got, err := ParseMode("title"); err != nil || got != engine.ModeTitle {
		t.Errorf("ParseMode(title) = %q, %v", got, err)
	}
	if _, err := ParseMode("short"); err == nil {
		t.Error("ParseMode(short) expected error")
	}
}

func TestFormatChapters(t *testing.T) {
	got := FormatChapters([]engine.Chapter{{Start: 0, Label: "Intro"}, {Start: 3723.4, Label: "Outro"}})
	want := "0:00 Intro\n1:02:03 Outro\n"
	if got != want {
		t.Errorf("FormatChapters() = %q, want %q", got, want)
	}
	if got := FormatChapters(nil); got != "" {
		t.Errorf("FormatChapters(nil) = %q, want empty", got)
	}
}

func TestShouldRenderExplicit(t *testing.T) {
	for in, want := range map[string]bool{"always": true, "true": true, "never": false, "FALSE": false} {
		if got := ShouldRender(in); got != want {
			t.Errorf("ShouldRender(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	out, err := RenderMarkdown(f, "# Heading\n\nSome *text*.")
	if err != nil {
		t.Fatalf("RenderMarkdown() error: %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("RenderMarkdown() = %q, want the heading text", out)
	}
}

func TestWrapWidth(t *testing.T) {
	tests := []struct {
		name string
		cols int
		err  error
		want int
	}{
		{"not a terminal", 0, errors.New("inappropriate ioctl for device"), 80},
		{"zero columns", 0, nil, 80},
		{"narrow", 10, nil, 20},
		{"regular", 90, nil, 88},
		{"wide", 240, nil, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapWidth(tt.cols, tt.err); got != tt.want {
				t.Errorf("wrapWidth(%d, %v) = %d, want %d", tt.cols, tt.err, got, tt.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("GEMINI_API_BASE", "http://localhost:9999")
	t.Setenv("SUMMARY_PROVIDER", "gemini")
	t.Setenv("SUMMARY_MODE", "title")
	t.Setenv("TRANSCRIPT_LANGS", "ko,en")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("STEALTH_FETCH", "false")

	c := ConfigFromEnv()
	if c.AnthropicAPIKey != "a-key" || c.GeminiAPIBase != "http://localhost:9999" {
		t.Errorf("credentials not read: %+v", c)
	}
	if c.Provider != "gemini" || c.Mode != "title" || c.Language != "en" {
		t.Errorf("defaults: provider=%q mode=%q lang=%q", c.Provider, c.Mode, c.Language)
	}
	if !reflect.DeepEqual(c.TranscriptLangs, []string{"ko", "en"}) {
		t.Errorf("TranscriptLangs = %q", c.TranscriptLangs)
	}
	if c.FetchTimeout != 3*time.Second || c.LLMTimeout != 45*time.Second {
		t.Errorf("timeouts = %v, %v", c.FetchTimeout, c.LLMTimeout)
	}
	if c.HTTPClient == nil || c.HTTPClient.Timeout != 3*time.Second {
		t.Error("HTTPClient should use FETCH_TIMEOUT")
	}
	if c.BrowserClient != nil {
		t.Error("BrowserClient should be nil when STEALTH_FETCH is off")
	}
}
