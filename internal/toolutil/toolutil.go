// Package toolutil provides helpers shared by the go_ytsum CLI and MCP server:
// environment configuration, provider/mode defaults and terminal rendering.
package toolutil

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ConfigFromEnv reads the engine configuration from the environment.
// Call after .env has been loaded.
func ConfigFromEnv() engine.Config {
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 15*time.Second)
	c := engine.Config{
		AnthropicAPIKey:  env.Str("ANTHROPIC_API_KEY", ""),
		AnthropicAPIBase: env.Str("ANTHROPIC_API_BASE", ""),
		OpenAIAPIKey:     env.Str("OPENAI_API_KEY", ""),
		OpenAIAPIBase:    env.Str("OPENAI_API_BASE", ""),
		GeminiAPIKey:     env.Str("GEMINI_API_KEY", ""),
		GeminiAPIBase:    env.Str("GEMINI_API_BASE", ""),
		Provider:         env.Str("SUMMARY_PROVIDER", string(engine.ProviderAnthropic)),
		Mode:             env.Str("SUMMARY_MODE", string(engine.ModeChapters)),
		Language:         env.Str("SUMMARY_LANG", "en"),
		TranscriptLangs:  env.List("TRANSCRIPT_LANGS", "en,es,ko"),
		FetchTimeout:     fetchTimeout,
		LLMTimeout:       env.Duration("LLM_TIMEOUT", 120*time.Second),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if env.Str("STEALTH_FETCH", "false") == "true" {
		bc, err := engine.NewBrowserClient(int(fetchTimeout/time.Second), env.Str("WEBSHARE_API_KEY", ""))
		if err != nil {
			slog.Warn("stealth client init failed, using net/http", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Debug("stealth browser client initialized")
		}
	}
	return c
}

// LogLevel maps a LOG_LEVEL value to a slog level. Unknown values mean info.
func LogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NormLang normalises a language field: empty string → configured default, then "en".
func NormLang(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	if engine.Cfg.Language != "" {
		return engine.Cfg.Language
	}
	return "en"
}

// NewProvider builds the named provider from the engine credentials.
// An empty name selects the configured default provider.
func NewProvider(name string) (engine.Provider, error) {
	if strings.TrimSpace(name) == "" {
		name = engine.Cfg.Provider
	}
	kind, err := engine.ParseProvider(name)
	if err != nil {
		return nil, err
	}
	return engine.NewProvider(kind, engine.Cfg.Credentials())
}

// ParseMode parses a mode name; empty selects the configured default mode.
func ParseMode(name string) (engine.Mode, error) {
	if strings.TrimSpace(name) == "" {
		name = engine.Cfg.Mode
	}
	return engine.ParseMode(name)
}

// FormatChapters renders chapters one per line as "m:ss Label".
func FormatChapters(chapters []engine.Chapter) string {
	var sb strings.Builder
	for _, c := range chapters {
		fmt.Fprintf(&sb, "%s %s\n", c.Stamp(), c.Label)
	}
	return sb.String()
}

// ShouldRender decides whether markdown goes through glamour.
// setting is RENDER_MARKDOWN: "always", "never" or "auto" (stdout is a terminal).
func ShouldRender(setting string) bool {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "always", "true":
		return true
	case "never", "false":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

const (
	defaultWrap = 80
	maxWrap     = 100
)

// RenderMarkdown renders content with glamour for the terminal behind out,
// wrapped to its width and styled for its color profile.
func RenderMarkdown(out *os.File, content string) (string, error) {
	cols, _, sizeErr := term.GetSize(int(out.Fd()))
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth(cols, sizeErr)),
		glamour.WithColorProfile(termenv.NewOutput(out).EnvColorProfile()),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	rendered, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return rendered, nil
}

// wrapWidth keeps a two-column margin and caps long lines at maxWrap.
func wrapWidth(cols int, err error) int {
	if err != nil || cols <= 0 {
		return defaultWrap
	}
	return min(max(cols-2, 20), maxWrap)
}

// InitLogging installs a text slog handler on stderr at the given LOG_LEVEL.
func InitLogging(level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: LogLevel(level),
	})))
}
