package engine

import (
	"fmt"
	"math"
)

// VideoRef identifies one video and the URL it was parsed from.
type VideoRef struct {
	ID  string `json:"video_id"`
	URL string `json:"url"`
}

// WatchURL returns the canonical watch page URL for the video.
func (v VideoRef) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// Metadata is the human-readable title and channel of a watch page.
// Empty fields mean the page did not carry them.
type Metadata struct {
	Title   string `json:"title"`
	Channel string `json:"channel,omitempty"`
}

// Chapter is a named segment starting Start seconds into the video.
type Chapter struct {
	Start float64 `json:"start"`
	Label string  `json:"label"`
}

// Stamp renders the start offset as m:ss, or h:mm:ss from one hour on.
// Fractional seconds are dropped.
func (c Chapter) Stamp() string {
	total := int(math.Floor(c.Start))
	if total < 0 {
		total = 0
	}
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// CaptionFragment is one timed piece of a caption track.
type CaptionFragment struct {
	Text     string
	Start    float64
	Duration float64
}

// Mode selects the prompt template.
type Mode string

const (
	ModeTitle    Mode = "title"    // topics derived from the video title
	ModeChapters Mode = "chapters" // topics derived from chapters, inferred when there are none
	ModeDetailed Mode = "detailed" // overall summary first, then per-chapter or general detail
)

// ProviderKind names one of the supported text-generation services.
type ProviderKind string

const (
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderGemini    ProviderKind = "gemini"
)

// SummaryRequest fully determines the rendered prompt.
type SummaryRequest struct {
	Text     string
	Language string
	Title    string
	Chapters []Chapter
	Mode     Mode
}

// SummaryResult is the plain text returned by a provider.
type SummaryResult struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// --- MCP tool types ---

// VideoSummaryInput is the input for the video_summary tool.
type VideoSummaryInput struct {
	URL      string `json:"url" jsonschema:"YouTube watch URL (must contain a v= parameter)"`
	Language string `json:"language,omitempty" jsonschema:"Language of the summary (default: en)"`
	Provider string `json:"provider,omitempty" jsonschema:"Text generation provider: anthropic, openai or gemini"`
	Mode     string `json:"mode,omitempty" jsonschema:"Prompt mode: title, chapters or detailed"`
}

// VideoSummaryOutput is the structured output for video_summary.
type VideoSummaryOutput struct {
	VideoID  string    `json:"video_id"`
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Channel  string    `json:"channel,omitempty"`
	Chapters []Chapter `json:"chapters,omitempty"`
	Summary  string    `json:"summary"`
	Provider string    `json:"provider"`
	Model    string    `json:"model"`
}
