package sources

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// playerChapterView is the slice of ytInitialPlayerResponse that holds chapters.
// Every level is a pointer so a missing key decodes to nil instead of failing.
type playerChapterView struct {
	PlayerOverlays *struct {
		PlayerOverlayRenderer *struct {
			DecoratedPlayerBarRenderer *struct {
				DecoratedPlayerBarRenderer *struct {
					PlayerBar *struct {
						ChapteredPlayerBarRenderer *struct {
							Chapters []json.RawMessage `json:"chapters"`
						} `json:"chapteredPlayerBarRenderer"`
					} `json:"playerBar"`
				} `json:"decoratedPlayerBarRenderer"`
			} `json:"decoratedPlayerBarRenderer"`
		} `json:"playerOverlayRenderer"`
	} `json:"playerOverlays"`
}

// chapters walks the view, returning nil at the first absent step.
func (v *playerChapterView) chapters() []json.RawMessage {
	po := v.PlayerOverlays
	if po == nil || po.PlayerOverlayRenderer == nil {
		return nil
	}
	outer := po.PlayerOverlayRenderer.DecoratedPlayerBarRenderer
	if outer == nil || outer.DecoratedPlayerBarRenderer == nil {
		return nil
	}
	bar := outer.DecoratedPlayerBarRenderer.PlayerBar
	if bar == nil || bar.ChapteredPlayerBarRenderer == nil {
		return nil
	}
	return bar.ChapteredPlayerBarRenderer.Chapters
}

// rawChapter is one chapters[] entry. Current pages wrap it in chapterRenderer.
type rawChapter struct {
	Title *struct {
		SimpleText *string `json:"simpleText"`
	} `json:"title"`
	TimeRangeStartMillis json.RawMessage `json:"timeRangeStartMillis"`
	ChapterRenderer      *rawChapter     `json:"chapterRenderer"`
}

// ExtractChapters returns the chapter markers of a watch page: the player
// JSON when it has any, otherwise timestamps in the description. The result
// may be empty; parsing problems never surface as errors.
func ExtractChapters(page []byte) []engine.Chapter {
	if chapters := ChaptersFromPlayer(page); len(chapters) > 0 {
		engine.IncrChaptersStructured()
		slog.Debug("youtube: chapters from player response", slog.Int("count", len(chapters)))
		return chapters
	}
	if chapters := ChaptersFromDescription(pageDescription(page)); len(chapters) > 0 {
		engine.IncrChaptersDescription()
		slog.Debug("youtube: chapters from description", slog.Int("count", len(chapters)))
		return chapters
	}
	engine.IncrChaptersNone()
	return nil
}

// ChaptersFromPlayer reads chapters from the ytInitialPlayerResponse blob.
// Returns nil when the blob is absent, unparseable or has no chapter list.
func ChaptersFromPlayer(page []byte) []engine.Chapter {
	blob := matchPlayerResponse(page)
	if blob == nil {
		return nil
	}
	var view playerChapterView
	if err := json.Unmarshal(blob, &view); err != nil {
		slog.Debug("youtube: player response not parseable", slog.Any("error", err))
		return nil
	}

	var chapters []engine.Chapter
	for _, raw := range view.chapters() {
		var rc rawChapter
		if err := json.Unmarshal(raw, &rc); err != nil {
			continue
		}
		if rc.ChapterRenderer != nil {
			rc = *rc.ChapterRenderer
		}
		if rc.Title == nil || rc.Title.SimpleText == nil || *rc.Title.SimpleText == "" {
			continue
		}
		ms, ok := parseMillis(rc.TimeRangeStartMillis)
		if !ok {
			continue
		}
		chapters = append(chapters, engine.Chapter{Start: ms / 1000, Label: *rc.Title.SimpleText})
	}
	return chapters
}

// parseMillis accepts a JSON number or a numeric JSON string.
func parseMillis(raw json.RawMessage) (float64, bool) {
	s := string(bytes.TrimSpace(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// descriptionChapterRE matches "1:24 Label" and "1:02:03 Label" lines.
var descriptionChapterRE = regexp.MustCompile(`^(\d+:\d+(?::\d+)?)\s+(.*)$`)

// ChaptersFromDescription collects timestamped lines from a video description,
// in line order. Lines without a leading timestamp or with an empty label are ignored.
func ChaptersFromDescription(description string) []engine.Chapter {
	if description == "" {
		return nil
	}
	var chapters []engine.Chapter
	for _, line := range strings.Split(description, "\n") {
		m := descriptionChapterRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[2])
		if label == "" {
			continue
		}
		chapters = append(chapters, engine.Chapter{Start: parseStamp(m[1]), Label: label})
	}
	return chapters
}

// parseStamp converts "m:ss" or "h:mm:ss" to seconds. Input is pre-validated by the regex.
func parseStamp(stamp string) float64 {
	var total int
	for _, part := range strings.Split(stamp, ":") {
		n, _ := strconv.Atoi(part)
		total = total*60 + n
	}
	return float64(total)
}
