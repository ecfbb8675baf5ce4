package sources

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// FetchTranscript returns the caption text of a video as one space-joined string.
// Tracks are read from the watch page first; Innertube is asked when no page
// track is usable for the preferred languages.
// The first preferred language with a track wins; within a language a manual
// track beats an auto-generated one. Fails with engine.ErrNoCaptions when no
// track matches or the chosen track is empty.
func FetchTranscript(ctx context.Context, videoID string, page []byte, langs []string) (text string, err error) {
	engine.IncrTranscript()
	defer func() {
		if err != nil {
			engine.IncrTranscriptError()
		}
	}()
	if len(langs) == 0 {
		langs = engine.Cfg.TranscriptLangs
	}

	tracks := captionTracksFromPage(page)
	track, ok := pickTrack(tracks, langs)
	if !ok {
		slog.Debug("youtube: no usable caption track on page, asking innertube",
			slog.String("id", videoID), slog.Int("page_tracks", len(tracks)))
		tracks, err = fetchInnertubeTracks(ctx, videoID)
		if err != nil {
			slog.Warn("youtube: innertube track lookup failed",
				slog.String("id", videoID), slog.Any("error", err))
			return "", fmt.Errorf("caption tracks %s: %w", videoID, err)
		}
		track, ok = pickTrack(tracks, langs)
	}
	if !ok {
		return "", fmt.Errorf("%w: %s (languages %s)", engine.ErrNoCaptions, videoID, strings.Join(langs, ","))
	}
	slog.Debug("youtube: caption track chosen",
		slog.String("id", videoID), slog.String("lang", track.LanguageCode), slog.String("kind", track.Kind))

	body, err := engine.FetchRaw(ctx, track.BaseURL, false)
	if err != nil {
		return "", fmt.Errorf("caption track: %w", err)
	}
	fragments, err := parseTimedText(body)
	if err != nil {
		return "", fmt.Errorf("caption track: %w", err)
	}
	text = JoinFragments(fragments)
	if text == "" {
		return "", fmt.Errorf("%w: %s: track is empty", engine.ErrNoCaptions, videoID)
	}
	return text, nil
}

// captionTracksFromPage reads the caption track list out of the watch page player JSON.
func captionTracksFromPage(page []byte) []captionTrack {
	blob := scanPlayerResponse(page)
	if blob == nil {
		return nil
	}
	var view playerCaptionView
	if err := json.Unmarshal(blob, &view); err != nil {
		slog.Debug("youtube: caption list not parseable", slog.Any("error", err))
		return nil
	}
	return view.tracks()
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack selects the track for the first language in langs that has one.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	for _, lang := range langs {
		var generated *captionTrack
		for i, t := range tracks {
			if t.LanguageCode != lang || t.BaseURL == "" || needsPoToken(t.BaseURL) {
				continue
			}
			if t.Kind != "asr" {
				return t, true
			}
			if generated == nil {
				generated = &tracks[i]
			}
		}
		if generated != nil {
			return *generated, true
		}
	}
	return captionTrack{}, false
}

// parseTimedText decodes a timedtext XML document into fragments in document order.
func parseTimedText(body []byte) ([]engine.CaptionFragment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	fragments := make([]engine.CaptionFragment, 0, len(tt.Lines)+len(tt.Paras))
	for _, l := range tt.Lines {
		fragments = append(fragments, engine.CaptionFragment{Text: l.Text, Start: l.Start, Duration: l.Dur})
	}
	for _, p := range tt.Paras {
		fragments = append(fragments, engine.CaptionFragment{
			Text:     p.Inner,
			Start:    float64(p.T) / 1000,
			Duration: float64(p.D) / 1000,
		})
	}
	return fragments, nil
}

// JoinFragments cleans each fragment and joins the non-blank ones with single spaces.
func JoinFragments(fragments []engine.CaptionFragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		text := engine.CleanCaption(f.Text)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String()
}
