package sources

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// videoIDRE matches the v= query parameter; shortIDRE matches youtu.be links.
var (
	videoIDRE = regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]+)`)
	shortIDRE = regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`)
)

// ExtractVideoID returns the video reference named by rawURL.
// Fails with engine.ErrMalformedInput when the URL carries no identifier.
func ExtractVideoID(rawURL string) (engine.VideoRef, error) {
	if m := videoIDRE.FindStringSubmatch(rawURL); len(m) >= 2 {
		return engine.VideoRef{ID: m[1], URL: rawURL}, nil
	}
	if m := shortIDRE.FindStringSubmatch(rawURL); len(m) >= 2 {
		return engine.VideoRef{ID: m[1], URL: rawURL}, nil
	}
	return engine.VideoRef{}, fmt.Errorf("%w: no video id in %q", engine.ErrMalformedInput, rawURL)
}

// ParseMetadata reads the page title and channel name from watch page HTML.
// Missing fields are returned empty.
func ParseMetadata(page []byte) engine.Metadata {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return engine.Metadata{}
	}
	var md engine.Metadata
	md.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if channel, ok := doc.Find(`link[itemprop="name"]`).First().Attr("content"); ok {
		md.Channel = strings.TrimSpace(channel)
	}
	return md
}

// pageDescription returns the content of <meta itemprop="description">, or "".
func pageDescription(page []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return ""
	}
	desc, _ := doc.Find(`meta[itemprop="description"]`).First().Attr("content")
	return desc
}

// playerResponseRE captures the player JSON up to the first "};".
// A blob that contains "};" inside a string is cut short and fails to parse.
var playerResponseRE = regexp.MustCompile(`(?s)ytInitialPlayerResponse\s*=\s*(\{.*?\});`)

// playerResponseMarkerRE finds where the player JSON starts, for brace-depth extraction.
var playerResponseMarkerRE = regexp.MustCompile(`ytInitialPlayerResponse\s*=\s*`)

// matchPlayerResponse returns the player JSON matched by playerResponseRE, or nil.
func matchPlayerResponse(page []byte) []byte {
	m := playerResponseRE.FindSubmatch(page)
	if len(m) < 2 {
		return nil
	}
	return m[1]
}

// scanPlayerResponse returns the complete player JSON object using brace depth, or nil.
func scanPlayerResponse(page []byte) []byte {
	loc := playerResponseMarkerRE.FindIndex(page)
	if loc == nil {
		return nil
	}
	return extractJSON(page[loc[1]:])
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
