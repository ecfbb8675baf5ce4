package sources

import (
	"errors"
	"testing"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"v after other params", "https://www.youtube.com/watch?feature=share&v=abc_-123&t=42", "abc_-123", false},
		{"short link", "https://youtu.be/xyz789?si=foo", "xyz789", false},
		{"no id", "https://www.youtube.com/channel/UC123", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, engine.ErrMalformedInput) {
					t.Fatalf("ExtractVideoID(%q) error = %v, want ErrMalformedInput", tt.url, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractVideoID(%q) unexpected error: %v", tt.url, err)
			}
			if ref.ID != tt.want {
				t.Errorf("ID = %q, want %q", ref.ID, tt.want)
			}
			if ref.URL != tt.url {
				t.Errorf("URL = %q, want %q", ref.URL, tt.url)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name string
		page string
		want engine.Metadata
	}{
		{
			name: "title and channel",
			page: `<html><head><title>Go Concurrency Patterns - YouTube</title></head>
<body><span itemprop="author"><link itemprop="url" href="x"><link itemprop="name" content="Google for Developers"></span></body></html>`,
			want: engine.Metadata{Title: "Go Concurrency Patterns - YouTube", Channel: "Google for Developers"},
		},
		{
			name: "missing channel",
			page: `<html><head><title>Only Title</title></head><body></body></html>`,
			want: engine.Metadata{Title: "Only Title"},
		},
		{
			name: "first title wins",
			page: `<title>First</title><svg><title>Icon</title></svg>`,
			want: engine.Metadata{Title: "First"},
		},
		{
			name: "unclosed tags",
			page: `<html><head><title>Broken</title><body><div><link itemprop="name" content="Chan">`,
			want: engine.Metadata{Title: "Broken", Channel: "Chan"},
		},
		{
			name: "empty page",
			page: ``,
			want: engine.Metadata{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMetadata([]byte(tt.page)); got != tt.want {
				t.Errorf("ParseMetadata() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `{"a":1};var x`, `{"a":1}`},
		{"nested", `{"a":{"b":[{}]}} trailing`, `{"a":{"b":[{}]}}`},
		{"brace in string", `{"t":"};{"};`, `{"t":"};{"}`},
		{"escaped quote", `{"t":"say \"}\""} x`, `{"t":"say \"}\""}`},
		{"escaped backslash", `{"t":"c:\\"}rest`, `{"t":"c:\\"}`},
		{"unterminated", `{"a":1`, ``},
		{"not an object", `[1]`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(extractJSON([]byte(tt.in))); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
