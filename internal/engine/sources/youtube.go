// Package sources scrapes YouTube watch pages and runs the summary pipeline.
//
// The implementation is split across files by responsibility:
//
//	youtube_page.go       — video ID, page metadata and player JSON extraction
//	youtube_chapters.go   — chapter markers (player JSON first, description fallback)
//	youtube_innertube.go  — Innertube ANDROID /player types and request for caption tracks
//	youtube_transcript.go — caption track choice and timedtext parsing
//	youtube_thumbnail.go  — thumbnail download
//	youtube_summary.go    — the end-to-end pipeline for one URL
package sources
