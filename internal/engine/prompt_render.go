package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// titlePrefixRe matches a leading bracketed prefix such as "[Channel] ".
var titlePrefixRe = regexp.MustCompile(`^\s*\[[^\]]+\]\s*`)

// SplitTitleTopics strips a leading bracketed prefix from title and splits
// the rest on "/" into trimmed, non-empty topics.
func SplitTitleTopics(title string) []string {
	cleaned := titlePrefixRe.ReplaceAllString(title, "")
	var topics []string
	for _, t := range strings.Split(cleaned, "/") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}

// BuildPrompt renders the instruction for req. Pure: equal requests give equal prompts.
//
// ModeChapters uses the chapter list when it is non-empty and asks the model
// to infer topics otherwise. ModeDetailed switches between per-chapter and
// general elaboration the same way. Any other mode uses the title topics.
func BuildPrompt(req SummaryRequest) string {
	switch req.Mode {
	case ModeChapters:
		if len(req.Chapters) > 0 {
			return fmt.Sprintf(promptChapterTopics, req.Language, numberedChapters(req.Chapters), req.Text)
		}
		return inferTopicsPrompt(req)
	case ModeDetailed:
		if len(req.Chapters) > 0 {
			return fmt.Sprintf(promptDetailedChapters, req.Language, chapterLines(req.Chapters), req.Text)
		}
		return fmt.Sprintf(promptDetailedGeneral, req.Language, req.Text)
	default:
		return titleTopicsPrompt(req)
	}
}

func titleTopicsPrompt(req SummaryRequest) string {
	instruction := ""
	if topics := SplitTitleTopics(req.Title); len(topics) > 0 {
		bracketed := make([]string, len(topics))
		for i, t := range topics {
			bracketed[i] = "[" + t + "]"
		}
		instruction = fmt.Sprintf(titleTopicsInstruction, strings.Join(bracketed, " "))
	}
	return fmt.Sprintf(promptTitleTopics, req.Language, instruction, req.Text)
}

func inferTopicsPrompt(req SummaryRequest) string {
	titleLine := inferNoTitleLine
	if req.Title != "" {
		titleLine = fmt.Sprintf(inferTitleLine, req.Title)
	}
	return fmt.Sprintf(promptInferTopics, req.Language, titleLine, req.Text)
}

// numberedChapters renders "- 1. [0:00] Intro" lines.
func numberedChapters(chapters []Chapter) string {
	lines := make([]string, len(chapters))
	for i, c := range chapters {
		lines[i] = fmt.Sprintf("- %d. [%s] %s", i+1, c.Stamp(), c.Label)
	}
	return strings.Join(lines, "\n")
}

// chapterLines renders "- [0:00] Intro" lines.
func chapterLines(chapters []Chapter) string {
	lines := make([]string, len(chapters))
	for i, c := range chapters {
		lines[i] = fmt.Sprintf("- [%s] %s", c.Stamp(), c.Label)
	}
	return strings.Join(lines, "\n")
}

// ParseMode maps a user-supplied mode name onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeTitle, ModeChapters, ModeDetailed:
		return m, nil
	case "":
		return ModeChapters, nil
	}
	return "", fmt.Errorf("unknown summary mode %q (want title, chapters or detailed)", s)
}
