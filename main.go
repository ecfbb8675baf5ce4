// go_ytsum — summarize a YouTube video from the command line.
//
// Usage: go_ytsum <youtube_url>
//
//	go_ytsum -    (summarize text read from stdin)
//
// Prints the title, channel and chapters of the video followed by a
// markdown summary of its captions, and saves thumbnail.jpg in the working
// directory. With "-" the text on stdin is summarized instead, titled by
// SUMMARY_TITLE when set. Configuration comes from the environment and an
// optional .env.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/anatolykoptev/go_ytsum/internal/engine/sources"
	"github.com/anatolykoptev/go_ytsum/internal/toolutil"
	"github.com/joho/godotenv"
)

const (
	usage    = "usage: go_ytsum <youtube_url | ->"
	stdinArg = "-"
)

var errUsage = errors.New(usage)

func main() {
	arg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env not loaded: %v\n", err)
	}
	toolutil.InitLogging(env.Str("LOG_LEVEL", "info"))
	engine.Init(toolutil.ConfigFromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, arg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs accepts exactly one positional argument: the watch URL or "-".
func parseArgs(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", errUsage
	}
	return args[0], nil
}

func run(ctx context.Context, arg string, in io.Reader, w io.Writer) error {
	provider, err := toolutil.NewProvider("")
	if err != nil {
		return err
	}
	mode, err := toolutil.ParseMode("")
	if err != nil {
		return err
	}
	if arg == stdinArg {
		return summarizeText(ctx, provider, mode, in, w)
	}

	summary, err := sources.SummarizeVideo(ctx, provider, sources.SummarizeOptions{
		URL:          arg,
		Language:     toolutil.NormLang(""),
		Mode:         mode,
		ThumbnailDir: ".",
	})
	if err != nil {
		return err
	}
	printSummary(w, summary, forTerminal(summary.Result.Text))
	return nil
}

// summarizeText summarizes free text read from in, with no video behind it.
func summarizeText(ctx context.Context, provider engine.Provider, mode engine.Mode, in io.Reader, w io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return errors.New("no text on stdin")
	}
	res, err := engine.Summarize(ctx, provider, engine.SummaryRequest{
		Text:     text,
		Language: toolutil.NormLang(""),
		Title:    env.Str("SUMMARY_TITLE", ""),
		Mode:     mode,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, forTerminal(res.Text))
	return nil
}

// forTerminal renders markdown through glamour when RENDER_MARKDOWN allows it.
func forTerminal(text string) string {
	if !toolutil.ShouldRender(env.Str("RENDER_MARKDOWN", "auto")) {
		return text
	}
	rendered, err := toolutil.RenderMarkdown(os.Stdout, text)
	if err != nil {
		slog.Debug("markdown rendering failed, printing raw", slog.Any("error", err))
		return text
	}
	return rendered
}

// printSummary writes the header block, a separator and the summary text.
func printSummary(w io.Writer, s *sources.VideoSummary, text string) {
	fmt.Fprintf(w, "Title: %s\n", s.Metadata.Title)
	fmt.Fprintf(w, "Channel: %s\n", s.Metadata.Channel)
	if len(s.Chapters) > 0 {
		fmt.Fprintln(w, "Chapters:")
		fmt.Fprint(w, toolutil.FormatChapters(s.Chapters))
	}
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w, text)
}
