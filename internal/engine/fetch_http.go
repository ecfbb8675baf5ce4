package engine

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// maxBodyBytes caps every fetched body; watch pages run to a few MiB.
const maxBodyBytes = 8 * 1024 * 1024

// fetchBackoff controls retries of idempotent GETs. Provider calls never go through it.
var fetchBackoff = struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxTries        uint
}{
	InitialInterval: 1 * time.Second,
	MaxInterval:     10 * time.Second,
	MaxTries:        3,
}

// FetchPage fetches an HTML page and returns the raw body.
// Uses the stealth browser client when configured, falling back to net/http.
func FetchPage(ctx context.Context, pageURL string) (body []byte, err error) {
	metrics.PageFetches.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	if cfg.BrowserClient != nil {
		data, err := fetchViaBrowser(cfg.BrowserClient, pageURL)
		if err == nil {
			return data, nil
		}
		slog.Debug("browser fetch failed, falling back to net/http",
			slog.String("url", pageURL), slog.Any("error", err))
	}
	return FetchRaw(ctx, pageURL, true)
}

// FetchRaw performs a GET with retry and returns the body bytes.
// isHTML controls Accept headers: HTML for web pages, anything for media and XML.
func FetchRaw(ctx context.Context, rawURL string, isHTML bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	resp, err := fetchWithRetry(ctx, rawURL, isHTML)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	return body, nil
}

func fetchViaBrowser(bc *BrowserClient, pageURL string) ([]byte, error) {
	headers := ChromeHeaders()
	// Keep the body uncompressed; fhttp only decodes what it negotiated itself.
	delete(headers, "accept-encoding")
	data, _, status, err := bc.Do(http.MethodGet, pageURL, headers, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("status %d", status)
	}
	return data, nil
}

// fetchWithRetry performs an HTTP GET with retry logic using exponential backoff.
func fetchWithRetry(ctx context.Context, fetchURL string, isHTML bool) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		req.Header.Set("User-Agent", RandomUserAgent())
		if isHTML {
			req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
			req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		} else {
			req.Header.Set("Accept", "*/*")
		}
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := cfg.HTTPClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		if IsRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}

		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = fetchBackoff.InitialInterval
	bo.MaxInterval = fetchBackoff.MaxInterval

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(fetchBackoff.MaxTries),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(io.LimitReader(gz, maxBodyBytes))
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}
