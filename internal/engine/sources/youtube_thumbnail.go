package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// ThumbnailFile is the name the thumbnail is saved under; it is overwritten on every run.
const ThumbnailFile = "thumbnail.jpg"

// thumbnailURLFormat takes the video ID. Tests swap it for an httptest URL.
var thumbnailURLFormat = "https://img.youtube.com/vi/%s/hqdefault.jpg"

// SaveThumbnail downloads the high-quality thumbnail of videoID into dir and
// returns the written path.
func SaveThumbnail(ctx context.Context, videoID, dir string) (string, error) {
	data, err := engine.FetchRaw(ctx, fmt.Sprintf(thumbnailURLFormat, videoID), false)
	if err != nil {
		return "", fmt.Errorf("thumbnail: %w", err)
	}
	path := filepath.Join(dir, ThumbnailFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("thumbnail: %w", err)
	}
	return path, nil
}
