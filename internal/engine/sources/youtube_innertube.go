package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
)

// YouTube Innertube API: constants, wire types and the single /player call
// used when a watch page carries no caption list.

const (
	ytAndroidVersion = "20.10.38"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"
)

// innertubePlayerURL is a var so tests can point it at an httptest server.
var innertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"

// --- ANDROID client types (/player endpoint) ---

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// playerCaptionView is the caption part of a player response. The watch
// page blob and the Innertube /player reply share this shape.
type playerCaptionView struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

func (v *playerCaptionView) tracks() []captionTrack {
	if v.Captions == nil {
		return nil
	}
	return v.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}

func (v *playerCaptionView) reason() string {
	if v.PlayabilityStatus == nil {
		return ""
	}
	return v.PlayabilityStatus.Reason
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// --- Timedtext XML types ---

// timedText covers both the legacy <transcript><text> format and srv3 <timedtext><body><p>.
type timedText struct {
	Lines []timedTextLine `xml:"text"`
	Paras []timedTextPara `xml:"body>p"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// timedTextPara times are milliseconds; the body may hold <s> word spans.
type timedTextPara struct {
	T     int64  `xml:"t,attr"`
	D     int64  `xml:"d,attr"`
	Inner string `xml:",innerxml"`
}

// fetchInnertubeTracks asks the ANDROID /player endpoint for the caption track list.
// A playability reason without tracks wraps engine.ErrNoCaptions; transport
// and HTTP failures do not. Single attempt.
func fetchInnertubeTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, innertubePlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("android innertube: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var view playerCaptionView
	if err := json.NewDecoder(io.LimitReader(resp.Body, 3*1024*1024)).Decode(&view); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	tracks := view.tracks()
	if len(tracks) == 0 {
		if r := view.reason(); r != "" {
			return nil, fmt.Errorf("%w: %s", engine.ErrNoCaptions, r)
		}
		return nil, nil
	}
	return tracks, nil
}
