package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"regexp"
	"time"

	"go.uber.org/zap"
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([\w-]{11})`),
	regexp.MustCompile(`youtu\.be/([\w-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([\w-]{11})`),
}

var (
	innertubeKeyRe = regexp.MustCompile(`"INNERTUBE_API_KEY":"([^"]+)"`)
	fmtParamRe     = regexp.MustCompile(`&fmt=\w+$`)
)

// ExtractVideoID parses the 11-character video id out of a watch,
// short or embed URL, returning "" when none matches.
func ExtractVideoID(url string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// Client retrieves auto-generated English captions through YouTube's
// internal player API, using the API key embedded in the watch page.
// A missing transcript is an expected outcome, not an error: Fetch
// returns no lines and logs the reason.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	Logger  *zap.Logger
}

func NewClient(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: "https://www.youtube.com",
		Logger:  logger,
	}
}

// Fetch returns the ordered English caption lines for videoID, or nil
// when no transcript can be obtained.
func (c *Client) Fetch(ctx context.Context, videoID string) []string {
	apiKey := c.innertubeKey(ctx, videoID)
	if apiKey == "" {
		c.Logger.Warn("no innertube api key", zap.String("video_id", videoID))
		return nil
	}

	trackURL := c.captionTrackURL(ctx, videoID, apiKey)
	if trackURL == "" {
		c.Logger.Warn("no english caption track", zap.String("video_id", videoID))
		return nil
	}

	return c.captionLines(ctx, trackURL)
}

// innertubeKey scrapes INNERTUBE_API_KEY from the watch page markup.
func (c *Client) innertubeKey(ctx context.Context, videoID string) string {
	body, err := c.getBody(ctx, c.BaseURL+"/watch?v="+videoID)
	if err != nil {
		c.Logger.Warn("watch page fetch failed", zap.String("video_id", videoID), zap.Error(err))
		return ""
	}
	if m := innertubeKeyRe.FindSubmatch(body); m != nil {
		return string(m[1])
	}
	return ""
}

// captionTrackURL calls the player endpoint and returns the English
// caption track URL with any fmt parameter stripped so the track comes
// back as XML.
func (c *Client) captionTrackURL(ctx context.Context, videoID, apiKey string) string {
	payload := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    "ANDROID",
				"clientVersion": "20.10.38",
			},
		},
		"videoId": videoID,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/youtubei/v1/player?key="+apiKey, bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Warn("player endpoint failed", zap.String("video_id", videoID), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	var data struct {
		Captions struct {
			PlayerCaptionsTracklistRenderer struct {
				CaptionTracks []struct {
					BaseURL      string `json:"baseUrl"`
					LanguageCode string `json:"languageCode"`
				} `json:"captionTracks"`
			} `json:"playerCaptionsTracklistRenderer"`
		} `json:"captions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ""
	}
	for _, track := range data.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks {
		if track.LanguageCode == "en" && track.BaseURL != "" {
			return fmtParamRe.ReplaceAllString(track.BaseURL, "")
		}
	}
	return ""
}

// captionLines downloads the XML caption track and returns the text
// nodes in document order.
func (c *Client) captionLines(ctx context.Context, trackURL string) []string {
	body, err := c.getBody(ctx, trackURL)
	if err != nil {
		c.Logger.Warn("caption track fetch failed", zap.Error(err))
		return nil
	}
	var doc struct {
		Texts []struct {
			Value string `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		c.Logger.Warn("caption track parse failed", zap.Error(err))
		return nil
	}
	lines := make([]string, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		lines = append(lines, t.Value)
	}
	return lines
}

func (c *Client) getBody(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
