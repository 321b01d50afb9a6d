// Package youtube is a thin client for the video-recommendation
// collaborator. It searches for music videos matching one keyword produced
// by the analysis step.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	maxResults     = 5
	descriptionMax = 100
)

// ErrTransport reports a failed or timed-out search call.
var ErrTransport = errors.New("youtube: request failed")

// Video is one recommended result. Opening a result navigates to the
// external URL built by WatchURL.
type Video struct {
	Title        string
	Description  string
	Thumbnail    string
	VideoID      string
	ChannelTitle string
	PublishedAt  time.Time
}

func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.VideoID
}

// Client calls the search API. BaseURL and HTTPClient are optional and
// default sensibly.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: missing api key")
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// PickKeyword chooses one element of the keyword list, matching the
// collaborator contract of searching a single arbitrary keyword.
func PickKeyword(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return keywords[rand.Intn(len(keywords))]
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
			ChannelTitle string    `json:"channelTitle"`
			PublishedAt  time.Time `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchMusic returns up to five music videos for the keyword.
func (c *Client) SearchMusic(ctx context.Context, keyword string) ([]Video, error) {
	if keyword == "" {
		return nil, errors.New("youtube: empty keyword")
	}

	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("maxResults", fmt.Sprint(maxResults))
	params.Set("key", c.APIKey)
	params.Set("q", keyword)
	params.Set("type", "video")
	params.Set("regionCode", "KR")
	params.Set("videoDefinition", "high")
	params.Set("relevanceLanguage", "ko")
	params.Set("videoDuration", "medium")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, body)
	}

	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrTransport, err)
	}

	videos := make([]Video, 0, len(search.Items))
	for _, item := range search.Items {
		videos = append(videos, Video{
			Title:        item.Snippet.Title,
			Description:  truncate(item.Snippet.Description, descriptionMax),
			Thumbnail:    item.Snippet.Thumbnails.High.URL,
			VideoID:      item.ID.VideoID,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
