package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleSearch = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "잔잔한 팝송 모음",
        "description": "편안하게 듣기 좋은 노래들",
        "thumbnails": {"high": {"url": "https://example.com/thumb.jpg"}},
        "channelTitle": "Music Channel",
        "publishedAt": "2024-01-01T00:00:00Z"
      }
    }
  ]
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := &Client{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()}
	return c, srv.Close
}

func TestSearchMusic(t *testing.T) {
	var query string
	c, done := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleSearch))
	})
	defer done()

	videos, err := c.SearchMusic(context.Background(), "잔잔한 팝송")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("expected one video, got %d", len(videos))
	}
	v := videos[0]
	if v.VideoID != "abc123" || v.ChannelTitle != "Music Channel" {
		t.Fatalf("unexpected video: %#v", v)
	}
	if v.WatchURL() != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("unexpected watch url: %s", v.WatchURL())
	}

	for _, want := range []string{"maxResults=5", "type=video", "regionCode=KR"} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %s: %s", want, query)
		}
	}
}

func TestSearchMusicServerError(t *testing.T) {
	c, done := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})
	defer done()

	if _, err := c.SearchMusic(context.Background(), "팝송"); !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestSearchMusicEmptyKeyword(t *testing.T) {
	c := &Client{APIKey: "k"}
	if _, err := c.SearchMusic(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty keyword")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("가", 120)
	got := truncate(long, 100)
	if len([]rune(got)) != 103 {
		t.Fatalf("unexpected truncated length: %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("missing ellipsis: %s", got)
	}
	if truncate("short", 100) != "short" {
		t.Fatalf("short strings should pass through")
	}
}

func TestPickKeyword(t *testing.T) {
	if PickKeyword(nil) != "" {
		t.Fatalf("expected empty pick for no keywords")
	}
	if PickKeyword([]string{"only"}) != "only" {
		t.Fatalf("single keyword must be picked")
	}
	keywords := []string{"a", "b", "c"}
	pick := PickKeyword(keywords)
	found := false
	for _, k := range keywords {
		if k == pick {
			found = true
		}
	}
	if !found {
		t.Fatalf("pick %q not from list", pick)
	}
}
