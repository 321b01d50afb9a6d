package analysis

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/moodlog-app/moodlog/pkg/entry"
)

const validResponse = `{
  "summary": "전반적으로 안정적인 한 주였습니다.",
  "mainEmotion": {
    "primary": "평온",
    "intensity": 5,
    "emoji": "😌",
    "subEmotions": ["안정", "여유"]
  },
  "musicKeywords": ["잔잔한 팝송", "편안한 팝송"],
  "recommendations": [
    {"type": "활동", "title": "산책", "description": "가벼운 산책", "reason": "기분 유지"}
  ],
  "quotes": [
    {"text": "오늘도 수고했어요.", "author": "작자 미상", "context": "위로"}
  ]
}`

func TestParseResponse(t *testing.T) {
	result, err := ParseResponse(validResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MainEmotion.Primary != "평온" {
		t.Fatalf("unexpected main emotion: %s", result.MainEmotion.Primary)
	}
	if len(result.MusicKeywords) != 2 {
		t.Fatalf("unexpected keywords: %v", result.MusicKeywords)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Title != "산책" {
		t.Fatalf("unexpected recommendations: %v", result.Recommendations)
	}
}

func TestParseResponseFenced(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	result, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary == "" {
		t.Fatalf("summary lost")
	}
}

func TestParseResponseMalformed(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		`{"mainEmotion":{"primary":"평온"}}`,
		`{"summary":"요약만 있음"}`,
	}
	for _, raw := range cases {
		if _, err := ParseResponse(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse for %q, got %v", raw, err)
		}
	}
}

func TestBuildRequestPayload(t *testing.T) {
	when := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	entries := []*entry.Entry{
		{
			ID:      "abc",
			Feeling: "좋은 하루였다",
			Emotion: entry.FromGlyph("😊"),
			Date:    entry.Timestamp{Time: when},
		},
	}

	req, err := BuildRequest(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Instructions == "" {
		t.Fatalf("missing instructions")
	}
	payload := strings.TrimPrefix(req.Payload, "최근 감정 기록: ")
	if payload == req.Payload {
		t.Fatalf("payload missing preamble: %s", req.Payload)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	rec := records[0]
	if rec["id"] != "abc" || rec["primary"] != "기쁨" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["date"] != "2024-01-10T09:00:00Z" {
		t.Fatalf("unexpected date: %v", rec["date"])
	}
}

func TestBuildRequestEmpty(t *testing.T) {
	if _, err := BuildRequest(nil); err == nil {
		t.Fatalf("expected error for empty window")
	}
}
