// Package analysis shapes recent journal entries into the request contract
// of the external summarization collaborator and parses its structured
// response.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/moodlog-app/moodlog/pkg/entry"
)

var (
	// ErrMalformedResponse reports an analysis response missing the
	// required shape. The result is discarded wholesale, never partially
	// populated.
	ErrMalformedResponse = errors.New("analysis: malformed response")

	// ErrTransport reports a failed or timed-out collaborator call.
	ErrTransport = errors.New("analysis: request failed")
)

// Request is the payload sent to the summarization collaborator: a fixed
// system instruction plus the JSON-serialized recent entries.
type Request struct {
	Instructions string
	Payload      string
}

// Result is the structured analysis of the recent window.
type Result struct {
	Summary         string           `json:"summary"`
	MainEmotion     MainEmotion      `json:"mainEmotion"`
	MusicKeywords   []string         `json:"musicKeywords,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Quotes          []Quote          `json:"quotes,omitempty"`
}

type MainEmotion struct {
	Primary     string   `json:"primary"`
	Intensity   int      `json:"intensity"`
	Emoji       string   `json:"emoji"`
	SubEmotions []string `json:"subEmotions,omitempty"`
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type Quote struct {
	Text    string `json:"text"`
	Author  string `json:"author"`
	Context string `json:"context"`
}

// entryRecord is the wire shape of one entry inside the request payload.
type entryRecord struct {
	ID        string `json:"id"`
	Feeling   string `json:"feeling"`
	Primary   string `json:"primary"`
	Intensity int    `json:"intensity"`
	Date      string `json:"date"`
}

// BuildRequest serializes the recent-window entries for the collaborator.
func BuildRequest(entries []*entry.Entry) (Request, error) {
	if len(entries) == 0 {
		return Request{}, errors.New("analysis: no entries to analyze")
	}

	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		tag := e.Emotion.Normalize()
		records = append(records, entryRecord{
			ID:        e.ID,
			Feeling:   e.Feeling,
			Primary:   tag.Primary,
			Intensity: tag.Intensity,
			Date:      e.Date.String(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Instructions: instructions,
		Payload:      "최근 감정 기록: " + string(data),
	}, nil
}

// ParseResponse validates the collaborator's text payload against the Result
// shape. A missing summary or main emotion fails closed.
func ParseResponse(raw string) (*Result, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(result.Summary) == "" {
		return nil, fmt.Errorf("%w: missing summary", ErrMalformedResponse)
	}
	if strings.TrimSpace(result.MainEmotion.Primary) == "" {
		return nil, fmt.Errorf("%w: missing main emotion", ErrMalformedResponse)
	}
	return &result, nil
}
