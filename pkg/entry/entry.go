package entry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moodlog-app/moodlog/pkg/emotion"
)

// Entry is one user-authored journal record. ID and Date are assigned by the
// store at creation and never change afterwards.
type Entry struct {
	ID      string       `json:"id"`
	Feeling string       `json:"feeling"`
	Emotion EmotionValue `json:"emotion"`
	Date    Timestamp    `json:"date"`
}

func New(feeling string, emo EmotionValue) *Entry {
	return &Entry{
		Feeling: feeling,
		Emotion: emo,
	}
}

// Row returns the display columns for table printers.
func (e *Entry) Row() (string, string, string) {
	tag := e.Emotion.Normalize()
	return tag.Emoji, tag.Primary, e.Feeling
}

func (e *Entry) String() string {
	tag := e.Emotion.Normalize()
	return fmt.Sprintf("%s %s  %s", tag.Emoji, tag.Primary, e.Feeling)
}

// EmotionValue is the storage shape of an entry's emotion. Older revisions of
// the journal persisted a bare glyph string, newer ones a structured tag.
// Both shapes are accepted on read and written back unchanged; Normalize
// collapses them to a Tag for everything downstream.
type EmotionValue struct {
	Glyph string
	Tag   *emotion.Tag
}

func FromTag(tag emotion.Tag) EmotionValue {
	return EmotionValue{Tag: &tag}
}

func FromGlyph(glyph string) EmotionValue {
	return EmotionValue{Glyph: glyph}
}

// ParseEmotion resolves user input into an EmotionValue: a primary category
// name or a known glyph becomes a structured tag. Anything else fails with
// emotion.ErrInvalidCategory.
func ParseEmotion(s string) (EmotionValue, error) {
	s = strings.TrimSpace(s)
	if tag, err := emotion.Lookup(s); err == nil {
		return FromTag(tag), nil
	}
	if tag, ok := emotion.ForGlyph(s); ok {
		return FromTag(tag), nil
	}
	return EmotionValue{}, fmt.Errorf("%w: %q", emotion.ErrInvalidCategory, s)
}

func (v EmotionValue) IsZero() bool {
	return v.Glyph == "" && v.Tag == nil
}

// Normalize yields the structured tag for either shape. Glyphs outside the
// taxonomy map to the unknown sentinel so downstream logic sees one shape.
func (v EmotionValue) Normalize() emotion.Tag {
	if v.Tag != nil {
		tag := *v.Tag
		tag.Intensity = emotion.Clamp(tag.Intensity)
		if tag.Primary == "" {
			return emotion.Unknown(tag.Emoji)
		}
		return tag
	}
	if tag, ok := emotion.ForGlyph(v.Glyph); ok {
		return tag
	}
	return emotion.Unknown(v.Glyph)
}

func (v EmotionValue) MarshalJSON() ([]byte, error) {
	if v.Tag != nil {
		return json.Marshal(v.Tag)
	}
	return json.Marshal(v.Glyph)
}

func (v *EmotionValue) UnmarshalJSON(b []byte) error {
	var glyph string
	if err := json.Unmarshal(b, &glyph); err == nil {
		*v = EmotionValue{Glyph: glyph}
		return nil
	}
	var tag emotion.Tag
	if err := json.Unmarshal(b, &tag); err != nil {
		return fmt.Errorf("emotion value is neither glyph nor tag: %w", err)
	}
	*v = EmotionValue{Tag: &tag}
	return nil
}
