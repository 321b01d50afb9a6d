package emotion

import (
	"errors"
	"fmt"
)

// ErrInvalidCategory is returned by Lookup for a category name outside the
// fixed taxonomy.
var ErrInvalidCategory = errors.New("emotion: invalid category")

// UnknownPrimary is the sentinel category assigned to legacy entries whose
// glyph matches none of the fixed categories.
const UnknownPrimary = "미분류"

const (
	minIntensity     = 1
	maxIntensity     = 10
	defaultIntensity = 5
)

// Tag is an immutable emotion classification: a display glyph, one of the
// fixed primary categories, and an intensity on a 1-10 scale.
type Tag struct {
	Emoji     string `json:"emoji"`
	Primary   string `json:"primary"`
	Intensity int    `json:"intensity"`
}

// Category is one row of the fixed taxonomy table.
type Category struct {
	Name      string
	Emoji     string
	Intensity int
	Meaning   string
}

// Categories returns the taxonomy table. This table is the single source of
// truth for entry creation and display-label resolution.
func Categories() []Category {
	return []Category{
		{Name: "기쁨", Emoji: "😊", Intensity: 8, Meaning: "joy"},
		{Name: "슬픔", Emoji: "😔", Intensity: 4, Meaning: "sadness"},
		{Name: "분노", Emoji: "😡", Intensity: 7, Meaning: "anger"},
		{Name: "불안", Emoji: "😰", Intensity: 6, Meaning: "anxiety"},
		{Name: "평온", Emoji: "😌", Intensity: 5, Meaning: "calm"},
		{Name: "설렘", Emoji: "🥰", Intensity: 8, Meaning: "excitement"},
		{Name: "지침", Emoji: "😫", Intensity: 3, Meaning: "exhaustion"},
		{Name: "허탈", Emoji: "😕", Intensity: 4, Meaning: "emptiness"},
	}
}

// Lookup resolves a primary category name to its default Tag.
func Lookup(primary string) (Tag, error) {
	for _, c := range Categories() {
		if c.Name == primary {
			return Tag{Emoji: c.Emoji, Primary: c.Name, Intensity: c.Intensity}, nil
		}
	}
	return Tag{}, fmt.Errorf("%w: %q", ErrInvalidCategory, primary)
}

// ForGlyph resolves a bare glyph back to its category Tag. Legacy entries
// stored only the glyph.
func ForGlyph(glyph string) (Tag, bool) {
	for _, c := range Categories() {
		if c.Emoji == glyph {
			return Tag{Emoji: c.Emoji, Primary: c.Name, Intensity: c.Intensity}, true
		}
	}
	return Tag{}, false
}

// Unknown builds the sentinel Tag carrying a raw glyph that resolves to no
// fixed category.
func Unknown(glyph string) Tag {
	return Tag{Emoji: glyph, Primary: UnknownPrimary, Intensity: defaultIntensity}
}

// Clamp bounds an externally supplied intensity to the 1-10 scale. Zero means
// unset and maps to the default.
func Clamp(intensity int) int {
	switch {
	case intensity == 0:
		return defaultIntensity
	case intensity < minIntensity:
		return minIntensity
	case intensity > maxIntensity:
		return maxIntensity
	default:
		return intensity
	}
}
