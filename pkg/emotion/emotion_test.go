package emotion

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tag, err := Lookup("기쁨")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Emoji != "😊" {
		t.Fatalf("unexpected emoji: %s", tag.Emoji)
	}
	if tag.Intensity != 8 {
		t.Fatalf("unexpected intensity: %d", tag.Intensity)
	}
}

func TestLookupInvalid(t *testing.T) {
	if _, err := Lookup("행복"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestCategoriesFixed(t *testing.T) {
	cats := Categories()
	if len(cats) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(cats))
	}
	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		if seen[c.Name] {
			t.Fatalf("duplicate category: %s", c.Name)
		}
		seen[c.Name] = true
		if _, err := Lookup(c.Name); err != nil {
			t.Fatalf("table entry %s not resolvable: %v", c.Name, err)
		}
	}
}

func TestForGlyph(t *testing.T) {
	tag, ok := ForGlyph("😫")
	if !ok {
		t.Fatalf("expected glyph to resolve")
	}
	if tag.Primary != "지침" {
		t.Fatalf("unexpected primary: %s", tag.Primary)
	}
	if _, ok := ForGlyph("🤖"); ok {
		t.Fatalf("expected unknown glyph to miss")
	}
}

func TestUnknown(t *testing.T) {
	tag := Unknown("🤖")
	if tag.Primary != UnknownPrimary {
		t.Fatalf("unexpected primary: %s", tag.Primary)
	}
	if tag.Emoji != "🤖" {
		t.Fatalf("raw glyph not carried: %s", tag.Emoji)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 5},
		{-3, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{42, 10},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in); got != tc.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
