// Package view derives read-only projections of the journal: the calendar
// date index and the trailing-window query feeding emotion analysis. All
// functions are pure and recompute from the full collection on every call.
package view

import (
	"sort"
	"time"

	"github.com/moodlog-app/moodlog/pkg/entry"
)

// Day holds the entries recorded on one local calendar day, most recent
// first.
type Day struct {
	HasEntries bool
	Entries    []*entry.Entry
}

// DateIndex maps local calendar days (YYYY-MM-DD) to their entries.
type DateIndex map[string]Day

// IndexByDate buckets entries by local calendar day.
func IndexByDate(entries []*entry.Entry) DateIndex {
	index := make(DateIndex)
	for _, e := range entries {
		if e == nil {
			continue
		}
		key := e.Date.DayKey()
		day := index[key]
		day.HasEntries = true
		day.Entries = append(day.Entries, e)
		index[key] = day
	}
	for key := range index {
		SortDescending(index[key].Entries)
	}
	return index
}

// MarkedDays returns the sorted day keys that have at least one entry, for
// calendar highlighting.
func (ix DateIndex) MarkedDays() []string {
	days := make([]string, 0, len(ix))
	for key, day := range ix {
		if day.HasEntries {
			days = append(days, key)
		}
	}
	sort.Strings(days)
	return days
}

// EntriesForDay filters entries down to one local calendar day, most recent
// first. No entries on that day is an empty slice, not an error.
func EntriesForDay(entries []*entry.Entry, day string) []*entry.Entry {
	matched := make([]*entry.Entry, 0)
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.Date.DayKey() == day {
			matched = append(matched, e)
		}
	}
	SortDescending(matched)
	return matched
}

// RecentWindow filters entries to those recorded within the trailing window,
// lower bound inclusive. Order is unspecified; callers re-sort if they care.
// An empty result is valid; callers distinguish "no entries ever" from "no
// entries in window" themselves.
func RecentWindow(entries []*entry.Entry, days int, now time.Time) []*entry.Entry {
	cutoff := now.AddDate(0, 0, -days)
	recent := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if !e.Date.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	return recent
}

// SortDescending orders entries most recent first, breaking date ties by ID
// so repeated reads are stable.
func SortDescending(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left.Date.Equal(right.Date.Time) {
			return left.ID < right.ID
		}
		return left.Date.After(right.Date.Time)
	})
}
