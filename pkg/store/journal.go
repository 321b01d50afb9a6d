package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/moodlog-app/moodlog/pkg/entry"
)

var (
	// ErrValidation reports bad input to Create or Update: a missing or
	// over-long feeling, or a missing emotion.
	ErrValidation = errors.New("store: invalid entry")

	// ErrNotFound reports an Update target that does not exist. Delete is
	// idempotent and never returns it.
	ErrNotFound = errors.New("store: entry not found")

	// ErrCorrupted reports a persisted payload that failed to parse. The
	// store self-heals to an empty collection before returning it.
	ErrCorrupted = errors.New("store: corrupted entries payload")
)

// MaxFeelingLen is the feeling text limit, counted in runes.
const MaxFeelingLen = 500

// Store defines the journal contract runners depend on.
type Store interface {
	Create(ctx context.Context, feeling string, emo entry.EmotionValue) (*entry.Entry, error)
	Update(ctx context.Context, id, feeling string, emo entry.EmotionValue) (*entry.Entry, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entry.Entry, error)
}

var _ Store = (*Journal)(nil)

const emptyCollection = "[]"

// Journal owns the persisted entry collection. Every mutation rewrites the
// whole collection under one key; the in-memory copy is only swapped after
// the write succeeds, so a failed write leaves memory and storage on the
// previous consistent state.
type Journal struct {
	kv KV

	loaded  bool
	entries []*entry.Entry
}

func NewJournal(kv KV) *Journal {
	return &Journal{kv: kv}
}

// Create validates and persists a new entry, assigning its ID and creation
// time.
func (j *Journal) Create(ctx context.Context, feeling string, emo entry.EmotionValue) (*entry.Entry, error) {
	if err := validate(feeling, emo); err != nil {
		return nil, err
	}
	if err := j.load(ctx); err != nil {
		return nil, err
	}

	e := entry.New(feeling, emo)
	e.ID = uuid.NewString()
	e.Date = entry.Timestamp{Time: time.Now()}

	next := append(j.snapshot(), e)
	if err := j.persist(ctx, next); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the feeling and emotion of an existing entry. ID and Date
// never change.
func (j *Journal) Update(ctx context.Context, id, feeling string, emo entry.EmotionValue) (*entry.Entry, error) {
	if err := validate(feeling, emo); err != nil {
		return nil, err
	}
	if err := j.load(ctx); err != nil {
		return nil, err
	}

	next := j.snapshot()
	var updated *entry.Entry
	for i, e := range next {
		if e.ID != id {
			continue
		}
		edited := *e
		edited.Feeling = feeling
		edited.Emotion = emo
		next[i] = &edited
		updated = &edited
		break
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := j.persist(ctx, next); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the entry with the given id. Deleting an id that does not
// exist is a no-op.
func (j *Journal) Delete(ctx context.Context, id string) error {
	if err := j.load(ctx); err != nil {
		return err
	}

	next := make([]*entry.Entry, 0, len(j.entries))
	for _, e := range j.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(j.entries) {
		return nil
	}
	return j.persist(ctx, next)
}

// ListAll returns every stored entry. Ordering is a view-layer concern.
func (j *Journal) ListAll(ctx context.Context) ([]*entry.Entry, error) {
	if err := j.load(ctx); err != nil {
		return nil, err
	}
	return j.snapshot(), nil
}

func validate(feeling string, emo entry.EmotionValue) error {
	if strings.TrimSpace(feeling) == "" {
		return fmt.Errorf("%w: feeling is empty", ErrValidation)
	}
	if utf8.RuneCountInString(feeling) > MaxFeelingLen {
		return fmt.Errorf("%w: feeling longer than %d characters", ErrValidation, MaxFeelingLen)
	}
	if emo.IsZero() {
		return fmt.Errorf("%w: emotion is missing", ErrValidation)
	}
	return nil
}

// load reads the persisted collection once per Journal. A payload that does
// not parse as an entry array is discarded: the store reinitializes to an
// empty collection, persists that, and reports ErrCorrupted exactly once.
func (j *Journal) load(ctx context.Context) error {
	if j.loaded {
		return nil
	}

	raw, ok, err := j.kv.Get(ctx, EntriesKey)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		j.entries = nil
		j.loaded = true
		return nil
	}

	var entries []*entry.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		if err := j.kv.Set(ctx, EntriesKey, emptyCollection); err != nil {
			return err
		}
		j.entries = nil
		j.loaded = true
		return ErrCorrupted
	}

	j.entries = entries
	j.loaded = true
	return nil
}

func (j *Journal) persist(ctx context.Context, next []*entry.Entry) error {
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := j.kv.Set(ctx, EntriesKey, string(data)); err != nil {
		return err
	}
	j.entries = next
	return nil
}

func (j *Journal) snapshot() []*entry.Entry {
	return append([]*entry.Entry(nil), j.entries...)
}
