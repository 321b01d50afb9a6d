package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/moodlog-app/moodlog/pkg/emotion"
	"github.com/moodlog-app/moodlog/pkg/entry"
)

// memKV is an in-memory stand-in for the durable collaborator.
type memKV struct {
	values  map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.failSet {
		return errors.New("write refused")
	}
	m.values[key] = value
	return nil
}

func (m *memKV) Clear(_ context.Context) error {
	m.values = map[string]string{}
	return nil
}

func joy(t *testing.T) entry.EmotionValue {
	t.Helper()
	tag, err := emotion.Lookup("기쁨")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	return entry.FromTag(tag)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(newMemKV())

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		e, err := j.Create(ctx, "오늘도 기록", joy(t))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if e.ID == "" || seen[e.ID] {
			t.Fatalf("id not unique: %q", e.ID)
		}
		if e.Date.IsZero() {
			t.Fatalf("date not assigned")
		}
		seen[e.ID] = true
	}

	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(all))
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(newMemKV())

	if _, err := j.Create(ctx, "", joy(t)); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty feeling: expected ErrValidation, got %v", err)
	}
	if _, err := j.Create(ctx, "   ", joy(t)); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank feeling: expected ErrValidation, got %v", err)
	}
	if _, err := j.Create(ctx, "기록", entry.EmotionValue{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing emotion: expected ErrValidation, got %v", err)
	}

	long := make([]rune, MaxFeelingLen+1)
	for i := range long {
		long[i] = '가'
	}
	if _, err := j.Create(ctx, string(long), joy(t)); !errors.Is(err, ErrValidation) {
		t.Fatalf("overlong feeling: expected ErrValidation, got %v", err)
	}
	if _, err := j.Create(ctx, string(long[1:]), joy(t)); err != nil {
		t.Fatalf("feeling at the limit should pass: %v", err)
	}
}

func TestUpdatePreservesIDAndDate(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(newMemKV())

	created, err := j.Create(ctx, "처음", joy(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sad, err := entry.ParseEmotion("슬픔")
	if err != nil {
		t.Fatalf("parse emotion: %v", err)
	}
	updated, err := j.Update(ctx, created.ID, "수정됨", sad)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update")
	}
	if !updated.Date.Equal(created.Date.Time) {
		t.Fatalf("date changed on update")
	}

	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one entry, got %d", len(all))
	}
	if all[0].Feeling != "수정됨" {
		t.Fatalf("feeling not replaced: %s", all[0].Feeling)
	}
	if all[0].Emotion.Normalize().Primary != "슬픔" {
		t.Fatalf("emotion not replaced: %#v", all[0].Emotion)
	}
}

func TestUpdateMissing(t *testing.T) {
	j := NewJournal(newMemKV())
	if _, err := j.Update(context.Background(), "nope", "수정", joy(t)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	j := NewJournal(newMemKV())

	e, err := j.Create(ctx, "지울 기록", joy(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := j.Delete(ctx, e.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := j.Delete(ctx, e.ID); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("entry still present after delete")
	}
}

func TestCorruptedPayloadSelfHeals(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.values[EntriesKey] = "{definitely not an array"
	j := NewJournal(kv)

	if _, err := j.ListAll(ctx); !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if kv.values[EntriesKey] != "[]" {
		t.Fatalf("store not reinitialized: %q", kv.values[EntriesKey])
	}

	// Reported exactly once; the healed store is usable afterwards.
	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("second list after heal: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty collection, got %d", len(all))
	}
	if _, err := j.Create(ctx, "회복 후 기록", joy(t)); err != nil {
		t.Fatalf("create after heal: %v", err)
	}
}

func TestFailedWriteLeavesStateConsistent(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	j := NewJournal(kv)

	if _, err := j.Create(ctx, "남는 기록", joy(t)); err != nil {
		t.Fatalf("create: %v", err)
	}
	persisted := kv.values[EntriesKey]

	kv.failSet = true
	if _, err := j.Create(ctx, "실패할 기록", joy(t)); err == nil {
		t.Fatalf("expected write failure to surface")
	}
	kv.failSet = false

	if kv.values[EntriesKey] != persisted {
		t.Fatalf("persisted payload changed on failed write")
	}
	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("in-memory state diverged: %d entries", len(all))
	}
}

func TestReadYourWritesAcrossSessions(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	first := NewJournal(kv)
	e, err := first.Create(ctx, "세션 확인", joy(t))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second := NewJournal(kv)
	all, err := second.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != e.ID {
		t.Fatalf("entry not visible to a fresh session")
	}
}

func TestLegacyGlyphPayloadAccepted(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.values[EntriesKey] = `[{"id":"1700000000000","feeling":"옛날 기록","emotion":"😔","date":"2024-01-01T10:00:00Z"}]`

	j := NewJournal(kv)
	all, err := j.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("legacy entry dropped")
	}
	if all[0].Emotion.Normalize().Primary != "슬픔" {
		t.Fatalf("legacy glyph not normalized: %#v", all[0].Emotion)
	}

	// Writing back preserves the legacy shape on the wire.
	if _, err := j.Create(ctx, "새 기록", joy(t)); err != nil {
		t.Fatalf("create: %v", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(kv.values[EntriesKey]), &raw); err != nil {
		t.Fatalf("persisted payload unreadable: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 persisted entries, got %d", len(raw))
	}
}
