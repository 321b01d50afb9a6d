package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/moodlog-app/moodlog/pkg/entry"
	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
)

// Edit replaces the feeling and/or emotion of an existing entry. Unset
// fields keep their stored value; the entry's id and date never change.
type Edit struct {
	ID      string
	Feeling string
	Emotion string

	Journal store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}
	if n.Feeling == "" && n.Emotion == "" {
		return errors.New("nothing to edit, set --feeling or --emotion")
	}

	all, err := n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}
	var existing *entry.Entry
	for _, e := range all {
		if e.ID == n.ID {
			existing = e
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", store.ErrNotFound, n.ID)
	}

	feeling := existing.Feeling
	if n.Feeling != "" {
		feeling = n.Feeling
	}
	emo := existing.Emotion
	if n.Emotion != "" {
		emo, err = entry.ParseEmotion(n.Emotion)
		if err != nil {
			return err
		}
	}

	updated, err := n.Journal.Update(ctx, n.ID, feeling, emo)
	if err != nil {
		return err
	}

	all, err = n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}
	day := view.EntriesForDay(all, updated.Date.DayKey())

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(updated.Date.DayKey(), len(day))
	pp.Entries(day...)

	return nil
}
