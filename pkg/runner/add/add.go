package add

import (
	"context"
	"errors"

	"github.com/moodlog-app/moodlog/pkg/entry"
	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
)

type Add struct {
	Emotion string
	Feeling string
	ShowID  bool

	Journal store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	emo, err := entry.ParseEmotion(n.Emotion)
	if err != nil {
		return err
	}

	e, err := n.Journal.Create(ctx, n.Feeling, emo)
	if err != nil {
		return err
	}

	all, err := n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}
	today := view.EntriesForDay(all, e.Date.DayKey())

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(e.Date.DayKey(), len(today))
	pp.Entries(today...)

	return nil
}
