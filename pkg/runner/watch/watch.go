package watch

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
)

// Watch streams journal changes and reprints today's entries whenever the
// persisted collection changes, until the context is cancelled.
type Watch struct {
	ShowID bool

	KV store.KV
}

const layoutISO = "2006-01-02"

func (n *Watch) Do(ctx context.Context) error {
	if n.KV == nil {
		return errors.New("can not watch, no persistence")
	}
	watcher, ok := n.KV.(store.Watcher)
	if !ok {
		return errors.New("persistence does not support watching")
	}

	events, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	if err := n.printToday(ctx); err != nil {
		return err
	}

	for ev := range events {
		if ev.Key != store.EntriesKey {
			continue
		}
		if err := n.printToday(ctx); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// printToday reloads from a fresh journal so cached state never hides a
// change made by another process.
func (n *Watch) printToday(ctx context.Context) error {
	journal := store.NewJournal(n.KV)
	all, err := journal.ListAll(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCorrupted) {
			return err
		}
		// The store already healed itself; the user still needs to know.
		f := color.New(color.Faint)
		_, _ = f.Println("저장된 기록이 손상되어 빈 일기장으로 복구했습니다.")
	}

	day := time.Now().Format(layoutISO)
	entries := view.EntriesForDay(all, day)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(day, len(entries))
	pp.Entries(entries...)
	return nil
}
