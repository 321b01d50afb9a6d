package get

import (
	"context"
	"errors"
	"time"

	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
)

type Get struct {
	On     string
	All    bool
	ShowID bool

	Journal store.Store
}

const layoutISO = "2006-01-02"

func (n *Get) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}

	all, err := n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	if n.All {
		index := view.IndexByDate(all)
		days := index.MarkedDays()
		// Most recent day first.
		for i := len(days) - 1; i >= 0; i-- {
			day := index[days[i]]
			pp.TitleWithCount(days[i], len(day.Entries))
			pp.Entries(day.Entries...)
		}
		if len(days) == 0 {
			pp.Title("journal")
			pp.Entries()
		}
		return nil
	}

	day := n.On
	if day == "" || day == "today" {
		day = time.Now().Format(layoutISO)
	} else if _, err := time.ParseInLocation(layoutISO, day, time.Local); err != nil {
		return err
	}

	entries := view.EntriesForDay(all, day)
	pp.TitleWithCount(day, len(entries))
	pp.Entries(entries...)

	return nil
}
