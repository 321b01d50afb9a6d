package calendar

import (
	"context"
	"errors"
	"time"

	"github.com/moodlog-app/moodlog/pkg/printers"
	"github.com/moodlog-app/moodlog/pkg/store"
	"github.com/moodlog-app/moodlog/pkg/view"
)

const layoutMonth = "2006-01"

// Calendar prints one month of the journal with recorded days highlighted.
type Calendar struct {
	Month    string
	DarkMode bool

	Journal store.Store
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show calendar, no journal")
	}

	then := time.Now()
	if n.Month != "" {
		parsed, err := time.ParseInLocation(layoutMonth, n.Month, time.Local)
		if err != nil {
			return err
		}
		then = parsed
	}

	all, err := n.Journal.ListAll(ctx)
	if err != nil {
		return err
	}

	index := view.IndexByDate(all)
	marked := make(map[string]bool)
	for _, day := range index.MarkedDays() {
		marked[day] = true
	}

	pp := printers.PrettyPrint{DarkMode: n.DarkMode}
	pp.NewLine()
	pp.Month(then, marked)

	return nil
}
