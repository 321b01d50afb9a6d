package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/moodlog-app/moodlog/pkg/emotion"
)

// Key prints the emotion taxonomy table.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Emoji", "Category", "Intensity", "Meaning")
	for _, c := range emotion.Categories() {
		tbl.AddRow(c.Emoji, c.Name, fmt.Sprint(c.Intensity), c.Meaning)
	}

	_, _ = bold.Fprintln(color.Output, "\nEmotions")
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
