package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/moodlog-app/moodlog/pkg/analysis"
	"github.com/moodlog-app/moodlog/pkg/entry"
	"github.com/moodlog-app/moodlog/pkg/youtube"
)

type PrettyPrint struct {
	ShowID   bool
	DarkMode bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-171dff69f8b9  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries prints journal entries one per line: glyph, category, feeling, and
// the local record time.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		emoji, primary, feeling := e.Row()
		_, _ = t.Printf("%s %s  %s ", emoji, primary, feeling)
		_, _ = d.Printf("(%s)\n", e.Date.Local().Format("15:04"))
	}
	_, _ = t.Println("")
}

// Analysis prints the structured result of the summarization collaborator.
func (pp *PrettyPrint) Analysis(result *analysis.Result) {
	head := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = head.Printf("%s %s", result.MainEmotion.Emoji, result.MainEmotion.Primary)
	_, _ = faint.Printf("  강도 %d/10\n", result.MainEmotion.Intensity)
	if len(result.MainEmotion.SubEmotions) > 0 {
		_, _ = faint.Printf("  %s\n", strings.Join(result.MainEmotion.SubEmotions, ", "))
	}
	fmt.Println("")
	fmt.Println(result.Summary)

	if len(result.Recommendations) > 0 {
		pp.NewLine()
		pp.Title("추천 활동")
		tbl := uitable.New()
		tbl.MaxColWidth = 60
		tbl.Wrap = true
		tbl.Separator = "  "
		for _, rec := range result.Recommendations {
			tbl.AddRow(rec.Title, rec.Description)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	if len(result.Quotes) > 0 {
		pp.NewLine()
		pp.Title("명언")
		q := color.New(color.Italic)
		for _, quote := range result.Quotes {
			_, _ = q.Printf("%q", quote.Text)
			_, _ = faint.Printf(" - %s\n", quote.Author)
		}
	}
}

// Videos prints music recommendations with their external URLs.
func (pp *PrettyPrint) Videos(videos []youtube.Video) {
	if len(videos) == 0 {
		return
	}
	pp.NewLine()
	pp.Title("추천 음악")

	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.Separator = "  "
	for _, v := range videos {
		tbl.AddRow(v.Title, v.ChannelTitle, v.WatchURL())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
