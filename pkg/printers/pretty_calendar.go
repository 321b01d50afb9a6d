package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

const (
	width     = len("11 12 13 14 15 16 17") // an example week
	dayLayout = "2006-01-02"
)

// Month prints one month as a grid, highlighting the marked calendar days.
func (pp *PrettyPrint) Month(then time.Time, marked map[string]bool) {
	then = time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)

	tf := color.New(color.FgWhite, color.Italic)
	if pp.DarkMode {
		tf = color.New(color.FgHiWhite, color.Italic)
	}

	title := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	d := StartDay(then)
	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	hi := color.New(color.FgHiGreen, color.Bold)
	plain := color.New()
	weekday := d
	for day := 1; day <= days; day++ {
		key := time.Date(then.Year(), then.Month(), day, 0, 0, 0, 0, time.Local).Format(dayLayout)
		if marked[key] {
			_, _ = hi.Printf("%2d", day)
		} else {
			_, _ = plain.Printf("%2d", day)
		}
		fmt.Print(" ")

		weekday++
		if weekday > time.Saturday {
			weekday = time.Sunday
			fmt.Println("")
		}
	}
	if weekday != time.Sunday {
		fmt.Println("")
	}
	fmt.Println("")
}

// DaysIn returns the number of days in the month containing then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartDay returns the weekday of the first of the month containing then.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local).Weekday()
}
