package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/calendar"
	"github.com/moodlog-app/moodlog/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with recorded days highlighted",
		Example: `
moodlog calendar
moodlog calendar --month 2024-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, kv, err := loadJournal()
			if err != nil {
				return err
			}
			ctx := context.Background()
			settings, err := store.LoadSettings(ctx, kv)
			if err != nil {
				return err
			}
			c := calendar.Calendar{
				Month:    month,
				DarkMode: settings.DarkMode,
				Journal:  journal,
			}
			err = c.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM), defaults to the current month.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
