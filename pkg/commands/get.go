package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show journal entries for a day",
		Example: `
moodlog get
moodlog get --on 2024-01-01
moodlog get --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := get.Get{
				On:      oo.On,
				All:     oo.All,
				ShowID:  io.ShowID,
				Journal: journal,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddAllDaysArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
