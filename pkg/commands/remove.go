package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an entry",
		Example: `
moodlog remove 171dff69
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, _, err := loadJournal()
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:      args[0],
				Journal: journal,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
