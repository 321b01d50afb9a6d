package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	var feeling, emo string

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit the feeling or emotion of an entry",
		Example: `
moodlog edit 171dff69 --feeling "사실 그렇게 나쁘지 않았다"
moodlog edit 171dff69 --emotion 평온
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, _, err := loadJournal()
			if err != nil {
				return err
			}
			e := edit.Edit{
				ID:      args[0],
				Feeling: feeling,
				Emotion: emo,
				Journal: journal,
			}
			err = e.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&feeling, "feeling", "", "Replace the feeling text.")
	cmd.Flags().StringVar(&emo, "emotion", "", "Replace the emotion category.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
