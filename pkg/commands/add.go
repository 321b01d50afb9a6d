package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/emotion"
	"github.com/moodlog-app/moodlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Record how you feel right now.\n\nEmotion categories:\n")
	for _, c := range emotion.Categories() {
		long.WriteString(c.Emoji + " " + c.Name + "\n")
	}

	cmd := &cobra.Command{
		Use:   "add [emotion] [feeling...]",
		Short: "Record an emotion entry",
		Long:  long.String(),
		Example: `
moodlog add 기쁨 오랜만에 친구를 만났다
moodlog add 😫 야근이 너무 길었다
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, _, err := loadJournal()
			if err != nil {
				return err
			}
			a := add.Add{
				Emotion: args[0],
				Feeling: strings.Join(args[1:], " "),
				ShowID:  io.ShowID,
				Journal: journal,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
