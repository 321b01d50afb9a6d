package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/settings"
	"github.com/moodlog-app/moodlog/pkg/store"
)

func addSettings(topLevel *cobra.Command) {
	var dark, light bool
	var notifications bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		Example: `
moodlog settings
moodlog settings --dark
moodlog settings --notifications=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := settings.Settings{
				Dark:  dark,
				Light: light,
				KV:    kv,
			}
			if cmd.Flags().Changed("notifications") {
				s.Notifications = &notifications
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "Switch to the dark theme.")
	cmd.Flags().BoolVar(&light, "light", false, "Switch to the light theme.")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Turn notifications on or off.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
