package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/watch"
	"github.com/moodlog-app/moodlog/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint today's entries whenever the journal changes",
		Example: `
moodlog watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Open(nil)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				ShowID: io.ShowID,
				KV:     kv,
			}
			err = w.Do(ctx)
			if ctx.Err() != nil {
				return nil
			}
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
