package commands

import (
	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodlog",
		Short: options.Wrap80("Mood journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addCalendar(topLevel)
	addAnalyze(topLevel)
	addWatch(topLevel)
	addSettings(topLevel)
	addVersion(topLevel)
}

// loadJournal opens the configured persistence and wraps it in a journal.
func loadJournal() (*store.Journal, store.KV, error) {
	kv, err := store.Open(nil)
	if err != nil {
		return nil, nil, err
	}
	return store.NewJournal(kv), kv, nil
}
