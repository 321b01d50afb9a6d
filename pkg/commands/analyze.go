package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/moodlog-app/moodlog/pkg/analysis"
	"github.com/moodlog-app/moodlog/pkg/commands/options"
	"github.com/moodlog-app/moodlog/pkg/runner/analyze"
	"github.com/moodlog-app/moodlog/pkg/youtube"
)

func addAnalyze(topLevel *cobra.Command) {
	ao := &options.AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze your recent emotions",
		Long: options.Wrap80("Send the trailing window of journal entries to the " +
			"analysis service and print the summary, recommendations, and quotes. " +
			"With --music, follow up with music recommendations for the analysis keywords."),
		Example: `
moodlog analyze
moodlog analyze --days 14 --music
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, _, err := loadJournal()
			if err != nil {
				return err
			}

			apiKey := os.Getenv("OPENAI_API_KEY")
			if apiKey == "" {
				return errors.New("missing OPENAI_API_KEY")
			}
			analyzer, err := analysis.NewClient(apiKey)
			if err != nil {
				return err
			}

			a := analyze.Analyze{
				Days:     ao.Days,
				Music:    ao.Music,
				Journal:  journal,
				Analyzer: analyzer,
			}
			if ao.Music {
				ytKey := os.Getenv("YOUTUBE_API_KEY")
				if ytKey == "" {
					return errors.New("missing YOUTUBE_API_KEY")
				}
				searcher, err := youtube.NewClient(ytKey)
				if err != nil {
					return err
				}
				a.Searcher = searcher
			}

			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAnalyzeArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
