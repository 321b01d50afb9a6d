package options

import (
	"github.com/spf13/cobra"
)

// AnalyzeOptions captures the trailing-window flags for analysis.
type AnalyzeOptions struct {
	Days  int
	Music bool
}

func AddAnalyzeArgs(cmd *cobra.Command, o *AnalyzeOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 7,
		"Trailing window of days to analyze.")
	cmd.Flags().BoolVar(&o.Music, "music", false,
		"Also search music recommendations for the analysis keywords.")
}
