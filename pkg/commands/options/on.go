package options

import (
	"github.com/spf13/cobra"
)

// OnOptions captures day selection flags for commands.
type OnOptions struct {
	On  string
	All bool
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.On, "on", "today",
		"Specify the day (YYYY-MM-DD).")
}

func AddAllDaysArg(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every day of the journal.")
}
