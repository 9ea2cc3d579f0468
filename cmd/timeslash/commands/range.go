package commands

import (
	"fmt"
	"time"

	"github.com/DrSkyle/timeslash/pkg/reltime"
	"github.com/spf13/cobra"
)

var rangeFormat string

var rangeCmd = &cobra.Command{
	Use:   "range <from> <to>",
	Short: "Resolve a half-open time window",
	Long: `Resolve two expressions against the same anchor and print the window.
The from instant must not come after the to instant.

Examples:
  timeslash range now-7d/d now/d
  timeslash range --format unix last30d today`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor, err := cfg.Anchor()
		if err != nil {
			return err
		}

		from, to, err := reltime.ResolveRange(cfg.Expand(args[0]), cfg.Expand(args[1]), anchor)
		if err != nil {
			return err
		}

		results := []evalResult{
			{Expression: args[0], Resolved: from.Format(time.RFC3339), Unix: from.Unix()},
			{Expression: args[1], Resolved: to.Format(time.RFC3339), Unix: to.Unix()},
		}
		if rangeFormat == "plain" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", results[0].Resolved, results[1].Resolved)
			return nil
		}
		return writeResults(cmd.OutOrStdout(), rangeFormat, results)
	},
}

func init() {
	rangeCmd.Flags().StringVar(&rangeFormat, "format", "plain", "Output format (plain, json, yaml, unix)")
	rootCmd.AddCommand(rangeCmd)
}
