package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/DrSkyle/timeslash/pkg/reltime"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var evalFormat string

type evalResult struct {
	Expression string `json:"expression" yaml:"expression"`
	Resolved   string `json:"resolved" yaml:"resolved"`
	Unix       int64  `json:"unix" yaml:"unix"`
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Resolve expressions to timestamps",
	Long: `Resolve one or more expressions (or preset names) against a shared
anchor and print the results.

Examples:
  timeslash eval now-1h
  timeslash eval --tz UTC "now-1d/d" "now/d"
  timeslash eval --format unix yesterday`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor, err := cfg.Anchor()
		if err != nil {
			return err
		}

		results := make([]evalResult, 0, len(args))
		for _, arg := range args {
			expr := cfg.Expand(arg)
			t, err := reltime.Resolve(expr, anchor)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			results = append(results, evalResult{
				Expression: arg,
				Resolved:   t.Format(time.RFC3339),
				Unix:       t.Unix(),
			})
		}

		return writeResults(cmd.OutOrStdout(), evalFormat, results)
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalFormat, "format", "plain", "Output format (plain, json, yaml, unix)")
	rootCmd.AddCommand(evalCmd)
}

func writeResults(w io.Writer, format string, results []evalResult) error {
	switch format {
	case "plain":
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\n", r.Expression, r.Resolved)
		}
	case "unix":
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%d\n", r.Expression, r.Unix)
		}
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		out, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want plain, json, yaml or unix)", format)
	}
	return nil
}
