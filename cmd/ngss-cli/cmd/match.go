package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchLimit int

var matchCmd = &cobra.Command{
	Use:   "match <phrase>",
	Short: "Fuzzy-match a phrase against standard aliases",
	Long: `Match a natural language phrase against the aliases standards are
known by, tolerating typos and wording drift.

Examples:
  ngss-cli match "what happens when you heat matter?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := eng.Match(args[0])
		if err != nil {
			return err
		}
		if len(matches) > matchLimit {
			matches = matches[:matchLimit]
		}
		if len(matches) == 0 {
			fmt.Println("No confident matches")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%.2f  %s  %q\n", m.Confidence, m.Record.Code, m.MatchedAlias)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().IntVar(&matchLimit, "limit", 10, "maximum results")
	rootCmd.AddCommand(matchCmd)
}
