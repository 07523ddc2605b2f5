package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngss-tools/ngss-mcp/internal/engine"
)

var relatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related <code> [pool codes...]",
	Short: "Rank standards by dimensional compatibility",
	Long: `Score other standards against an anchor by shared category, practice,
core idea, and crosscutting concept. Without pool codes the whole corpus
is considered.

Examples:
  ngss-cli related MS-PS1-4
  ngss-cli related MS-PS1-4 MS-PS1-2 MS-LS2-1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		related, err := eng.Related(args[0], args[1:])
		if err != nil {
			return err
		}
		if len(related) > relatedLimit {
			related = related[:relatedLimit]
		}
		if len(related) == 0 {
			fmt.Println("No candidates to score")
			return nil
		}
		for _, r := range related {
			fmt.Printf("%d/%d  %s  (category %d, sep %d, dci %d, ccc %d)\n",
				r.Score, engine.MaxCompatibilityScore, r.Record.Code,
				r.Breakdown.Category, r.Breakdown.SEP, r.Breakdown.DCI, r.Breakdown.CCC)
		}
		return nil
	},
}

func init() {
	relatedCmd.Flags().IntVar(&relatedLimit, "limit", 10, "maximum results")
	rootCmd.AddCommand(relatedCmd)
}
