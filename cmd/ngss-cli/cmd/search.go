package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngss-tools/ngss-mcp/internal/engine"
)

var (
	searchCategory string
	searchLimit    int
	searchOffset   int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Keyword search over the corpus",
	Long: `Search topics, descriptions, and keywords by term overlap.

Examples:
  ngss-cli search "thermal energy"
  ngss-cli search photosynthesis --category "Life Science"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hits, err := eng.Search(args[0], engine.SearchOptions{
			Category: searchCategory,
			Limit:    searchLimit,
			Offset:   searchOffset,
		})
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Println("No results found")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("%.2f  %s  %s\n", h.Score, h.Record.Code, h.Record.Topic)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "restrict to a category")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum results (1-50)")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "results to skip")
	rootCmd.AddCommand(searchCmd)
}
