package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List disciplines with record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range eng.Categories() {
			fmt.Printf("%-55s %-6s %d\n", c.Category, c.Segment, c.Records)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
