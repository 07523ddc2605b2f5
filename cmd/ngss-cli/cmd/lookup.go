package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <code>",
	Short: "Retrieve a standard by its code",
	Long: `Retrieve a single performance expectation by its exact code.

Examples:
  ngss-cli lookup MS-PS1-4
  ngss-cli lookup HS-LS2-2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := eng.Lookup(args[0])
		if errors.Is(err, types.ErrNotFound) {
			fmt.Printf("No standard for code %s\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		printRecord(rec)
		return nil
	},
}

func printRecord(rec *types.Record) {
	fmt.Printf("%s  [%s]\n", rec.Code, rec.Category)
	fmt.Printf("Topic: %s\n", rec.Topic)
	fmt.Printf("%s\n", rec.Description)
	fmt.Printf("  SEP: %s %s\n", rec.Components.SEP.Code, rec.Components.SEP.Name)
	fmt.Printf("  DCI: %s %s\n", rec.Components.DCI.Code, rec.Components.DCI.Name)
	fmt.Printf("  CCC: %s %s\n", rec.Components.CCC.Code, rec.Components.CCC.Name)
	if rec.Scope.Clarification != "" {
		fmt.Printf("Clarification: %s\n", rec.Scope.Clarification)
	}
	if rec.Scope.AssessmentBoundary != "" {
		fmt.Printf("Assessment boundary: %s\n", rec.Scope.AssessmentBoundary)
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
