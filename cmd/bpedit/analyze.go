// Analyze command: scan a text file for blueprint strings and summarize them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// detailLimit caps how many per-string reports the human output prints
// before switching to summary-only.
const detailLimit = 5

// analysis is the full result of scanning one file.
type analysis struct {
	Found      int      `json:"found"`
	Valid      int      `json:"valid"`
	Blueprints int      `json:"blueprints"`
	Books      int      `json:"books"`
	Entities   int      `json:"entities"`
	Largest    string   `json:"largest,omitempty"`
	LargestN   int      `json:"largest_entities,omitempty"`
	Reports    []report `json:"reports"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Find and summarize every blueprint string in a text file",
	Long: `Analyze scans a text file, such as a saved forum post or a blueprint
dump, extracts every exchange string it can find, and reports on each one
followed by an aggregate summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	result := analyzeText(string(data))

	if flagJSON {
		return printJSON(result)
	}

	fmt.Printf("Found %d blueprint strings in %s\n", result.Found, args[0])
	for i, rep := range result.Reports {
		if i >= detailLimit {
			fmt.Printf("\n... and %d more\n", len(result.Reports)-detailLimit)
			break
		}
		fmt.Printf("\n--- Blueprint #%d ---\n", rep.Index)
		printReport(rep)
	}

	fmt.Println("\nSummary")
	fmt.Println("  valid:     ", result.Valid)
	fmt.Println("  blueprints:", result.Blueprints)
	fmt.Println("  books:     ", result.Books)
	fmt.Println("  invalid:   ", result.Found-result.Valid)
	fmt.Println("  entities:  ", result.Entities)
	if result.LargestN > 0 {
		fmt.Printf("  largest:    %s (%d entities)\n", orUnnamed(result.Largest), result.LargestN)
	}
	return nil
}

// analyzeText extracts and decodes every exchange string in text.
func analyzeText(text string) analysis {
	strings := exchange.ExtractStrings(text)
	result := analysis{Found: len(strings)}

	for i, s := range strings {
		decoded, err := exchange.Decode(s)
		if err != nil {
			result.Reports = append(result.Reports, report{
				Index: i + 1,
				Valid: false,
				Error: err.Error(),
			})
			continue
		}

		rep := describe(decoded)
		rep.Index = i + 1
		result.Reports = append(result.Reports, rep)

		result.Valid++
		result.Entities += rep.TotalEntities
		switch rep.Kind {
		case types.ItemBlueprint:
			result.Blueprints++
			if rep.TotalEntities > result.LargestN {
				result.LargestN = rep.TotalEntities
				result.Largest = rep.Label
			}
		case types.ItemBook:
			result.Books++
		}
	}
	return result
}
