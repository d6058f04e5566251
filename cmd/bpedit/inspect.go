// Inspect command: decode one exchange string and report on it.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cbusillo/factorio-bp-editor/pkg/editor"
	"github.com/cbusillo/factorio-bp-editor/pkg/exchange"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// report is the analysis of one decoded exchange string, shared by the
// inspect and analyze commands.
type report struct {
	Index           int            `json:"index,omitempty"`
	Kind            string         `json:"kind"`
	Label           string         `json:"label"`
	TotalBlueprints int            `json:"total_blueprints,omitempty"`
	TotalEntities   int            `json:"total_entities"`
	TotalTiles      int            `json:"total_tiles"`
	EntityCounts    map[string]int `json:"entity_counts,omitempty"`
	MemberLabels    []string       `json:"member_labels,omitempty"`
	Problems        []string       `json:"problems,omitempty"`
	Valid           bool           `json:"valid"`
	Error           string         `json:"error,omitempty"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <string|file|->",
	Short: "Decode a blueprint string and print its contents",
	Long: `Inspect decodes a single exchange string and prints what it holds.

The argument may be the exchange string itself, a path to a file containing
one, or "-" to read it from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := readExchangeArg(args[0])
	if err != nil {
		return err
	}

	decoded, err := exchange.Decode(s)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	rep := describe(decoded)

	if flagJSON {
		return printJSON(rep)
	}
	printReport(rep)
	return nil
}

// describe builds a report for a decoded blueprintable.
func describe(b types.Blueprintable) report {
	switch v := b.(type) {
	case *types.Blueprint:
		e := editor.FromBlueprint(v)
		stats := e.Stats()
		return report{
			Kind:          types.ItemBlueprint,
			Label:         v.Label,
			TotalEntities: stats.TotalEntities,
			TotalTiles:    stats.TotalTiles,
			EntityCounts:  stats.EntityCounts,
			Problems:      e.Validate(),
			Valid:         true,
		}
	case *types.Book:
		e := editor.FromBook(v)
		stats := e.Stats()
		labels := make([]string, 0, len(v.Blueprints))
		for _, member := range v.Blueprints {
			switch m := member.(type) {
			case *types.Blueprint:
				labels = append(labels, orUnnamed(m.Label))
			case *types.Book:
				labels = append(labels, orUnnamed(m.Label)+" (book)")
			}
		}
		return report{
			Kind:            types.ItemBook,
			Label:           v.Label,
			TotalBlueprints: stats.TotalBlueprints,
			TotalEntities:   stats.TotalEntities,
			TotalTiles:      stats.TotalTiles,
			MemberLabels:    labels,
			Valid:           true,
		}
	default:
		return report{Valid: false, Error: fmt.Sprintf("unknown kind %q", b.Item())}
	}
}

// printReport writes the human-readable form of a report to stdout.
func printReport(rep report) {
	if rep.Error != "" {
		fmt.Println("ERROR:", rep.Error)
		return
	}

	fmt.Println("Kind: ", rep.Kind)
	fmt.Println("Label:", orUnnamed(rep.Label))

	switch rep.Kind {
	case types.ItemBlueprint:
		fmt.Println("Entities:", rep.TotalEntities)
		fmt.Println("Tiles:   ", rep.TotalTiles)
		if len(rep.EntityCounts) > 0 {
			names := make([]string, 0, len(rep.EntityCounts))
			for name := range rep.EntityCounts {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println("Entity counts:")
			for _, name := range names {
				fmt.Printf("  %-32s %d\n", name, rep.EntityCounts[name])
			}
		}
		if len(rep.Problems) > 0 {
			fmt.Println("Validation problems:")
			for _, p := range rep.Problems {
				fmt.Println("  -", p)
			}
		}
	case types.ItemBook:
		fmt.Println("Blueprints:", rep.TotalBlueprints)
		fmt.Println("Entities:  ", rep.TotalEntities)
		fmt.Println("Tiles:     ", rep.TotalTiles)
		if len(rep.MemberLabels) > 0 {
			fmt.Println("Members:")
			for _, label := range rep.MemberLabels {
				fmt.Println("  -", label)
			}
		}
	}
}
