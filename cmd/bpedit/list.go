// List command: show every record in the blueprint library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the blueprints stored in the library",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := attachLibrary()
	if err != nil {
		return err
	}
	defer backend.Detach()

	records, err := backend.List()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}

	if flagJSON {
		return printJSON(records)
	}

	if len(records) == 0 {
		fmt.Println("library is empty")
		return nil
	}
	fmt.Printf("%-24s %-16s %-24s %9s %7s\n", "NAME", "KIND", "LABEL", "ENTITIES", "TILES")
	for _, rec := range records {
		fmt.Printf("%-24s %-16s %-24s %9d %7d\n",
			rec.Name, rec.Kind, orUnnamed(rec.Label), rec.Entities, rec.Tiles)
	}
	return nil
}
