// Save command: store an exchange string in the blueprint library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <name> <string|file|->",
	Short: "Store a blueprint string in the library under a name",
	Long: `Save decodes the given exchange string and stores it in the local
library under the given name, replacing any previous entry with that name.
Malformed strings are rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	name := args[0]
	s, err := readExchangeArg(args[1])
	if err != nil {
		return err
	}

	backend, err := attachLibrary()
	if err != nil {
		return err
	}
	defer backend.Detach()

	rec, err := backend.Save(name, s)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}

	if flagJSON {
		rec.Data = ""
		return printJSON(rec)
	}
	fmt.Printf("saved %q (%s, %d entities, %d tiles)\n", rec.Name, rec.Kind, rec.Entities, rec.Tiles)
	return nil
}
