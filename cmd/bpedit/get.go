// Get command: print a stored exchange string.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the exchange string stored under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	backend, err := attachLibrary()
	if err != nil {
		return err
	}
	defer backend.Detach()

	rec, err := backend.Get(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no blueprint named %q in the library", args[0])
		}
		return fmt.Errorf("get: %w", err)
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Println(rec.Data)
	return nil
}
