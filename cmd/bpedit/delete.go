// Delete command: remove a record from the blueprint library.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored blueprint from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	backend, err := attachLibrary()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.Delete(args[0]); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no blueprint named %q in the library", args[0])
		}
		return fmt.Errorf("delete: %w", err)
	}

	fmt.Printf("deleted %q\n", args[0])
	return nil
}
