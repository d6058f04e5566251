// Shared helpers for bpedit commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cbusillo/factorio-bp-editor/internal/library"
	"github.com/cbusillo/factorio-bp-editor/pkg/types"
)

// attachLibrary resolves the data directory, creates the SQLite library
// backend, and attaches it. The caller must defer backend.Detach().
func attachLibrary() (*library.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := library.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach library: %w", err)
	}

	return backend, nil
}

// readExchangeArg turns a command argument into an exchange string. "-"
// reads stdin; an existing file path reads the file; anything else is taken
// as the exchange string itself. Surrounding whitespace is trimmed.
func readExchangeArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", arg, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return strings.TrimSpace(arg), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// orUnnamed substitutes a placeholder for empty labels in human output.
func orUnnamed(label string) string {
	if label == "" {
		return "(unnamed)"
	}
	return label
}
