// Package main provides the bpedit CLI, a command-line front end for
// inspecting, analyzing, and storing blueprint exchange strings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
