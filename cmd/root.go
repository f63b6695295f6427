// Package cmd implements the CLI commands for notecanon using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notecanon",
	Short: "notecanon — canonicalize diary notes between Markdown and editor HTML",
	Long: `notecanon is the canonicalization engine of a Markdown note editor.
It keeps the live editor document and the persisted Markdown convergent:
the same logical content always normalizes to the same bytes, whether it
came from typing, pasted HTML, or stored Markdown.

Usage:
  notecanon fmt note.md
  notecanon ingest export.html
  notecanon save 2026-08-31 note.md --db diary.db`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readInput returns the contents of the file argument, or stdin when no
// argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}
