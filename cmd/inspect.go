// Package cmd — inspect command.
// Prints the structural JSON report of a note after canonicalization.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"github.com/anshul-mehra/notecanon/core/render"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Summarize a note's structure as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	id := ""
	if len(args) > 0 {
		id = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}

	out, err := render.NewReportRenderer().Render(mdnorm.Normalize(string(data)), id)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
