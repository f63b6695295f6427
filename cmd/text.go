// Package cmd — text command.
// Prints the plain-text projection of an editor HTML export.
package cmd

import (
	"fmt"
	"os"

	"github.com/anshul-mehra/notecanon/core/domnorm"
	"github.com/anshul-mehra/notecanon/core/extract"
	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Extract plain text from editor HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	root, err := extract.New().Root(string(data))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if err := domnorm.NormalizeTree(root); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	text, err := domnorm.ExtractPlainText(root)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
