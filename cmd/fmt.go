// Package cmd — fmt command.
// Canonicalizes a Markdown file: the same transform that runs before the
// editor renders a note and before anything reaches storage.
package cmd

import (
	"fmt"
	"os"

	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"github.com/spf13/cobra"
)

var (
	flagFmtWrite     bool
	flagFmtKeepBlank bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Canonicalize a Markdown note (reads stdin without a file)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&flagFmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	fmtCmd.Flags().BoolVar(&flagFmtKeepBlank, "keep-blank-lines", false, "Keep single blank lines between blocks")
}

func runFmt(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	n := mdnorm.New()
	if flagFmtKeepBlank {
		n.RemoveEmptyLines = false
	}
	out := n.Normalize(string(data))

	if flagFmtWrite {
		if len(args) == 0 {
			return fmt.Errorf("--write requires a file argument")
		}
		if err := os.WriteFile(args[0], []byte(out+"\n"), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
		fmt.Fprintf(os.Stdout, "✓ Formatted: %s\n", args[0])
		return nil
	}

	fmt.Fprintln(os.Stdout, out)
	return nil
}
