// Package cmd — pdf command.
// Exports a canonical note as a PDF document.
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

var flagPDFOut string

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Export a Markdown note as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runPDF,
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().StringVarP(&flagPDFOut, "out", "o", "", "Output path (default: note name with .pdf)")
}

func runPDF(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	id := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

	pdf, err := render.NewPDFExporter().Export(mdnorm.Normalize(string(data)), id)
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}

	out := flagPDFOut
	if out == "" {
		out = id + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", out)
	return nil
}
