// Package cmd — ingest command.
// Editor HTML → canonical Markdown, the save half of the round trip:
// locate the content root, normalize the tree, then either serialize to
// Markdown (rich notes) or fall back to the plain-text projection.
package cmd

import (
	"fmt"
	"os"

	"github.com/anshul-mehra/notecanon/core/domnorm"
	"github.com/anshul-mehra/notecanon/core/extract"
	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"github.com/anshul-mehra/notecanon/core/render"
	"github.com/spf13/cobra"
)

var flagIngestMarkdown bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Convert editor HTML into canonical Markdown",
	Long: `Ingest parses an editor HTML export, normalizes the content tree, and
emits what the save path would persist: canonical Markdown when the note
carries rich formatting, otherwise its plain-text projection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().BoolVar(&flagIngestMarkdown, "markdown", false, "Always emit Markdown, even for plain notes")
}

func runIngest(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	out, err := ingest(string(data), flagIngestMarkdown)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, out)
	return nil
}

// ingest runs the full save path on an editor HTML export.
func ingest(src string, forceMarkdown bool) (string, error) {
	root, err := extract.New().Root(src)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	if err := domnorm.NormalizeTree(root); err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	if !forceMarkdown && !domnorm.HasRichFormatting(root) {
		text, err := domnorm.ExtractPlainText(root)
		if err != nil {
			return "", fmt.Errorf("extract text: %w", err)
		}
		return mdnorm.Normalize(text), nil
	}

	markdown, err := render.NewTreeSerializer().Serialize(root)
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	// Serializer output is provisional, never stored as-is.
	return mdnorm.Normalize(markdown), nil
}
