// Package cmd — render command.
// Canonical Markdown → normalized editor HTML, the load half of the round
// trip: normalize the text, render it to a content tree, normalize the tree,
// and serialize what the editor would mount.
package cmd

import (
	"fmt"
	"os"

	"github.com/anshul-mehra/notecanon/core/domnorm"
	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"github.com/anshul-mehra/notecanon/core/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a Markdown note as normalized editor HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	markdown := mdnorm.Normalize(string(data))

	root, err := render.NewGoldmarkRenderer().Render(markdown)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out, err := domnorm.NormalizedHTML(root)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	fmt.Fprintln(os.Stdout, out)
	return nil
}
