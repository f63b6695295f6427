// Package cmd — note store commands (save, load, list).
// save runs the full canonicalization path before anything is persisted:
// Markdown input is normalized, editor HTML input goes through the ingest
// pipeline. load and list read the stored canonical form back.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anshul-mehra/notecanon/core"
	"github.com/anshul-mehra/notecanon/core/mdnorm"
	"github.com/anshul-mehra/notecanon/core/store"
	"github.com/spf13/cobra"
)

var (
	flagStoreDB  string
	flagStoreDir string
)

var saveCmd = &cobra.Command{
	Use:   "save <id> [file]",
	Short: "Canonicalize a note and save it under the given day id",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Print the stored canonical Markdown for a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored notes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(saveCmd, loadCmd, listCmd)
	for _, c := range []*cobra.Command{saveCmd, loadCmd, listCmd} {
		c.Flags().StringVar(&flagStoreDB, "db", "", "sqlite database path")
		c.Flags().StringVar(&flagStoreDir, "dir", "", "note directory (used when --db is not set)")
	}
}

// openStore picks the sqlite store when --db is set, the directory store
// otherwise.
func openStore() (core.Store, error) {
	if flagStoreDB != "" {
		return store.OpenSQLite(flagStoreDB)
	}
	return store.OpenFS(flagStoreDir)
}

func runSave(cmd *cobra.Command, args []string) error {
	id := args[0]
	data, err := readInput(args[1:])
	if err != nil {
		return err
	}

	var markdown string
	src := string(data)
	if looksLikeHTML(args[1:], src) {
		markdown, err = ingest(src, false)
		if err != nil {
			return err
		}
	} else {
		markdown = mdnorm.Normalize(src)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(context.Background(), id, markdown); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Saved: %s\n", id)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	markdown, err := st.Load(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, markdown)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	notes, err := st.List(context.Background())
	if err != nil {
		return err
	}
	for _, n := range notes {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", n.ID, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// looksLikeHTML decides which canonicalization path a save input takes.
func looksLikeHTML(args []string, src string) bool {
	if len(args) > 0 {
		name := strings.ToLower(args[0])
		return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
	}
	return strings.HasPrefix(strings.TrimSpace(src), "<")
}
