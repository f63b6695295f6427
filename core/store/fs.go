// Package store — file-per-note implementation.
// Notes live as <sanitized-id>.md files inside one directory. Handy for
// plain-filesystem workflows and as the test double for the sqlite store.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anshul-mehra/notecanon/core"
)

// FS is a directory-backed note store.
type FS struct {
	Dir string
}

// OpenFS creates (if needed) and opens the note directory.
func OpenFS(dir string) (*FS, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("store: getting working directory: %w", err)
		}
		dir = wd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: creating note directory: %w", err)
	}
	return &FS{Dir: dir}, nil
}

// Load reads the note file for id.
func (s *FS) Load(ctx context.Context, id string) (string, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return "", core.ErrNoteNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: load %s: %w", id, err)
	}
	return string(data), nil
}

// Save writes the note file for id.
func (s *FS) Save(ctx context.Context, id, markdown string) error {
	if err := os.WriteFile(s.path(id), []byte(markdown), 0644); err != nil {
		return fmt.Errorf("store: save %s: %w", id, err)
	}
	return nil
}

// List returns all notes in the directory, newest id first.
func (s *FS) List(ctx context.Context) ([]core.Note, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	var notes []core.Note
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", entry.Name(), err)
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("store: stat %s: %w", entry.Name(), err)
		}
		notes = append(notes, core.Note{
			ID:        strings.TrimSuffix(entry.Name(), ".md"),
			Markdown:  string(data),
			UpdatedAt: info.ModTime(),
		})
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID > notes[j].ID })
	return notes, nil
}

// Close is a no-op; the directory needs no teardown.
func (s *FS) Close() error {
	return nil
}

func (s *FS) path(id string) string {
	return filepath.Join(s.Dir, sanitize(id)+".md")
}

// sanitize keeps ids filesystem-safe. Day keys like 2026-08-31 pass through
// unchanged; anything else degrades to underscores.
func sanitize(id string) string {
	var b strings.Builder
	for _, ch := range id {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z',
			ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Verify *FS satisfies core.Store at compile time.
var _ core.Store = (*FS)(nil)
