// Package store persists canonical notes. Two implementations of core.Store
// ship: a sqlite database (the diary's real backend) and a file-per-note
// directory for plain-filesystem workflows. Both store canonical Markdown
// only; callers normalize before Save.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anshul-mehra/notecanon/core"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	markdown   TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// DB is a sqlite-backed note store.
type DB struct {
	conn *sql.DB
}

// OpenSQLite opens (creating if needed) the sqlite database at path.
func OpenSQLite(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Load returns the canonical Markdown for the note id.
func (db *DB) Load(ctx context.Context, id string) (string, error) {
	var markdown string
	err := db.conn.QueryRowContext(ctx,
		`SELECT markdown FROM notes WHERE id = ?`, id).Scan(&markdown)
	if errors.Is(err, sql.ErrNoRows) {
		return "", core.ErrNoteNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: load %s: %w", id, err)
	}
	return markdown, nil
}

// Save upserts the note.
func (db *DB) Save(ctx context.Context, id, markdown string) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (id, markdown, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			markdown   = excluded.markdown,
			updated_at = excluded.updated_at
	`, id, markdown, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store: save %s: %w", id, err)
	}
	return nil
}

// List returns all notes, newest first.
func (db *DB) List(ctx context.Context) ([]core.Note, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, markdown, updated_at FROM notes ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var notes []core.Note
	for rows.Next() {
		var n core.Note
		if err := rows.Scan(&n.ID, &n.Markdown, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return notes, nil
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Verify *DB satisfies core.Store at compile time.
var _ core.Store = (*DB)(nil)
