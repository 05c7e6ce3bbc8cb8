package memory

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteMemory persists ingested chunks in a local sqlite database so they
// survive the process and can be handed to an indexing stage later.
type SQLiteMemory struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the memory database at path.
func OpenSQLite(path string) (*SQLiteMemory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open memory database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS memory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content TEXT NOT NULL,
			added_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create memory table: %w", err)
	}

	return &SQLiteMemory{db: db}, nil
}

// Add stores one chunk of text.
func (m *SQLiteMemory) Add(text string) error {
	_, err := m.db.Exec(
		"INSERT INTO memory (content, added_at) VALUES (?, ?)",
		text, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to add to memory: %w", err)
	}
	return nil
}

// Count returns the number of stored chunks.
func (m *SQLiteMemory) Count() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM memory").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count memory entries: %w", err)
	}
	return count, nil
}

// List returns all stored chunks in insertion order.
func (m *SQLiteMemory) List() ([]string, error) {
	rows, err := m.db.Query("SELECT content FROM memory ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list memory entries: %w", err)
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		entries = append(entries, content)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (m *SQLiteMemory) Close() error {
	return m.db.Close()
}
