package cachestore

import (
	"database/sql"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
)

// SQLiteStore persists the snapshot in a SQLite database. Save runs inside
// one transaction, so the atomic-replace requirement falls out of SQLite's
// journal instead of temp-file renames.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS verses (
	position  INTEGER PRIMARY KEY,
	book_name TEXT NOT NULL,
	book      INTEGER NOT NULL,
	chapter   INTEGER NOT NULL,
	verse     INTEGER NOT NULL,
	text      TEXT NOT NULL
);
`

// NewSQLiteStore opens (creating if needed) a SQLite-backed cache store at
// the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.NewCache("read", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, apperrors.NewCache("read", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Hash returns the stored content hash, or "" if no cache exists.
func (s *SQLiteStore) Hash() (string, error) {
	var hash string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'content_hash'`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", apperrors.NewCache("read", "", err)
	}
	return hash, nil
}

// Load reads the cached corpus in position order.
func (s *SQLiteStore) Load() (*corpus.Corpus, error) {
	var translation string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'translation'`).Scan(&translation)
	if err != nil && err != sql.ErrNoRows {
		return nil, apperrors.NewCache("read", "", err)
	}

	rows, err := s.db.Query(`SELECT book_name, book, chapter, verse, text FROM verses ORDER BY position`)
	if err != nil {
		return nil, apperrors.NewCache("read", "", err)
	}
	defer rows.Close()

	c := &corpus.Corpus{Translation: translation}
	for rows.Next() {
		var v corpus.Verse
		if err := rows.Scan(&v.BookName, &v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return nil, apperrors.NewCache("read", "", err)
		}
		c.Verses = append(c.Verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewCache("read", "", err)
	}
	if len(c.Verses) == 0 {
		return nil, apperrors.NewDecode("cache snapshot", "no cached verses", nil)
	}
	return c, nil
}

// Save replaces the cached snapshot and hash in a single transaction.
func (s *SQLiteStore) Save(c *corpus.Corpus, hash string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.NewCache("write", "", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM verses`); err != nil {
		return apperrors.NewCache("write", "", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO verses (position, book_name, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return apperrors.NewCache("write", "", err)
	}
	defer stmt.Close()

	for i, v := range c.Verses {
		if _, err := stmt.Exec(i, v.BookName, v.Book, v.Chapter, v.Verse, v.Text); err != nil {
			return apperrors.NewCache("write", "", err)
		}
	}

	for key, value := range map[string]string{
		"content_hash": hash,
		"translation":  c.Translation,
	} {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return apperrors.NewCache("write", "", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewCache("write", "", err)
	}
	return nil
}

// Clear drops all cached rows.
func (s *SQLiteStore) Clear() error {
	for _, q := range []string{`DELETE FROM verses`, `DELETE FROM meta`} {
		if _, err := s.db.Exec(q); err != nil {
			return apperrors.NewCache("write", "", err)
		}
	}
	return nil
}
