// Package store handles SQLite persistence of imported dictionaries.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/slotword/internal/model"
	"github.com/verte-zerg/slotword/internal/wordlist"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotImported is returned when a language has no imported dictionary.
var ErrNotImported = errors.New("dictionary not imported")

// Store wraps SQLite access for dictionary data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS dictionaries (
			lang TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			imported_at TEXT NOT NULL,
			words INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			lang TEXT NOT NULL,
			pos INTEGER NOT NULL,
			word TEXT NOT NULL,
			length INTEGER NOT NULL,
			PRIMARY KEY (lang, pos)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_lang_length ON words(lang, length);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportWords replaces the dictionary stored for lang. Either every word is
// stored or, on failure, the previous dictionary is left in place.
func (s *Store) ImportWords(ctx context.Context, lang, source string, words []string) (err error) {
	if len(words) == 0 {
		return wordlist.ErrEmpty
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM words WHERE lang = ?`, lang); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dictionaries (lang, source, imported_at, words) VALUES (?, ?, ?, ?)
		 ON CONFLICT(lang) DO UPDATE SET source = excluded.source, imported_at = excluded.imported_at, words = excluded.words`,
		lang, source, time.Now().UTC().Format(time.RFC3339Nano), len(words),
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (lang, pos, word, length) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for i, word := range words {
		if _, err = stmt.ExecContext(ctx, lang, i, word, utf8.RuneCountInString(word)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadWords returns the words stored for lang in import order.
func (s *Store) LoadWords(ctx context.Context, lang string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE lang = ? ORDER BY pos`, lang)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.WithHintf(
			errors.Wrapf(ErrNotImported, "language %q", lang),
			"run: slotword import --lang %s", lang,
		)
	}
	return words, nil
}

// ListDictionaries returns metadata for every imported dictionary.
func (s *Store) ListDictionaries(ctx context.Context) ([]model.DictionaryInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lang, source, imported_at, words FROM dictionaries ORDER BY lang`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.DictionaryInfo
	for rows.Next() {
		var info model.DictionaryInfo
		var importedAt string
		if err := rows.Scan(&info.Lang, &info.Source, &importedAt, &info.Words); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, importedAt)
		if err != nil {
			return nil, err
		}
		info.ImportedAt = parsed
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LengthCounts returns how many words of each length lang holds, shortest first.
func (s *Store) LengthCounts(ctx context.Context, lang string) ([]model.LengthCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT length, COUNT(*) FROM words WHERE lang = ? GROUP BY length ORDER BY length`, lang)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LengthCount
	for rows.Next() {
		var lc model.LengthCount
		if err := rows.Scan(&lc.Length, &lc.Count); err != nil {
			return nil, err
		}
		result = append(result, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Loader loads one language from the store as a wordlist.Loader.
type Loader struct {
	Store *Store
	Lang  string
}

// Load implements wordlist.Loader.
func (l Loader) Load(ctx context.Context) (*wordlist.Dictionary, error) {
	words, err := l.Store.LoadWords(ctx, l.Lang)
	if err != nil {
		return nil, err
	}
	return wordlist.New(l.Lang, words)
}
