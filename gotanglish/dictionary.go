package gotanglish

import (
	"context"
	sql "database/sql"
	"fmt"
	"os"
	"path"
	"time"

	// database/sql driver
	_ "modernc.org/sqlite"
)

// Suggestion is one dictionary match for a romanized pattern.
type Suggestion struct {
	Word       string
	Confidence int
	LearnedOn  int
}

func openDB(dictPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dictPath)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	return conn, nil
}

// InitDict opens the learnings dictionary, creating file and tables when
// they don't exist yet.
func (tanglish *Tanglish) InitDict(dictPath string) error {
	dictDir := path.Dir(dictPath)
	if !dirExists(dictDir) {
		if err := os.MkdirAll(dictDir, 0750); err != nil {
			return fmt.Errorf("creating dictionary directory: %w", err)
		}
	}

	conn, err := openDB(dictPath)
	if err != nil {
		return err
	}

	if err := makeDictionary(conn); err != nil {
		conn.Close()
		return err
	}

	tanglish.dictConn = conn
	return nil
}

func makeDictionary(conn *sql.DB) error {
	queries := [2]string{
		"CREATE TABLE IF NOT EXISTS words (id integer primary key, word text unique, confidence integer default 1, learned_on integer);",
		"CREATE TABLE IF NOT EXISTS patterns (pattern text, word_id integer, primary key(pattern, word_id)) WITHOUT rowid;"}

	for _, query := range queries {
		ctx, cancelfunc := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelfunc()
		if _, err := conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating dictionary tables: %w", err)
		}
	}
	return nil
}

// DictionarySuggestions returns learnt words whose trained pattern starts
// with pattern, best first.
func (tanglish *Tanglish) DictionarySuggestions(ctx context.Context, pattern string, limit int) ([]Suggestion, error) {
	if tanglish.dictConn == nil {
		return nil, fmt.Errorf("no dictionary open")
	}

	rows, err := tanglish.dictConn.QueryContext(ctx,
		`SELECT w.word, w.confidence, w.learned_on FROM patterns p
		JOIN words w ON w.id = p.word_id
		WHERE p.pattern LIKE ?
		ORDER BY w.confidence DESC, w.learned_on DESC LIMIT ?`,
		normalizePattern(pattern)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup: %w", err)
	}
	defer rows.Close()

	var results []Suggestion
	for rows.Next() {
		var item Suggestion
		if err := rows.Scan(&item.Word, &item.Confidence, &item.LearnedOn); err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// dictionaryBackend surfaces the learnings dictionary as the first-priority
// candidate source: an exact trained pattern beats anything the rule
// transducer can produce.
type dictionaryBackend struct {
	tanglish *Tanglish
}

func (backend *dictionaryBackend) ID() string {
	return "learnings-dictionary"
}

func (backend *dictionaryBackend) Attempt(ctx context.Context, text string, scheme string) (string, error) {
	row := backend.tanglish.dictConn.QueryRowContext(ctx,
		`SELECT w.word FROM patterns p
		JOIN words w ON w.id = p.word_id
		WHERE p.pattern = ?
		ORDER BY w.confidence DESC, w.learned_on DESC LIMIT 1`,
		normalizePattern(text))

	var word string
	err := row.Scan(&word)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("dictionary lookup: %w", err)
	}
	return word, nil
}
