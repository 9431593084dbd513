package gotanglish

import (
	"context"
	"fmt"
	"time"
)

type WordInfo struct {
	id         int
	word       string
	confidence int
	learnedOn  int
}

// Insert a word into the words table. Increment confidence if word exists.
func (tanglish *Tanglish) insertWord(ctx context.Context, word string, confidence int) error {
	queryCtx, cancelfunc := context.WithTimeout(ctx, 5*time.Second)
	defer cancelfunc()

	_, err := tanglish.dictConn.ExecContext(queryCtx,
		"INSERT OR IGNORE INTO words(word, confidence, learned_on) VALUES (trim(?), ?, strftime('%s', datetime(), 'localtime'))",
		word, confidence)
	if err != nil {
		return fmt.Errorf("inserting word: %w", err)
	}

	_, err = tanglish.dictConn.ExecContext(queryCtx,
		"UPDATE words SET confidence = confidence + 1 WHERE word = trim(?)", word)
	if err != nil {
		return fmt.Errorf("updating word confidence: %w", err)
	}
	return nil
}

// Learn a Tamil word. Learning an already known word increases its
// confidence so it climbs above competing dictionary matches.
func (tanglish *Tanglish) Learn(ctx context.Context, word string) error {
	if tanglish.dictConn == nil {
		return fmt.Errorf("no dictionary open")
	}
	if word == "" {
		return fmt.Errorf("cannot learn an empty word")
	}
	return tanglish.insertWord(ctx, word, TANGLISH_LEARNT_WORD_MIN_CONFIDENCE)
}

// Train a word with a particular romanized pattern. Pattern => word.
// Transliterating the exact pattern afterwards puts word first.
func (tanglish *Tanglish) Train(ctx context.Context, pattern string, word string) error {
	if pattern == "" {
		return fmt.Errorf("cannot train an empty pattern")
	}

	if err := tanglish.Learn(ctx, word); err != nil {
		return err
	}

	wordInfo, err := tanglish.getWordInfo(ctx, word)
	if err != nil {
		return err
	}
	if wordInfo == nil {
		return fmt.Errorf("word %q missing after learn", word)
	}

	queryCtx, cancelfunc := context.WithTimeout(ctx, 5*time.Second)
	defer cancelfunc()

	_, err = tanglish.dictConn.ExecContext(queryCtx,
		"INSERT OR IGNORE INTO patterns(pattern, word_id) VALUES (?, ?)",
		normalizePattern(pattern), wordInfo.id)
	if err != nil {
		return fmt.Errorf("training pattern: %w", err)
	}
	return nil
}

// Unlearn a word: remove it and every pattern trained to it.
func (tanglish *Tanglish) Unlearn(ctx context.Context, word string) error {
	if tanglish.dictConn == nil {
		return fmt.Errorf("no dictionary open")
	}

	wordInfo, err := tanglish.getWordInfo(ctx, word)
	if err != nil {
		return err
	}
	if wordInfo == nil {
		return fmt.Errorf("nothing learnt for %q", word)
	}

	queryCtx, cancelfunc := context.WithTimeout(ctx, 5*time.Second)
	defer cancelfunc()

	if _, err := tanglish.dictConn.ExecContext(queryCtx,
		"DELETE FROM patterns WHERE word_id = ?", wordInfo.id); err != nil {
		return fmt.Errorf("unlearning patterns: %w", err)
	}
	if _, err := tanglish.dictConn.ExecContext(queryCtx,
		"DELETE FROM words WHERE id = ?", wordInfo.id); err != nil {
		return fmt.Errorf("unlearning word: %w", err)
	}
	return nil
}

func (tanglish *Tanglish) getWordInfo(ctx context.Context, word string) (*WordInfo, error) {
	rows, err := tanglish.dictConn.QueryContext(ctx,
		"SELECT id, word, confidence, learned_on FROM words WHERE word = trim(?)", word)
	if err != nil {
		return nil, fmt.Errorf("looking up word: %w", err)
	}
	defer rows.Close()

	var wordInfo WordInfo
	wordExists := false

	for rows.Next() {
		wordExists = true
		if err := rows.Scan(&wordInfo.id, &wordInfo.word, &wordInfo.confidence, &wordInfo.learnedOn); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !wordExists {
		return nil, nil
	}
	return &wordInfo, nil
}
