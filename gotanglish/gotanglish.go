package gotanglish

/**
 * gotanglish - a Tamil romanization transliteration library
 * Copyright Tanglish Project Contributors, 2026
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	sql "database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// Tanglish converts Latin-script (romanized) text into ranked Tamil-script
// candidates. It is best-effort by design: romanization is ambiguous, so it
// returns several plausible renderings for a human to pick from rather than
// one "correct" answer.
//
// A Tanglish is safe for concurrent use once configured.
type Tanglish struct {
	scheme   *Scheme
	memo     *lru.Cache[string, []string]
	backends []Backend
	dictConn *sql.DB
	logger   *slog.Logger

	// Maximum candidates returned per call
	CandidatesLimit int

	// Inputs longer than this (in runes) skip the rule transducer and a
	// note records the fact. Backends still run.
	MaxInputRunes int

	// See setDefaultConfig() for the default values
}

// TransliterationResult result
type TransliterationResult struct {
	// Proposed Tamil renderings, best first. Never empty for input that is
	// not blank.
	Candidates []string

	// Which pipeline produced the candidates: ENGINE_NOOP for blank
	// input, ENGINE_HYBRID otherwise. The tag does not encode which
	// backends actually fired.
	Engine string

	// Human-readable diagnostics. Never used for control flow, safe to
	// ignore.
	Notes []string
}

// transliterate runs the full pipeline: backends best-effort, then the rule
// transducer, then merge, dedupe and cap.
func (tanglish *Tanglish) transliterate(ctx context.Context, text string, schemeID string) TransliterationResult {
	var result TransliterationResult

	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		result.Engine = ENGINE_NOOP
		return result
	}

	if schemeID == "" {
		schemeID = DEFAULT_ROMANIZATION
	}

	var collected []string

	for _, backend := range tanglish.backends {
		candidate, err := backend.Attempt(ctx, cleaned, schemeID)
		if err != nil {
			tanglish.logger.Debug("backend failed",
				"backend", backend.ID(), "err", err)
			result.Notes = append(result.Notes,
				fmt.Sprintf("%s failed; using fallbacks", backend.ID()))
			continue
		}
		if candidate != "" {
			collected = append(collected, candidate)
		}
	}

	// The transducer sees the whole input, whitespace included, so layout
	// survives in every candidate. Only the emptiness check trims.
	normalized := strings.ToLower(norm.NFKC.String(text))
	if utf8.RuneCountInString(normalized) > tanglish.MaxInputRunes {
		result.Notes = append(result.Notes,
			fmt.Sprintf("input longer than %d characters; rule transducer skipped", tanglish.MaxInputRunes))
	} else {
		collected = append(collected, tanglish.transduce(normalized)...)
	}

	result.Candidates = mergeCandidates(collected, tanglish.CandidatesLimit)
	if len(result.Candidates) == 0 {
		// Never return an empty candidate set for non-blank input.
		result.Candidates = []string{cleaned}
	}
	result.Engine = ENGINE_HYBRID

	return result
}

// Transliterate a text with all plausible renderings as results. schemeID
// names the romanization convention for backends; pass "" for the default.
// The rule transducer is scheme-agnostic.
func (tanglish *Tanglish) Transliterate(text string, schemeID string) TransliterationResult {
	return tanglish.transliterate(context.Background(), text, schemeID)
}

// TransliterateWithContext Use Go context
func (tanglish *Tanglish) TransliterateWithContext(ctx context.Context, text string, schemeID string, resultChannel chan<- TransliterationResult) {
	select {
	case <-ctx.Done():
		return

	default:
		resultChannel <- tanglish.transliterate(ctx, text, schemeID)
		close(resultChannel)
	}
}

func (tanglish *Tanglish) setDefaultConfig() error {
	tanglish.CandidatesLimit = MAX_CANDIDATES
	tanglish.MaxInputRunes = DEFAULT_MAX_INPUT_RUNES
	tanglish.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	memo, err := lru.New[string, []string](DEFAULT_MEMO_SIZE)
	if err != nil {
		return err
	}
	tanglish.memo = memo

	return nil
}

// SetLogger routes the library's debug diagnostics through the given
// logger. nil restores the default no-op logger.
func (tanglish *Tanglish) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tanglish.logger = logger
}

// Init initializes with the built-in Tamil scheme. dictPath is the learnings
// dictionary location; it will be created if it doesn't exist. Pass "" to run
// with no dictionary (pure offline rule mode).
func Init(dictPath string) (*Tanglish, error) {
	return initWithScheme(DefaultScheme(), dictPath)
}

// InitFromSchemeFile initializes from a YAML scheme file replacing the
// built-in tables.
func InitFromSchemeFile(schemeFilePath string, dictPath string) (*Tanglish, error) {
	scheme, err := LoadSchemeFile(schemeFilePath)
	if err != nil {
		return nil, err
	}
	return initWithScheme(scheme, dictPath)
}

// InitFromID looks up a scheme file by identifier in the scheme directories,
// falling back to the built-in tables for the default identifier. The
// learnings dictionary lives at the per-language default location.
func InitFromID(schemeID string) (*Tanglish, error) {
	scheme := DefaultScheme()
	if schemeID != "" && schemeID != scheme.Identifier {
		schemeFilePath, ok := findSchemeFilePath(schemeID)
		if !ok {
			return nil, fmt.Errorf("couldn't find scheme file for %s", schemeID)
		}
		var err error
		scheme, err = LoadSchemeFile(schemeFilePath)
		if err != nil {
			return nil, err
		}
	}

	// One dictionary per language, not per scheme
	return initWithScheme(scheme, findLearningsFilePath(scheme.LangCode))
}

func initWithScheme(scheme *Scheme, dictPath string) (*Tanglish, error) {
	tanglish := Tanglish{scheme: scheme}

	if err := tanglish.setDefaultConfig(); err != nil {
		return nil, err
	}

	if dictPath != "" {
		if err := tanglish.InitDict(dictPath); err != nil {
			return nil, err
		}
		tanglish.RegisterBackend(&dictionaryBackend{tanglish: &tanglish})
	}

	return &tanglish, nil
}

// Scheme returns the active scheme.
func (tanglish *Tanglish) Scheme() *Scheme {
	return tanglish.scheme
}

// Close close db connections
func (tanglish *Tanglish) Close() error {
	if tanglish.dictConn != nil {
		return tanglish.dictConn.Close()
	}
	return nil
}
