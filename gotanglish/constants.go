package gotanglish

import (
	"os"
	"path"
)

/* Library version */
const VERSION = "0.1.0"

/* Engine tags reported in TransliterationResult */
const ENGINE_NOOP = "noop"
const ENGINE_HYBRID = "hybrid"

/* Hard limit on every candidate list in the pipeline */
const MAX_CANDIDATES = 8

// Default romanization convention assumed when the caller passes none.
// Only backends interpret it; the rule transducer's tables are scheme-agnostic.
const DEFAULT_ROMANIZATION = "itrans"

/* Kill mark (pulli). A consonant carrying it has no vowel sound */
const PULLI = "்"

/* Default number of memoized transducer fragments kept before LRU eviction */
const DEFAULT_MEMO_SIZE = 4096

// Inputs longer than this (in runes) skip the rule transducer by default.
// Recursion depth equals input length, so this also bounds stack use.
const DEFAULT_MAX_INPUT_RUNES = 2000

// TANGLISH_LEARNT_WORD_MIN_CONFIDENCE Confidence given to a word on first learn.
// Re-learning the same word bumps it by one each time, so frequently used
// words climb above this baseline and win dictionary lookups.
const TANGLISH_LEARNT_WORD_MIN_CONFIDENCE = 30

// SCHEME_FILE_DIR scheme file lookup directories according to priority
var SCHEME_FILE_DIR = [2]string{
	"schemes",
	"/usr/local/share/tanglish/schemes"}

func findSchemeFilePath(schemeID string) (string, bool) {
	for _, loc := range SCHEME_FILE_DIR {
		temp := path.Join(loc, schemeID+".yaml")
		if fileExists(temp) {
			return temp, true
		}
	}
	return "", false
}

// DefaultLearningsFilePath is the per-language learnings dictionary
// location, under XDG_DATA_HOME when set.
func DefaultLearningsFilePath(langCode string) string {
	return findLearningsFilePath(langCode)
}

func findLearningsFilePath(langCode string) string {
	var (
		loc string
		dir string
	)

	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		home = os.Getenv("HOME")
		dir = path.Join(home, ".local", "share", "tanglish", "learnings")
	} else {
		dir = path.Join(home, "tanglish", "learnings")
	}
	loc = path.Join(dir, langCode+".learnings")

	return loc
}
