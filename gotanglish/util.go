package gotanglish

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizePattern puts a romanized pattern into the canonical form used as
// dictionary key and transducer input: NFKC, then lowercased, then trimmed.
func normalizePattern(pattern string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(pattern)))
}

func getFirstCharacter(input string) (string, int) {
	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError && (size == 0 || size == 1) {
		size = 0
	}
	return input[0:size], size
}

// Deduplicate preserving first-seen order, truncate to limit.
func limitCandidates(candidates []string, limit int) []string {
	seen := make(map[string]struct{}, len(candidates))
	ordered := make([]string, 0, limit)
	for _, candidate := range candidates {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		ordered = append(ordered, candidate)
		if len(ordered) >= limit {
			break
		}
	}
	return ordered
}

// Like limitCandidates but also drops empty strings. Used for the final
// merge; empties may come from misbehaving backends.
func mergeCandidates(candidates []string, limit int) []string {
	merged := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		merged = append(merged, candidate)
	}
	return limitCandidates(merged, limit)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

func dirExists(loc string) bool {
	info, err := os.Stat(loc)
	if os.IsNotExist(err) {
		return false
	}
	return info.IsDir()
}
