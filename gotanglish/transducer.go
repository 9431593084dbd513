package gotanglish

/**
 * gotanglish - a Tamil romanization transliteration library
 * Copyright Tanglish Project Contributors, 2026
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// transduce renders a lowercased fragment into every plausible Tamil-script
// interpretation, deduplicated and capped at MAX_CANDIDATES. It is a total
// function: any input, including empty or pure punctuation, yields a result.
//
// Results are memoized per exact fragment in an LRU cache shared across
// calls. Callers must treat the returned slice as read-only.
func (tanglish *Tanglish) transduce(fragment string) []string {
	if fragment == "" {
		return []string{""}
	}
	if cached, ok := tanglish.memo.Get(fragment); ok {
		return cached
	}

	results := limitCandidates(tanglish.expand(fragment), MAX_CANDIDATES)
	tanglish.memo.Add(fragment, results)
	return results
}

// expand produces the raw (possibly duplicated, uncapped) branches for one
// fragment. Recursion happens through transduce so every suffix is served
// from the memo cache when possible.
func (tanglish *Tanglish) expand(fragment string) []string {
	var results []string

	first, size := getFirstCharacter(fragment)
	if size == 0 {
		// Invalid UTF-8 byte. Carry it through so the walk always
		// advances.
		first, size = fragment[:1], 1
	}
	firstRune, _ := utf8.DecodeRuneInString(fragment)

	// Whitespace, punctuation and digits pass through one character at a
	// time, untouched. This branch is exclusive: layout must never be
	// reinterpreted as language.
	if unicode.IsSpace(firstRune) || !unicode.IsLetter(firstRune) {
		for _, tail := range tanglish.transduce(fragment[size:]) {
			results = append(results, first+tail)
		}
		return results
	}

	// Whole recognizable sequences, before syllable decomposition. All
	// matches are tried, in declared table order.
	for _, seq := range tanglish.scheme.specialKeys {
		if !strings.HasPrefix(fragment, seq) {
			continue
		}
		for _, rendering := range tanglish.scheme.specialValues[seq] {
			for _, tail := range tanglish.transduce(fragment[len(seq):]) {
				results = append(results, rendering+tail)
			}
		}
	}

	// A vowel sound with no preceding consonant gets an independent vowel
	// letter.
	for _, vowelKey := range tanglish.scheme.vowelKeys {
		if !strings.HasPrefix(fragment, vowelKey) {
			continue
		}
		letters, ok := tanglish.scheme.pureVowels[vowelKey]
		if !ok {
			continue
		}
		for _, letter := range letters {
			for _, tail := range tanglish.transduce(fragment[len(vowelKey):]) {
				results = append(results, letter+tail)
			}
		}
	}

	// Consonant, optionally followed by a vowel, makes a syllable. Every
	// matching consonant key is tried, longest first. Shorter keys give
	// the alternative readings that make this a multi-candidate engine.
	for _, consonantKey := range tanglish.scheme.consonantKeys {
		if !strings.HasPrefix(fragment, consonantKey) {
			continue
		}

		afterConsonant := len(consonantKey)
		consonantLetters := tanglish.scheme.consonants[consonantKey]

		for _, vowelKey := range tanglish.scheme.vowelKeysWithBare {
			consumed := afterConsonant
			if vowelKey != "" {
				if !strings.HasPrefix(fragment[afterConsonant:], vowelKey) {
					continue
				}
				consumed = afterConsonant + len(vowelKey)
			} else if afterConsonant < len(fragment) {
				// A bare consonant is only legal at a syllable
				// boundary: end of input, a non-letter next, or
				// another consonant cluster starting right after.
				// This is a heuristic, not a linguistic rule.
				nextRune, _ := utf8.DecodeRuneInString(fragment[afterConsonant:])
				if unicode.IsLetter(nextRune) &&
					!tanglish.scheme.hasConsonantPrefix(fragment[afterConsonant:]) {
					continue
				}
			}

			for _, syllable := range tanglish.scheme.syllables(consonantLetters, vowelKey) {
				for _, tail := range tanglish.transduce(fragment[consumed:]) {
					results = append(results, syllable+tail)
				}
			}
		}
	}

	if len(results) == 0 {
		// Letters with no table entry (non-Latin scripts, mostly) pass
		// through unchanged rather than being dropped.
		return []string{fragment}
	}
	return results
}
