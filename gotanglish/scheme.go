package gotanglish

/**
 * gotanglish - a Tamil romanization transliteration library
 * Copyright Tanglish Project Contributors, 2026
 * Licensed under AGPL-3.0-only
 */

import (
	"fmt"
	"sort"
	"strings"
)

// Scheme holds the romanization → Tamil mapping tables together with their
// precomputed lookup orders. A Scheme is built once and never mutated, so it
// is safe to share between goroutines without locking.
//
// Every table maps a romanized key to the ordered list of Tamil alternatives
// for it. One key having several alternatives is the point: romanization is
// lossy ("th" is both த and ட) and the transducer tries every one of them.
type Scheme struct {
	Identifier  string
	DisplayName string
	LangCode    string

	// Consonant clusters. The empty key maps to [""], the null consonant.
	consonants map[string][]string

	// Dependent vowel signs attached to a preceding consonant. The empty
	// key carries the pulli (kill mark) and the bare form.
	vowelSigns map[string][]string

	// Independent vowel letters used when no consonant precedes.
	pureVowels map[string][]string

	// Whole recognizable sequences (honorifics etc.), checked before any
	// syllable decomposition. Order of specialKeys is the declared order.
	specialKeys   []string
	specialValues map[string][]string

	// Compiled orderings: longest key first, lexicographic on equal length,
	// so repeated runs are bit-identical.
	consonantKeys []string
	vowelKeys     []string

	// vowelKeys with a leading "" for the bare-consonant branch.
	vowelKeysWithBare []string
}

type specialEntry struct {
	seq string
	out []string
}

// DefaultScheme returns the built-in Tamil tables.
func DefaultScheme() *Scheme {
	scheme, err := newScheme(
		"tanglish",
		"Tanglish",
		"ta",
		map[string][]string{
			"ksh": {"க்ஷ"},
			"ng":  {"ங"},
			"nj":  {"ஞ"},
			"sh":  {"ஷ", "ச"},
			"zh":  {"ழ"},
			"th":  {"ட", "த"},
			"dh":  {"ட", "த"},
			"ph":  {"ப", "ஃப்"},
			"bh":  {"ப"},
			"kh":  {"க"},
			"gh":  {"க"},
			"wh":  {"வ"},
			"rr":  {"ற", "ர"},
			"ll":  {"ல", "ள", "ழ"},
			"nn":  {"ன்ன", "ண்ண", "ந்ந"},
			"tr":  {"டிர", "த்ர"},
			"sr":  {"ஸ்ர", "ச்ர"},
			"ps":  {"ப்ஸ்", "ப்ச"},
			"ts":  {"ட்ஸ்", "டச"},
			"j":   {"ஜ", "ச"},
			"k":   {"க"},
			"g":   {"க"},
			"c":   {"க", "ச"},
			"s":   {"ச", "ஸ"},
			"t":   {"த", "ட"},
			"d":   {"ட", "த"},
			"n":   {"ண", "ந", "ன"},
			"p":   {"ப"},
			"b":   {"ப"},
			"m":   {"ம"},
			"y":   {"ய"},
			"r":   {"ர", "ற"},
			"l":   {"ல", "ள", "ழ"},
			"v":   {"வ"},
			"w":   {"வ"},
			"z":   {"ஸ", "ஜ", "ஶ"},
			"f":   {"ஃப்", "ப"},
			"h":   {"ஹ", "க"},
			"q":   {"க"},
			"x":   {"க்ஸ்", "ச"},
			"mm":  {"ம்ம"},
			"pp":  {"ப்ப"},
			"tt":  {"ட்ட", "த்த"},
			"kk":  {"க்க"},
			"":    {""},
		},
		map[string][]string{
			"":   {PULLI, ""},
			"a":  {"", "ா"},
			"aa": {"ா"},
			"ah": {"ா"},
			"i":  {"ி"},
			"ii": {"ீ"},
			"ee": {"ீ", "ே"},
			"e":  {"ெ", "ே"},
			"ai": {"ை"},
			"ae": {"ே"},
			"ei": {"ே"},
			"u":  {"ு"},
			"uu": {"ூ"},
			"oo": {"ோ", "ூ"},
			"o":  {"ோ", "ொ"},
			"oh": {"ோ"},
			"ou": {"ௌ"},
			"au": {"ௌ"},
		},
		map[string][]string{
			"a":  {"அ", "ஆ"},
			"aa": {"ஆ"},
			"ah": {"ஆ"},
			"i":  {"இ"},
			"ii": {"ஈ"},
			"ee": {"ஈ", "ஏ"},
			"e":  {"எ", "ஏ"},
			"ai": {"ஐ"},
			"ae": {"ஏ"},
			"ei": {"ஏ"},
			"u":  {"உ"},
			"uu": {"ஊ"},
			"oo": {"ஊ", "ஓ"},
			"o":  {"ஓ", "ஒ"},
			"oh": {"ஓ"},
			"ou": {"ஔ"},
			"au": {"ஔ"},
		},
		[]specialEntry{
			{"sri", []string{"ஸ்ரீ", "ஸ்ரி", "ச்ரி"}},
			{"shri", []string{"ஸ்ரீ", "ஷ்ரீ"}},
			{"om", []string{"ஓம்"}},
		},
	)
	if err != nil {
		// The built-in tables are validated by tests; a bad entry here is
		// a programming error.
		panic(err)
	}
	return scheme
}

func newScheme(
	identifier string,
	displayName string,
	langCode string,
	consonants map[string][]string,
	vowelSigns map[string][]string,
	pureVowels map[string][]string,
	special []specialEntry,
) (*Scheme, error) {
	scheme := &Scheme{
		Identifier:    identifier,
		DisplayName:   displayName,
		LangCode:      langCode,
		consonants:    consonants,
		vowelSigns:    vowelSigns,
		pureVowels:    pureVowels,
		specialValues: map[string][]string{},
	}

	for _, entry := range special {
		if entry.seq == "" {
			return nil, fmt.Errorf("special sequence with empty key")
		}
		if _, exists := scheme.specialValues[entry.seq]; exists {
			return nil, fmt.Errorf("duplicate special sequence %q", entry.seq)
		}
		scheme.specialKeys = append(scheme.specialKeys, entry.seq)
		scheme.specialValues[entry.seq] = entry.out
	}

	if err := scheme.validate(); err != nil {
		return nil, err
	}

	scheme.compile()
	return scheme, nil
}

func (scheme *Scheme) validate() error {
	for key, alternatives := range scheme.consonants {
		if len(alternatives) == 0 {
			return fmt.Errorf("consonant %q has no alternatives", key)
		}
		if key != strings.ToLower(key) {
			return fmt.Errorf("consonant key %q must be lowercase", key)
		}
		for _, alternative := range alternatives {
			if alternative == "" && key != "" {
				return fmt.Errorf("consonant %q has an empty alternative", key)
			}
		}
	}
	for key := range scheme.vowelSigns {
		if key != strings.ToLower(key) {
			return fmt.Errorf("vowel sign key %q must be lowercase", key)
		}
	}
	for key, alternatives := range scheme.pureVowels {
		if key == "" {
			return fmt.Errorf("pure vowel table must not contain the empty key")
		}
		if key != strings.ToLower(key) {
			return fmt.Errorf("pure vowel key %q must be lowercase", key)
		}
		if len(alternatives) == 0 {
			return fmt.Errorf("pure vowel %q has no alternatives", key)
		}
	}
	for _, seq := range scheme.specialKeys {
		if len(scheme.specialValues[seq]) == 0 {
			return fmt.Errorf("special sequence %q has no renderings", seq)
		}
	}
	return nil
}

// compile precomputes the key iteration orders. The transducer tries every
// matching key, not just the longest; the ordering only decides which
// candidate is discovered (and therefore ranked) first.
func (scheme *Scheme) compile() {
	for key := range scheme.consonants {
		if key == "" {
			// The null consonant exists for table completeness, the
			// matching loops never iterate it.
			continue
		}
		scheme.consonantKeys = append(scheme.consonantKeys, key)
	}
	sortKeysLongestFirst(scheme.consonantKeys)

	vowelSet := map[string]struct{}{}
	for key := range scheme.vowelSigns {
		if key != "" {
			vowelSet[key] = struct{}{}
		}
	}
	for key := range scheme.pureVowels {
		vowelSet[key] = struct{}{}
	}
	for key := range vowelSet {
		scheme.vowelKeys = append(scheme.vowelKeys, key)
	}
	sortKeysLongestFirst(scheme.vowelKeys)

	scheme.vowelKeysWithBare = append([]string{""}, scheme.vowelKeys...)
}

// Longest first; lexicographic on equal length so runs are reproducible.
func sortKeysLongestFirst(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

// vowelSignsFor returns the dependent signs for a matched vowel key. The
// empty key resolves to the pulli/bare pair; unknown keys get "no sign".
func (scheme *Scheme) vowelSignsFor(vowelKey string) []string {
	if signs, ok := scheme.vowelSigns[vowelKey]; ok {
		return signs
	}
	return []string{""}
}

// hasConsonantPrefix reports whether any consonant key starts at the
// beginning of text. Used by the bare-consonant boundary rule.
func (scheme *Scheme) hasConsonantPrefix(text string) bool {
	for _, key := range scheme.consonantKeys {
		if strings.HasPrefix(text, key) {
			return true
		}
	}
	return false
}

// syllables combines every consonant letter with every applicable vowel
// sign. Empty consonant letters are skipped; they exist only to support the
// null consonant entry.
func (scheme *Scheme) syllables(consonantLetters []string, vowelKey string) []string {
	signs := scheme.vowelSignsFor(vowelKey)
	var combinations []string
	for _, base := range consonantLetters {
		if base == "" {
			continue
		}
		for _, sign := range signs {
			combinations = append(combinations, base+sign)
		}
	}
	if len(combinations) == 0 {
		return consonantLetters
	}
	return combinations
}
