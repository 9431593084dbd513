package gotanglish

import (
	"context"
	"fmt"
	"reflect"
	"runtime/debug"
	"testing"
)

// AssertEqual checks if values are equal
// Thanks https://gist.github.com/samalba/6059502#gistcomment-2710184
func assertEqual(t *testing.T, value interface{}, expected interface{}) {
	t.Helper()
	if value == expected {
		return
	}
	debug.PrintStack()
	t.Errorf("Received %v (type %v), expected %v (type %v)", value, reflect.TypeOf(value), expected, reflect.TypeOf(expected))
}

func assertDeepEqual(t *testing.T, value interface{}, expected interface{}) {
	t.Helper()
	if reflect.DeepEqual(value, expected) {
		return
	}
	debug.PrintStack()
	t.Errorf("Received %v, expected %v", value, expected)
}

func checkError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func offlineInstance(t *testing.T) *Tanglish {
	tanglish, err := Init("")
	checkError(t, err)
	return tanglish
}

func TestTransliterateEmptyInput(t *testing.T) {
	tanglish := offlineInstance(t)

	for _, input := range []string{"", "   ", "\t\n  "} {
		result := tanglish.Transliterate(input, "")
		assertEqual(t, result.Engine, ENGINE_NOOP)
		assertEqual(t, len(result.Candidates), 0)
		assertEqual(t, len(result.Notes), 0)
	}
}

func TestTransliteratePureVowel(t *testing.T) {
	tanglish := offlineInstance(t)

	result := tanglish.Transliterate("a", "")
	assertEqual(t, result.Engine, ENGINE_HYBRID)
	assertDeepEqual(t, result.Candidates, []string{"அ", "ஆ"})
}

func TestTransliterateConsonantVowel(t *testing.T) {
	tanglish := offlineInstance(t)

	result := tanglish.Transliterate("ka", "")
	assertDeepEqual(t, result.Candidates, []string{"க", "கா"})
}

func TestTransliterateSpecialSequence(t *testing.T) {
	tanglish := offlineInstance(t)

	result := tanglish.Transliterate("sri", "")
	if len(result.Candidates) < 3 {
		t.Fatalf("expected at least 3 candidates, got %v", result.Candidates)
	}
	// The special sequence renderings come first, in declared order,
	// before any syllable-decomposed alternative.
	assertDeepEqual(t, result.Candidates[0:3], []string{"ஸ்ரீ", "ஸ்ரி", "ச்ரி"})
}

func TestTransliterateBareConsonantBoundary(t *testing.T) {
	tanglish := offlineInstance(t)

	// A trailing consonant is a legal syllable end: the pulli form comes
	// before the bare letter.
	result := tanglish.Transliterate("ak", "")
	assertDeepEqual(t, result.Candidates, []string{"அக்", "அக", "ஆக்", "ஆக"})

	// A consonant must not swallow the vowel sound that follows it.
	result = tanglish.Transliterate("ki", "")
	assertDeepEqual(t, result.Candidates, []string{"கி"})
}

func TestTransliteratePreservesLayout(t *testing.T) {
	tanglish := offlineInstance(t)

	result := tanglish.Transliterate("123!  ", "")
	assertDeepEqual(t, result.Candidates, []string{"123!  "})

	result = tanglish.Transliterate("hi 5!", "")
	assertDeepEqual(t, result.Candidates, []string{"ஹி 5!", "கி 5!"})
}

func TestTransliterateCandidateBounds(t *testing.T) {
	tanglish := offlineInstance(t)

	inputs := []string{"thamizh", "vanakkam", "chennai", "thalaivar", "a k th zh"}
	for _, input := range inputs {
		result := tanglish.Transliterate(input, "")

		if len(result.Candidates) == 0 {
			t.Errorf("no candidates for %q", input)
		}
		if len(result.Candidates) > MAX_CANDIDATES {
			t.Errorf("%d candidates for %q, limit is %d", len(result.Candidates), input, MAX_CANDIDATES)
		}

		seen := map[string]bool{}
		for _, candidate := range result.Candidates {
			assertEqual(t, candidate == "", false)
			if seen[candidate] {
				t.Errorf("duplicate candidate %q for %q", candidate, input)
			}
			seen[candidate] = true
		}
	}
}

func TestTransliterateTotality(t *testing.T) {
	tanglish := offlineInstance(t)

	// Inputs with nothing to transliterate must still come back whole.
	for _, input := range []string{"🙂👍", "...", "42", "தமிழ்", "मराठी"} {
		result := tanglish.Transliterate(input, "")
		assertDeepEqual(t, result.Candidates, []string{input})
	}
}

func TestTransliterateInvalidUTF8(t *testing.T) {
	tanglish := offlineInstance(t)

	// Broken encodings must not panic or hang; the bytes come through as
	// replacement characters.
	result := tanglish.Transliterate("ka\xffzh", "")
	if len(result.Candidates) == 0 {
		t.Fatal("no candidates for input with invalid UTF-8")
	}
}

func TestTransliterateDeterministic(t *testing.T) {
	tanglish := offlineInstance(t)

	for _, input := range []string{"vanakkam", "sri", "hello world"} {
		first := tanglish.Transliterate(input, "")
		second := tanglish.Transliterate(input, "")
		assertDeepEqual(t, second, first)
	}

	// A fresh instance iterates its tables in the same order.
	fresh := offlineInstance(t)
	for _, input := range []string{"vanakkam", "sri", "hello world"} {
		assertDeepEqual(t, fresh.Transliterate(input, ""), tanglish.Transliterate(input, ""))
	}
}

func TestTransliterateWithContext(t *testing.T) {
	tanglish := offlineInstance(t)

	resultChannel := make(chan TransliterationResult)
	go tanglish.TransliterateWithContext(context.Background(), "ka", "", resultChannel)
	result := <-resultChannel
	assertDeepEqual(t, result.Candidates, []string{"க", "கா"})
}

type stubBackend struct {
	id     string
	output string
	err    error
}

func (backend *stubBackend) ID() string { return backend.id }

func (backend *stubBackend) Attempt(ctx context.Context, text string, scheme string) (string, error) {
	return backend.output, backend.err
}

func TestBackendCandidatesComeFirst(t *testing.T) {
	tanglish := offlineInstance(t)
	tanglish.RegisterBackend(&stubBackend{id: "upstream", output: "வணக்கம்"})

	result := tanglish.Transliterate("vanakkam", "")
	assertEqual(t, result.Candidates[0], "வணக்கம்")
	assertEqual(t, len(result.Notes), 0)
}

func TestBackendFailureBecomesNote(t *testing.T) {
	tanglish := offlineInstance(t)
	tanglish.RegisterBackend(&stubBackend{id: "upstream", err: fmt.Errorf("connection refused")})

	result := tanglish.Transliterate("vanakkam", "")
	assertDeepEqual(t, result.Notes, []string{"upstream failed; using fallbacks"})
	if len(result.Candidates) == 0 {
		t.Fatal("transducer candidates should survive a backend failure")
	}
	assertEqual(t, result.Engine, ENGINE_HYBRID)
}

func TestBackendEmptyResultIsSkipped(t *testing.T) {
	tanglish := offlineInstance(t)
	tanglish.RegisterBackend(&stubBackend{id: "upstream"})

	result := tanglish.Transliterate("ka", "")
	assertDeepEqual(t, result.Candidates, []string{"க", "கா"})
	assertEqual(t, len(result.Notes), 0)
}

func TestBackendDuplicatesAreMerged(t *testing.T) {
	tanglish := offlineInstance(t)
	// The backend agrees with the transducer's first candidate.
	tanglish.RegisterBackend(&stubBackend{id: "upstream", output: "க"})

	result := tanglish.Transliterate("ka", "")
	assertDeepEqual(t, result.Candidates, []string{"க", "கா"})
}

func TestLongInputSkipsTransducer(t *testing.T) {
	tanglish := offlineInstance(t)
	tanglish.MaxInputRunes = 10

	result := tanglish.Transliterate("thisisaverylonginput", "")
	assertDeepEqual(t, result.Candidates, []string{"thisisaverylonginput"})
	assertEqual(t, len(result.Notes), 1)
}
