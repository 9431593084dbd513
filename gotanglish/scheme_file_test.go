package gotanglish

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniScheme = `id: mini
name: Minimal test scheme
lang: ta
consonants:
  k: ["க"]
  n: ["ன"]
vowel_signs:
  a: ["ா"]
  i: ["ி"]
pure_vowels:
  a: ["அ"]
  i: ["இ"]
special:
  - seq: om
    out: ["ஓம்"]
`

func writeSchemeFile(t *testing.T, contents string) string {
	schemeFilePath := path.Join(t.TempDir(), "scheme.yaml")
	require.NoError(t, os.WriteFile(schemeFilePath, []byte(contents), 0644))
	return schemeFilePath
}

func TestLoadSchemeFile(t *testing.T) {
	scheme, err := LoadSchemeFile(writeSchemeFile(t, miniScheme))
	require.NoError(t, err)

	assert.Equal(t, "mini", scheme.Identifier)
	assert.Equal(t, "ta", scheme.LangCode)

	// The structural entries are filled in for the author.
	assert.Equal(t, []string{""}, scheme.consonants[""])
	assert.Equal(t, []string{PULLI, ""}, scheme.vowelSigns[""])
}

func TestSchemeFileDrivesTransliteration(t *testing.T) {
	tanglish, err := InitFromSchemeFile(writeSchemeFile(t, miniScheme), "")
	require.NoError(t, err)

	result := tanglish.Transliterate("ka", "")
	assert.Equal(t, []string{"கா"}, result.Candidates)

	result = tanglish.Transliterate("a", "")
	assert.Equal(t, []string{"அ"}, result.Candidates)

	result = tanglish.Transliterate("om", "")
	require.NotEmpty(t, result.Candidates)
	assert.Equal(t, "ஓம்", result.Candidates[0])
}

func TestLoadSchemeFileRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing id": `name: No id
consonants:
  k: ["க"]
`,
		"no tables": `id: empty
`,
		"uppercase key": `id: bad
consonants:
  K: ["க"]
`,
		"not yaml": `{{{`,
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSchemeFile(writeSchemeFile(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadSchemeFileMissing(t *testing.T) {
	_, err := LoadSchemeFile(path.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
