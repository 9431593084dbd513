package gotanglish

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// schemeFile is the on-disk YAML layout of a scheme. Special sequences are a
// list because their declared order decides candidate ranking.
type schemeFile struct {
	ID         string              `yaml:"id"`
	Name       string              `yaml:"name"`
	Lang       string              `yaml:"lang"`
	Consonants map[string][]string `yaml:"consonants"`
	VowelSigns map[string][]string `yaml:"vowel_signs"`
	PureVowels map[string][]string `yaml:"pure_vowels"`
	Special    []struct {
		Seq string   `yaml:"seq"`
		Out []string `yaml:"out"`
	} `yaml:"special"`
}

// LoadSchemeFile reads and compiles a YAML scheme file. The file fully
// replaces the built-in tables; it is validated the same way.
func LoadSchemeFile(schemeFilePath string) (*Scheme, error) {
	contents, err := os.ReadFile(schemeFilePath)
	if err != nil {
		return nil, fmt.Errorf("reading scheme file: %w", err)
	}

	var file schemeFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("parsing scheme file %s: %w", schemeFilePath, err)
	}

	if file.ID == "" {
		return nil, fmt.Errorf("scheme file %s has no id", schemeFilePath)
	}
	if len(file.Consonants) == 0 && len(file.PureVowels) == 0 {
		return nil, fmt.Errorf("scheme file %s declares no tables", schemeFilePath)
	}
	if file.Lang == "" {
		file.Lang = "ta"
	}

	special := make([]specialEntry, 0, len(file.Special))
	for _, entry := range file.Special {
		special = append(special, specialEntry{seq: entry.Seq, out: entry.Out})
	}

	if file.Consonants == nil {
		file.Consonants = map[string][]string{}
	}
	if _, ok := file.Consonants[""]; !ok {
		// The null consonant entry is structural, scheme authors
		// shouldn't have to declare it.
		file.Consonants[""] = []string{""}
	}
	if file.VowelSigns == nil {
		file.VowelSigns = map[string][]string{}
	}
	if _, ok := file.VowelSigns[""]; !ok {
		file.VowelSigns[""] = []string{PULLI, ""}
	}
	if file.PureVowels == nil {
		file.PureVowels = map[string][]string{}
	}

	scheme, err := newScheme(file.ID, file.Name, file.Lang,
		file.Consonants, file.VowelSigns, file.PureVowels, special)
	if err != nil {
		return nil, fmt.Errorf("compiling scheme file %s: %w", schemeFilePath, err)
	}
	return scheme, nil
}
