package cdb

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

//go:embed data/named_characters.yaml
var namedCharactersYAML []byte

//go:embed data/operators.yaml
var operatorsYAML []byte

// rawNamedCharacter mirrors one YAML record of data/named_characters.yaml.
type rawNamedCharacter struct {
	WLUnicode         string `yaml:"wl-unicode"`
	UnicodeEquivalent string `yaml:"unicode-equivalent"`
	ASCII             string `yaml:"ascii"`
	IsLetterLike      bool   `yaml:"is-letter-like"`
	HasUnicodeInverse bool   `yaml:"has-unicode-inverse"`
	EscAlias          string `yaml:"esc-alias"`
	OperatorName      string `yaml:"operator-name"`
}

// rawOperator mirrors one YAML record of data/operators.yaml.
type rawOperator struct {
	Precedence    int    `yaml:"precedence"`
	Affix         string `yaml:"affix"`
	Arity         string `yaml:"arity"`
	Associativity string `yaml:"associativity"`
	Meaningful    bool   `yaml:"meaningful"`
	ASCII         string `yaml:"ascii"`
	Unicode       string `yaml:"unicode"`
}

// Load parses the embedded character database, checks the five invariants
// of the data model, and builds every derived table. It never returns a
// partially usable CDB: any invariant violation is reported as a single
// *TableError listing every violation found.
func Load() (*CDB, error) {
	var rawChars map[string]rawNamedCharacter
	if err := yaml.Unmarshal(namedCharactersYAML, &rawChars); err != nil {
		return nil, fmt.Errorf("cdb: parsing named_characters.yaml: %w", err)
	}

	var rawOps map[string]rawOperator
	if err := yaml.Unmarshal(operatorsYAML, &rawOps); err != nil {
		return nil, fmt.Errorf("cdb: parsing operators.yaml: %w", err)
	}

	namedCharacters := make(map[string]NamedCharacter, len(rawChars))
	for name, rc := range rawChars {
		nc := NamedCharacter{
			Name:              name,
			ASCII:             rc.ASCII,
			IsLetterLike:      rc.IsLetterLike,
			HasUnicodeInverse: rc.HasUnicodeInverse,
			EscAlias:          rc.EscAlias,
			OperatorName:      rc.OperatorName,
		}
		if rc.WLUnicode != "" {
			nc.WLUnicode = []rune(rc.WLUnicode)[0]
		}
		if rc.UnicodeEquivalent != "" {
			nc.UnicodeEquivalent = []rune(rc.UnicodeEquivalent)[0]
		}
		namedCharacters[name] = nc
	}

	operators := make(map[string]Operator, len(rawOps))
	for name, ro := range rawOps {
		operators[name] = Operator{
			Name:          name,
			Precedence:    ro.Precedence,
			Affix:         Affix(ro.Affix),
			Arity:         ro.Arity,
			Associativity: ro.Associativity,
			Meaningful:    ro.Meaningful,
			ASCII:         ro.ASCII,
			Unicode:       ro.Unicode,
		}
	}

	c := &CDB{
		namedCharacters: namedCharacters,
		operators:       operators,
	}

	if violations := c.checkInvariants(); len(violations) > 0 {
		return nil, &TableError{Violations: violations}
	}

	c.derive()
	c.dispatch = c.buildDispatch()

	return c, nil
}

// checkInvariants runs the five CDB invariants from the data model and
// returns every violation found (empty slice if none).
func (c *CDB) checkInvariants() []string {
	var violations []string

	seenWLUnicode := make(map[rune]string)
	seenEscAlias := make(map[string]string)
	seenUnicodeEquivalent := make(map[rune]string)

	names := make([]string, 0, len(c.namedCharacters))
	for name := range c.namedCharacters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		nc := c.namedCharacters[name]

		if prev, ok := seenWLUnicode[nc.WLUnicode]; ok {
			violations = append(violations, fmt.Sprintf(
				"wl-unicode %q is used by both %q and %q", nc.WLUnicode, prev, name))
		} else {
			seenWLUnicode[nc.WLUnicode] = name
		}

		if nc.EscAlias != "" {
			if prev, ok := seenEscAlias[nc.EscAlias]; ok {
				violations = append(violations, fmt.Sprintf(
					"esc-alias %q is used by both %q and %q", nc.EscAlias, prev, name))
			} else {
				seenEscAlias[nc.EscAlias] = name
			}
		}

		if nc.HasUnicodeInverse {
			if nc.UnicodeEquivalent == 0 {
				violations = append(violations, fmt.Sprintf(
					"%q has has-unicode-inverse=true but no unicode-equivalent", name))
			} else if prev, ok := seenUnicodeEquivalent[nc.UnicodeEquivalent]; ok {
				violations = append(violations, fmt.Sprintf(
					"unicode-equivalent %q is used by both %q and %q (has-unicode-inverse)",
					nc.UnicodeEquivalent, prev, name))
			} else {
				seenUnicodeEquivalent[nc.UnicodeEquivalent] = name
			}
		}

		if nc.IsLetterLike && nc.WLUnicode == 0 {
			violations = append(violations, fmt.Sprintf(
				"%q is marked is-letter-like but has no wl-unicode", name))
		}

		if nc.OperatorName != "" {
			if nc.ASCII == "" && nc.UnicodeEquivalent == 0 && nc.WLUnicode == 0 {
				violations = append(violations, fmt.Sprintf(
					"%q has operator-name %q but no dispatchable spelling (ascii, unicode-equivalent, or wl-unicode)",
					name, nc.OperatorName))
			}
			if nc.IsLetterLike {
				violations = append(violations, fmt.Sprintf(
					"%q has operator-name %q but is also marked is-letter-like",
					name, nc.OperatorName))
			}
		}
	}

	return violations
}
