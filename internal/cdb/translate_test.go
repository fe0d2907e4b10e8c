package cdb

import "testing"

func TestTranslateWLToUnicodeRoundTrip(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	alpha, _ := c.NamedCharacter("Alpha")
	s := string(alpha.WLUnicode)

	uni := c.TranslateWLToUnicode(s)
	if uni != string(alpha.UnicodeEquivalent) {
		t.Errorf("TranslateWLToUnicode(%q) = %q, want %q", s, uni, string(alpha.UnicodeEquivalent))
	}

	back := c.TranslateUnicodeToWL(uni)
	if back != s {
		t.Errorf("TranslateUnicodeToWL(%q) = %q, want %q", uni, back, s)
	}
}

func TestTranslatePassesThroughUnknownRunes(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	in := "plain ascii text 123"
	if got := c.TranslateWLToUnicode(in); got != in {
		t.Errorf("TranslateWLToUnicode(%q) = %q, want unchanged", in, got)
	}
}

func TestTranslateWLToASCII(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	infinity, _ := c.NamedCharacter("Infinity")
	// Infinity has no ascii spelling in the table; ensure it is left
	// untouched rather than dropped.
	s := string(infinity.WLUnicode)
	if got := c.TranslateWLToASCII(s); got != s {
		t.Errorf("TranslateWLToASCII(%q) = %q, want unchanged", s, got)
	}
}

func TestTranslateIsNonRecursive(t *testing.T) {
	// A replacement's output must not itself be re-scanned for further
	// substitutions over single characters.
	table := newTranslationTable(map[string]string{"a": "b", "b": "a"})
	if got := table.apply("a"); got != "b" {
		t.Errorf("apply(%q) = %q, want %q (non-recursive)", "a", got, "b")
	}
}

func TestTranslateLongestMatchTieBreak(t *testing.T) {
	table := newTranslationTable(map[string]string{
		"==":  "[EqEq]",
		"===": "[EqEqEq]",
		"=":   "[Eq]",
	})
	if got := table.apply("==="); got != "[EqEqEq]" {
		t.Errorf("apply(%q) = %q, want longest match %q", "===", got, "[EqEqEq]")
	}
	if got := table.apply("=="); got != "[EqEq]" {
		t.Errorf("apply(%q) = %q, want %q", "==", got, "[EqEq]")
	}
}
