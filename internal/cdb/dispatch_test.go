package cdb

import "testing"

func TestDispatchLongestMatchOrdering(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	patterns := c.Dispatch().ByLeadByte['=']
	if len(patterns) == 0 {
		t.Fatal("expected patterns for leading '='")
	}

	// === must precede == must precede =.
	indexOf := func(lit string) int {
		for i, p := range patterns {
			if p.Literal == lit {
				return i
			}
		}
		return -1
	}

	i3, i2, i1 := indexOf("==="), indexOf("=="), indexOf("=")
	if i3 == -1 || i2 == -1 || i1 == -1 {
		t.Fatalf("missing expected literals among %+v", patterns)
	}
	if !(i3 < i2 && i2 < i1) {
		t.Errorf("expected === before == before =, got order %+v", patterns)
	}
}

func TestOperatorUnicodeIterNonEmpty(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	iter := c.OperatorUnicodeIter()
	if len(iter) == 0 {
		t.Fatal("expected at least one unicode operator pattern")
	}
	for _, p := range iter {
		if p.Literal == "" {
			t.Errorf("pattern %+v has empty literal", p)
		}
	}
}
