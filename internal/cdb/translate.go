package cdb

import "sort"

// translationTable is built once per direction and reused by every
// Translate* call: sorted keys (longest first, then lexicographic) so a
// single left-to-right scan performs a longest-match substitution.
type translationTable struct {
	keys    []string
	replace map[string]string
}

func newTranslationTable(m map[string]string) *translationTable {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &translationTable{keys: keys, replace: m}
}

// apply scans s left to right. At each position it tries every key in
// table order (longest first); the first match is substituted and
// scanning resumes after the replacement without re-scanning it
// (non-recursive).
func (t *translationTable) apply(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		matched := false
		for _, k := range t.keys {
			if len(k) <= len(s)-i && s[i:i+len(k)] == k {
				out = append(out, t.replace[k]...)
				i += len(k)
				matched = true
				break
			}
		}
		if !matched {
			_, size := decodeRuneSize(s[i:])
			out = append(out, s[i:i+size]...)
			i += size
		}
	}
	return string(out)
}

// decodeRuneSize returns the byte width of the rune at the start of s
// without importing unicode/utf8 twice across the package; falls back to
// 1 for malformed input so translation always makes progress.
func decodeRuneSize(s string) (rune, int) {
	if len(s) == 0 {
		return 0, 0
	}
	b := s[0]
	switch {
	case b < 0x80:
		return rune(b), 1
	case b&0xE0 == 0xC0 && len(s) >= 2:
		return 0, 2
	case b&0xF0 == 0xE0 && len(s) >= 3:
		return 0, 3
	case b&0xF8 == 0xF0 && len(s) >= 4:
		return 0, 4
	default:
		return 0, 1
	}
}

func (c *CDB) wlToUnicodeStrings() map[string]string {
	m := make(map[string]string, len(c.wlToUnicode))
	for wl, uni := range c.wlToUnicode {
		m[string(wl)] = string(uni)
	}
	return m
}

func (c *CDB) wlToASCIIStrings() map[string]string {
	m := make(map[string]string, len(c.wlToASCII))
	for wl, ascii := range c.wlToASCII {
		m[string(wl)] = ascii
	}
	return m
}

func (c *CDB) unicodeToWLStrings() map[string]string {
	m := make(map[string]string, len(c.unicodeToWL))
	for uni, wl := range c.unicodeToWL {
		m[string(uni)] = string(wl)
	}
	return m
}

// TranslateWLToUnicode replaces every WL-internal code point that has a
// public Unicode equivalent with that equivalent; code points with no
// equivalent pass through unchanged.
func (c *CDB) TranslateWLToUnicode(s string) string {
	return newTranslationTable(c.wlToUnicodeStrings()).apply(s)
}

// TranslateWLToASCII replaces every WL-internal code point that has an
// ASCII spelling with that spelling.
func (c *CDB) TranslateWLToASCII(s string) string {
	return newTranslationTable(c.wlToASCIIStrings()).apply(s)
}

// TranslateUnicodeToWL is the inverse of TranslateWLToUnicode, applied
// only where has-unicode-inverse holds.
func (c *CDB) TranslateUnicodeToWL(s string) string {
	return newTranslationTable(c.unicodeToWLStrings()).apply(s)
}
