package scanner

import (
	"unicode/utf8"

	"github.com/wl-lang/scanner/internal/cdb"
	"github.com/wl-lang/scanner/pkg/token"
)

// tryScanPattern attempts the blank grammar at start: an optional
// context-qualified symbol, then `_`, `__`, or `___`, then either a `.`
// or an optional trailing symbol. It reports ok=false when no underscore
// follows the leading symbol, in which case the caller falls through to
// the Symbol handler. Blanks are matched over literal characters only;
// escape sequences never extend a Pattern token.
func (t *Tokenizer) tryScanPattern(start int) (token.Token, bool) {
	pos := matchFullSymbol(t.buffer, start, t.cdb)
	if pos >= len(t.buffer) || t.buffer[pos] != '_' {
		return token.Token{}, false
	}
	pos++

	if pos < len(t.buffer) && t.buffer[pos] == '.' {
		pos++
	} else {
		if pos < len(t.buffer) && t.buffer[pos] == '_' {
			pos++
			if pos < len(t.buffer) && t.buffer[pos] == '_' {
				pos++
			}
		}
		pos = matchFullSymbol(t.buffer, pos, t.cdb)
	}

	t.pos = pos
	return token.New(token.Pattern, t.buffer[start:pos], start), true
}

// matchFullSymbol matches a full symbol literal at pos: an optional
// leading context mark, a base, and any number of further `-separated
// bases. Returns pos unchanged when no symbol starts there.
func matchFullSymbol(s string, pos int, c *cdb.CDB) int {
	p := pos
	if p < len(s) && s[p] == '`' {
		p++
	}
	q := matchBase(s, p, c)
	if q == p {
		return pos
	}
	p = q

	for p < len(s) && s[p] == '`' {
		q := matchBase(s, p+1, c)
		if q == p+1 {
			break
		}
		p = q
	}
	return p
}

// matchBase matches one base segment of a symbol: a non-digit ASCII
// letter, '$', or letterlike rune, followed by any run of ASCII letters,
// digits, '$', and letterlike runes. Returns pos unchanged when no base
// starts there.
func matchBase(s string, pos int, c *cdb.CDB) int {
	p := pos
	if p >= len(s) {
		return pos
	}

	switch b := s[p]; {
	case isBaseLeadByte(b):
		p++
	case b >= 0x80:
		r, size := utf8.DecodeRuneInString(s[p:])
		if !c.IsLetterLike(r) {
			return pos
		}
		p += size
	default:
		return pos
	}

	for p < len(s) {
		b := s[p]
		if isBaseLeadByte(b) || (b >= '0' && b <= '9') {
			p++
			continue
		}
		if b >= 0x80 {
			r, size := utf8.DecodeRuneInString(s[p:])
			if !c.IsLetterLike(r) {
				break
			}
			p += size
			continue
		}
		break
	}
	return p
}

func isBaseLeadByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '$'
}
