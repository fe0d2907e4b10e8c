package scanner

import "github.com/wl-lang/scanner/pkg/token"

// dispatchASCIIOperator tries every ASCII operator literal beginning with
// lead against the buffer at start, longest literal first. It reports
// ok=false if no pattern matches, so the caller can
// fall through to an InvalidSyntax diagnostic.
func (t *Tokenizer) dispatchASCIIOperator(start int, lead byte) (token.Token, bool, error) {
	for _, pat := range t.cdb.Dispatch().ByLeadByte[lead] {
		if !t.hasLiteralAt(start, pat.Literal) {
			continue
		}
		if pat.Tag == "Unset" && t.breaksUnset(start+len(pat.Literal)) {
			// "=." immediately followed by a digit or another dot starts a
			// Number ("=.01") or Repeated ("=.." -> Set + Repeated), not
			// Unset.
			continue
		}
		tag, ok := token.Lookup(pat.Tag)
		if !ok {
			continue
		}
		t.pos = start + len(pat.Literal)
		return t.afterOperatorEmit(token.New(tag, pat.Literal, start)), true, nil
	}
	return token.Token{}, false, nil
}

// dispatchUnicodeOperator tries every Unicode operator literal against the
// buffer at start, longest literal first.
func (t *Tokenizer) dispatchUnicodeOperator(start int) (token.Token, bool, error) {
	for _, pat := range t.cdb.Dispatch().Unicode {
		if !t.hasLiteralAt(start, pat.Literal) {
			continue
		}
		tag, ok := token.Lookup(pat.Tag)
		if !ok {
			continue
		}
		t.pos = start + len(pat.Literal)
		return t.afterOperatorEmit(token.New(tag, pat.Literal, start)), true, nil
	}
	return token.Token{}, false, nil
}

func (t *Tokenizer) hasLiteralAt(start int, literal string) bool {
	end := start + len(literal)
	if end > len(t.buffer) {
		return false
	}
	return t.buffer[start:end] == literal
}

// breaksUnset reports whether the character at pos rules out Unset ("=.")
// in favor of a longer token starting at the same dot: a digit continues a
// Number ("=.01") and another dot continues a Repeated ("=.." is Set("=")
// followed by Repeated("..")), mirroring the Number/Repeated disambiguation
// in number.go.
func (t *Tokenizer) breaksUnset(pos int) bool {
	return pos < len(t.buffer) && (isDigit(t.buffer[pos]) || t.buffer[pos] == '.')
}
