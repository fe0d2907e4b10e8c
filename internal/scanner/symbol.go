package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/wl-lang/scanner/internal/escape"
	"github.com/wl-lang/scanner/pkg/token"
)

// scanSymbol recognizes the symbol grammar: a run of
// ASCII letters, digits, '$' and context-separator backticks, interleaved
// with multi-byte letterlike runes and \[Name] escapes that themselves
// decode to a letterlike rune. The token text is the escape-expanded
// payload: literal runs pass through unchanged, escaped runs contribute
// their decoded rune.
func (t *Tokenizer) scanSymbol(start int) (token.Token, error) {
	return t.scanSymbolFrom(start, start, "")
}

// scanSymbolFrom continues a symbol whose raw text begins at rawStart but
// whose decoded text so far is prefix and whose scan position is pos
// (used by the raw-backslash handler, whose first character arrived via
// an escape already consumed before this call).
func (t *Tokenizer) scanSymbolFrom(rawStart, pos int, prefix string) (token.Token, error) {
	var text strings.Builder
	text.WriteString(prefix)
	runStart := pos

	flush := func(end int) {
		text.WriteString(t.buffer[runStart:end])
	}

	for pos < len(t.buffer) {
		c := t.buffer[pos]

		if isASCIISymbolChar(c) {
			pos++
			continue
		}

		if c == '`' {
			// A context mark is only part of the symbol when a base
			// follows it; a trailing or doubled backtick ends the token.
			next := matchBase(t.buffer, pos+1, t.cdb)
			if next == pos+1 {
				break
			}
			pos = next
			continue
		}

		if c == '\\' {
			next := pos + 1
			if next >= len(t.buffer) {
				break
			}
			if t.InBox && t.cdb.IsBoxingSuffixChar(rune(t.buffer[next])) {
				break
			}
			decoded, newPos, err := escape.Decode(t.buffer, next, t.cdb)
			if err != nil {
				break
			}
			r, size := utf8.DecodeRuneInString(decoded)
			if size != len(decoded) || !t.cdb.IsLetterLike(r) {
				break
			}
			flush(pos)
			text.WriteString(decoded)
			pos = newPos
			runStart = pos
			continue
		}

		if c >= 0x80 {
			r, size := utf8.DecodeRuneInString(t.buffer[pos:])
			if !t.cdb.IsLetterLike(r) {
				break
			}
			pos += size
			continue
		}

		break
	}

	flush(pos)
	if text.Len() == 0 {
		return token.Token{}, t.invalidSyntax(rawStart)
	}
	t.pos = pos
	return token.New(token.Symbol, text.String(), rawStart), nil
}

func isASCIISymbolChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '$'
}
