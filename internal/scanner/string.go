package scanner

import (
	"strings"

	cdberrors "github.com/wl-lang/scanner/internal/errors"
	"github.com/wl-lang/scanner/internal/escape"
	"github.com/wl-lang/scanner/pkg/token"
)

// scanString recognizes a string literal: a double-quote
// delimited, possibly multi-line body. Box escapes (\( \)), brace escapes
// (\{ \}), and the boxing-suffix characters (the last character of every
// CDB box operator, plus '(' ')' '*') are kept in their original
// two-character spelling since they are box syntax, not text; a
// backslashed quote or backslash is likewise kept literal so the emitted
// text stays re-scannable into the same token.
// Every other backslash form is resolved through the Escape Decoder. The
// returned Token's text is the reconstructed body surrounded by the
// delimiting quotes.
func (t *Tokenizer) scanString(start int) (token.Token, error) {
	var text strings.Builder
	text.WriteByte('"')
	pos := start + 1

	for {
		if pos >= len(t.buffer) {
			if t.feeder.Empty() {
				return token.Token{}, t.incompleteString(start, text.String())
			}
			line := t.feeder.Feed()
			if line == "" {
				return token.Token{}, t.incompleteString(start, text.String())
			}
			t.buffer = line
			pos = 0
			continue
		}

		c := t.buffer[pos]

		if c == '"' {
			text.WriteByte('"')
			pos++
			break
		}

		if c == '\\' {
			next := pos + 1
			if next >= len(t.buffer) {
				return token.Token{}, t.incompleteString(start, text.String())
			}
			if t.isLiteralStringEscape(t.buffer[next]) {
				text.WriteByte(c)
				text.WriteByte(t.buffer[next])
				pos = next + 1
				continue
			}
			decoded, newPos, err := escape.Decode(t.buffer, next, t.cdb)
			if err != nil {
				return token.Token{}, t.recordEscapeMessage(err)
			}
			text.WriteString(decoded)
			pos = newPos
			continue
		}

		text.WriteByte(c)
		pos++
	}

	t.pos = pos
	return token.New(token.String, text.String(), start), nil
}

// isLiteralStringEscape reports whether c, following a backslash inside a
// string literal, must be kept as a literal two-character `\c` spelling
// rather than run through the Escape Decoder: box markers, brace escapes,
// and the self-escapes `\"` and `\\`.
func (t *Tokenizer) isLiteralStringEscape(c byte) bool {
	switch c {
	case '{', '}', '"', '\\':
		return true
	}
	return t.cdb.IsBoxingSuffixChar(rune(c))
}

func (t *Tokenizer) incompleteString(start int, soFar string) error {
	t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, `"`)
	return &cdberrors.IncompleteSyntaxError{
		Text:   soFar,
		Pos:    token.Position{Offset: start},
		Source: t.buffer,
	}
}
