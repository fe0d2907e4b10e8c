package scanner

import cdberrors "github.com/wl-lang/scanner/internal/errors"
import "github.com/wl-lang/scanner/pkg/token"

// skipWhitespaceAndComments consumes horizontal whitespace and nested
// `(* ... *)` comments starting at t.pos. It returns with t.pos either at
// the end of the current buffer (caller decides whether to refill or
// emit End) or at the first byte of real content.
func (t *Tokenizer) skipWhitespaceAndComments() error {
	depth := 0

	for {
		if t.pos >= len(t.buffer) {
			if depth == 0 {
				return nil
			}
			if t.feeder.Empty() {
				return t.incompleteComment()
			}
			line := t.feeder.Feed()
			if line == "" {
				return t.incompleteComment()
			}
			t.buffer = line
			t.pos = 0
			continue
		}

		c := t.buffer[t.pos]

		if depth > 0 {
			switch {
			case c == '(' && t.pos+1 < len(t.buffer) && t.buffer[t.pos+1] == '*':
				depth++
				t.pos += 2
			case c == '*' && t.pos+1 < len(t.buffer) && t.buffer[t.pos+1] == ')':
				depth--
				t.pos += 2
			default:
				t.pos++
			}
			continue
		}

		switch {
		case c == '(' && t.pos+1 < len(t.buffer) && t.buffer[t.pos+1] == '*':
			depth++
			t.pos += 2
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			t.pos++
		case c == '\\' && t.pos+2 == len(t.buffer) && t.buffer[t.pos+1] == '\n':
			// Line continuation: backslash immediately followed by a
			// newline at the end of the current buffer is whitespace.
			t.pos += 2
		default:
			return nil
		}
	}
}

func (t *Tokenizer) incompleteComment() error {
	t.feeder.Message("Syntax", cdberrors.TagIncompleteSyntax, "(*")
	return &cdberrors.IncompleteSyntaxError{
		Text:   "(*",
		Pos:    token.Position{Offset: t.pos},
		Source: t.buffer,
	}
}
