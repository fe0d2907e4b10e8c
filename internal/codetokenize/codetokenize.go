// Package codetokenize renders a Token stream in the CodeTokenize format:
// a flat sequence of `LeafNode[Token`<Tag>`, "<text>", <offset>]` records,
// one per token, with no tree structure. It is a pure, I/O-free formatter
// consumed by the lex CLI's --code-tokenize flag and by tests.
package codetokenize

import (
	"strconv"
	"strings"

	"github.com/wl-lang/scanner/pkg/token"
)

// renameTable holds the tags whose CodeTokenize spelling diverges from
// this repo's internal Tag name (`Set → Equal`, `Equal → EqualEqual`, `SameQ →
// EqualEqualEqual`, `Function → Amp`; `Bang → Factorial` needs no entry
// since this repo's own Tag is already named Factorial). Every tag not
// listed here passes through unchanged under Tag.String().
var renameTable = map[token.Tag]string{
	token.Set:      "Equal",
	token.Equal:    "EqualEqual",
	token.SameQ:    "EqualEqualEqual",
	token.Function: "Amp",
}

// TagName returns the CodeTokenize spelling for tag: the renameTable
// override if one exists, otherwise tag.String().
func TagName(tag token.Tag) string {
	if name, ok := renameTable[tag]; ok {
		return name
	}
	return tag.String()
}

// Render formats a single token as one CodeTokenize record.
func Render(tok token.Token) string {
	var sb strings.Builder
	sb.WriteString("LeafNode[Token`")
	sb.WriteString(TagName(tok.Tag))
	sb.WriteString("`, ")
	sb.WriteString(quote(tok.Text))
	sb.WriteString(", ")
	sb.WriteString(strconv.Itoa(tok.Offset))
	sb.WriteByte(']')
	return sb.String()
}

// RenderAll formats a full token stream, one record per line.
func RenderAll(toks []token.Token) string {
	lines := make([]string, len(toks))
	for i, tok := range toks {
		lines[i] = Render(tok)
	}
	return strings.Join(lines, "\n")
}

// quote renders s as a double-quoted WL string literal, escaping
// backslashes and embedded quotes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
