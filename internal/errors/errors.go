// Package errors implements the four sum-typed diagnostic error kinds the
// tokenizer can fail with, plus source-context-with-caret formatting in
// the style of a compiler error report.
package errors

import (
	"fmt"
	"strings"

	"github.com/wl-lang/scanner/pkg/token"
)

// Diagnostic tag values, the fixed vocabulary the tokenizer emits.
const (
	TagIncompleteSyntax  = "sntxi"
	TagInvalidSyntaxBOL  = "sntxb"
	TagInvalidSyntaxCont = "sntxf"
	TagEscapeUnknown     = "stresc"
	TagEscapeBadOctal1   = "sntoct1"
	TagEscapeBadOctal2   = "sntoct2"
	TagEscapeBadHex      = "snthex"
	TagNamedCharUnknown  = "sntufn"
)

// IncompleteSyntaxError reports a token that cannot be finished without
// more input the feeder is unable to supply.
type IncompleteSyntaxError struct {
	Text   string
	Pos    token.Position
	Source string
}

func (e *IncompleteSyntaxError) Error() string { return e.Format(false) }

// Format renders the error with a source-line-and-caret via
// formatDiagnostic; the position is a bare byte offset since the
// tokenizer core never tracks line/column itself.
func (e *IncompleteSyntaxError) Format(color bool) string {
	return formatDiagnostic(color, TagIncompleteSyntax, e.Pos, e.Source,
		fmt.Sprintf("incomplete syntax: unterminated %q", e.Text))
}

// InvalidSyntaxError reports input that cannot be any valid token, at
// either the beginning of a line (sntxb) or after an otherwise valid
// prefix (sntxf).
type InvalidSyntaxError struct {
	Tag    string // TagInvalidSyntaxBOL or TagInvalidSyntaxCont
	Text   string
	Pos    token.Position
	Source string
}

func (e *InvalidSyntaxError) Error() string { return e.Format(false) }

func (e *InvalidSyntaxError) Format(color bool) string {
	return formatDiagnostic(color, e.Tag, e.Pos, e.Source,
		fmt.Sprintf("invalid syntax near %q", e.Text))
}

// EscapeSyntaxError reports a syntactically malformed escape sequence.
type EscapeSyntaxError struct {
	Tag    string // stresc, sntoct1, sntoct2, or snthex
	Text   string
	Pos    token.Position
	Source string
}

func (e *EscapeSyntaxError) Error() string { return e.Format(false) }

func (e *EscapeSyntaxError) Format(color bool) string {
	return formatDiagnostic(color, e.Tag, e.Pos, e.Source,
		fmt.Sprintf("bad escape sequence %q", e.Text))
}

// NamedCharacterSyntaxError reports \[Name] referencing an unknown name,
// or an unterminated \[ form.
type NamedCharacterSyntaxError struct {
	Name   string
	Pos    token.Position
	Source string
}

func (e *NamedCharacterSyntaxError) Error() string { return e.Format(false) }

func (e *NamedCharacterSyntaxError) Format(color bool) string {
	return formatDiagnostic(color, TagNamedCharUnknown, e.Pos, e.Source,
		fmt.Sprintf("unknown named character %q", e.Name))
}

// formatDiagnostic is the shared source-context-with-caret renderer every
// error kind above delegates to.
func formatDiagnostic(color bool, tag string, pos token.Position, source, message string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error (%s) at offset %d\n", tag, pos.Offset))

	if source != "" && pos.Offset <= len(source) {
		sb.WriteString("    | ")
		sb.WriteString(source)
		if !strings.HasSuffix(source, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("    | ")
		sb.WriteString(strings.Repeat(" ", pos.Offset))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}
