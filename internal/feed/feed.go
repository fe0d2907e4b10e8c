// Package feed implements the Line Feeder: the polymorphic source of
// input lines the Tokenizer pulls from, plus the diagnostic message
// record feeders accumulate on the tokenizer's behalf.
package feed

import "strconv"

// Message is the fixed 7-slot diagnostic record:
// [symbol, tag, arg0, arg1, arg2, line_no, source_id]. Absent arg slots
// are empty strings.
type Message struct {
	Symbol   string
	Tag      string
	Arg0     string
	Arg1     string
	Arg2     string
	LineNo   int
	SourceID string
}

// String renders the message in the reference implementation's quoting
// convention: every arg slot is wrapped in literal double quotes.
func (m Message) String() string {
	return "Syntax" + "::" + m.Tag + "[" +
		quote(m.Symbol) + ", " + quote(m.Tag) + ", " +
		quote(m.Arg0) + ", " + quote(m.Arg1) + ", " + quote(m.Arg2) + "]" +
		" (line " + strconv.Itoa(m.LineNo) + ", source " + quote(m.SourceID) + ")"
}

func quote(s string) string {
	return `"` + s + `"`
}

// Feeder is the Line Feeder contract. The tokenizer never cares
// whether the source is one string, a pre-split sequence, or a stream.
type Feeder interface {
	// Feed returns the next logical line including its terminating
	// newline, or "" to signal end of input. Calls after end-of-input
	// keep returning "".
	Feed() string

	// Empty reports whether all further Feed calls will return "".
	Empty() bool

	// Message records a diagnostic in insertion order. For symbol ==
	// "Syntax" it is stored as the fixed 7-slot Message record, with
	// empty strings filling absent arg slots.
	Message(symbol, tag string, args ...string)

	// Messages returns every diagnostic recorded so far, in the order
	// discovered.
	Messages() []Message

	// LineNo is the 1-based line number of the line last returned by
	// Feed.
	LineNo() int

	// SourceID identifies the logical source (file path, REPL session
	// name, …) for diagnostics.
	SourceID() string
}

// buildMessage fills the fixed 7-slot record from a variadic arg list,
// padding absent slots with "".
func buildMessage(symbol, tag string, lineNo int, sourceID string, args []string) Message {
	m := Message{Symbol: symbol, Tag: tag, LineNo: lineNo, SourceID: sourceID}
	if len(args) > 0 {
		m.Arg0 = args[0]
	}
	if len(args) > 1 {
		m.Arg1 = args[1]
	}
	if len(args) > 2 {
		m.Arg2 = args[2]
	}
	return m
}
