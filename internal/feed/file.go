package feed

import (
	"bufio"
	"io"
)

// FileFeeder reads lines from a stream until EOF. Consecutive blank lines
// are silently collapsed into the same Feed call, reproducing the
// original implementation's FileLineFeeder behavior: a run of blank
// lines never produces a burst of empty-string tokens downstream.
type FileFeeder struct {
	reader   *bufio.Reader
	id       string
	line     int
	eof      bool
	messages []Message
}

// NewFileFeeder wraps r, reading lines on demand.
func NewFileFeeder(r io.Reader, sourceID string) *FileFeeder {
	return &FileFeeder{reader: bufio.NewReader(r), id: sourceID}
}

func (f *FileFeeder) Feed() string {
	if f.eof {
		return ""
	}

	line, err := f.readLine()
	if err != nil && line == "" {
		f.eof = true
		return ""
	}

	// Collapse a run of blank lines: keep reading while the line we just
	// read is empty (just a bare newline) and more input remains.
	for isBlank(line) && err == nil {
		next, nextErr := f.readLine()
		if nextErr != nil && next == "" {
			break
		}
		line = next
		err = nextErr
	}

	f.line++
	if err != nil {
		f.eof = true
	}
	return line
}

func (f *FileFeeder) readLine() (string, error) {
	line, err := f.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, err
}

func isBlank(line string) bool {
	return line == "\n" || line == "\r\n" || line == ""
}

func (f *FileFeeder) Empty() bool {
	return f.eof
}

func (f *FileFeeder) Message(symbol, tag string, args ...string) {
	f.messages = append(f.messages, buildMessage(symbol, tag, f.line, f.id, args))
}

func (f *FileFeeder) Messages() []Message {
	return f.messages
}

func (f *FileFeeder) LineNo() int {
	return f.line
}

func (f *FileFeeder) SourceID() string {
	return f.id
}
