package scanner

import (
	"testing"

	"github.com/wl-lang/scanner/pkg/token"
)

func TestScanString(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantText   string
		wantTag    token.Tag
		wantErrSub string
	}{
		{
			name:     "plain",
			source:   `"hello"`,
			wantText: `"hello"`,
			wantTag:  token.String,
		},
		{
			name:     "escaped newline",
			source:   `"a\nb"`,
			wantText: "\"a\nb\"",
			wantTag:  token.String,
		},
		{
			name:     "named character escape",
			source:   `"\[Theta]"`,
			wantText: `"θ"`,
			wantTag:  token.String,
		},
		{
			name:     "box escape kept literal",
			source:   `"\(x\)"`,
			wantText: `"\(x\)"`,
			wantTag:  token.String,
		},
		{
			name:     "brace escape kept literal",
			source:   `"\{a\}"`,
			wantText: `"\{a\}"`,
			wantTag:  token.String,
		},
		{
			name:     "escaped quote and backslash kept literal",
			source:   `"a\"b\\c"`,
			wantText: `"a\"b\\c"`,
			wantTag:  token.String,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTokenizer(t, tt.source)
			tok, err := tk.Next()
			if err != nil {
				t.Fatalf("Next() error: %v", err)
			}
			if tok.Tag != tt.wantTag {
				t.Fatalf("tag = %s, want %s", tok.Tag, tt.wantTag)
			}
			if tok.Text != tt.wantText {
				t.Errorf("text = %q, want %q", tok.Text, tt.wantText)
			}
		})
	}
}

func TestScanStringUnterminatedIsIncomplete(t *testing.T) {
	tk := newTokenizer(t, `"abc`)
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestLineContinuationAsymmetry(t *testing.T) {
	// A backslash-newline at the end of a buffer is whitespace in
	// expression context but is decoded to a newline inside a string.
	tk, err := New(newMultiLineFeeder(t, []string{"x \\\n", "y\n"}), mustLoadCDB(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := collectTokens(t, tk, 3)
	want := []wantTok{
		{token.Symbol, "x"},
		{token.Symbol, "y"},
		{token.End, ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, g := range got {
		if g.Tag != want[i].tag || g.Text != want[i].text {
			t.Errorf("token %d = (%s,%q), want (%s,%q)", i, g.Tag, g.Text, want[i].tag, want[i].text)
		}
	}

	tk, err = New(newMultiLineFeeder(t, []string{"\"a\\\n", "b\"\n"}), mustLoadCDB(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Tag != token.String || tok.Text != "\"a\nb\"" {
		t.Errorf("got (%s,%q), want (String,%q)", tok.Tag, tok.Text, "\"a\nb\"")
	}
}

func TestScanStringMultiLine(t *testing.T) {
	tk, err := New(newMultiLineFeeder(t, []string{"\"a\n", "b\"\n"}), mustLoadCDB(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	want := "\"a\nb\""
	if tok.Tag != token.String || tok.Text != want {
		t.Errorf("got (%s,%q), want (String,%q)", tok.Tag, tok.Text, want)
	}
}
