package scanner

import (
	"testing"

	"github.com/wl-lang/scanner/pkg/token"
)

func TestOperatorLongestMatchDispatch(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []wantTok
	}{
		{
			name:   "repeatednull over repeated over dot",
			source: "...",
			want:   []wantTok{{token.RepeatedNull, "..."}, {token.End, ""}},
		},
		{
			name:   "set delayed over set",
			source: ":=",
			want:   []wantTok{{token.SetDelayed, ":="}, {token.End, ""}},
		},
		{
			name:   "get switches to filename mode",
			source: "<<a.m",
			want:   []wantTok{{token.Get, "<<"}, {token.Filename, "a.m"}, {token.End, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTokenizer(t, tt.source)
			got := collectTokens(t, tk, len(tt.want)+1)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(got), len(tt.want), got)
			}
			for i, g := range got {
				if g.Tag != tt.want[i].tag || g.Text != tt.want[i].text {
					t.Errorf("token %d = (%s,%q), want (%s,%q)", i, g.Tag, g.Text, tt.want[i].tag, tt.want[i].text)
				}
			}
		})
	}
}

func TestRawBackslashOperatorEscape(t *testing.T) {
	tk := newTokenizer(t, `\[DifferentialD]`)
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Tag != token.DifferentialD {
		t.Fatalf("tag = %s, want DifferentialD", tok.Tag)
	}
	if tok.Text != `\[DifferentialD]` {
		t.Errorf("text = %q, want %q", tok.Text, `\[DifferentialD]`)
	}
}

func TestRawBackslashNoMeaningOperatorEmitsDecodedText(t *testing.T) {
	tk := newTokenizer(t, `\[Diamond]`)
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Tag != token.Diamond {
		t.Fatalf("tag = %s, want Diamond", tok.Tag)
	}
	if tok.Text != "⋄" {
		t.Errorf("text = %q, want %q", tok.Text, "⋄")
	}
}

func TestRawBackslashLetterlikeContinuesSymbol(t *testing.T) {
	tk := newTokenizer(t, `\[Theta]x`)
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Tag != token.Symbol {
		t.Fatalf("tag = %s, want Symbol", tok.Tag)
	}
	if tok.Text != "θx" {
		t.Errorf("text = %q, want %q", tok.Text, "θx")
	}
}

func TestBackslashBoxOperatorsDispatchBeforeRawBackslash(t *testing.T) {
	tk := newTokenizer(t, `\(1\)`)
	got := collectTokens(t, tk, 4)
	want := []wantTok{
		{token.LeftRowBox, `\(`},
		{token.Number, "1"},
		{token.RightRowBox, `\)`},
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
}

func TestRawBackslashOctalEscapeDispatchesOperator(t *testing.T) {
	tk := newTokenizer(t, `\050`)
	tok, err := tk.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if tok.Tag != token.RawLeftParenthesis {
		t.Fatalf("tag = %s, want RawLeftParenthesis", tok.Tag)
	}
	if tok.Text != `\050` {
		t.Errorf("text = %q, want %q", tok.Text, `\050`)
	}
}

func TestUnsetExcludesFollowingDot(t *testing.T) {
	tk := newTokenizer(t, "=..")
	got := collectTokens(t, tk, 3)
	want := []wantTok{
		{token.Set, "="},
		{token.Repeated, ".."},
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
}
