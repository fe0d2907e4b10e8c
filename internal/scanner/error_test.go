package scanner

import (
	"testing"

	cdberrors "github.com/wl-lang/scanner/internal/errors"
)

func TestInvalidSyntaxAtLineStart(t *testing.T) {
	tk := newTokenizer(t, "\x01")
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	ise, ok := err.(*cdberrors.InvalidSyntaxError)
	if !ok {
		t.Fatalf("got %T, want *InvalidSyntaxError", err)
	}
	if ise.Tag != cdberrors.TagInvalidSyntaxBOL {
		t.Errorf("tag = %q, want %q", ise.Tag, cdberrors.TagInvalidSyntaxBOL)
	}
}

func TestInvalidSyntaxAfterValidPrefix(t *testing.T) {
	tk := newTokenizer(t, "x\x01")
	if _, err := tk.Next(); err != nil {
		t.Fatalf("first Next() error: %v", err)
	}
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	ise, ok := err.(*cdberrors.InvalidSyntaxError)
	if !ok {
		t.Fatalf("got %T, want *InvalidSyntaxError", err)
	}
	if ise.Tag != cdberrors.TagInvalidSyntaxCont {
		t.Errorf("tag = %q, want %q", ise.Tag, cdberrors.TagInvalidSyntaxCont)
	}
}

func TestUnknownEscapeInStringReported(t *testing.T) {
	tk := newTokenizer(t, `"\q"`)
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*cdberrors.EscapeSyntaxError); !ok {
		t.Fatalf("got %T, want *EscapeSyntaxError", err)
	}
}

func TestUnknownNamedCharacterReported(t *testing.T) {
	tk := newTokenizer(t, `"\[NotARealName]"`)
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*cdberrors.NamedCharacterSyntaxError); !ok {
		t.Fatalf("got %T, want *NamedCharacterSyntaxError", err)
	}
}

func TestUnterminatedBackslashAtEndOfInput(t *testing.T) {
	tk := newTokenizer(t, `\`)
	_, err := tk.Next()
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*cdberrors.IncompleteSyntaxError); !ok {
		t.Fatalf("got %T, want *IncompleteSyntaxError", err)
	}
}
