package parser

import (
	"testing"

	"github.com/huff-lang/huffparser/token"
)

func TestDeclarationOrderingPreserved(t *testing.T) {
	toks := (&tb{}).
		t(token.DEFINE).t(token.CONSTANT).ident("A").t(token.EQUALS).literal(literal32(1)).
		t(token.DEFINE).t(token.CONSTANT).ident("B").t(token.EQUALS).literal(literal32(2)).
		t(token.DEFINE).t(token.CONSTANT).ident("C").t(token.EQUALS).literal(literal32(3)).
		build()

	c, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Constants) != 3 {
		t.Fatalf("expected 3 constants, got %d", len(c.Constants))
	}
	for i, want := range []string{"A", "B", "C"} {
		if c.Constants[i].Name != want {
			t.Errorf("constant %d = %q, want %q", i, c.Constants[i].Name, want)
		}
	}
}

func TestSpansAreNonEmptyAndOrdered(t *testing.T) {
	toks := (&tb{}).
		t(token.DEFINE).t(token.CONSTANT).ident("A").t(token.EQUALS).literal(literal32(1)).
		build()

	c, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := c.Constants[0].Spans()
	if len(spans) == 0 {
		t.Fatal("expected non-empty span trail")
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start < spans[i-1].Start {
			t.Errorf("spans out of order at %d: %+v then %+v", i, spans[i-1], spans[i])
		}
	}
}

func TestPrimitiveBoundsIntAndBytes(t *testing.T) {
	// int7 is invalid (not a multiple of 8).
	toks := (&tb{}).
		t(token.DEFINE).t(token.FUNCTION).ident("f").
		t(token.LPAREN).primitive(token.Int, 7).t(token.RPAREN).
		build()
	_, err := New(toks).Parse()
	if err == nil || err.Kind != InvalidInt {
		t.Fatalf("got %v, want InvalidInt", err)
	}

	// bytes33 is out of range.
	toks2 := (&tb{}).
		t(token.DEFINE).t(token.FUNCTION).ident("f").
		t(token.LPAREN).primitive(token.Bytes, 33).t(token.RPAREN).
		build()
	_, err2 := New(toks2).Parse()
	if err2 == nil || err2.Kind != InvalidBytes {
		t.Fatalf("got %v, want InvalidBytes", err2)
	}
}

func TestArgListInvalidTokenIsError(t *testing.T) {
	// A stray COMMA with nothing before it in a macro parameter list must
	// fail rather than loop forever.
	toks := (&tb{}).
		t(token.DEFINE).t(token.MACRO).ident("M").
		t(token.LPAREN).t(token.COMMA).t(token.RPAREN).
		build()

	_, err := New(toks).Parse()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}
