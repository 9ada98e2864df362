package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huff-lang/huffparser/token"
)

func TestParseImportPathRewrite(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "contracts"), 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(base, "contracts", "foo.huff")
	if err := os.WriteFile(target, []byte("// empty"), 0o644); err != nil {
		t.Fatal(err)
	}

	toks := (&tb{}).
		t(token.INCLUDE).str("contracts/contracts/foo.huff").
		t(token.DEFINE).t(token.CONSTANT).ident("X").t(token.EQUALS).literal(literal32(1)).
		build()

	c, err := New(toks, WithBase(base)).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Imports) != 1 {
		t.Fatalf("expected 1 import, got %d", len(c.Imports))
	}
	want := filepath.Join(base, "contracts", "foo.huff")
	if string(c.Imports[0]) != want {
		t.Errorf("import = %q, want %q", c.Imports[0], want)
	}
}

func TestParseImportPathMissingFileFails(t *testing.T) {
	base := t.TempDir()

	toks := (&tb{}).
		t(token.INCLUDE).str("contracts/contracts/foo.huff").
		build()

	_, err := New(toks, WithBase(base)).Parse()
	if err == nil || err.Kind != InvalidImportPath {
		t.Fatalf("got %v, want InvalidImportPath", err)
	}
}

func TestParseImportPathNoBaseSkipsRewrite(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(cwd, "contracts", "contracts", "foo.huff")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(filepath.Join(cwd, "contracts"))
	if err := os.WriteFile(target, []byte("// empty"), 0o644); err != nil {
		t.Fatal(err)
	}

	toks := (&tb{}).
		t(token.INCLUDE).str("contracts/contracts/foo.huff").
		build()

	c, perr := New(toks).Parse()
	if perr != nil {
		t.Fatalf("unexpected error: %v", perr)
	}
	if string(c.Imports[0]) != "contracts/contracts/foo.huff" {
		t.Errorf("import = %q, want unrewritten \"contracts/contracts/foo.huff\"", c.Imports[0])
	}
}

func TestParseImportRewriteCanBeDisabled(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "contracts", "contracts"), 0o755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(base, "contracts", "contracts", "foo.huff")
	if err := os.WriteFile(target, []byte("// empty"), 0o644); err != nil {
		t.Fatal(err)
	}

	toks := (&tb{}).
		t(token.INCLUDE).str("contracts/contracts/foo.huff").
		build()

	c, err := New(toks, WithBase(base), WithoutImportRewrite()).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(c.Imports[0]) != target {
		t.Errorf("import = %q, want %q", c.Imports[0], target)
	}
}
