package parser

import (
	"github.com/huff-lang/huffparser/token"
)

// tb is a tiny token builder used throughout the parser's tests to hand
// construct token slices without a lexer.
type tb struct {
	toks []token.Token
}

func (b *tb) t(k token.Kind) *tb {
	b.toks = append(b.toks, token.Token{Kind: k})
	return b
}

func (b *tb) ident(s string) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.IDENT, Ident: s})
	return b
}

func (b *tb) str(s string) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.STR, Str: s})
	return b
}

func (b *tb) num(n int64) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.NUM, Num: n})
	return b
}

func (b *tb) literal(v [32]byte) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.LITERAL, Literal: v})
	return b
}

func (b *tb) opcode(s string) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.OPCODE, Opcode: s})
	return b
}

func (b *tb) label(s string) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.LABEL, Label: s})
	return b
}

func (b *tb) builtin(s string) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.BUILTIN_FUNCTION, BuiltinFunction: s})
	return b
}

func (b *tb) primitive(kind token.PrimitiveKind, size int) *tb {
	b.toks = append(b.toks, token.Token{Kind: token.PRIMITIVE_TYPE, Primitive: token.PrimitiveType{Kind: kind, Size: size}})
	return b
}

func (b *tb) build() []token.Token {
	return append(b.toks, token.Token{Kind: token.EOF})
}

func literal32(last byte) [32]byte {
	var v [32]byte
	v[31] = last
	return v
}
