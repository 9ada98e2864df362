// Package token defines the token kinds and token value produced by the
// (out of scope) Huff lexer and consumed by the parser.
package token

import "fmt"

// Kind identifies a token's grammatical category. Matching on Kind alone
// ignores any payload the token carries (its Ident string, its Num value,
// ...) — payloads are never part of discriminant comparison.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Keywords
	DEFINE
	INCLUDE
	FUNCTION
	EVENT
	CONSTANT
	MACRO
	JUMPTABLE
	JUMPTABLE_PACKED
	TABLE
	TAKES
	RETURNS
	VIEW
	PURE
	PAYABLE
	NONPAYABLE
	INDEXED

	// Punctuation
	LBRACE
	RBRACE
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LANGLE
	RANGLE
	COMMA
	COLON
	EQUALS

	// Literals and classified identifiers
	IDENT
	STR
	NUM
	LITERAL
	OPCODE
	LABEL
	PRIMITIVE_TYPE
	ARRAY_TYPE
	BUILTIN_FUNCTION
	FREE_STORAGE_POINTER

	// Trivia, stripped before parsing begins
	WHITESPACE
	COMMENT
)

var kindNames = [...]string{
	EOF:                   "EOF",
	ILLEGAL:                "ILLEGAL",
	DEFINE:                 "DEFINE",
	INCLUDE:                "INCLUDE",
	FUNCTION:               "FUNCTION",
	EVENT:                  "EVENT",
	CONSTANT:               "CONSTANT",
	MACRO:                  "MACRO",
	JUMPTABLE:              "JUMPTABLE",
	JUMPTABLE_PACKED:       "JUMPTABLE_PACKED",
	TABLE:                  "TABLE",
	TAKES:                  "TAKES",
	RETURNS:                "RETURNS",
	VIEW:                   "VIEW",
	PURE:                   "PURE",
	PAYABLE:                "PAYABLE",
	NONPAYABLE:             "NONPAYABLE",
	INDEXED:                "INDEXED",
	LBRACE:                 "LBRACE",
	RBRACE:                 "RBRACE",
	LPAREN:                 "LPAREN",
	RPAREN:                 "RPAREN",
	LBRACKET:               "LBRACKET",
	RBRACKET:               "RBRACKET",
	LANGLE:                 "LANGLE",
	RANGLE:                 "RANGLE",
	COMMA:                  "COMMA",
	COLON:                  "COLON",
	EQUALS:                 "EQUALS",
	IDENT:                  "IDENT",
	STR:                    "STR",
	NUM:                    "NUM",
	LITERAL:                "LITERAL",
	OPCODE:                 "OPCODE",
	LABEL:                  "LABEL",
	PRIMITIVE_TYPE:         "PRIMITIVE_TYPE",
	ARRAY_TYPE:             "ARRAY_TYPE",
	BUILTIN_FUNCTION:       "BUILTIN_FUNCTION",
	FREE_STORAGE_POINTER:   "FREE_STORAGE_POINTER",
	WHITESPACE:             "WHITESPACE",
	COMMENT:                "COMMENT",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PrimitiveKind is the family of an EVM primitive type token.
type PrimitiveKind int

const (
	Uint PrimitiveKind = iota
	Int
	Bytes
	Bool
	Address
	String
	DynBytes
)

func (p PrimitiveKind) String() string {
	switch p {
	case Uint:
		return "uint"
	case Int:
		return "int"
	case Bytes:
		return "bytes"
	case Bool:
		return "bool"
	case Address:
		return "address"
	case String:
		return "string"
	case DynBytes:
		return "bytes"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", int(p))
	}
}

// PrimitiveType is the payload of a PRIMITIVE_TYPE or ARRAY_TYPE token.
// Size is the bit width for Uint/Int and the byte width for Bytes; it is
// unused for Bool, Address, String, DynBytes.
type PrimitiveType struct {
	Kind PrimitiveKind
	Size int
}

// String renders the canonical Solidity-style type name used in function
// selector computation, e.g. "uint256", "bytes32", "address".
func (p PrimitiveType) String() string {
	switch p.Kind {
	case Uint, Int, Bytes:
		return fmt.Sprintf("%s%d", p.Kind, p.Size)
	default:
		return p.Kind.String()
	}
}

// Span identifies a region of source for diagnostics: a half-open token
// index range plus the file it came from. Spans are never used for
// semantics, only for error reporting.
type Span struct {
	Start, End int
	File       int
}

// Token is a tagged value: a Kind discriminant plus whichever payload field
// that kind defines. Unused payload fields are zero.
type Token struct {
	Kind Kind
	Span Span

	Ident           string
	Str             string
	Num             int64
	Literal         [32]byte
	Opcode          string
	Label           string
	BuiltinFunction string
	Primitive       PrimitiveType
	ArrayDims       int
}

// Is reports whether t's discriminant matches k. This is the canonical way
// to compare token kinds; payload fields are never part of the comparison.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d", t.Kind, t.Span.Start)
}
