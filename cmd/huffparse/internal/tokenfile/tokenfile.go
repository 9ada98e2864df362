// Package tokenfile decodes a JSON token-stream fixture into token.Token
// values. It exists only for the huffparse CLI demonstration; the real
// lexer is out of this module's scope.
package tokenfile

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/huff-lang/huffparser/token"
)

// Record is the on-disk JSON shape of one token.
type Record struct {
	Kind      string `json:"kind"`
	Ident     string `json:"ident,omitempty"`
	Str       string `json:"str,omitempty"`
	Num       int64  `json:"num,omitempty"`
	Literal   string `json:"literal,omitempty"` // hex, no 0x prefix
	Opcode    string `json:"opcode,omitempty"`
	Label     string `json:"label,omitempty"`
	Builtin   string `json:"builtin,omitempty"`
	Primitive string `json:"primitive,omitempty"` // "uint256", "bytes32", "bool", ...
	Array     bool   `json:"array,omitempty"`
	ArrayDims int    `json:"arrayDims,omitempty"`
}

var kindNames = map[string]token.Kind{
	"EOF": token.EOF, "ILLEGAL": token.ILLEGAL,
	"DEFINE": token.DEFINE, "INCLUDE": token.INCLUDE,
	"FUNCTION": token.FUNCTION, "EVENT": token.EVENT, "CONSTANT": token.CONSTANT,
	"MACRO": token.MACRO, "JUMPTABLE": token.JUMPTABLE,
	"JUMPTABLE_PACKED": token.JUMPTABLE_PACKED, "TABLE": token.TABLE,
	"TAKES": token.TAKES, "RETURNS": token.RETURNS,
	"VIEW": token.VIEW, "PURE": token.PURE, "PAYABLE": token.PAYABLE, "NONPAYABLE": token.NONPAYABLE,
	"INDEXED": token.INDEXED,
	"LBRACE":  token.LBRACE, "RBRACE": token.RBRACE,
	"LPAREN": token.LPAREN, "RPAREN": token.RPAREN,
	"LBRACKET": token.LBRACKET, "RBRACKET": token.RBRACKET,
	"LANGLE": token.LANGLE, "RANGLE": token.RANGLE,
	"COMMA": token.COMMA, "COLON": token.COLON, "EQUALS": token.EQUALS,
	"IDENT": token.IDENT, "STR": token.STR, "NUM": token.NUM,
	"LITERAL": token.LITERAL, "OPCODE": token.OPCODE, "LABEL": token.LABEL,
	"PRIMITIVE_TYPE": token.PRIMITIVE_TYPE, "ARRAY_TYPE": token.ARRAY_TYPE,
	"BUILTIN_FUNCTION": token.BUILTIN_FUNCTION, "FREE_STORAGE_POINTER": token.FREE_STORAGE_POINTER,
	"WHITESPACE": token.WHITESPACE, "COMMENT": token.COMMENT,
}

var primitiveKinds = map[string]token.PrimitiveKind{
	"uint": token.Uint, "int": token.Int, "bytes": token.Bytes,
	"bool": token.Bool, "address": token.Address, "string": token.String, "bytes[]": token.DynBytes,
}

// ToTokens converts decoded records into token.Token values, in order,
// appending a trailing Eof token if one is not already present.
func ToTokens(records []Record) ([]token.Token, error) {
	out := make([]token.Token, 0, len(records)+1)
	for i, r := range records {
		k, ok := kindNames[r.Kind]
		if !ok {
			return nil, fmt.Errorf("token %d: unknown kind %q", i, r.Kind)
		}

		t := token.Token{
			Kind:            k,
			Span:            token.Span{Start: i, End: i + 1},
			Ident:           r.Ident,
			Str:             r.Str,
			Num:             r.Num,
			Opcode:          r.Opcode,
			Label:           r.Label,
			BuiltinFunction: r.Builtin,
			ArrayDims:       r.ArrayDims,
		}

		if r.Literal != "" {
			raw, err := hex.DecodeString(strings.TrimPrefix(r.Literal, "0x"))
			if err != nil {
				return nil, fmt.Errorf("token %d: invalid literal hex: %w", i, err)
			}
			copy(t.Literal[32-len(raw):], raw)
		}

		if r.Primitive != "" {
			pk, size, err := parsePrimitive(r.Primitive)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i, err)
			}
			t.Primitive = token.PrimitiveType{Kind: pk, Size: size}
		}

		out = append(out, t)
	}

	if len(out) == 0 || out[len(out)-1].Kind != token.EOF {
		out = append(out, token.Token{Kind: token.EOF, Span: token.Span{Start: len(out), End: len(out)}})
	}
	return out, nil
}

// parsePrimitive parses names like "uint256", "int8", "bytes32", "bool",
// "address", "string", "bytes[]" into a PrimitiveKind and size.
func parsePrimitive(name string) (token.PrimitiveKind, int, error) {
	if kind, ok := primitiveKinds[name]; ok {
		return kind, 0, nil
	}
	for prefix, kind := range primitiveKinds {
		if kind == token.Uint || kind == token.Int || kind == token.Bytes {
			if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
				var size int
				if _, err := fmt.Sscanf(name[len(prefix):], "%d", &size); err != nil {
					return 0, 0, fmt.Errorf("invalid primitive %q", name)
				}
				return kind, size, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("unknown primitive %q", name)
}
