package parser

import (
	"fmt"

	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// ErrorKind enumerates every distinct failure the parser can raise. Each
// carries whatever payload the spec's diagnostic requires.
type ErrorKind int

const (
	UnexpectedType ErrorKind = iota
	InvalidDefinition
	InvalidName
	InvalidImportPath
	InvalidConstantValue
	InvalidSingleArg
	InvalidMacroArgs
	InvalidTokenInMacroBody
	InvalidTokenInLabelDefinition
	InvalidTableBodyToken
	InvalidConstant
	InvalidArgCallIdent
	InvalidArgs
	InvalidUint256
	InvalidInt
	InvalidBytes
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedType:
		return "UnexpectedType"
	case InvalidDefinition:
		return "InvalidDefinition"
	case InvalidName:
		return "InvalidName"
	case InvalidImportPath:
		return "InvalidImportPath"
	case InvalidConstantValue:
		return "InvalidConstantValue"
	case InvalidSingleArg:
		return "InvalidSingleArg"
	case InvalidMacroArgs:
		return "InvalidMacroArgs"
	case InvalidTokenInMacroBody:
		return "InvalidTokenInMacroBody"
	case InvalidTokenInLabelDefinition:
		return "InvalidTokenInLabelDefinition"
	case InvalidTableBodyToken:
		return "InvalidTableBodyToken"
	case InvalidConstant:
		return "InvalidConstant"
	case InvalidArgCallIdent:
		return "InvalidArgCallIdent"
	case InvalidArgs:
		return "InvalidArgs"
	case InvalidUint256:
		return "InvalidUint256"
	case InvalidInt:
		return "InvalidInt"
	case InvalidBytes:
		return "InvalidBytes"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single structured diagnostic the parser produces. Parsing
// never recovers: the first Error short-circuits Parse and is returned to
// the caller carrying the span trail accumulated at the point of failure.
type Error struct {
	Kind ErrorKind

	// Expected is set for UnexpectedType: the token kind that was required.
	Expected token.Kind
	// Got is the token kind actually found, set for most kinds.
	Got token.Kind
	// Detail carries kind-specific payload: an import path string, an
	// out-of-range bit/byte width formatted as a string, etc.
	Detail string

	Spans ast.Trail
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedType:
		return fmt.Sprintf("unexpected token: expected %s, got %s", e.Expected, e.Got)
	case InvalidUint256:
		return fmt.Sprintf("invalid uint width: %s", e.Detail)
	case InvalidInt:
		return fmt.Sprintf("invalid int width: %s", e.Detail)
	case InvalidBytes:
		return fmt.Sprintf("invalid bytes width: %s", e.Detail)
	case InvalidImportPath:
		return fmt.Sprintf("invalid import path: %q", e.Detail)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s (got %s)", e.Kind, e.Detail, e.Got)
		}
		return fmt.Sprintf("%s (got %s)", e.Kind, e.Got)
	}
}

func newError(kind ErrorKind, got token.Kind, spans ast.Trail) *Error {
	return &Error{Kind: kind, Got: got, Spans: append(ast.Trail(nil), spans...)}
}

func newUnexpected(expected, got token.Kind, spans ast.Trail) *Error {
	return &Error{Kind: UnexpectedType, Expected: expected, Got: got, Spans: append(ast.Trail(nil), spans...)}
}

func newDetailed(kind ErrorKind, got token.Kind, detail string, spans ast.Trail) *Error {
	return &Error{Kind: kind, Got: got, Detail: detail, Spans: append(ast.Trail(nil), spans...)}
}
