package parser

import (
	"fmt"

	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// parseArgs parses a parenthesized, comma-separated argument list. Each
// argument is built in fixed order: type (if selectType), indexed flag (if
// hasIndexed and present), name (if selectName and an Ident follows), then
// an optional trailing comma. A token that is none of a valid type start,
// an Ident, or the list terminators is an error rather than being skipped,
// closing the infinite-loop hazard the grammar's literal description has.
func (p *Parser) parseArgs(selectName, selectType, hasIndexed bool) ([]ast.Argument, *Error) {
	if _, err := p.matchKind(token.LPAREN); err != nil {
		return nil, err
	}

	var args []ast.Argument
	for !p.check(token.RPAREN) {
		start := len(p.spans)
		var arg ast.Argument

		if selectType {
			kindTok, err := p.parseArgType()
			if err != nil {
				return nil, err
			}
			arg.ArgType = argTypeString(kindTok)

			if hasIndexed && p.check(token.INDEXED) {
				p.consume()
				arg.Indexed = true
			}
		}

		if selectName && p.check(token.IDENT) {
			t := p.consume()
			arg.Name = t.Ident
		}

		if len(p.spans) == start {
			// No progress was made: the current token is neither a valid
			// type, an identifier, nor a list terminator. A comma here
			// would be a leading/doubled comma, also rejected.
			return nil, newError(InvalidArgs, p.current.Kind, p.spans)
		}

		if p.check(token.COMMA) {
			p.consume()
		}

		arg.Trail = append(ast.Trail(nil), p.spans[start:]...)
		args = append(args, arg)
	}

	if _, err := p.matchKind(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseSingleArg parses `( Num )`, used by `takes(N)` / `returns(M)`.
func (p *Parser) parseSingleArg() (int64, *Error) {
	if _, err := p.matchKind(token.LPAREN); err != nil {
		return 0, err
	}
	if !p.check(token.NUM) {
		return 0, newError(InvalidSingleArg, p.current.Kind, p.spans)
	}
	n := p.consume().Num
	if _, err := p.matchKind(token.RPAREN); err != nil {
		return 0, err
	}
	return n, nil
}

// parseArgType requires the current token to be PRIMITIVE_TYPE or
// ARRAY_TYPE, validates the primitive's bounds, consumes it, and returns
// it. For ARRAY_TYPE the returned token is the array token itself, not the
// underlying primitive.
func (p *Parser) parseArgType() (token.Token, *Error) {
	switch p.current.Kind {
	case token.PRIMITIVE_TYPE:
		if err := p.validatePrimitive(p.current.Primitive); err != nil {
			return token.Token{}, err
		}
		return p.consume(), nil
	case token.ARRAY_TYPE:
		if err := p.validatePrimitive(p.current.Primitive); err != nil {
			return token.Token{}, err
		}
		return p.consume(), nil
	default:
		return token.Token{}, newError(InvalidArgs, p.current.Kind, p.spans)
	}
}

func (p *Parser) validatePrimitive(pt token.PrimitiveType) *Error {
	switch pt.Kind {
	case token.Uint:
		if pt.Size < 8 || pt.Size > 256 || pt.Size%8 != 0 {
			return newDetailed(InvalidUint256, p.current.Kind, fmt.Sprintf("%d", pt.Size), p.spans)
		}
	case token.Int:
		if pt.Size < 8 || pt.Size > 256 || pt.Size%8 != 0 {
			return newDetailed(InvalidInt, p.current.Kind, fmt.Sprintf("%d", pt.Size), p.spans)
		}
	case token.Bytes:
		if pt.Size < 1 || pt.Size > 32 {
			return newDetailed(InvalidBytes, p.current.Kind, fmt.Sprintf("%d", pt.Size), p.spans)
		}
	case token.Bool, token.Address, token.String, token.DynBytes:
		// accepted unconditionally
	}
	return nil
}

func argTypeString(t token.Token) string {
	if t.Kind == token.ARRAY_TYPE {
		return fmt.Sprintf("%s[%d]", t.Primitive, t.ArrayDims)
	}
	return t.Primitive.String()
}
