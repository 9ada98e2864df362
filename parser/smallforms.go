package parser

import (
	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// parseConstantPush parses `[NAME]`, a reference to a previously declared
// constant, returning the name and its own trail.
func (p *Parser) parseConstantPush() (string, ast.Trail, *Error) {
	start := len(p.spans)
	if _, err := p.matchKind(token.LBRACKET); err != nil {
		return "", nil, err
	}
	if !p.check(token.IDENT) {
		return "", nil, newError(InvalidConstant, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	if _, err := p.matchKind(token.RBRACKET); err != nil {
		return "", nil, err
	}
	return name, append(ast.Trail(nil), p.spans[start:]...), nil
}

// parseArgCall parses `<NAME>`, a reference to a macro parameter, returning
// the name and its own trail.
func (p *Parser) parseArgCall() (string, ast.Trail, *Error) {
	start := len(p.spans)
	if _, err := p.matchKind(token.LANGLE); err != nil {
		return "", nil, err
	}
	if !p.check(token.IDENT) {
		return "", nil, newError(InvalidArgCallIdent, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	if _, err := p.matchKind(token.RANGLE); err != nil {
		return "", nil, err
	}
	return name, append(ast.Trail(nil), p.spans[start:]...), nil
}

// parseMacroInvocationArgs parses the comma-separated argument list of a
// macro invocation: `(` Literal|Ident|<Ident> [, ...] `)`.
func (p *Parser) parseMacroInvocationArgs() ([]ast.MacroArg, *Error) {
	if _, err := p.matchKind(token.LPAREN); err != nil {
		return nil, err
	}

	var args []ast.MacroArg
	for !p.check(token.RPAREN) {
		start := len(p.spans)

		switch {
		case p.current.Kind == token.LITERAL:
			t := p.consume()
			args = append(args, ast.MacroArgLiteral{Value: t.Literal, Trail: append(ast.Trail(nil), p.spans[start:]...)})
		case p.current.Kind == token.IDENT:
			t := p.consume()
			args = append(args, ast.MacroArgIdent{Name: t.Ident, Trail: append(ast.Trail(nil), p.spans[start:]...)})
		case p.current.Kind == token.LANGLE:
			name, _, err := p.parseArgCall()
			if err != nil {
				return nil, err
			}
			args = append(args, ast.MacroArgCall{Name: name, Trail: append(ast.Trail(nil), p.spans[start:]...)})
		default:
			return nil, newError(InvalidMacroArgs, p.current.Kind, p.spans)
		}

		if p.check(token.COMMA) {
			p.consume()
		}
	}

	if _, err := p.matchKind(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseTableBody parses the `{ ... }` sequence of Ident tokens naming
// labels for a jumptable/code-table declaration.
func (p *Parser) parseTableBody() ([]ast.Statement, *Error) {
	if _, err := p.matchKind(token.LBRACE); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for !p.check(token.RBRACE) {
		start := len(p.spans)
		if p.current.Kind != token.IDENT {
			return nil, newError(InvalidTableBodyToken, p.current.Kind, p.spans)
		}
		name := p.consume().Ident
		body = append(body, ast.LabelCallStatement{Name: name, Trail: append(ast.Trail(nil), p.spans[start:]...)})
	}

	if _, err := p.matchKind(token.RBRACE); err != nil {
		return nil, err
	}
	return body, nil
}
