package parser

import (
	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// parseMacroBody parses the `{ ... }` statement sequence of a macro
// declaration, dispatching on the current token's kind.
func (p *Parser) parseMacroBody() ([]ast.Statement, *Error) {
	if _, err := p.matchKind(token.LBRACE); err != nil {
		return nil, err
	}

	var body []ast.Statement
	for !p.check(token.RBRACE) {
		stmt, err := p.parseBodyStatement(true)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}

	if _, err := p.matchKind(token.RBRACE); err != nil {
		return nil, err
	}
	p.logger.Debug("parsed macro body", "statements", len(body))
	return body, nil
}

// parseLabelBody parses statements following a Label token until the next
// Label or `}` is seen, without consuming the terminator — it belongs to
// the enclosing context. Nested labels and builtin-function calls are not
// part of this grammar.
func (p *Parser) parseLabelBody() ([]ast.Statement, *Error) {
	var body []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.LABEL) {
		stmt, err := p.parseBodyStatement(false)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseBodyStatement parses one statement of the macro-body grammar.
// allowNested gates the two productions (Label, BuiltinFunction) that a
// label body excludes.
func (p *Parser) parseBodyStatement(allowNested bool) (ast.Statement, *Error) {
	start := len(p.spans)
	trail := func() ast.Trail { return append(ast.Trail(nil), p.spans[start:]...) }

	switch p.current.Kind {
	case token.LITERAL:
		t := p.consume()
		return ast.LiteralStatement{Value: t.Literal, Trail: trail()}, nil

	case token.OPCODE:
		t := p.consume()
		return ast.OpcodeStatement{Op: t.Opcode, Trail: trail()}, nil

	case token.IDENT:
		t := p.consume()
		if p.check(token.LPAREN) {
			args, err := p.parseMacroInvocationArgs()
			if err != nil {
				return nil, err
			}
			return ast.MacroInvocationStatement{Name: t.Ident, Args: args, Trail: trail()}, nil
		}
		return ast.LabelCallStatement{Name: t.Ident, Trail: trail()}, nil

	case token.LABEL:
		if !allowNested {
			return nil, newError(InvalidTokenInLabelDefinition, p.current.Kind, p.spans)
		}
		t := p.consume()
		inner, err := p.parseLabelBody()
		if err != nil {
			return nil, err
		}
		return ast.LabelStatement{Name: t.Label, Inner: inner, Trail: trail()}, nil

	case token.LBRACKET:
		name, _, err := p.parseConstantPush()
		if err != nil {
			return nil, err
		}
		return ast.ConstantStatement{Name: name, Trail: trail()}, nil

	case token.LANGLE:
		name, _, err := p.parseArgCall()
		if err != nil {
			return nil, err
		}
		return ast.ArgCallStatement{Name: name, Trail: trail()}, nil

	case token.BUILTIN_FUNCTION:
		if !allowNested {
			return nil, newError(InvalidTokenInLabelDefinition, p.current.Kind, p.spans)
		}
		t := p.consume()
		args, err := p.parseArgs(true, false, false)
		if err != nil {
			return nil, err
		}
		return ast.BuiltinFunctionCallStatement{
			Kind:  ast.ClassifyBuiltin(t.BuiltinFunction),
			Args:  args,
			Trail: trail(),
		}, nil

	default:
		if allowNested {
			return nil, newError(InvalidTokenInMacroBody, p.current.Kind, p.spans)
		}
		return nil, newError(InvalidTokenInLabelDefinition, p.current.Kind, p.spans)
	}
}
