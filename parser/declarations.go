package parser

import (
	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/internal/selector"
	"github.com/huff-lang/huffparser/token"
)

// parseFunction parses `function NAME (args) {view|pure|payable|nonpayable}
// returns (args)` and computes the 4-byte Keccak-256 selector over the
// canonical "name(t1,t2,...)" signature string.
func (p *Parser) parseFunction() (*ast.Function, *Error) {
	if !p.check(token.IDENT) {
		return nil, newError(InvalidName, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	inputs, err := p.parseArgs(true, true, false)
	if err != nil {
		return nil, err
	}

	fnType, err := p.parseFnType()
	if err != nil {
		return nil, err
	}

	if _, err := p.matchKind(token.RETURNS); err != nil {
		return nil, err
	}
	outputs, err := p.parseArgs(true, true, false)
	if err != nil {
		return nil, err
	}

	inputTypes := make([]string, len(inputs))
	for i, a := range inputs {
		inputTypes[i] = a.ArgType
	}
	sig := selector.Compute(name, inputTypes)

	fn := &ast.Function{
		Name:      name,
		Signature: sig,
		Inputs:    inputs,
		FnType:    fnType,
		Outputs:   outputs,
		Trail:     append(ast.Trail(nil), p.spans...),
	}
	p.logger.Debug("parsed function", "name", name, "selector", sig)
	return fn, nil
}

func (p *Parser) parseFnType() (ast.FnType, *Error) {
	switch p.current.Kind {
	case token.VIEW:
		p.consume()
		return ast.View, nil
	case token.PURE:
		p.consume()
		return ast.Pure, nil
	case token.PAYABLE:
		p.consume()
		return ast.Payable, nil
	case token.NONPAYABLE:
		p.consume()
		return ast.NonPayable, nil
	default:
		return 0, newError(UnexpectedType, p.current.Kind, p.spans)
	}
}

// parseEvent parses `event NAME (args)`, where parameter args allow the
// `indexed` modifier.
func (p *Parser) parseEvent() (*ast.Event, *Error) {
	if !p.check(token.IDENT) {
		return nil, newError(InvalidName, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	params, err := p.parseArgs(true, true, true)
	if err != nil {
		return nil, err
	}

	ev := &ast.Event{Name: name, Parameters: params, Trail: append(ast.Trail(nil), p.spans...)}
	p.logger.Debug("parsed event", "name", name)
	return ev, nil
}

// parseConstant parses `constant NAME = (FREE_STORAGE_POINTER() |
// Literal)`. The span accumulator is reset afterward to scope later errors
// to their own construct.
func (p *Parser) parseConstant() (*ast.ConstantDefinition, *Error) {
	if !p.check(token.IDENT) {
		return nil, newError(InvalidName, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	if _, err := p.matchKind(token.EQUALS); err != nil {
		return nil, err
	}

	c := &ast.ConstantDefinition{Name: name}
	switch p.current.Kind {
	case token.FREE_STORAGE_POINTER:
		p.consume()
		c.IsFreeStoragePointer = true
		if _, err := p.matchKind(token.LPAREN); err != nil {
			return nil, err
		}
		if _, err := p.matchKind(token.RPAREN); err != nil {
			return nil, err
		}
	case token.LITERAL:
		t := p.consume()
		c.Value = t.Literal
	default:
		return nil, newError(InvalidConstantValue, p.current.Kind, p.spans)
	}

	c.Trail = append(ast.Trail(nil), p.spans...)
	p.resetSpans()
	p.logger.Debug("parsed constant", "name", name)
	return c, nil
}

// parseMacro parses `macro NAME (param-names) = takes (N) returns (M) {
// body }`.
func (p *Parser) parseMacro() (*ast.MacroDefinition, *Error) {
	if !p.check(token.IDENT) {
		return nil, newError(InvalidName, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	args, err := p.parseArgs(true, false, false)
	if err != nil {
		return nil, err
	}

	if _, err := p.matchKind(token.EQUALS); err != nil {
		return nil, err
	}
	if _, err := p.matchKind(token.TAKES); err != nil {
		return nil, err
	}
	takes, err := p.parseSingleArg()
	if err != nil {
		return nil, err
	}
	if _, err := p.matchKind(token.RETURNS); err != nil {
		return nil, err
	}
	returns, err := p.parseSingleArg()
	if err != nil {
		return nil, err
	}

	body, err := p.parseMacroBody()
	if err != nil {
		return nil, err
	}

	m := &ast.MacroDefinition{
		Name:      name,
		Arguments: args,
		Takes:     takes,
		Returns:   returns,
		Body:      body,
		Trail:     append(ast.Trail(nil), p.spans...),
	}
	p.logger.Debug("parsed macro", "name", name, "takes", takes, "returns", returns)
	return m, nil
}

// parseTable parses a `jumptable | jumptable__packed | table` declaration:
// a header (NAME, optional `()`, optional `=`) and a `{ ... }` body of
// label names, then computes the kind-specific size law.
func (p *Parser) parseTable(kind ast.TableKind) (*ast.TableDefinition, *Error) {
	if !p.check(token.IDENT) {
		return nil, newError(InvalidName, p.current.Kind, p.spans)
	}
	name := p.consume().Ident

	if p.check(token.LPAREN) {
		p.consume()
		if _, err := p.matchKind(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if p.check(token.EQUALS) {
		p.consume()
	}

	body, err := p.parseTableBody()
	if err != nil {
		return nil, err
	}

	size := tableSize(kind, body)

	t := &ast.TableDefinition{
		Name:        name,
		Kind:        kind,
		Body:        body,
		SizeBytes32: size,
		Trail:       append(ast.Trail(nil), p.spans...),
	}
	p.logger.Debug("parsed table", "name", name, "kind", kind)
	return t, nil
}

// tableSize computes the size law from spec §3: JumpTable is
// len(body)*32, JumpTablePacked is len(body)*2, CodeTable is the sum of
// each LabelCall identifier's hex length divided by 2 (hex chars → bytes).
// The result is encoded as the 32-byte big-endian representation of its
// decimal string.
func tableSize(kind ast.TableKind, body []ast.Statement) [32]byte {
	var n int
	switch kind {
	case ast.JumpTable:
		n = len(body) * 32
	case ast.JumpTablePacked:
		n = len(body) * 2
	case ast.CodeTable:
		total := 0
		for _, s := range body {
			if lc, ok := s.(ast.LabelCallStatement); ok {
				total += len(lc.Name)
			}
		}
		n = total / 2
	}
	return sizeToBytes32(n)
}

func sizeToBytes32(n int) [32]byte {
	var out [32]byte
	digits := []byte(decimalString(n))
	copy(out[32-len(digits):], digits)
	return out
}

func decimalString(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
