package parser

import (
	"log/slog"

	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// Parser is a cursor over a flat token stream. It owns no state beyond the
// cursor position, the cached current token, and the span accumulator; a
// Parser is single-use for the duration of one Parse call.
type Parser struct {
	tokens  []token.Token
	cursor  int
	current token.Token

	spans ast.Trail

	base                 string
	disableImportRewrite bool
	logger               *slog.Logger
}

// New strips Whitespace and Comment tokens from tokens, resets the cursor
// to index 0, and returns a ready-to-use Parser. tokens must end in an Eof
// token; an empty slice is a caller error, not a parse error.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{logger: nil}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = defaultLogger()
	}

	p.tokens = stripTrivia(tokens)
	if len(p.tokens) == 0 {
		panic("parser: empty token stream")
	}
	p.cursor = 0
	p.current = p.tokens[0]
	return p
}

func stripTrivia(in []token.Token) []token.Token {
	out := make([]token.Token, 0, len(in))
	for _, t := range in {
		if t.Kind == token.WHITESPACE || t.Kind == token.COMMENT {
			continue
		}
		out = append(out, t)
	}
	return out
}

// check reports whether the current token's kind equals k, without
// advancing.
func (p *Parser) check(k token.Kind) bool {
	return p.current.Kind == k
}

// consume pushes the current token's span onto the accumulator and
// advances the cursor by one. Reading past the end of the stream holds at
// the final (Eof) token.
func (p *Parser) consume() token.Token {
	t := p.current
	p.spans = append(p.spans, ast.Span{Start: t.Span.Start, End: t.Span.End, File: t.Span.File})

	if p.cursor+1 < len(p.tokens) {
		p.cursor++
		p.current = p.tokens[p.cursor]
	} else {
		p.current = token.Token{Kind: token.EOF}
	}
	return t
}

// matchKind requires the current token's discriminant to equal k; on
// success it consumes and returns the token, on failure it returns
// UnexpectedType carrying the accumulated spans.
func (p *Parser) matchKind(k token.Kind) (token.Token, *Error) {
	if !p.check(k) {
		p.logger.Debug("token mismatch", "expected", k, "got", p.current.Kind)
		return token.Token{}, newUnexpected(k, p.current.Kind, p.spans)
	}
	return p.consume(), nil
}

// peek returns the token after the current one, or the Eof token if none
// remains.
func (p *Parser) peek() token.Token {
	if p.cursor+1 < len(p.tokens) {
		return p.tokens[p.cursor+1]
	}
	return token.Token{Kind: token.EOF}
}

// peekBehind returns the token before the current one, or the zero token
// if the cursor is at the start.
func (p *Parser) peekBehind() token.Token {
	if p.cursor-1 >= 0 {
		return p.tokens[p.cursor-1]
	}
	return token.Token{}
}

// resetSpans clears the diagnostic accumulator. Called at the start of
// every top-level declaration and by any production that scopes its own
// error trail to just the offending construct.
func (p *Parser) resetSpans() {
	p.spans = nil
}

func (p *Parser) atEOF() bool {
	return p.current.Kind == token.EOF
}
