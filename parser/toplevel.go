package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/huff-lang/huffparser/ast"
	"github.com/huff-lang/huffparser/token"
)

// Parse builds a Contract from the Parser's token stream. The first
// structured error aborts parsing; there is no recovery.
func (p *Parser) Parse() (*ast.Contract, *Error) {
	contract := &ast.Contract{}

	imports, err := p.parseImports()
	if err != nil {
		return nil, err
	}
	contract.Imports = imports

	for !p.atEOF() {
		p.resetSpans()

		if _, err := p.matchKind(token.DEFINE); err != nil {
			return nil, err
		}

		switch p.current.Kind {
		case token.FUNCTION:
			p.consume()
			fn, err := p.parseFunction()
			if err != nil {
				return nil, err
			}
			contract.Functions = append(contract.Functions, fn)

		case token.EVENT:
			p.consume()
			ev, err := p.parseEvent()
			if err != nil {
				return nil, err
			}
			contract.Events = append(contract.Events, ev)

		case token.CONSTANT:
			p.consume()
			c, err := p.parseConstant()
			if err != nil {
				return nil, err
			}
			contract.Constants = append(contract.Constants, c)

		case token.MACRO:
			p.consume()
			m, err := p.parseMacro()
			if err != nil {
				return nil, err
			}
			contract.Macros = append(contract.Macros, m)

		case token.JUMPTABLE:
			p.consume()
			t, err := p.parseTable(ast.JumpTable)
			if err != nil {
				return nil, err
			}
			contract.Tables = append(contract.Tables, t)

		case token.JUMPTABLE_PACKED:
			p.consume()
			t, err := p.parseTable(ast.JumpTablePacked)
			if err != nil {
				return nil, err
			}
			contract.Tables = append(contract.Tables, t)

		case token.TABLE:
			p.consume()
			t, err := p.parseTable(ast.CodeTable)
			if err != nil {
				return nil, err
			}
			contract.Tables = append(contract.Tables, t)

		default:
			p.logger.Error("invalid top-level definition", "got", p.current.Kind)
			return nil, newError(InvalidDefinition, p.current.Kind, p.spans)
		}
	}

	p.logger.Debug("parsed contract",
		"imports", len(contract.Imports),
		"functions", len(contract.Functions),
		"events", len(contract.Events),
		"constants", len(contract.Constants),
		"macros", len(contract.Macros),
		"tables", len(contract.Tables),
	)
	return contract, nil
}

// parseImports consumes zero or more `#include "path"` clauses. The
// include phase ends at the first `#define` or Eof.
func (p *Parser) parseImports() ([]ast.FilePath, *Error) {
	var imports []ast.FilePath

	for p.check(token.INCLUDE) {
		p.resetSpans()
		p.consume()

		strTok, err := p.matchKind(token.STR)
		if err != nil {
			return nil, err
		}

		resolved, verr := p.resolveImportPath(strTok.Str)
		if verr != nil {
			return nil, verr
		}
		imports = append(imports, resolved)
	}

	return imports, nil
}

// resolveImportPath localizes raw against a supplied base, applying the
// one-shot "contracts/contracts" → "contracts" rewrite in that case only; with
// no base, raw passes through untouched. It then validates that the result
// exists, is a regular file, and ends in ".huff".
func (p *Parser) resolveImportPath(raw string) (ast.FilePath, *Error) {
	resolved := raw
	if p.base != "" {
		resolved = localizeFilePath(p.base, raw)
		if !p.disableImportRewrite {
			resolved = replaceFirst(resolved, "contracts/contracts", "contracts")
		}
	}

	if !validHuffFile(resolved) {
		p.logger.Error("invalid import path", "path", resolved)
		return "", newDetailed(InvalidImportPath, token.STR, resolved, p.spans)
	}
	return ast.FilePath(resolved), nil
}

// localizeFilePath resolves p relative to base unless it is already
// absolute.
func localizeFilePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// replaceFirst replaces exactly the first occurrence of old with
// replacement, unlike strings.Replace(s, old, repl, -1) or ReplaceAll.
func replaceFirst(s, old, replacement string) string {
	return strings.Replace(s, old, replacement, 1)
}

func validHuffFile(path string) bool {
	if !strings.HasSuffix(path, ".huff") {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
