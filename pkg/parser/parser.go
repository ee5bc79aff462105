package parser

import (
	"errors"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/token"
)

// errParse unwinds the current statement after a diagnostic has been recorded.
var errParse = errors.New("parser: parse error")

// Parser is a recursive-descent parser over one line of tokens.
type Parser struct {
	tokens  []token.Token
	current int
	diags   Diagnostics
}

// NewParser prepares a parser. A missing EOF sentinel is appended.
func NewParser(tokens []token.Token) *Parser {
	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
		column := 1
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			column = last.Column + len(last.Lexeme)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", nil, column))
	}
	return &Parser{tokens: tokens}
}

// Parse parses every statement in tokens. A statement that failed to parse is
// represented by a nil entry; callers must not evaluate the result when the
// diagnostics are non-empty.
func Parse(tokens []token.Token) ([]ast.Statement, Diagnostics) {
	return NewParser(tokens).Parse()
}

// ParseLine scans and parses source. Lexical diagnostics precede syntax ones.
func ParseLine(source string) ([]ast.Statement, Diagnostics) {
	tokens, lexDiags := Scan(source)
	stmts, parseDiags := Parse(tokens)
	if len(lexDiags) == 0 {
		return stmts, parseDiags
	}
	diags := make(Diagnostics, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)
	return stmts, diags
}

func (p *Parser) Parse() ([]ast.Statement, Diagnostics) {
	var statements []ast.Statement
	for !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	return statements, p.diags
}

func (p *Parser) declaration() ast.Statement {
	stmt, err := p.statement()
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// synchronize discards tokens until the next statement keyword or end of input.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		switch p.peek().Kind {
		case token.Beg, token.Print:
			return
		}
		p.advance()
	}
}
