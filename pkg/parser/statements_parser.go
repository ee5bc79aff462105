package parser

import (
	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/token"
)

func (p *Parser) statement() (ast.Statement, error) {
	if p.match(token.Beg) {
		return p.inputStatement()
	}
	if p.match(token.Print) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) inputStatement() (ast.Statement, error) {
	keyword := p.previous()
	name, err := p.consume(token.Identifier, msgExpectVariableName)
	if err != nil {
		return nil, err
	}
	if err := p.endOfCommand(); err != nil {
		return nil, err
	}
	return ast.NewInputStatement(ast.NewIdentifier(name.Lexeme, name), keyword), nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	keyword := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfCommand(); err != nil {
		return nil, err
	}
	return ast.NewPrintStatement(value, keyword), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfCommand(); err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

// endOfCommand rejects a statement that is directly followed by an
// identifier; every command occupies its own line.
func (p *Parser) endOfCommand() error {
	if p.check(token.Identifier) {
		return p.error(p.peek(), msgUnknownCommand)
	}
	return nil
}
