package parser

import "snol/interpreter-go/pkg/token"

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.error(p.peek(), message)
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().IsEOF()
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// error records a syntax diagnostic at tok and returns errParse for callers
// that need to abandon the statement.
func (p *Parser) error(tok token.Token, message string) error {
	p.diags = append(p.diags, Diagnostic{
		Kind:    DiagnosticSyntax,
		Lexeme:  tok.Lexeme,
		Column:  tok.Column,
		AtEnd:   tok.IsEOF(),
		Message: message,
	})
	return errParse
}
