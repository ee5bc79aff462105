package parser

import (
	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/token"
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Equal) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if target, ok := expr.(*ast.Identifier); ok {
		return ast.NewAssignmentExpression(target, value, equals), nil
	}
	// Reported without unwinding; the left side stands in for the statement.
	p.error(equals, msgInvalidAssignment)
	return expr, nil
}

// equality and comparison bind no operators yet; they keep the precedence
// ladder in place for relational operators.
func (p *Parser) equality() (ast.Expression, error) {
	return p.comparison()
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.term()
}

func (p *Parser) term() (ast.Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(ast.BinaryOperator(op.Lexeme), expr, right, op)
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Slash, token.Star, token.Modulo) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpression(ast.BinaryOperator(op.Lexeme), expr, right, op)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(token.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperatorNegate, operand, op), nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expression, error) {
	switch {
	case p.match(token.Int):
		v, _ := p.previous().Literal.(int64)
		return ast.NewIntegerLiteral(v), nil
	case p.match(token.Float):
		v, _ := p.previous().Literal.(float64)
		return ast.NewFloatLiteral(v), nil
	case p.match(token.Identifier):
		name := p.previous()
		return ast.NewIdentifier(name.Lexeme, name), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, msgExpectRightParen); err != nil {
			return nil, err
		}
		return ast.NewGroupingExpression(expr), nil
	}
	return nil, p.error(p.peek(), msgNoPrimary)
}
