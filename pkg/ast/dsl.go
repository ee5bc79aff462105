package ast

import (
	"strconv"

	"snol/interpreter-go/pkg/token"
)

// Builder helpers for constructing trees in tests and tools. Tokens are
// synthesized with column 0.

func ID(name string) *Identifier {
	return NewIdentifier(name, token.New(token.Identifier, name, nil, 0))
}

func Int(v int64) *IntegerLiteral { return NewIntegerLiteral(v) }

func Flt(v float64) *FloatLiteral { return NewFloatLiteral(v) }

func Group(expr Expression) *GroupingExpression { return NewGroupingExpression(expr) }

func Neg(operand Expression) *UnaryExpression {
	return NewUnaryExpression(UnaryOperatorNegate, operand, token.New(token.Minus, "-", nil, 0))
}

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(BinaryOperator(op), left, right, token.New(operatorKind(op), op, nil, 0))
}

func Assign(name string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(ID(name), value, token.New(token.Equal, "=", nil, 0))
}

func Expr(expr Expression) *ExpressionStatement { return NewExpressionStatement(expr) }

func Print(expr Expression) *PrintStatement {
	return NewPrintStatement(expr, token.New(token.Print, "PRINT", nil, 0))
}

func Beg(name string) *InputStatement {
	return NewInputStatement(ID(name), token.New(token.Beg, "BEG", nil, 0))
}

func operatorKind(op string) token.Kind {
	switch op {
	case "+":
		return token.Plus
	case "-":
		return token.Minus
	case "*":
		return token.Star
	case "/":
		return token.Slash
	case "%":
		return token.Modulo
	default:
		panic("ast: unknown binary operator " + strconv.Quote(op))
	}
}
