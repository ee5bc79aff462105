package interpreter

import (
	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/runtime"
	"snol/interpreter-go/pkg/token"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			rerr := undefinedVariable(n.Token, n.Name)
			rerr.Hint = env.Similar(n.Name, i.suggestions)
			return nil, rerr
		}
		return val, nil
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	default:
		return nil, newRuntimeError(token.Token{}, msgUnsupportedNode)
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryOperatorNegate:
		switch v := operand.(type) {
		case runtime.IntegerValue:
			return runtime.IntegerValue{Val: -v.Val}, nil
		case runtime.FloatValue:
			return runtime.FloatValue{Val: -v.Val}, nil
		default:
			return nil, newRuntimeError(expr.Token, msgOperandNumber)
		}
	default:
		return nil, newRuntimeError(expr.Token, msgUnsupportedNode)
	}
}

// evaluateBinaryExpression evaluates both operands left to right, then applies
// the operator. Operands never mix kinds.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	leftVal, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rightVal, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, expr.Token, leftVal, rightVal)
}

func applyBinaryOperator(op ast.BinaryOperator, tok token.Token, left, right runtime.Value) (runtime.Value, error) {
	if !runtime.IsNumeric(left) || !runtime.SameKind(left, right) {
		return nil, newRuntimeError(tok, msgOperandsSame)
	}
	switch l := left.(type) {
	case runtime.IntegerValue:
		return integerArithmetic(op, tok, l.Val, right.(runtime.IntegerValue).Val)
	case runtime.FloatValue:
		return floatArithmetic(op, tok, l.Val, right.(runtime.FloatValue).Val)
	default:
		return nil, newRuntimeError(tok, msgOperandsSame)
	}
}

// integerArithmetic wraps on overflow; '/' and '%' truncate toward zero.
func integerArithmetic(op ast.BinaryOperator, tok token.Token, l, r int64) (runtime.Value, error) {
	switch op {
	case ast.BinaryOperatorAdd:
		return runtime.IntegerValue{Val: l + r}, nil
	case ast.BinaryOperatorSubtract:
		return runtime.IntegerValue{Val: l - r}, nil
	case ast.BinaryOperatorMultiply:
		return runtime.IntegerValue{Val: l * r}, nil
	case ast.BinaryOperatorDivide:
		if r == 0 {
			return nil, newRuntimeError(tok, msgDivisionByZero)
		}
		return runtime.IntegerValue{Val: l / r}, nil
	case ast.BinaryOperatorModulo:
		if r == 0 {
			return nil, newRuntimeError(tok, msgDivisionByZero)
		}
		return runtime.IntegerValue{Val: l % r}, nil
	default:
		return nil, newRuntimeError(tok, msgUnsupportedNode)
	}
}

// floatArithmetic has no '%': the remainder is integer-only.
func floatArithmetic(op ast.BinaryOperator, tok token.Token, l, r float64) (runtime.Value, error) {
	switch op {
	case ast.BinaryOperatorAdd:
		return runtime.FloatValue{Val: l + r}, nil
	case ast.BinaryOperatorSubtract:
		return runtime.FloatValue{Val: l - r}, nil
	case ast.BinaryOperatorMultiply:
		return runtime.FloatValue{Val: l * r}, nil
	case ast.BinaryOperatorDivide:
		if r == 0 {
			return nil, newRuntimeError(tok, msgDivisionByZero)
		}
		return runtime.FloatValue{Val: l / r}, nil
	case ast.BinaryOperatorModulo:
		return nil, newRuntimeError(tok, msgOperandsSame)
	default:
		return nil, newRuntimeError(tok, msgUnsupportedNode)
	}
}

func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	env.Assign(assign.Target.Name, value)
	return value, nil
}
