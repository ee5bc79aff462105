package interpreter

import (
	"errors"
	"fmt"
	"io"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/runtime"
	"snol/interpreter-go/pkg/token"
)

const msgReenterValue = "Must be an integer or float! Please enter again."

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case nil:
		return nil
	case *ast.ExpressionStatement:
		_, err := i.evaluateExpression(n.Expression, env)
		return err
	case *ast.PrintStatement:
		return i.executePrint(n, env)
	case *ast.InputStatement:
		return i.executeInput(n, env)
	default:
		return newRuntimeError(token.Token{}, msgUnsupportedNode)
	}
}

func (i *Interpreter) executePrint(stmt *ast.PrintStatement, env *runtime.Environment) error {
	value, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return err
	}
	fmt.Fprintf(i.output, "%s%s\n", outputPrefix, valueToString(value))
	return nil
}

// executeInput prompts until the line source yields a number, then binds it.
func (i *Interpreter) executeInput(stmt *ast.InputStatement, env *runtime.Environment) error {
	name := stmt.Target.Name
	fmt.Fprintf(i.output, "%sPlease enter value for [%s]:\n", outputPrefix, name)
	if i.input == nil {
		return &RuntimeError{
			Token:   stmt.Target.Token,
			Message: fmt.Sprintf("No input available for [%s]!", name),
			Err:     io.EOF,
		}
	}
	for {
		line, err := i.input.ReadLine(i.inputPrompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				err = fmt.Errorf("read value for %s: %w", name, err)
			}
			return &RuntimeError{
				Token:   stmt.Target.Token,
				Message: fmt.Sprintf("No input available for [%s]!", name),
				Err:     err,
			}
		}
		value, ok := ParseNumber(line)
		if !ok {
			fmt.Fprintf(i.output, "\n%s%s\n", outputPrefix, msgReenterValue)
			continue
		}
		env.Assign(name, value)
		return nil
	}
}
