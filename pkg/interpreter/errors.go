package interpreter

import (
	"fmt"
	"strings"

	"snol/interpreter-go/pkg/token"
)

const (
	msgOperandNumber   = "Operand must be a number."
	msgOperandsSame    = "Operands must be of the same type in an arithmetic operation!"
	msgDivisionByZero  = "Division by zero!"
	msgUnsupportedNode = "Unsupported syntax node."
)

// RuntimeError aborts the rest of the current line. Token is the operator,
// name or keyword being evaluated.
type RuntimeError struct {
	Token   token.Token
	Message string
	// Hint lists bound names that resemble an undefined one.
	Hint []string
	// Err is the underlying failure, such as a line source error during BEG.
	Err error
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Suggestion renders Hint as "Did you mean [a], [b]?" or "" when empty.
func (e *RuntimeError) Suggestion() string {
	if len(e.Hint) == 0 {
		return ""
	}
	names := make([]string, 0, len(e.Hint))
	for _, name := range e.Hint {
		names = append(names, "["+name+"]")
	}
	return fmt.Sprintf("Did you mean %s?", strings.Join(names, ", "))
}

func newRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

func undefinedVariable(tok token.Token, name string) *RuntimeError {
	return newRuntimeError(tok, fmt.Sprintf("Error! [%s] is not defined!", name))
}
