package interpreter

import (
	"io"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/runtime"
)

const (
	outputPrefix       = "SNOL> "
	defaultInputPrompt = "Input: "
)

// LineSource yields one line per call, displaying prompt first. It returns
// io.EOF once the stream is exhausted.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// Options configures a new Interpreter.
type Options struct {
	// Input feeds BEG statements. Without one, BEG fails with a runtime error.
	Input LineSource
	// Output receives PRINT results and BEG prompts. Defaults to io.Discard.
	Output io.Writer
	// InputPrompt is the raw prompt shown while BEG waits for a value.
	InputPrompt string
	// Suggestions caps the number of similar names attached to an
	// undefined-variable error. Zero disables hints.
	Suggestions int
}

// Interpreter evaluates SNOL statements against one session-wide environment.
type Interpreter struct {
	global      *runtime.Environment
	input       LineSource
	output      io.Writer
	inputPrompt string
	suggestions int
}

// New returns an interpreter with an empty global environment.
func New(opts Options) *Interpreter {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	prompt := opts.InputPrompt
	if prompt == "" {
		prompt = defaultInputPrompt
	}
	return &Interpreter{
		global:      runtime.NewEnvironment(),
		input:       opts.Input,
		output:      out,
		inputPrompt: prompt,
		suggestions: opts.Suggestions,
	}
}

// GlobalEnvironment returns the interpreter’s variable store.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Interpret executes statements in order. The first runtime error stops the
// remaining statements and is returned as a *RuntimeError.
func (i *Interpreter) Interpret(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := i.executeStatement(stmt, i.global); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression against the global environment.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	return i.evaluateExpression(expr, i.global)
}
