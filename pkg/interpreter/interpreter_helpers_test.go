package interpreter

import (
	"io"
	"strings"
	"testing"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/parser"
)

// scriptedInput replays fixed lines and records the prompts it was given.
type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func newTestInterpreter(lines ...string) (*Interpreter, *strings.Builder, *scriptedInput) {
	out := &strings.Builder{}
	in := &scriptedInput{lines: lines}
	return New(Options{Input: in, Output: out}), out, in
}

func mustParse(t *testing.T, source string) []ast.Statement {
	t.Helper()
	stmts, diags := parser.ParseLine(source)
	if diags.HadError() {
		t.Fatalf("parse %q: %v", source, diags)
	}
	return stmts
}

// runLine parses and interprets one line, failing the test on parse errors.
func runLine(t *testing.T, interp *Interpreter, source string) error {
	t.Helper()
	return interp.Interpret(mustParse(t, source))
}
