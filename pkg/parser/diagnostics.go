package parser

import (
	"fmt"
	"strings"
)

// DiagnosticKind separates lexical from syntactic problems.
type DiagnosticKind int

const (
	DiagnosticLex DiagnosticKind = iota
	DiagnosticSyntax
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticLex:
		return "lex"
	case DiagnosticSyntax:
		return "syntax"
	default:
		return fmt.Sprintf("unknown_diagnostic_%d", int(k))
	}
}

const (
	msgUnexpectedCharacter = "Unexpected character."
	msgIntegerOutOfRange   = "Integer literal out of range."
	msgFloatOutOfRange     = "Float literal out of range."
	msgUnknownCommand      = "Unknown Command! Does not match any valid command of the language."
	msgNoPrimary           = "Unknown command! Does not match any valid command of the language."
	msgExpectVariableName  = "Expect variable name."
	msgExpectRightParen    = "Expect ')' after expression."
	msgInvalidAssignment   = "Invalid assignment target."
)

// Diagnostic is a non-fatal scan or parse problem. Lexeme is the offending
// source text (empty at end of input); Column is 1-based.
type Diagnostic struct {
	Kind    DiagnosticKind
	Lexeme  string
	Column  int
	AtEnd   bool
	Message string
}

func (d Diagnostic) Error() string {
	return "Error! " + d.Message
}

// Where describes the location of the offending lexeme, such as
// "at ')', column 7" or "at end".
func (d Diagnostic) Where() string {
	if d.AtEnd {
		return "at end"
	}
	return fmt.Sprintf("at '%s', column %d", d.Lexeme, d.Column)
}

// Diagnostics accumulates everything reported while scanning and parsing one line.
type Diagnostics []Diagnostic

// HadError reports whether anything was recorded.
func (d Diagnostics) HadError() bool {
	return len(d) > 0
}

// Err returns nil when empty, or the diagnostics as a single error.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	return d
}

func (d Diagnostics) Error() string {
	parts := make([]string, 0, len(d))
	for _, diag := range d {
		parts = append(parts, diag.Error())
	}
	return strings.Join(parts, "\n")
}
