package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	Dot
	Minus
	Plus
	Slash
	Star
	Modulo
	Equal

	// Literals.
	Identifier
	Int
	Float

	// Keywords.
	Beg
	Print

	EOF
)

func (k Kind) String() string {
	switch k {
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case Dot:
		return "DOT"
	case Minus:
		return "MINUS"
	case Plus:
		return "PLUS"
	case Slash:
		return "SLASH"
	case Star:
		return "STAR"
	case Modulo:
		return "MODULO"
	case Equal:
		return "EQUAL"
	case Identifier:
		return "IDENTIFIER"
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case Beg:
		return "BEG"
	case Print:
		return "PRINT"
	case EOF:
		return "END_OF_FILE"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Keywords maps reserved identifier text to its keyword kind. Matching is case-sensitive.
var Keywords = map[string]Kind{
	"BEG":   Beg,
	"PRINT": Print,
}

// Token is a classified lexeme. Literal is an int64 for Int tokens, a float64
// for Float tokens and nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Column  int
}

// New builds a token; column is the 1-based start offset within the line.
func New(kind Kind, lexeme string, literal any, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Column: column}
}

// String renders the token as "<KIND> <lexeme> <literal>".
func (t Token) String() string {
	var literal string
	switch t.Kind {
	case Identifier:
		literal = t.Lexeme
	case Int:
		if v, ok := t.Literal.(int64); ok {
			literal = strconv.FormatInt(v, 10)
		}
	case Float:
		if v, ok := t.Literal.(float64); ok {
			literal = strconv.FormatFloat(v, 'f', 6, 64)
		}
	default:
		literal = "null"
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, literal)
}

// IsEOF reports whether t is the synthetic end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

var _ fmt.Stringer = Token{}
