package parser

import (
	"strconv"
	"unicode/utf8"

	"snol/interpreter-go/pkg/token"
)

// Scanner turns one source line into tokens. It never stops early: every
// unexpected character is recorded and skipped.
type Scanner struct {
	source  string
	tokens  []token.Token
	diags   Diagnostics
	start   int
	current int
}

func NewScanner(source string) *Scanner {
	return &Scanner{source: source}
}

// Scan is shorthand for NewScanner(source).ScanTokens().
func Scan(source string) ([]token.Token, Diagnostics) {
	return NewScanner(source).ScanTokens()
}

// ScanTokens consumes the whole line. The returned slice always ends with an
// EOF token.
func (s *Scanner) ScanTokens() ([]token.Token, Diagnostics) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", nil, len(s.source)+1))
	return s.tokens, s.diags
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen, nil)
	case ')':
		s.addToken(token.RightParen, nil)
	case '.':
		s.addToken(token.Dot, nil)
	case '-':
		s.addToken(token.Minus, nil)
	case '+':
		s.addToken(token.Plus, nil)
	case '*':
		s.addToken(token.Star, nil)
	case '/':
		s.addToken(token.Slash, nil)
	case '%':
		s.addToken(token.Modulo, nil)
	case '=':
		s.addToken(token.Equal, nil)
	case ' ', '\r', '\t':
	default:
		switch {
		case isDigit(c):
			s.number()
		case isAlpha(c):
			s.identifier()
		default:
			if c >= utf8.RuneSelf {
				_, size := utf8.DecodeRuneInString(s.source[s.start:])
				s.current = s.start + size
			}
			s.report(msgUnexpectedCharacter)
		}
	}
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.Identifier
	}
	s.addToken(kind, nil)
}

// number scans digits with an optional fraction. A trailing '.' with no digit
// after it still makes a float: "5." reads as 5.0.
func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	isInt := true
	if s.peek() == '.' {
		isInt = false
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.source[s.start:s.current]
	if isInt {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			s.report(msgIntegerOutOfRange)
		}
		s.addToken(token.Int, v)
		return
	}

	digits := text
	if digits[len(digits)-1] == '.' {
		digits += "0"
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		s.report(msgFloatOutOfRange)
	}
	s.addToken(token.Float, v)
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) addToken(kind token.Kind, literal any) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.New(kind, text, literal, s.start+1))
}

func (s *Scanner) report(message string) {
	s.diags = append(s.diags, Diagnostic{
		Kind:    DiagnosticLex,
		Lexeme:  s.source[s.start:s.current],
		Column:  s.start + 1,
		Message: message,
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
