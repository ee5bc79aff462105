package parser

import (
	"testing"

	"snol/interpreter-go/pkg/token"
)

func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func sameKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScanOperatorsAndKeywords(t *testing.T) {
	tokens, diags := Scan("BEG x PRINT (a+b)-c*d/e%f = . ")
	if diags.HadError() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{
		token.Beg, token.Identifier, token.Print,
		token.LeftParen, token.Identifier, token.Plus, token.Identifier, token.RightParen,
		token.Minus, token.Identifier, token.Star, token.Identifier, token.Slash,
		token.Identifier, token.Modulo, token.Identifier, token.Equal, token.Dot,
		token.EOF,
	}
	if got := kindsOf(tokens); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanKeywordsAreCaseSensitive(t *testing.T) {
	tokens, _ := Scan("print Print PRINT beg BEG")
	want := []token.Kind{token.Identifier, token.Identifier, token.Print, token.Identifier, token.Beg, token.EOF}
	if got := kindsOf(tokens); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanNumbers(t *testing.T) {
	cases := []struct {
		source  string
		kind    token.Kind
		literal any
		lexeme  string
	}{
		{"42", token.Int, int64(42), "42"},
		{"0", token.Int, int64(0), "0"},
		{"3.25", token.Float, 3.25, "3.25"},
		{"5.", token.Float, 5.0, "5."},
		{"007", token.Int, int64(7), "007"},
	}
	for _, tc := range cases {
		tokens, diags := Scan(tc.source)
		if diags.HadError() {
			t.Fatalf("%q: unexpected diagnostics: %v", tc.source, diags)
		}
		if len(tokens) != 2 {
			t.Fatalf("%q: expected number and EOF, got %v", tc.source, tokens)
		}
		tok := tokens[0]
		if tok.Kind != tc.kind || tok.Literal != tc.literal || tok.Lexeme != tc.lexeme {
			t.Fatalf("%q: got %s (literal %#v), want kind %s literal %#v lexeme %q", tc.source, tok, tok.Literal, tc.kind, tc.literal, tc.lexeme)
		}
	}
}

func TestScanLeadingDotIsSeparateToken(t *testing.T) {
	tokens, diags := Scan(".5")
	if diags.HadError() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{token.Dot, token.Int, token.EOF}
	if got := kindsOf(tokens); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanReportsEveryUnexpectedCharacter(t *testing.T) {
	tokens, diags := Scan("x # y $ é 1")
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Kind != DiagnosticLex || d.Message != "Unexpected character." {
			t.Fatalf("unexpected diagnostic %#v", d)
		}
	}
	if diags[2].Lexeme != "é" {
		t.Fatalf("expected multi-byte rune to be reported whole, got %q", diags[2].Lexeme)
	}
	want := []token.Kind{token.Identifier, token.Identifier, token.Int, token.EOF}
	if got := kindsOf(tokens); !sameKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestScanIntegerOutOfRange(t *testing.T) {
	_, diags := Scan("PRINT 99999999999999999999")
	if len(diags) != 1 || diags[0].Message != "Integer literal out of range." {
		t.Fatalf("expected out-of-range diagnostic, got %v", diags)
	}
}

func TestScanAlwaysAppendsEOF(t *testing.T) {
	for _, source := range []string{"", "   \t\r", "x"} {
		tokens, _ := Scan(source)
		if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
			t.Fatalf("%q: missing EOF sentinel in %v", source, tokens)
		}
		if last := tokens[len(tokens)-1]; last.Lexeme != "" {
			t.Fatalf("%q: EOF lexeme = %q, want empty", source, last.Lexeme)
		}
	}
}

func TestScanColumns(t *testing.T) {
	tokens, _ := Scan("  x = 10")
	if tokens[0].Column != 3 || tokens[1].Column != 5 || tokens[2].Column != 7 {
		t.Fatalf("unexpected columns: %d %d %d", tokens[0].Column, tokens[1].Column, tokens[2].Column)
	}
}
