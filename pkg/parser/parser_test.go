package parser_test

import (
	"reflect"
	"testing"

	"snol/interpreter-go/pkg/ast"
	"snol/interpreter-go/pkg/parser"
	"snol/interpreter-go/pkg/token"
)

func parseOK(t *testing.T, source string) []ast.Statement {
	t.Helper()
	stmts, diags := parser.ParseLine(source)
	if diags.HadError() {
		t.Fatalf("ParseLine(%q) reported diagnostics: %v", source, diags)
	}
	return stmts
}

func messages(diags parser.Diagnostics) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"PRINT 2 + 3", "(print (+ 2 3))"},
		{"PRINT (1 + 2) * 3", "(print (* (group (+ 1 2)) 3))"},
		{"PRINT -3 + 1", "(print (+ (- 3) 1))"},
		{"PRINT 1 - 2 - 3", "(print (- (- 1 2) 3))"},
		{"PRINT 8 / 4 * 2 % 3", "(print (% (* (/ 8 4) 2) 3))"},
		{"PRINT 1 + 2 * 3", "(print (+ 1 (* 2 3)))"},
		{"PRINT --x", "(print (- (- x)))"},
		{"x = 5", "(; (= x 5))"},
		{"a = b = 2.5", "(; (= a (= b 2.5)))"},
		{"x = y = z", "(; (= x (= y z)))"},
		{"BEG num", "(beg num)"},
		{"PRINT 5.", "(print 5.0)"},
		{"x", "(; x)"},
	}
	for _, tc := range cases {
		stmts := parseOK(t, tc.source)
		if got := ast.FormatStatements(stmts); got != tc.want {
			t.Fatalf("ParseLine(%q) = %s, want %s", tc.source, got, tc.want)
		}
	}
}

func TestParseMultipleStatementsOnOneLine(t *testing.T) {
	stmts := parseOK(t, "BEG x PRINT x")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.InputStatement); !ok {
		t.Fatalf("expected InputStatement first, got %T", stmts[0])
	}
	if _, ok := stmts[1].(*ast.PrintStatement); !ok {
		t.Fatalf("expected PrintStatement second, got %T", stmts[1])
	}
}

func TestParseEmptyLine(t *testing.T) {
	stmts := parseOK(t, "   ")
	if len(stmts) != 0 {
		t.Fatalf("expected no statements, got %d", len(stmts))
	}
}

func TestParseMatchesBuilderTree(t *testing.T) {
	stmts := parseOK(t, "PRINT x * (2 - 1)")
	want := ast.Print(ast.Bin("*", ast.ID("x"), ast.Group(ast.Bin("-", ast.Int(2), ast.Int(1)))))
	if got := ast.Format(stmts[0]); got != ast.Format(want) {
		t.Fatalf("got %s, want %s", got, ast.Format(want))
	}
	printStmt := stmts[0].(*ast.PrintStatement)
	bin := printStmt.Expression.(*ast.BinaryExpression)
	if bin.Token.Kind != token.Star || bin.Token.Column != 9 {
		t.Fatalf("operator token not preserved: %#v", bin.Token)
	}
}

func TestParseTrailingIdentifierIsUnknownCommand(t *testing.T) {
	for _, source := range []string{"PRINT x y", "x = 1 y", "BEG a b", "x y"} {
		stmts, diags := parser.ParseLine(source)
		if !diags.HadError() {
			t.Fatalf("%q: expected diagnostics", source)
		}
		if got := messages(diags); got[0] != "Unknown Command! Does not match any valid command of the language." {
			t.Fatalf("%q: unexpected messages %v", source, got)
		}
		if len(stmts) != 1 || stmts[0] != nil {
			t.Fatalf("%q: expected a single nil placeholder, got %v", source, stmts)
		}
	}
}

func TestParseInvalidAssignmentTargetKeepsParsing(t *testing.T) {
	stmts, diags := parser.ParseLine("(a) = 3 PRINT 4")
	if got := messages(diags); !reflect.DeepEqual(got, []string{"Invalid assignment target."}) {
		t.Fatalf("unexpected diagnostics %v", got)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected both statements to be parsed, got %d", len(stmts))
	}
	if got := ast.FormatStatements(stmts); got != "(; (group a))\n(print 4)" {
		t.Fatalf("unexpected trees:\n%s", got)
	}
}

func TestParseSynchronizesAtNextKeyword(t *testing.T) {
	stmts, diags := parser.ParseLine("PRINT ) 1 PRINT 2 BEG y")
	if got := messages(diags); !reflect.DeepEqual(got, []string{"Unknown command! Does not match any valid command of the language."}) {
		t.Fatalf("unexpected diagnostics %v", got)
	}
	if got := ast.FormatStatements(stmts); got != "nil\n(print 2)\n(beg y)" {
		t.Fatalf("unexpected trees:\n%s", got)
	}
}

func TestParseReportsEachBrokenStatement(t *testing.T) {
	_, diags := parser.ParseLine("PRINT (1 1 PRINT ) BEG 3")
	want := []string{
		"Expect ')' after expression.",
		"Unknown command! Does not match any valid command of the language.",
		"Expect variable name.",
	}
	if got := messages(diags); !reflect.DeepEqual(got, want) {
		t.Fatalf("messages = %v, want %v", got, want)
	}
}

func TestParseMissingOperandAtEnd(t *testing.T) {
	_, diags := parser.ParseLine("PRINT 1 +")
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	if !diags[0].AtEnd || diags[0].Where() != "at end" {
		t.Fatalf("expected diagnostic at end, got %#v", diags[0])
	}
}

func TestDiagnosticWhereNamesColumn(t *testing.T) {
	_, diags := parser.ParseLine("x = 1 y")
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	if got := diags[0].Where(); got != "at 'y', column 7" {
		t.Fatalf("unexpected location %q", got)
	}
}

func TestParseLineMergesLexAndSyntaxDiagnostics(t *testing.T) {
	_, diags := parser.ParseLine("PRINT 1 # +")
	if len(diags) != 2 {
		t.Fatalf("expected two diagnostics, got %v", diags)
	}
	if diags[0].Kind != parser.DiagnosticLex || diags[1].Kind != parser.DiagnosticSyntax {
		t.Fatalf("unexpected ordering: %#v", diags)
	}
	if diags.Err() == nil {
		t.Fatalf("expected Err to be non-nil")
	}
}

func TestParseWellFormedLinesHaveNoDiagnostics(t *testing.T) {
	for _, source := range []string{
		"PRINT ((((1))))",
		"total = (a + b) * (c - d) / 2 % 7",
		"PRINT -(-1.5) * 2.0",
		"BEG value",
		"x = -y",
	} {
		parseOK(t, source)
	}
}

func TestParseAppendsMissingEOF(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Print, "PRINT", nil, 1),
		token.New(token.Int, "1", int64(1), 7),
	}
	stmts, diags := parser.Parse(tokens)
	if diags.HadError() {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got := ast.FormatStatements(stmts); got != "(print 1)" {
		t.Fatalf("got %s", got)
	}
}
