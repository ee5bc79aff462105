package ast

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format renders a node as a parenthesized prefix expression, e.g.
// `(print (+ 1 (group (* 2 x))))`. A nil node renders as "nil".
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
		b.WriteString("nil")
	case *Identifier:
		b.WriteString(n.Name)
	case *IntegerLiteral:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLiteral:
		text := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(text, ".") {
			text += ".0"
		}
		b.WriteString(text)
	case *GroupingExpression:
		parenthesize(b, "group", n.Expression)
	case *UnaryExpression:
		parenthesize(b, string(n.Operator), n.Operand)
	case *BinaryExpression:
		parenthesize(b, string(n.Operator), n.Left, n.Right)
	case *AssignmentExpression:
		parenthesize(b, "=", n.Target, n.Value)
	case *ExpressionStatement:
		parenthesize(b, ";", n.Expression)
	case *PrintStatement:
		parenthesize(b, "print", n.Expression)
	case *InputStatement:
		parenthesize(b, "beg", n.Target)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func parenthesize(b *strings.Builder, name string, parts ...Node) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		writeNode(b, part)
	}
	b.WriteByte(')')
}

// FormatStatements formats each statement on its own line.
func FormatStatements(stmts []Statement) string {
	lines := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		if stmt == nil {
			lines = append(lines, "nil")
			continue
		}
		lines = append(lines, Format(stmt))
	}
	return strings.Join(lines, "\n")
}

// DumpYAML serializes the statement list as a YAML document.
func DumpYAML(stmts []Statement) (string, error) {
	out, err := yaml.Marshal(stmts)
	if err != nil {
		return "", fmt.Errorf("ast: marshal: %w", err)
	}
	return string(out), nil
}
