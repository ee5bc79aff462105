package ast

import "snol/interpreter-go/pkg/token"

type NodeType string

const (
	NodeIdentifier           NodeType = "Identifier"
	NodeIntegerLiteral       NodeType = "IntegerLiteral"
	NodeFloatLiteral         NodeType = "FloatLiteral"
	NodeGroupingExpression   NodeType = "GroupingExpression"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodePrintStatement       NodeType = "PrintStatement"
	NodeInputStatement       NodeType = "InputStatement"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `yaml:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Identifier

type Identifier struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`

	Name  string      `yaml:"name"`
	Token token.Token `yaml:"-"`
}

func NewIdentifier(name string, tok token.Token) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name, Token: tok}
}

// Literals

type IntegerLiteral struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	literalMarker    `yaml:"-"`

	Value int64 `yaml:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`
	literalMarker    `yaml:"-"`

	Value float64 `yaml:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

// Expressions

type GroupingExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`

	Expression Expression `yaml:"expression"`
}

func NewGroupingExpression(expr Expression) *GroupingExpression {
	return &GroupingExpression{nodeImpl: newNodeImpl(NodeGroupingExpression), Expression: expr}
}

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "-"
)

type UnaryExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`

	Operator UnaryOperator `yaml:"operator"`
	Operand  Expression    `yaml:"operand"`
	Token    token.Token   `yaml:"-"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression, tok token.Token) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand, Token: tok}
}

type BinaryOperator string

const (
	BinaryOperatorAdd      BinaryOperator = "+"
	BinaryOperatorSubtract BinaryOperator = "-"
	BinaryOperatorMultiply BinaryOperator = "*"
	BinaryOperatorDivide   BinaryOperator = "/"
	BinaryOperatorModulo   BinaryOperator = "%"
)

type BinaryExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`

	Operator BinaryOperator `yaml:"operator"`
	Left     Expression     `yaml:"left"`
	Right    Expression     `yaml:"right"`
	Token    token.Token    `yaml:"-"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression, tok token.Token) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right, Token: tok}
}

// AssignmentExpression binds Value to Target, creating the binding if needed.
type AssignmentExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `yaml:"-"`

	Target *Identifier `yaml:"target"`
	Value  Expression  `yaml:"value"`
	Token  token.Token `yaml:"-"`
}

func NewAssignmentExpression(target *Identifier, value Expression, tok token.Token) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value, Token: tok}
}

// Statements

type ExpressionStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Expression Expression `yaml:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type PrintStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Expression Expression  `yaml:"expression"`
	Token      token.Token `yaml:"-"`
}

func NewPrintStatement(expr Expression, tok token.Token) *PrintStatement {
	return &PrintStatement{nodeImpl: newNodeImpl(NodePrintStatement), Expression: expr, Token: tok}
}

// InputStatement is `BEG name`: read a number from the line source into Target.
type InputStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `yaml:"-"`

	Target *Identifier `yaml:"target"`
	Token  token.Token `yaml:"-"`
}

func NewInputStatement(target *Identifier, tok token.Token) *InputStatement {
	return &InputStatement{nodeImpl: newNodeImpl(NodeInputStatement), Target: target, Token: tok}
}
