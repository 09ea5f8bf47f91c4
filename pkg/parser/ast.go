package parser

import (
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
)

type Expr interface {
	expr()
}

type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

type GroupingExpr struct {
	Expr Expr
}

func (GroupingExpr) expr() {}

type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

func (UnaryExpr) expr() {}

type LiteralExpr struct {
	Value value.Value
}

func (LiteralExpr) expr() {}

type VariableExpr struct {
	Name token.Token
}

func (VariableExpr) expr() {}

type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (AssignExpr) expr() {}

// LogicalExpr is a short-circuiting "and" or "or".
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (LogicalExpr) expr() {}

type Statement interface {
	statement()
}

type PrintStatement struct {
	Expr Expr
}

func (PrintStatement) statement() {}

type ExprStatement struct {
	Expr Expr
}

func (ExprStatement) statement() {}

// VarStatement declares Name in the current scope. A nil Initializer binds
// nil.
type VarStatement struct {
	Name        token.Token
	Initializer Expr
}

func (VarStatement) statement() {}

type BlockStatement struct {
	Statements []Statement
}

func (BlockStatement) statement() {}

type IfStatement struct {
	Condition Expr
	Then      Statement
	Else      Statement
}

func (IfStatement) statement() {}

type WhileStatement struct {
	Condition Expr
	Body      Statement
}

func (WhileStatement) statement() {}
