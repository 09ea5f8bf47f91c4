package parser

import (
	"fmt"
	"strings"

	"github.com/rhino1998/lox/pkg/value"
)

// Print renders stmt in a parenthesized prefix form, one statement per call.
func Print(stmt Statement) string {
	var b strings.Builder
	printStatement(&b, stmt)
	return b.String()
}

func PrintExpr(expr Expr) string {
	var b strings.Builder
	printExpr(&b, expr)
	return b.String()
}

func printStatement(b *strings.Builder, stmt Statement) {
	switch stmt := stmt.(type) {
	case PrintStatement:
		parenthesize(b, "print", stmt.Expr)
	case ExprStatement:
		parenthesize(b, ";", stmt.Expr)
	case VarStatement:
		if stmt.Initializer == nil {
			fmt.Fprintf(b, "(var %s)", stmt.Name.Lexeme)
			return
		}

		fmt.Fprintf(b, "(var %s ", stmt.Name.Lexeme)
		printExpr(b, stmt.Initializer)
		b.WriteString(")")
	case BlockStatement:
		b.WriteString("(block")
		for _, s := range stmt.Statements {
			b.WriteString(" ")
			printStatement(b, s)
		}
		b.WriteString(")")
	case IfStatement:
		b.WriteString("(if ")
		printExpr(b, stmt.Condition)
		b.WriteString(" ")
		printStatement(b, stmt.Then)
		if stmt.Else != nil {
			b.WriteString(" ")
			printStatement(b, stmt.Else)
		}
		b.WriteString(")")
	case WhileStatement:
		b.WriteString("(while ")
		printExpr(b, stmt.Condition)
		b.WriteString(" ")
		printStatement(b, stmt.Body)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<%T>", stmt)
	}
}

func printExpr(b *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case BinaryExpr:
		parenthesize(b, expr.Operator.Lexeme, expr.Left, expr.Right)
	case LogicalExpr:
		parenthesize(b, expr.Operator.Lexeme, expr.Left, expr.Right)
	case GroupingExpr:
		parenthesize(b, "group", expr.Expr)
	case UnaryExpr:
		parenthesize(b, expr.Operator.Lexeme, expr.Right)
	case LiteralExpr:
		if s, ok := expr.Value.(value.String); ok {
			fmt.Fprintf(b, "%q", string(s))
			return
		}

		b.WriteString(value.OrNil(expr.Value).String())
	case VariableExpr:
		b.WriteString(expr.Name.Lexeme)
	case AssignExpr:
		fmt.Fprintf(b, "(= %s ", expr.Name.Lexeme)
		printExpr(b, expr.Value)
		b.WriteString(")")
	default:
		fmt.Fprintf(b, "<%T>", expr)
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		printExpr(b, expr)
	}
	b.WriteString(")")
}
