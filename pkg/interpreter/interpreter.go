package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/parser"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
)

var ErrInterrupted = errors.New("interrupted")

// Interpreter evaluates statements against a chain of environments. Globals
// persist across calls to Interpret.
type Interpreter struct {
	logger *slog.Logger
	stdout io.Writer

	globals *Environment
	env     *Environment
}

func New(logger *slog.Logger, stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)

	return &Interpreter{
		logger:  logger,
		stdout:  stdout,
		globals: globals,
		env:     globals,
	}
}

func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret executes stmts in order and stops at the first runtime error.
func (i *Interpreter) Interpret(ctx context.Context, stmts []parser.Statement) error {
	for n, stmt := range stmts {
		err := i.executeStatement(ctx, stmt)
		if err != nil {
			i.logger.Debug("runtime error", slog.Int("statement", n), slog.Any("err", err))
			return err
		}
	}

	return nil
}

func (i *Interpreter) executeStatement(ctx context.Context, stmt parser.Statement) error {
	switch stmt := stmt.(type) {
	case parser.PrintStatement:
		val, err := i.executeExpression(stmt.Expr)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(i.stdout, val.String())
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		return nil
	case parser.ExprStatement:
		_, err := i.executeExpression(stmt.Expr)
		return err
	case parser.VarStatement:
		var val value.Value = value.Nil{}
		if stmt.Initializer != nil {
			var err error
			val, err = i.executeExpression(stmt.Initializer)
			if err != nil {
				return err
			}
		}

		i.env.Define(stmt.Name.Lexeme, val)
		return nil
	case parser.BlockStatement:
		return i.executeBlock(ctx, stmt.Statements, NewEnvironment(i.env))
	case parser.IfStatement:
		cond, err := i.executeExpression(stmt.Condition)
		if err != nil {
			return err
		}

		if value.Truthy(cond) {
			return i.executeStatement(ctx, stmt.Then)
		} else if stmt.Else != nil {
			return i.executeStatement(ctx, stmt.Else)
		}

		return nil
	case parser.WhileStatement:
		for {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrInterrupted, err)
			}

			cond, err := i.executeExpression(stmt.Condition)
			if err != nil {
				return err
			}

			if !value.Truthy(cond) {
				return nil
			}

			err = i.executeStatement(ctx, stmt.Body)
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unhandled statement type: %T", stmt)
	}
}

// executeBlock runs stmts with env as the current environment and restores
// the previous one on every exit path.
func (i *Interpreter) executeBlock(ctx context.Context, stmts []parser.Statement, env *Environment) error {
	prev := i.env
	i.env = env
	defer func() {
		i.env = prev
	}()

	for _, stmt := range stmts {
		err := i.executeStatement(ctx, stmt)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) executeExpression(expr parser.Expr) (value.Value, error) {
	switch expr := expr.(type) {
	case parser.LiteralExpr:
		return value.OrNil(expr.Value), nil
	case parser.GroupingExpr:
		return i.executeExpression(expr.Expr)
	case parser.UnaryExpr:
		right, err := i.executeExpression(expr.Right)
		if err != nil {
			return nil, err
		}

		return unaryOperate(expr.Operator, right)
	case parser.BinaryExpr:
		lhs, err := i.executeExpression(expr.Left)
		if err != nil {
			return nil, err
		}

		rhs, err := i.executeExpression(expr.Right)
		if err != nil {
			return nil, err
		}

		return i.binaryOperate(expr.Operator, lhs, rhs)
	case parser.LogicalExpr:
		lhs, err := i.executeExpression(expr.Left)
		if err != nil {
			return nil, err
		}

		switch expr.Operator.Kind {
		case token.Or:
			if value.Truthy(lhs) {
				return lhs, nil
			}
		case token.And:
			if !value.Truthy(lhs) {
				return lhs, nil
			}
		default:
			return nil, loxerr.At(expr.Operator, "Unexpected logical operator.")
		}

		return i.executeExpression(expr.Right)
	case parser.VariableExpr:
		return i.env.Get(expr.Name)
	case parser.AssignExpr:
		val, err := i.executeExpression(expr.Value)
		if err != nil {
			return nil, err
		}

		err = i.env.Assign(expr.Name, val)
		if err != nil {
			return nil, err
		}

		return val, nil
	default:
		return nil, fmt.Errorf("unhandled expression type: %T", expr)
	}
}
