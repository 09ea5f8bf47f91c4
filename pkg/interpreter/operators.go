package interpreter

import (
	"golang.org/x/exp/constraints"

	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
)

func (i *Interpreter) binaryOperate(op token.Token, lhs, rhs value.Value) (value.Value, error) {
	switch lhs := lhs.(type) {
	case value.Number:
		switch rhs := rhs.(type) {
		case value.Number:
			return numberOperate(op, lhs, rhs)
		case value.String:
			if op.Kind != token.Plus {
				return nil, loxerr.At(op, "String and number can only be concatenated.")
			}

			return value.String(lhs.String() + string(rhs)), nil
		}
	case value.String:
		switch rhs := rhs.(type) {
		case value.String:
			return stringOperate(op, lhs, rhs)
		case value.Number:
			if op.Kind != token.Plus {
				return nil, loxerr.At(op, "String and number can only be concatenated.")
			}

			return value.String(string(lhs) + rhs.String()), nil
		}
	}

	return nil, loxerr.At(op, "Unexpected combination.")
}

func numberOperate(op token.Token, lhs, rhs value.Number) (value.Value, error) {
	switch op.Kind {
	case token.Plus:
		return lhs + rhs, nil
	case token.Minus:
		return lhs - rhs, nil
	case token.Star:
		return lhs * rhs, nil
	case token.Slash:
		return lhs / rhs, nil
	}

	if b, ok := compare(op.Kind, float64(lhs), float64(rhs)); ok {
		return value.Bool(b), nil
	}

	return nil, loxerr.At(op, "Unexpected combination.")
}

func stringOperate(op token.Token, lhs, rhs value.String) (value.Value, error) {
	switch op.Kind {
	case token.Plus:
		return lhs + rhs, nil
	case token.EqualEqual, token.BangEqual:
		b, _ := compare(op.Kind, string(lhs), string(rhs))
		return value.Bool(b), nil
	default:
		return nil, loxerr.At(op, "Strings only support concatenation and equality.")
	}
}

func compare[T constraints.Ordered](kind token.Kind, lhs, rhs T) (bool, bool) {
	switch kind {
	case token.Greater:
		return lhs > rhs, true
	case token.GreaterEqual:
		return lhs >= rhs, true
	case token.Less:
		return lhs < rhs, true
	case token.LessEqual:
		return lhs <= rhs, true
	case token.EqualEqual:
		return lhs == rhs, true
	case token.BangEqual:
		return lhs != rhs, true
	default:
		return false, false
	}
}

func unaryOperate(op token.Token, right value.Value) (value.Value, error) {
	switch op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return value.Nil{}, nil
		}

		return -n, nil
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	default:
		return nil, loxerr.At(op, "Unexpected unary operator.")
	}
}
