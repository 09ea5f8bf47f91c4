package interpreter_test

import (
	"testing"

	"github.com/rhino1998/lox/pkg/interpreter"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
	"github.com/stretchr/testify/require"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.Identifier, Lexeme: name, Line: 1}
}

func TestEnvironment_GetWalksChain(t *testing.T) {
	r := require.New(t)

	global := interpreter.NewEnvironment(nil)
	global.Define("a", value.Number(1))

	inner := interpreter.NewEnvironment(interpreter.NewEnvironment(global))
	v, err := inner.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.Number(1), v)

	_, err = inner.Get(ident("b"))
	r.EqualError(err, "[line 1] Error  at 'b' : Undefined variable.")
}

func TestEnvironment_Shadowing(t *testing.T) {
	r := require.New(t)

	global := interpreter.NewEnvironment(nil)
	global.Define("a", value.String("outer"))

	inner := interpreter.NewEnvironment(global)
	inner.Define("a", value.String("inner"))

	v, err := inner.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.String("inner"), v)

	v, err = global.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.String("outer"), v)
	r.Same(global, inner.Enclosing())
}

func TestEnvironment_AssignNearest(t *testing.T) {
	r := require.New(t)

	global := interpreter.NewEnvironment(nil)
	global.Define("a", value.Number(1))

	middle := interpreter.NewEnvironment(global)
	middle.Define("a", value.Number(2))

	inner := interpreter.NewEnvironment(middle)
	r.NoError(inner.Assign(ident("a"), value.Number(3)))

	v, err := middle.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.Number(3), v)

	v, err = global.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.Number(1), v)

	r.Empty(inner.Names())
}

func TestEnvironment_AssignNeverCreates(t *testing.T) {
	r := require.New(t)

	global := interpreter.NewEnvironment(nil)
	err := global.Assign(ident("missing"), value.Number(1))
	r.EqualError(err, "[line 1] Error  at 'missing' : Undefined variable.")
	r.Empty(global.Names())
}

func TestEnvironment_DefineOverwrites(t *testing.T) {
	r := require.New(t)

	env := interpreter.NewEnvironment(nil)
	env.Define("b", value.Number(1))
	env.Define("a", nil)
	env.Define("b", value.Bool(true))

	v, err := env.Get(ident("b"))
	r.NoError(err)
	r.Equal(value.Bool(true), v)

	v, err = env.Get(ident("a"))
	r.NoError(err)
	r.Equal(value.Nil{}, v)

	r.Equal([]string{"a", "b"}, env.Names())
}
