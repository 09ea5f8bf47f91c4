package interpreter

import (
	"slices"

	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/rhino1998/lox/pkg/value"
	"golang.org/x/exp/maps"
)

// Environment is one lexical scope. A child keeps its enclosing scope alive
// for as long as the child is reachable; parents never reference children.
type Environment struct {
	enclosing *Environment
	values    map[string]value.Value
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		values:    make(map[string]value.Value),
	}
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define binds name in this scope, replacing any existing binding.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = value.OrNil(val)
}

func (e *Environment) Get(name token.Token) (value.Value, error) {
	val, ok := e.lookup(name.Lexeme)
	if !ok {
		return nil, loxerr.At(name, "Undefined variable.")
	}

	return val, nil
}

// Assign rebinds name in the nearest scope that already defines it.
func (e *Environment) Assign(name token.Token, val value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value.OrNil(val)
			return nil
		}
	}

	return loxerr.At(name, "Undefined variable.")
}

// Names lists the names bound directly in this scope.
func (e *Environment) Names() []string {
	names := maps.Keys(e.values)
	slices.Sort(names)
	return names
}

func (e *Environment) lookup(name string) (value.Value, bool) {
	if e == nil {
		return nil, false
	}

	v, ok := e.values[name]
	if ok {
		return v, true
	}

	return e.enclosing.lookup(name)
}
