package value

import (
	"math"
	"strconv"
)

type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "<unknown>"
	}
}

// Value is a runtime value. String returns the form written by print.
type Value interface {
	Kind() Kind
	String() string
}

type Number float64

func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

type String string

func (String) Kind() Kind { return KindString }

func (s String) String() string { return string(s) }

type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

type Nil struct{}

func (Nil) Kind() Kind { return KindNil }

func (Nil) String() string { return "nil" }

// Truthy reports whether v counts as true in a condition. Only nil and false
// are falsy; a nil interface is treated as Nil.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// OrNil maps an absent value to Nil.
func OrNil(v Value) Value {
	if v == nil {
		return Nil{}
	}

	return v
}
