package loxerr

import (
	"errors"
	"fmt"

	"github.com/rhino1998/lox/pkg/token"
)

// Error is the one error kind shared by the lexer, parser and interpreter.
type Error struct {
	Line    int
	Where   string
	Message string
}

func New(line int, where, msg string) *Error {
	return &Error{
		Line:    line,
		Where:   where,
		Message: msg,
	}
}

// At locates an error at tok.
func At(tok token.Token, msg string) *Error {
	if tok.Kind == token.EOF {
		return New(tok.Line, " at end ", msg)
	}

	return New(tok.Line, fmt.Sprintf(" at '%s' ", tok.Lexeme), msg)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error %s: %s", e.Line, e.Where, e.Message)
}

type ErrorSet struct {
	Errs []error
}

func NewErrorSet() *ErrorSet {
	return new(ErrorSet)
}

func (e *ErrorSet) Add(err error) {
	var subErrs *ErrorSet
	if errors.As(err, &subErrs) {
		e.Errs = append(e.Errs, subErrs.Unwrap()...)
	} else {
		e.Errs = append(e.Errs, err)
	}
}

func (e *ErrorSet) Len() int {
	if e == nil {
		return 0
	}

	return len(e.Errs)
}

func (e ErrorSet) Error() string {
	return errors.Join(e.Errs...).Error()
}

func (e ErrorSet) Unwrap() []error {
	return e.Errs
}

// Defer adds err, if any, and returns the set as an error only when it holds
// at least one error.
func (e *ErrorSet) Defer(err error) error {
	if err != nil && e != err {
		e.Add(err)
	}

	if len(e.Errs) == 0 {
		return nil
	}

	return e
}

// Flatten returns the individual errors held by err, one per reported line.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	var set *ErrorSet
	if errors.As(err, &set) {
		return set.Unwrap()
	}

	return []error{err}
}
