package loxerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/token"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	r := require.New(t)

	err := loxerr.At(token.Token{Kind: token.Identifier, Lexeme: "x", Line: 4}, "Undefined variable.")
	r.Equal("[line 4] Error  at 'x' : Undefined variable.", err.Error())

	err = loxerr.At(token.Token{Kind: token.EOF, Line: 9}, "Expect expression.")
	r.Equal("[line 9] Error  at end : Expect expression.", err.Error())

	err = loxerr.New(2, "", "Unterminated string.")
	r.Equal("[line 2] Error : Unterminated string.", err.Error())
}

func TestErrorSet(t *testing.T) {
	r := require.New(t)

	errs := loxerr.NewErrorSet()
	r.NoError(errs.Defer(nil))
	r.Equal(0, errs.Len())

	errs.Add(loxerr.New(1, "", "first"))

	inner := loxerr.NewErrorSet()
	inner.Add(loxerr.New(2, "", "second"))
	inner.Add(loxerr.New(3, "", "third"))
	errs.Add(fmt.Errorf("wrapped: %w", inner))

	err := errs.Defer(nil)
	r.Error(err)
	r.Equal(3, errs.Len())
	r.Equal("[line 1] Error : first\n[line 2] Error : second\n[line 3] Error : third", err.Error())

	var lerr *loxerr.Error
	r.True(errors.As(err, &lerr))
	r.Equal("first", lerr.Message)

	r.Len(loxerr.Flatten(err), 3)
	r.Len(loxerr.Flatten(lerr), 1)
	r.Nil(loxerr.Flatten(nil))
}
