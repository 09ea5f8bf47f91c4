package lox_test

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rhino1998/lox/pkg/interpreter"
	"github.com/rhino1998/lox/pkg/lox"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	t.Parallel()

	dir := os.DirFS("./testdata/")
	testFiles, err := fs.Glob(dir, "*.txt")
	if err != nil {
		t.Fatal(err)
	}

	for _, testFile := range testFiles {
		name := strings.Split(testFile, ".")[0]
		t.Run(name, func(t *testing.T) {
			r := require.New(t)
			logger := slogt.New(t)

			testData, err := fs.ReadFile(dir, testFile)
			r.NoError(err)

			parts := bytes.SplitN(testData, []byte("\n---\n"), 2)
			r.Len(parts, 2)
			source := bytes.TrimSpace(parts[0])
			expected := strings.TrimSpace(string(parts[1]))

			var output bytes.Buffer

			runner, err := lox.New(logger, lox.Config{Stdout: &output})
			r.NoError(err)

			runner.Run(ctx, string(source))

			result := strings.TrimSpace(output.String())
			r.Equal(expected, result)
		})
	}
}

func TestRun_Status(t *testing.T) {
	tests := map[string]struct {
		src    string
		status lox.Status
	}{
		"ok":           {"print 1;", lox.StatusOK},
		"empty":        {"", lox.StatusOK},
		"lexError":     {"print 1; $", lox.StatusStaticError},
		"parseError":   {"print 1", lox.StatusStaticError},
		"runtimeError": {"print x;", lox.StatusRuntimeError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			var output bytes.Buffer
			runner, err := lox.New(slogt.New(t), lox.Config{Stdout: &output})
			r.NoError(err)

			res := runner.Run(context.Background(), tt.src)
			r.Equal(tt.status, res.Status)
			r.Equal(tt.status == lox.StatusOK, res.OK())
			if res.OK() {
				r.NoError(res.Err)
			} else {
				r.Error(res.Err)
			}
		})
	}
}

func TestRun_StaticErrorsSkipExecution(t *testing.T) {
	r := require.New(t)

	var output bytes.Buffer
	runner, err := lox.New(slogt.New(t), lox.Config{Stdout: &output})
	r.NoError(err)

	res := runner.Run(context.Background(), "var x = 1;\nprint x;\nprint ;")
	r.Equal(lox.StatusStaticError, res.Status)
	r.Equal("[line 3] Error  at ';' : Expect expression.\n", output.String())
	r.Empty(runner.Globals().Names())
}

func TestRun_Persistent(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	var output bytes.Buffer
	runner, err := lox.New(slogt.New(t), lox.Config{Stdout: &output})
	r.NoError(err)

	r.True(runner.Run(ctx, "var greeting = \"hi\";").OK())
	r.False(runner.Run(ctx, "print nope;").OK())
	r.True(runner.Run(ctx, "print greeting;").OK())

	r.Equal("[line 1] Error  at 'nope' : Undefined variable.\nhi\n", output.String())
	r.Equal([]string{"greeting"}, runner.Globals().Names())
}

func TestRun_Interrupted(t *testing.T) {
	r := require.New(t)

	var output bytes.Buffer
	runner, err := lox.New(slogt.New(t), lox.Config{Stdout: &output})
	r.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := runner.Run(ctx, "while (true) print 1;")
	r.Equal(lox.StatusRuntimeError, res.Status)
	r.ErrorIs(res.Err, interpreter.ErrInterrupted)
	r.Empty(strings.TrimPrefix(output.String(), "interrupted: context canceled\n"))
}

func TestTokensAndParse(t *testing.T) {
	r := require.New(t)

	var output bytes.Buffer
	runner, err := lox.New(slogt.New(t), lox.Config{Stdout: &output})
	r.NoError(err)

	toks, err := runner.Tokens("print 1;")
	r.NoError(err)
	r.Len(toks, 4)

	stmts, err := runner.Parse("print 1; print ;")
	r.Error(err)
	r.Len(stmts, 1)
	r.Empty(output.String())
}

func TestNew_InvalidConfig(t *testing.T) {
	r := require.New(t)

	_, err := lox.New(slogt.New(t), lox.Config{})
	r.Error(err)
}
