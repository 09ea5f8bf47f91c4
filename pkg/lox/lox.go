package lox

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rhino1998/lox/pkg/interpreter"
	"github.com/rhino1998/lox/pkg/lexer"
	"github.com/rhino1998/lox/pkg/loxerr"
	"github.com/rhino1998/lox/pkg/parser"
	"github.com/rhino1998/lox/pkg/token"
)

type Config struct {
	// Stdout receives program output and every reported error, one per line.
	Stdout io.Writer
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.Stdout == nil {
		return fmt.Errorf("stdout must be set")
	}

	return nil
}

type Status int

const (
	StatusOK Status = iota
	StatusStaticError
	StatusRuntimeError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStaticError:
		return "static error"
	case StatusRuntimeError:
		return "runtime error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one Run.
type Result struct {
	Status Status
	Err    error
}

func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Runner drives source text through the lexer, parser and interpreter. The
// interpreter is kept between runs so globals defined by one Run are visible
// to the next.
type Runner struct {
	logger *slog.Logger
	Config Config

	interp *interpreter.Interpreter
}

func New(logger *slog.Logger, config Config) (*Runner, error) {
	err := config.Validate(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to validate runner config: %w", err)
	}

	return &Runner{
		logger: logger,
		Config: config,
		interp: interpreter.New(logger, config.Stdout),
	}, nil
}

func (r *Runner) Globals() *interpreter.Environment {
	return r.interp.Globals()
}

// Run executes source. Lexical and syntax errors are all reported and stop
// the program from running at all; the first runtime error stops it midway.
func (r *Runner) Run(ctx context.Context, source string) Result {
	stmts, err := r.Parse(source)
	if err != nil {
		r.Report(err)
		return Result{Status: StatusStaticError, Err: err}
	}

	err = r.interp.Interpret(ctx, stmts)
	if err != nil {
		r.Report(err)
		return Result{Status: StatusRuntimeError, Err: err}
	}

	return Result{Status: StatusOK}
}

func (r *Runner) Tokens(source string) ([]token.Token, error) {
	tokens, err := lexer.Scan(source)

	r.logger.Debug("scanned",
		slog.Int("tokens", len(tokens)),
		slog.Int("errors", len(loxerr.Flatten(err))),
	)

	return tokens, err
}

// Parse scans and parses source. The returned error holds every lexical and
// syntax error, lexical ones first.
func (r *Runner) Parse(source string) ([]parser.Statement, error) {
	errs := loxerr.NewErrorSet()

	tokens, err := r.Tokens(source)
	if err != nil {
		errs.Add(err)
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		errs.Add(err)
	}

	r.logger.Debug("parsed",
		slog.Int("statements", len(stmts)),
		slog.Int("errors", errs.Len()),
	)

	return stmts, errs.Defer(nil)
}

// Report writes each error held by err as its own line.
func (r *Runner) Report(err error) {
	for _, err := range loxerr.Flatten(err) {
		fmt.Fprintln(r.Config.Stdout, err.Error())
	}
}
