package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rhino1998/lox/pkg/config"
	"github.com/rhino1998/lox/pkg/lox"
	"github.com/rhino1998/lox/pkg/parser"
	"github.com/urfave/cli/v3"
)

// Exit codes follow sysexits.h.
const (
	exitUsage       = 64
	exitDataErr     = 65
	exitSoftwareErr = 70
	exitIOErr       = 74
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:      "lox",
		Usage:     "Run Lox scripts or start an interactive prompt",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load settings from a YAML `FILE`",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "log pipeline stages to stderr",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			switch c.Args().Len() {
			case 0:
				return replAction(ctx, c)
			case 1:
				return runAction(ctx, c)
			default:
				return cli.Exit("Usage: lox [script]", exitUsage)
			}
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run a Lox script",
				ArgsUsage: "FILE",
				Action:    runAction,
			},
			{
				Name:   "repl",
				Usage:  "Start an interactive prompt",
				Action: replAction,
			},
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a Lox script",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					runner, src, err := setupFile(c)
					if err != nil {
						return err
					}

					toks, err := runner.Tokens(src)
					for _, tok := range toks {
						fmt.Println(tok.String())
					}

					if err != nil {
						runner.Report(err)
						return cli.Exit("", exitDataErr)
					}

					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "Print the syntax tree of a Lox script",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					runner, src, err := setupFile(c)
					if err != nil {
						return err
					}

					stmts, err := runner.Parse(src)
					for _, stmt := range stmts {
						fmt.Println(parser.Print(stmt))
					}

					if err != nil {
						runner.Report(err)
						return cli.Exit("", exitDataErr)
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func runAction(ctx context.Context, c *cli.Command) error {
	runner, src, err := setupFile(c)
	if err != nil {
		return err
	}

	res := runner.Run(ctx, src)
	switch res.Status {
	case lox.StatusStaticError:
		return cli.Exit("", exitDataErr)
	case lox.StatusRuntimeError:
		return cli.Exit("", exitSoftwareErr)
	default:
		return nil
	}
}

func replAction(ctx context.Context, c *cli.Command) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	return repl(ctx, logger, cfg)
}

func setup(c *cli.Command) (config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return config.Config{}, nil, cli.Exit(err, exitUsage)
		}
	}

	level, err := cfg.Level()
	if err != nil {
		return config.Config{}, nil, cli.Exit(err, exitUsage)
	}

	if c.Bool("debug") {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}

func setupFile(c *cli.Command) (*lox.Runner, string, error) {
	if c.Args().Len() != 1 {
		return nil, "", cli.Exit("must provide exactly one lox file as argument", exitUsage)
	}

	_, logger, err := setup(c)
	if err != nil {
		return nil, "", err
	}

	path := c.Args().First()
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", cli.Exit(fmt.Sprintf("failed to read %s: %v", path, err), exitIOErr)
	}

	runner, err := lox.New(logger, lox.Config{Stdout: os.Stdout})
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize runner: %w", err)
	}

	logger.Debug("loaded", slog.String("path", path), slog.Int("bytes", len(src)))

	return runner, string(src), nil
}
