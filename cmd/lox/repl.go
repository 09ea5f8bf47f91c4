package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/rhino1998/lox/pkg/config"
	"github.com/rhino1998/lox/pkg/lox"
	"github.com/rhino1998/lox/pkg/token"
)

const replHelp = `Commands:
  :env     List global variables
  :help    Show this message
  :quit    Exit the prompt`

// repl runs each input line as its own program against one shared set of
// globals. An error on one line does not affect the next.
func repl(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	runner, err := lox.New(logger, lox.Config{Stdout: os.Stdout})
	if err != nil {
		return fmt.Errorf("failed to initialize runner: %w", err)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := historyPath(cfg.REPL.HistoryFile); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logger.Warn("failed to save history", slog.String("path", histPath), slog.Any("err", err))
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for ctx.Err() == nil {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit":
			return nil
		case ":help":
			fmt.Println(replHelp)
			continue
		case ":env":
			printGlobals(runner)
			continue
		}

		ln.AppendHistory(line)

		res := runner.Run(ctx, line)
		logger.Debug("evaluated", slog.String("status", res.Status.String()))
	}

	return nil
}

func printGlobals(runner *lox.Runner) {
	globals := runner.Globals()
	for _, name := range globals.Names() {
		val, err := globals.Get(token.Token{Kind: token.Identifier, Lexeme: name})
		if err != nil {
			continue
		}

		fmt.Printf("%s = %s\n", name, val)
	}
}

func historyPath(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, file)
}
