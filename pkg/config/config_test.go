package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhino1998/lox/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	r := require.New(t)

	cfg, err := config.Load(strings.NewReader(""))
	r.NoError(err)
	r.Equal(config.Default(), cfg)

	lvl, err := cfg.Level()
	r.NoError(err)
	r.Equal(slog.LevelWarn, lvl)
}

func TestLoad_Overrides(t *testing.T) {
	r := require.New(t)

	cfg, err := config.Load(strings.NewReader(`
log_level: debug
repl:
  prompt: "lox> "
`))
	r.NoError(err)
	r.Equal("lox> ", cfg.REPL.Prompt)
	r.Equal(".lox_history", cfg.REPL.HistoryFile)

	lvl, err := cfg.Level()
	r.NoError(err)
	r.Equal(slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknownField": "colour: blue\n",
		"badLevel":     "log_level: loud\n",
		"emptyPrompt":  "repl:\n  prompt: \"\"\n",
		"notYAML":      "repl: [\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			r := require.New(t)

			_, err := config.Load(strings.NewReader(src))
			r.Error(err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "lox.yaml")
	r.NoError(os.WriteFile(path, []byte("log_level: error\nrepl:\n  history_file: \"\"\n"), 0o644))

	cfg, err := config.LoadFile(path)
	r.NoError(err)
	r.Equal("", cfg.REPL.HistoryFile)
	r.Equal("> ", cfg.REPL.Prompt)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	r.Error(err)
}
