package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jsbuild/build"
	"github.com/example/jsbuild/printer"
)

func defaults(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	cfg, err := New(v)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaults(t)
	assert.Equal(t, 4, cfg.Printer.TabWidth)
	assert.Equal(t, "double", cfg.Printer.Quote)
	assert.Equal(t, "auto", cfg.Printer.Color)
	assert.Equal(t, "const", cfg.Generate.Kind)
	assert.Empty(t, cfg.Generate.Requires)
	assert.Equal(t, 4, cfg.Generate.Concurrency)
	assert.Equal(t, build.KindConst, cfg.BindingKind())

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsbuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
printer:
  tab_width: 2
  quote: single
generate:
  kind: let
  requires: [fs, path]
log:
  level: debug
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Printer.TabWidth)
	assert.Equal(t, "single", cfg.Printer.Quote)
	assert.Equal(t, "auto", cfg.Printer.Color)
	assert.Equal(t, build.KindLet, cfg.BindingKind())
	assert.Equal(t, []string{"fs", "path"}, cfg.Generate.Requires)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Printer.TabWidth)
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JSBUILD_PRINTER_TAB_WIDTH", "8")
	t.Setenv("JSBUILD_GENERATE_KIND", "var")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Printer.TabWidth)
	assert.Equal(t, build.KindVar, cfg.BindingKind())
}

func TestLoadBindOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", func(v *viper.Viper) error {
		v.Set("printer.quote", "single")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "single", cfg.Printer.Quote)

	boom := errors.New("boom")
	_, err = Load("", func(*viper.Viper) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"tab width", func(c *Config) { c.Printer.TabWidth = 0 }, "printer.tab_width must be between 1 and 16"},
		{"quote", func(c *Config) { c.Printer.Quote = "backtick" }, `printer.quote must be double or single, got "backtick"`},
		{"color", func(c *Config) { c.Printer.Color = "sometimes" }, `printer.color must be auto, always or never, got "sometimes"`},
		{"kind", func(c *Config) { c.Generate.Kind = "static" }, `generate.kind must be const, let or var, got "static"`},
		{"concurrency", func(c *Config) { c.Generate.Concurrency = 0 }, "generate.concurrency must be at least 1"},
		{"requires", func(c *Config) { c.Generate.Requires = []string{"fs", " "} }, "generate.requires must not contain empty names"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, `log.level must be debug, info, warn or error, got "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults(t)
			tt.mutate(cfg)
			assert.EqualError(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestPrinterOptions(t *testing.T) {
	cfg := defaults(t)
	cfg.Printer.TabWidth = 2
	cfg.Printer.Quote = "single"

	node := build.Must(build.Const("x", "y"))
	var buf bytes.Buffer
	out, err := printer.Print(node, cfg.PrinterOptions(&buf)...)
	require.NoError(t, err)
	assert.Equal(t, `const x = 'y';`, out)

	cfg.Printer.Color = "always"
	out, err = printer.Print(node, cfg.PrinterOptions(&buf)...)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	out, err = printer.Print(node, cfg.PrinterOptions(nil)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")

	cfg.Printer.Color = "never"
	out, err = printer.Print(node, cfg.PrinterOptions(os.Stdout)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "info"}.NewLogger(&buf)
	logger.Debug("hidden")
	logger.Info("generated", "name", "pkg")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO msg=generated name=pkg")
	assert.NotContains(t, buf.String(), "time=")
}
