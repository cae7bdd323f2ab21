package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/example/jsbuild/build"
	"github.com/example/jsbuild/printer"
)

// EnvPrefix prefixes every environment override, e.g. JSBUILD_PRINTER_TAB_WIDTH.
const EnvPrefix = "JSBUILD"

// Config holds the complete CLI configuration.
type Config struct {
	Printer  PrinterConfig  `mapstructure:"printer"`
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
}

// PrinterConfig controls source output.
type PrinterConfig struct {
	TabWidth int    `mapstructure:"tab_width"`
	Quote    string `mapstructure:"quote"` // double, single
	Color    string `mapstructure:"color"` // auto, always, never
}

// GenerateConfig controls module generation.
type GenerateConfig struct {
	Kind        string   `mapstructure:"kind"`
	Requires    []string `mapstructure:"requires"`
	Concurrency int      `mapstructure:"concurrency"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("printer.tab_width", 4)
	v.SetDefault("printer.quote", "double")
	v.SetDefault("printer.color", "auto")

	v.SetDefault("generate.kind", "const")
	v.SetDefault("generate.requires", []string{})
	v.SetDefault("generate.concurrency", 4)

	v.SetDefault("log.level", "warn")
}

// NewViper returns a viper instance with defaults and environment overrides.
// When path is empty, jsbuild.yaml is looked up in the working directory and
// its absence is not an error.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jsbuild")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// New decodes and validates the configuration held by v.
func New(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads the configuration at path, or ./jsbuild.yaml when path is
// empty. bind, when not nil, runs before decoding so callers can attach
// command-line flags as overrides.
func Load(path string, bind func(*viper.Viper) error) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	if bind != nil {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}
	return New(v)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Printer.TabWidth < 1 || c.Printer.TabWidth > 16 {
		return errors.New("printer.tab_width must be between 1 and 16")
	}
	if _, ok := printer.ParseQuote(c.Printer.Quote); !ok {
		return fmt.Errorf("printer.quote must be double or single, got %q", c.Printer.Quote)
	}
	switch c.Printer.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("printer.color must be auto, always or never, got %q", c.Printer.Color)
	}

	if _, err := build.ParseKind(c.Generate.Kind); err != nil {
		return fmt.Errorf("generate.kind must be const, let or var, got %q", c.Generate.Kind)
	}
	if c.Generate.Concurrency < 1 {
		return errors.New("generate.concurrency must be at least 1")
	}
	for _, r := range c.Generate.Requires {
		if strings.TrimSpace(r) == "" {
			return errors.New("generate.requires must not contain empty names")
		}
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// BindingKind returns the configured declaration kind.
func (c *Config) BindingKind() build.Kind {
	k, err := build.ParseKind(c.Generate.Kind)
	if err != nil {
		return build.KindConst
	}
	return k
}

// PrinterOptions returns the printer options for output written to w. With
// color set to auto, colors are used only when w is a terminal. A nil w
// stands for a file and never gets colors.
func (c *Config) PrinterOptions(w io.Writer) []printer.Option {
	quote, _ := printer.ParseQuote(c.Printer.Quote)
	opts := []printer.Option{
		printer.TabWidth(c.Printer.TabWidth),
		printer.Quotes(quote),
	}
	if c.useColor(w) {
		opts = append(opts, printer.WithColors(printer.NewColors()))
	}
	return opts
}

func (c *Config) useColor(w io.Writer) bool {
	if w == nil {
		return false
	}
	switch c.Printer.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", l.Level)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
