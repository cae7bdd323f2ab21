package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/jsbuild/internal/config"
)

// app carries state shared by all subcommands once the configuration is
// loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// flagKeys maps command-line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"tab-width":   "printer.tab_width",
	"quote":       "printer.quote",
	"color":       "printer.color",
	"kind":        "generate.kind",
	"require":     "generate.requires",
	"concurrency": "generate.concurrency",
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "jsbuild",
		Short: "Build JavaScript source from structured data",
		Long: `jsbuild turns JSON and YAML documents into JavaScript modules.

Values are serialized into syntax trees and printed as source, so key order,
nesting and quoting follow the input exactly. Modules can bind required
packages ahead of the generated declaration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./jsbuild.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.Int("tab-width", 4, "spaces per indentation level")
	pf.String("quote", "double", "string quotes (double, single)")
	pf.String("color", "auto", "colorize output (auto, always, never)")

	root.AddCommand(newGenCmd(a), newRequireCmd(a), newVersionCmd())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, func(v *viper.Viper) error {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
	return nil
}
