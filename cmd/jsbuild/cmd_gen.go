package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/jsbuild/internal/gen"
	"github.com/example/jsbuild/runtime"
)

const stdinPath = "-"

func newGenCmd(a *app) *cobra.Command {
	var (
		out     string
		name    string
		check   bool
		verify  bool
		dumpAST bool
	)

	cmd := &cobra.Command{
		Use:   "gen <file>...",
		Short: "Generate a JavaScript module from JSON or YAML files",
		Long: `Generate declares the content of each input file as a JavaScript literal.

The binding name defaults to the camel-cased file name. Use "-" to read from
standard input. With --check the output file is compared with what would be
generated and the command fails if they differ.`,
		Example: `  jsbuild gen config.yaml
  jsbuild gen --kind let --require fs,path -o settings.js settings.json
  jsbuild gen --check -o settings.js settings.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if check && out == "" {
				return errors.New("--check needs an output file (-o)")
			}

			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			opts := gen.Options{
				Kind:        a.cfg.BindingKind(),
				Name:        name,
				Requires:    a.cfg.Generate.Requires,
				Verify:      verify,
				Concurrency: a.cfg.Generate.Concurrency,
				Logger:      a.logger,
			}
			if name == "" && len(inputs) == 1 && inputs[0].Path == stdinPath {
				opts.Name = "data"
			}

			if dumpAST {
				return dumpModules(cmd.OutOrStdout(), inputs, opts)
			}

			if out == "" {
				opts.Printer = a.cfg.PrinterOptions(cmd.OutOrStdout())
			} else {
				opts.Printer = a.cfg.PrinterOptions(nil)
			}
			outputs, err := gen.Run(cmd.Context(), inputs, opts)
			if err != nil {
				return err
			}
			source := joinSources(outputs)

			switch {
			case check:
				existing, err := os.ReadFile(out)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					return err
				}
				if diff, stale := gen.Check(string(existing), source); stale {
					fmt.Fprint(cmd.OutOrStdout(), diff)
					return fmt.Errorf("%s is out of date", out)
				}
				a.logger.Info("up to date", "output", out)
			case out != "":
				if err := os.WriteFile(out, []byte(source), 0o644); err != nil {
					return err
				}
				a.logger.Info("wrote", "output", out, "bytes", len(source))
			default:
				fmt.Fprint(cmd.OutOrStdout(), source)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "output", "o", "", "write to this file instead of standard output")
	f.StringVar(&name, "name", "", "binding name (single input only)")
	f.String("kind", "const", "declaration kind (const, let, var)")
	f.StringSlice("require", nil, "packages to require before the declaration")
	f.Int("concurrency", 4, "files processed in parallel")
	f.BoolVar(&check, "check", false, "fail if the output file is not up to date")
	f.BoolVar(&verify, "verify", false, "evaluate the generated tree and compare it with the input")
	f.BoolVar(&dumpAST, "ast", false, "dump the syntax tree as JSON instead of printing source")
	return cmd
}

func readInputs(stdin io.Reader, paths []string) ([]gen.Input, error) {
	inputs := make([]gen.Input, 0, len(paths))
	for _, p := range paths {
		var (
			data []byte
			err  error
		)
		if p == stdinPath {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(p)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		inputs = append(inputs, gen.Input{Path: p, Data: data})
	}
	return inputs, nil
}

func joinSources(outputs []gen.Output) string {
	var b strings.Builder
	for i, o := range outputs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(o.Source)
	}
	return b.String()
}

// dumpModules writes the syntax tree of every input as indented JSON.
func dumpModules(w io.Writer, inputs []gen.Input, opts gen.Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, in := range inputs {
		value, err := runtime.Decode(in.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Path, err)
		}
		name := opts.Name
		if name == "" {
			name = gen.NameFromPath(in.Path)
		}
		prog, err := gen.BuildModule(name, value, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", in.Path, err)
		}
		if err := enc.Encode(prog); err != nil {
			return err
		}
	}
	return nil
}
