package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/build"
	"github.com/example/jsbuild/internal/gen"
	"github.com/example/jsbuild/printer"
)

func newRequireCmd(a *app) *cobra.Command {
	var pick []string

	cmd := &cobra.Command{
		Use:   "require <package>...",
		Short: "Print require bindings for packages",
		Example: `  jsbuild require fs path
  jsbuild require fs --pick promises,constants`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(pick) > 0 && len(args) > 1 {
				return errors.New("--pick works with a single package")
			}

			prog := ast.NewProgram()
			if len(pick) > 0 {
				props := make([]*ast.Property, 0, len(pick))
				for _, p := range pick {
					prop, err := build.Shorthand(p)
					if err != nil {
						return err
					}
					props = append(props, prop)
				}
				call, err := build.RequireCall(args[0])
				if err != nil {
					return err
				}
				decl, err := a.cfg.BindingKind().Destructure(call, props...)
				if err != nil {
					return err
				}
				prog.Statements = append(prog.Statements, decl)
			} else {
				bind := build.CustomRequire(a.cfg.BindingKind())
				for _, pkg := range args {
					decl, err := bind(gen.RequireName(pkg), pkg)
					if err != nil {
						return fmt.Errorf("require %q: %w", pkg, err)
					}
					prog.Statements = append(prog.Statements, decl)
				}
			}

			src, err := printer.Print(prog, a.cfg.PrinterOptions(cmd.OutOrStdout())...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), src)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pick, "pick", nil, "destructure these members instead of binding the package")
	cmd.Flags().String("kind", "const", "declaration kind (const, let, var)")
	return cmd
}
