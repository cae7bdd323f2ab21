// Package gen turns JSON and YAML documents into JavaScript modules that
// declare the document as a literal.
package gen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/sync/errgroup"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/build"
	"github.com/example/jsbuild/interpreter"
	"github.com/example/jsbuild/printer"
	"github.com/example/jsbuild/runtime"
)

// ErrMismatch is returned by Verify when the emitted tree does not evaluate
// to the input value.
var ErrMismatch = errors.New("generated module does not reproduce its input")

// Options controls generation.
type Options struct {
	Kind        build.Kind
	Name        string   // binding name; derived from the input path when empty
	Requires    []string // packages bound with require before the value
	Verify      bool
	Printer     []printer.Option
	Concurrency int
	Logger      *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Input is one document to convert.
type Input struct {
	Path string
	Data []byte
}

// Output is the module generated from an Input.
type Output struct {
	Input  Input
	Name   string
	Source string
}

// Generate converts a single input.
func Generate(in Input, opts Options) (Output, error) {
	value, err := runtime.Decode(in.Data)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", in.Path, err)
	}

	name := opts.Name
	if name == "" {
		name = NameFromPath(in.Path)
	}

	prog, err := BuildModule(name, value, opts)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", in.Path, err)
	}
	if opts.Verify {
		if err := Verify(prog, name, value); err != nil {
			return Output{}, fmt.Errorf("%s: %w", in.Path, err)
		}
	}

	src, err := printer.Print(prog, opts.Printer...)
	if err != nil {
		return Output{}, fmt.Errorf("%s: %w", in.Path, err)
	}
	src += "\n"

	opts.logger().Info("generated", "input", in.Path, "name", name, "bytes", len(src))
	return Output{Input: in, Name: name, Source: src}, nil
}

// Run converts inputs concurrently, at most opts.Concurrency at a time.
// Outputs are returned in input order. The first failure cancels the
// remaining work.
func Run(ctx context.Context, inputs []Input, opts Options) ([]Output, error) {
	if opts.Name != "" && len(inputs) > 1 {
		return nil, fmt.Errorf("a binding name can only be set for a single input, got %d inputs", len(inputs))
	}

	outputs := make([]Output, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := Generate(in, opts)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// BuildModule returns a program that binds each required package and then
// declares name = value.
func BuildModule(name string, value any, opts Options) (*ast.Program, error) {
	prog := ast.NewProgram()
	for _, pkg := range opts.Requires {
		decl, err := build.Require(RequireName(pkg), pkg)
		if err != nil {
			return nil, fmt.Errorf("require %q: %w", pkg, err)
		}
		prog.Statements = append(prog.Statements, decl)
	}

	literal, err := build.Value(value)
	if err != nil {
		return nil, err
	}
	decl, err := opts.Kind.Declare(name, literal)
	if err != nil {
		return nil, err
	}
	prog.Statements = append(prog.Statements, decl)
	return prog, nil
}

// Verify evaluates prog with require stubbed out and checks that the
// binding name holds value.
func Verify(prog *ast.Program, name string, value any) error {
	interp := interpreter.New()
	err := interp.RegisterNative("require", func([]any) (any, error) {
		return runtime.NewObject(), nil
	})
	if err != nil {
		return err
	}
	if _, err := interp.Eval(prog); err != nil {
		return fmt.Errorf("evaluating module: %w", err)
	}

	got, ok := interp.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s is not bound", ErrMismatch, name)
	}
	if diff := cmp.Diff(runtime.Normalize(value), got, cmpopts.EquateEmpty(), cmpopts.EquateNaNs()); diff != "" {
		return fmt.Errorf("%w (-want +got):\n%s", ErrMismatch, diff)
	}
	return nil
}
