package build

import (
	"github.com/example/jsbuild/ast"
)

const requireFunc = "require"

// Shared declarations for common Node.js modules. They are built once and
// must not be modified; build a private copy with RequirePackage instead.
var (
	RequireFS   = Must(RequirePackage("fs"))
	RequirePath = Must(RequirePackage("path"))
	RequireOS   = Must(RequirePackage("os"))
)

// RequireCall builds require(path), with path coerced by ToLiteral.
func RequireCall(path any) (*ast.CallExpression, error) {
	arg, err := ToLiteral(path)
	if err != nil {
		return nil, err
	}
	return Call(requireFunc, arg)
}

// Require builds `const name = require(path);`.
func Require(name, path any) (*ast.VariableDeclaration, error) {
	return CustomRequire(KindConst)(name, path)
}

// RequirePackage builds `const pkg = require("pkg");`. pkg is coerced with
// ToIdentifier for the name and ToLiteral for the path, so a pre-built
// identifier binds and requires the same variable.
func RequirePackage(pkg any) (*ast.VariableDeclaration, error) {
	return Require(pkg, pkg)
}

// RequireDestructuring builds `const { props... } = require(path);`.
func RequireDestructuring(path any, props ...*ast.Property) (*ast.VariableDeclaration, error) {
	call, err := RequireCall(path)
	if err != nil {
		return nil, err
	}
	return KindConst.Destructure(call, props...)
}

// CustomRequire returns a Binder that declares name = require(path) with the
// given kind. kind may be a Kind, a Binder or a func with the Binder
// signature. An unusable kind is reported by the returned Binder, not here.
func CustomRequire(kind any) Binder {
	return func(name, path any) (*ast.VariableDeclaration, error) {
		bind, err := binderFor(kind)
		if err != nil {
			return nil, err
		}
		id, err := ToIdentifier(name)
		if err != nil {
			return nil, err
		}
		call, err := RequireCall(path)
		if err != nil {
			return nil, err
		}
		return bind(id, call)
	}
}

func binderFor(kind any) (Binder, error) {
	switch k := kind.(type) {
	case Kind:
		if k.valid() {
			return k.Binder(), nil
		}
	case Binder:
		if k != nil {
			return k, nil
		}
	case func(name, value any) (*ast.VariableDeclaration, error):
		if k != nil {
			return k, nil
		}
	}
	return nil, &InvalidBindingKindError{Value: kind}
}
