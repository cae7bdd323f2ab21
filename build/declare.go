package build

import (
	"slices"
	"strconv"

	"github.com/example/jsbuild/ast"
)

// Kind is a variable binding kind.
type Kind int

const (
	KindVar Kind = iota
	KindLet
	KindConst
)

var kindNames = [...]string{
	KindVar:   "var",
	KindLet:   "let",
	KindConst: "const",
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= KindVar && k <= KindConst
}

// ParseKind maps "var", "let" or "const" to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, &InvalidBindingKindError{Value: s}
}

// Binder declares name = value and returns the declaration. Kind.Declare
// and the functions returned by CustomRequire are Binders.
type Binder func(name, value any) (*ast.VariableDeclaration, error)

// Binder returns k.Declare as a Binder.
func (k Kind) Binder() Binder {
	return k.Declare
}

// Declare builds `kind name = value;`. The name is coerced with ToIdentifier
// so patterns are accepted; the value is coerced with ToLiteral.
func (k Kind) Declare(name, value any) (*ast.VariableDeclaration, error) {
	d, err := Declarator(name, value)
	if err != nil {
		return nil, err
	}
	return k.Chain(d)
}

// Chain builds one declaration holding every declarator in order.
func (k Kind) Chain(declarators ...*ast.VariableDeclarator) (*ast.VariableDeclaration, error) {
	if !k.valid() {
		return nil, &InvalidBindingKindError{Value: k}
	}
	if len(declarators) == 0 {
		return nil, ErrEmptyChain
	}
	return ast.NewDeclaration(k.String(), slices.Clone(declarators)), nil
}

// Destructure builds `kind { props... } = value;`.
func (k Kind) Destructure(value any, props ...*ast.Property) (*ast.VariableDeclaration, error) {
	return k.Declare(PatternOf(props...), value)
}

// Declarator builds the `name = value` part of a declaration.
func Declarator(name, value any) (*ast.VariableDeclarator, error) {
	target, err := ToIdentifier(name)
	if err != nil {
		return nil, err
	}
	init, err := ToLiteral(value)
	if err != nil {
		return nil, err
	}
	return ast.NewDeclarator(target, init), nil
}

// Const builds `const name = value;`.
func Const(name, value any) (*ast.VariableDeclaration, error) {
	return KindConst.Declare(name, value)
}

// Let builds `let name = value;`.
func Let(name, value any) (*ast.VariableDeclaration, error) {
	return KindLet.Declare(name, value)
}

// Var builds `var name = value;`.
func Var(name, value any) (*ast.VariableDeclaration, error) {
	return KindVar.Declare(name, value)
}
