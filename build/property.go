package build

import (
	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/token"
)

// Property builds `key: value`. The key is coerced with ToIdentifier and the
// value with ToLiteral.
func Property(key, value any) (*ast.Property, error) {
	k, err := ToIdentifier(key)
	if err != nil {
		return nil, err
	}
	v, err := ToLiteral(value)
	if err != nil {
		return nil, err
	}
	return ast.NewProperty(k, v, false), nil
}

// Shorthand builds `{ key }`, with the same identifier node as key and value.
// The key must be an identifier whose name is neither quoted nor reserved.
func Shorthand(key any) (*ast.Property, error) {
	id, err := ToIdentifier(key)
	if err != nil {
		return nil, err
	}
	if ident, ok := id.(*ast.Identifier); !ok || !token.IsIdentifierName(ident.Value) || token.IsKeyword(ident.Value) {
		return nil, &InvalidIdentifierError{Value: key}
	}
	return ast.NewProperty(id, id, true), nil
}

// SpreadProperty builds the `...key` entry of an object literal or pattern.
func SpreadProperty(key any) (*ast.Property, error) {
	id, err := ToIdentifier(key)
	if err != nil {
		return nil, err
	}
	return ast.NewSpreadProperty(id), nil
}

// Spread builds a `...key` element for array literals and call arguments.
func Spread(key any) (*ast.SpreadElement, error) {
	id, err := ToIdentifier(key)
	if err != nil {
		return nil, err
	}
	return ast.NewSpread(id), nil
}

// UnsafeMerge appends the properties of every other object to target and
// returns target. The property nodes are shared, not copied.
func UnsafeMerge(target *ast.ObjectLiteral, others ...*ast.ObjectLiteral) *ast.ObjectLiteral {
	for _, o := range others {
		target.Properties = append(target.Properties, o.Properties...)
	}
	return target
}

// UnsafeAppend appends elements to target and returns target.
func UnsafeAppend(target *ast.ArrayLiteral, elements ...ast.Expression) *ast.ArrayLiteral {
	target.Elements = append(target.Elements, elements...)
	return target
}
