package build

import (
	"slices"

	"github.com/example/jsbuild/ast"
)

type coerceFunc func(any) (ast.Expression, error)

// Member builds a dotted chain base.a.b.c. The base and every segment are
// coerced with ToIdentifier.
func Member(base any, segments ...any) (*ast.MemberExpression, error) {
	return chain(base, segments, ToIdentifier, false)
}

// ComputedMember builds base[a][b][c] where every segment is coerced with
// ToIdentifier, so string segments are variable references.
func ComputedMember(base any, segments ...any) (*ast.MemberExpression, error) {
	return chain(base, segments, ToIdentifier, true)
}

// ComputedLiteralMember builds base["a"][0] where every segment is coerced
// with ToLiteral, so string segments are quoted keys.
func ComputedLiteralMember(base any, segments ...any) (*ast.MemberExpression, error) {
	return chain(base, segments, ToLiteral, true)
}

// chain folds segments left to right so the last segment is the outermost
// member access.
func chain(base any, segments []any, coerce coerceFunc, computed bool) (*ast.MemberExpression, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyChain
	}
	object, err := ToIdentifier(base)
	if err != nil {
		return nil, err
	}

	var member *ast.MemberExpression
	for _, segment := range segments {
		property, err := coerce(segment)
		if err != nil {
			return nil, err
		}
		member = ast.NewMember(object, property, computed)
		object = member
	}
	return member, nil
}

// Call builds callee(args...). The callee is coerced with ToIdentifier;
// arguments are used as given.
func Call(callee any, args ...ast.Expression) (*ast.CallExpression, error) {
	fn, err := ToIdentifier(callee)
	if err != nil {
		return nil, err
	}
	return ast.NewCall(fn, slices.Clone(args)), nil
}

// MethodCall builds base.method(args...).
func MethodCall(base, method any, args ...ast.Expression) (*ast.CallExpression, error) {
	member, err := Member(base, method)
	if err != nil {
		return nil, err
	}
	return Call(member, args...)
}
