package build

import (
	"encoding/json"
	"reflect"

	"github.com/example/jsbuild/ast"
)

// ToIdentifier returns v unchanged when it already is an identifier,
// expression or pattern node, and a new identifier when v is a string. A nil
// node pointer is rejected like any other non-string.
func ToIdentifier(v any) (ast.Expression, error) {
	if ast.IsIdentifier(v) || ast.IsExpression(v) || ast.IsPattern(v) {
		return v.(ast.Expression), nil
	}
	if name, ok := v.(string); ok {
		return ast.NewIdentifier(name), nil
	}
	return nil, &InvalidIdentifierError{Value: v}
}

// ToLiteral returns v unchanged when it already is an identifier,
// expression or literal node, and a new literal for nil, booleans, strings
// and numbers of any Go numeric kind. A nil node pointer is rejected; use
// nil for a null literal.
func ToLiteral(v any) (ast.Expression, error) {
	if ast.IsIdentifier(v) || ast.IsExpression(v) || ast.IsLiteral(v) {
		return v.(ast.Expression), nil
	}
	if lit := scalarLiteral(v); lit != nil {
		return lit, nil
	}
	return nil, &InvalidLiteralError{Value: v}
}

func scalarLiteral(v any) ast.Expression {
	switch val := v.(type) {
	case nil:
		return ast.NewNull()
	case string:
		return ast.NewString(val)
	case bool:
		return ast.NewBoolean(val)
	case float64:
		return ast.NewNumber(val)
	case int:
		return ast.NewNumber(float64(val))
	case json.Number:
		if f, err := val.Float64(); err == nil {
			return ast.NewNumber(f)
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return ast.NewString(rv.String())
	case reflect.Bool:
		return ast.NewBoolean(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.NewNumber(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.NewNumber(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return ast.NewNumber(rv.Float())
	}
	return nil
}
