package build

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/printer"
)

// render prints node with two-space indentation.
func render(t *testing.T, node ast.Node) string {
	t.Helper()
	out, err := printer.Print(node, printer.TabWidth(2))
	require.NoError(t, err)
	return out
}

func TestToIdentifierPassesNodesThrough(t *testing.T) {
	nodes := []ast.Expression{
		ast.NewIdentifier("x"),
		ast.NewString("s"),
		ast.NewNumber(1),
		ast.NewArray(nil),
		ast.NewObject(nil),
		ast.NewObjectPattern(nil),
		ast.NewRest(ast.NewIdentifier("r")),
		ast.NewMember(ast.NewIdentifier("a"), ast.NewIdentifier("b"), false),
		ast.NewCall(ast.NewIdentifier("f"), nil),
	}
	for _, n := range nodes {
		t.Run(n.Type(), func(t *testing.T) {
			got, err := ToIdentifier(n)
			require.NoError(t, err)
			assert.Same(t, n, got)

			again, err := ToIdentifier(got)
			require.NoError(t, err)
			assert.Same(t, n, again)
		})
	}
}

func TestToIdentifierFromString(t *testing.T) {
	got, err := ToIdentifier("name")
	require.NoError(t, err)
	ident, ok := got.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "name", ident.Value)
}

func TestToIdentifierRejects(t *testing.T) {
	for _, v := range []any{5, 2.5, true, nil, []any{"a"}, map[string]any{}, ast.NewSpread(ast.NewIdentifier("x")), (*ast.Identifier)(nil), (*ast.MemberExpression)(nil)} {
		_, err := ToIdentifier(v)
		var idErr *InvalidIdentifierError
		require.ErrorAs(t, err, &idErr, "%#v", v)
		assert.Equal(t, v, idErr.Value)
	}

	_, err := ToIdentifier(5)
	assert.EqualError(t, err, "invalid identifier type int: 5")
}

func TestToLiteralPassesNodesThrough(t *testing.T) {
	nodes := []ast.Expression{
		ast.NewIdentifier("x"),
		ast.NewString("s"),
		ast.NewBoolean(true),
		ast.NewNull(),
		ast.NewObject(nil),
		ast.NewCall(ast.NewIdentifier("f"), nil),
	}
	for _, n := range nodes {
		got, err := ToLiteral(n)
		require.NoError(t, err)
		assert.Same(t, n, got)
	}
}

func TestToLiteralScalars(t *testing.T) {
	type label string
	type count uint8

	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "value", `"value"`},
		{"named string", label("tag"), `"tag"`},
		{"true", true, "true"},
		{"int", 5, "5"},
		{"int64", int64(-7), "-7"},
		{"uint8", count(200), "200"},
		{"float32", float32(0.5), "0.5"},
		{"float64", 1.25, "1.25"},
		{"infinity", math.Inf(1), "Infinity"},
		{"json number", json.Number("42"), "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToLiteral(tt.in)
			require.NoError(t, err)
			assert.True(t, ast.IsLiteral(got))
			assert.Equal(t, tt.expected, render(t, got))
		})
	}
}

func TestToLiteralRejects(t *testing.T) {
	for _, v := range []any{[]int{1}, map[string]int{}, struct{}{}, json.Number("x1"), ast.NewObjectPattern(nil), (*ast.Identifier)(nil), (*ast.StringLiteral)(nil)} {
		_, err := ToLiteral(v)
		var litErr *InvalidLiteralError
		assert.ErrorAs(t, err, &litErr, "%#v", v)
	}
}

func TestNilNodesAreRejected(t *testing.T) {
	var litErr *InvalidLiteralError
	_, err := Const("n", (*ast.Identifier)(nil))
	assert.ErrorAs(t, err, &litErr)

	var idErr *InvalidIdentifierError
	_, err = Const((*ast.Identifier)(nil), 1)
	assert.ErrorAs(t, err, &idErr)

	_, err = Member("a", (*ast.Identifier)(nil))
	assert.ErrorAs(t, err, &idErr)

	_, err = Value([]any{(*ast.NumberLiteral)(nil)})
	assert.ErrorAs(t, err, &litErr)
}
