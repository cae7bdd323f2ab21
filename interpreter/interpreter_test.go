package interpreter

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/runtime"
)

func evalExpect(t *testing.T, interp *Interpreter, node ast.Node) any {
	t.Helper()
	val, err := interp.Eval(node)
	if err != nil {
		t.Fatalf("Eval error for %s: %v", node.Type(), err)
	}
	return val
}

func evalExpectError(t *testing.T, interp *Interpreter, node ast.Node, kind string) *runtime.Error {
	t.Helper()
	_, err := interp.Eval(node)
	if err == nil {
		t.Fatalf("expected %s for %s but got none", kind, node.Type())
	}
	var rtErr *runtime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *runtime.Error, got %T: %v", err, err)
	}
	if rtErr.Kind != kind {
		t.Fatalf("expected %s, got %v", kind, err)
	}
	return rtErr
}

func expectValue(t *testing.T, interp *Interpreter, node ast.Node, expected any) {
	t.Helper()
	val := evalExpect(t, interp, node)
	if diff := cmp.Diff(expected, val); diff != "" {
		t.Fatalf("unexpected value for %s (-want +got):\n%s", node.Type(), diff)
	}
}

func expectBinding(t *testing.T, interp *Interpreter, name string, expected any) {
	t.Helper()
	val, ok := interp.Lookup(name)
	if !ok {
		t.Fatalf("%s is not bound", name)
	}
	if diff := cmp.Diff(expected, val); diff != "" {
		t.Fatalf("unexpected value for %s (-want +got):\n%s", name, diff)
	}
}

func id(name string) *ast.Identifier { return ast.NewIdentifier(name) }

func decl(kind string, name, value ast.Expression) *ast.VariableDeclaration {
	return ast.NewDeclaration(kind, []*ast.VariableDeclarator{ast.NewDeclarator(name, value)})
}

func prop(key string, value ast.Expression) *ast.Property {
	return ast.NewProperty(id(key), value, false)
}

// ---------- Literals ----------

func TestLiterals(t *testing.T) {
	interp := New()
	expectValue(t, interp, ast.NewNumber(42), 42.0)
	expectValue(t, interp, ast.NewString("hello"), "hello")
	expectValue(t, interp, ast.NewBoolean(true), true)
	expectValue(t, interp, ast.NewNull(), nil)
	expectValue(t, interp, id("undefined"), runtime.Undefined)

	val := evalExpect(t, interp, id("NaN"))
	if f, ok := val.(float64); !ok || !math.IsNaN(f) {
		t.Fatalf("expected NaN, got %v", val)
	}
	expectValue(t, interp, id("Infinity"), math.Inf(1))
}

func TestArrayLiteral(t *testing.T) {
	interp := New()
	interp.Define("tail", []int{3, 4})

	arr := ast.NewArray([]ast.Expression{
		ast.NewNumber(1),
		ast.NewString("two"),
		ast.NewSpread(id("tail")),
		ast.NewArray(nil),
	})
	expectValue(t, interp, arr, []any{1.0, "two", 3.0, 4.0, []any{}})

	chars := ast.NewArray([]ast.Expression{ast.NewSpread(ast.NewString("ab"))})
	expectValue(t, interp, chars, []any{"a", "b"})

	bad := ast.NewArray([]ast.Expression{ast.NewSpread(ast.NewNumber(1))})
	err := evalExpectError(t, interp, bad, "TypeError")
	if err.Message != "number 1 is not iterable" {
		t.Fatalf("unexpected message %q", err.Message)
	}

	nullSpread := ast.NewArray([]ast.Expression{ast.NewSpread(ast.NewNull())})
	err = evalExpectError(t, interp, nullSpread, "TypeError")
	if err.Message != "object null is not iterable" {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestObjectLiteralKeepsOrder(t *testing.T) {
	interp := New()
	interp.Define("base", runtime.NewObject("z", 1.0, "a", 2.0))
	interp.Define("short", "s")

	obj := ast.NewObject([]*ast.Property{
		prop("b", ast.NewNumber(1)),
		prop("a", ast.NewNumber(2)),
		ast.NewProperty(id("short"), id("short"), true),
		ast.NewSpreadProperty(id("base")),
		ast.NewSpreadProperty(ast.NewNull()),
		prop("b", ast.NewNumber(3)),
	})

	expected := runtime.NewObject("b", 3.0, "a", 2.0, "short", "s", "z", 1.0)
	expectValue(t, interp, obj, expected)
}

func TestComputedPropertyKey(t *testing.T) {
	interp := New()
	interp.Define("k", "dynamic")
	p := ast.NewProperty(id("k"), ast.NewBoolean(true), false)
	p.Computed = true
	expectValue(t, interp, ast.NewObject([]*ast.Property{p}), runtime.NewObject("dynamic", true))
}

// ---------- Members and calls ----------

func TestMemberAccess(t *testing.T) {
	interp := New()
	interp.Define("obj", map[string]any{
		"list": []string{"x", "y"},
		"name": "abc",
	})

	list := ast.NewMember(id("obj"), id("list"), false)
	expectValue(t, interp, ast.NewMember(list, ast.NewNumber(1), true), "y")
	expectValue(t, interp, ast.NewMember(list, id("length"), false), 2.0)
	expectValue(t, interp, ast.NewMember(list, ast.NewNumber(9), true), runtime.Undefined)

	name := ast.NewMember(id("obj"), ast.NewString("name"), true)
	expectValue(t, interp, ast.NewMember(name, id("length"), false), 3.0)
	expectValue(t, interp, ast.NewMember(name, ast.NewNumber(0), true), "a")
	expectValue(t, interp, ast.NewMember(id("obj"), id("missing"), false), runtime.Undefined)

	deep := ast.NewMember(ast.NewMember(id("obj"), id("missing"), false), id("x"), false)
	err := evalExpectError(t, interp, deep, "TypeError")
	if err.Message != "Cannot read properties of undefined (reading 'x')" {
		t.Fatalf("unexpected message %q", err.Message)
	}
}

func TestCallNative(t *testing.T) {
	interp := New()
	var got []any
	interp.RegisterNative("collect", func(args []any) (any, error) {
		got = args
		return map[string]int{"n": len(args)}, nil
	})
	interp.Define("rest", []any{"b", "c"})

	call := ast.NewCall(id("collect"), []ast.Expression{ast.NewString("a"), ast.NewSpread(id("rest"))})
	expectValue(t, interp, call, runtime.NewObject("n", 3.0))
	if diff := cmp.Diff([]any{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}

	interp.Define("process", runtime.NewObject("cwd", runtime.CallableFunc(func([]any) (any, error) {
		return "/work", nil
	})))
	expectValue(t, interp, ast.NewCall(ast.NewMember(id("process"), id("cwd"), false), nil), "/work")
}

func TestCallErrors(t *testing.T) {
	interp := New()
	interp.Define("obj", map[string]any{"x": 1})

	err := evalExpectError(t, interp, ast.NewCall(ast.NewMember(id("obj"), id("x"), false), nil), "TypeError")
	if err.Message != "obj.x is not a function" {
		t.Fatalf("unexpected message %q", err.Message)
	}

	evalExpectError(t, interp, ast.NewCall(id("nope"), nil), "ReferenceError")

	boom := errors.New("boom")
	interp.RegisterNative("fail", func([]any) (any, error) { return nil, boom })
	if _, err := interp.Eval(ast.NewCall(id("fail"), nil)); !errors.Is(err, boom) {
		t.Fatalf("expected native error, got %v", err)
	}
}

// ---------- Declarations ----------

func TestDeclarations(t *testing.T) {
	interp := New()
	program := ast.NewProgram(
		decl("const", id("a"), ast.NewNumber(1)),
		ast.NewDeclaration("let", []*ast.VariableDeclarator{
			ast.NewDeclarator(id("b"), ast.NewString("x")),
			ast.NewDeclarator(id("c"), id("a")),
		}),
		ast.NewExpressionStatement(id("c")),
	)
	expectValue(t, interp, program, 1.0)
	expectBinding(t, interp, "a", 1.0)
	expectBinding(t, interp, "b", "x")

	b, _ := interp.GlobalEnv().Lookup("a")
	if b.Mutable || b.Kind != "const" {
		t.Fatalf("expected immutable const binding, got %+v", b)
	}

	evalExpectError(t, interp, decl("let", id("a"), ast.NewNumber(2)), "SyntaxError")
	evalExpectError(t, interp, decl("const", id("z"), nil), "SyntaxError")
}

func TestVarHoisting(t *testing.T) {
	interp := New()
	program := ast.NewProgram(
		decl("let", id("before"), id("later")),
		decl("var", id("later"), ast.NewNumber(5)),
		decl("var", id("later"), nil),
	)
	evalExpect(t, interp, program)
	expectBinding(t, interp, "before", runtime.Undefined)
	expectBinding(t, interp, "later", 5.0)

	err := evalExpectError(t, New(), decl("let", id("x"), id("notHoisted")), "ReferenceError")
	if !strings.Contains(err.Error(), "notHoisted is not defined") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestVarAfterLexicalBinding(t *testing.T) {
	interp := New()
	evalExpect(t, interp, decl("let", id("a"), ast.NewNumber(1)))
	program := ast.NewProgram(
		decl("var", id("a"), ast.NewNumber(2)),
		decl("var", id("later"), nil),
	)
	evalExpectError(t, interp, program, "SyntaxError")
	expectBinding(t, interp, "a", 1.0)
	expectBinding(t, interp, "later", runtime.Undefined)

	var rtErr *runtime.Error
	if err := interp.Define("a", 3); !errors.As(err, &rtErr) || rtErr.Kind != "SyntaxError" {
		t.Fatalf("expected SyntaxError redefining a, got %v", err)
	}
	if err := interp.RegisterNative("a", func([]any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected error registering over a let binding")
	}
	if err := interp.Define("b", 3); err != nil {
		t.Fatalf("Define: %v", err)
	}
	expectBinding(t, interp, "b", 3.0)
}

func TestObjectDestructuring(t *testing.T) {
	interp := New()
	interp.Define("parent", runtime.NewObject("shorthand", 1.0, "other", 2.0, "renamed", 3.0, "more", 4.0))

	pattern := ast.NewObjectPattern([]*ast.Property{
		ast.NewProperty(id("shorthand"), id("shorthand"), true),
		prop("renamed", id("alias")),
		prop("absent", id("missing")),
		ast.NewSpreadProperty(id("rest")),
	})
	evalExpect(t, interp, decl("const", pattern, id("parent")))

	expectBinding(t, interp, "shorthand", 1.0)
	expectBinding(t, interp, "alias", 3.0)
	expectBinding(t, interp, "missing", runtime.Undefined)
	expectBinding(t, interp, "rest", runtime.NewObject("other", 2.0, "more", 4.0))
	if _, ok := interp.Lookup("renamed"); ok {
		t.Fatalf("renamed should not be bound")
	}
}

func TestDestructuringRestElement(t *testing.T) {
	interp := New()
	interp.Define("src", map[string]any{"a": 1, "b": 2})
	pattern := ast.NewObjectPattern([]*ast.Property{
		ast.NewProperty(id("a"), id("a"), true),
		{Key: ast.NewRest(id("others")), Value: ast.NewRest(id("others")), Kind: "init"},
	})
	evalExpect(t, interp, decl("let", pattern, id("src")))
	expectBinding(t, interp, "others", runtime.NewObject("b", 2.0))
}

func TestDestructuringNull(t *testing.T) {
	for _, init := range []ast.Expression{ast.NewNull(), id("undefined")} {
		pattern := ast.NewObjectPattern([]*ast.Property{ast.NewProperty(id("x"), id("x"), true)})
		err := evalExpectError(t, New(), decl("const", pattern, init), "TypeError")
		if !strings.HasPrefix(err.Message, "Cannot destructure") {
			t.Fatalf("unexpected message %q", err.Message)
		}
	}
}

func TestUnsupportedNodes(t *testing.T) {
	evalExpectError(t, New(), ast.NewObjectPattern(nil), "SyntaxError")
	evalExpectError(t, New(), decl("const", ast.NewMember(id("a"), id("b"), false), ast.NewNumber(1)), "SyntaxError")
}
