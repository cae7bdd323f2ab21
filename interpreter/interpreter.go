package interpreter

import (
	"math"
	"strconv"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/runtime"
)

var (
	nanValue = math.NaN()
	infValue = math.Inf(1)
)

// Interpreter evaluates built syntax trees using tree-walking. It covers the
// subset of JavaScript the builders produce: declarations, literals,
// member access, calls to registered natives, spreads and object
// destructuring.
type Interpreter struct {
	global *runtime.Environment
}

func New() *Interpreter {
	return &Interpreter{global: runtime.NewEnvironment()}
}

// RegisterNative registers a native Go function as a global JS function.
// It fails when name is already bound with let or const.
func (interp *Interpreter) RegisterNative(name string, fn runtime.CallableFunc) error {
	return interp.global.Declare(name, "var", fn)
}

// Define binds name to a Go value in the global scope. The value is
// normalized first, so maps and slices of any element type are accepted.
func (interp *Interpreter) Define(name string, value any) error {
	return interp.global.Declare(name, "var", runtime.Normalize(value))
}

// Lookup returns the current value of a global binding.
func (interp *Interpreter) Lookup(name string) (any, bool) {
	b, ok := interp.global.Lookup(name)
	if !ok {
		return nil, false
	}
	return b.Value, true
}

// GlobalEnv returns the interpreter's global environment.
func (interp *Interpreter) GlobalEnv() *runtime.Environment {
	return interp.global
}

// Eval evaluates a program, statement or expression in the global scope.
// It returns the value of the last expression statement, or Undefined.
// Evaluation errors are *runtime.Error values.
func (interp *Interpreter) Eval(node ast.Node) (any, error) {
	env := interp.global
	switch n := node.(type) {
	case *ast.Program:
		if err := interp.hoist(n.Statements, env); err != nil {
			return nil, err
		}
		var result any = runtime.Undefined
		for _, stmt := range n.Statements {
			val, err := interp.execStatement(stmt, env)
			if err != nil {
				return nil, err
			}
			if val != nil {
				result = *val
			}
		}
		return result, nil
	case ast.Statement:
		if err := interp.hoist([]ast.Statement{n}, env); err != nil {
			return nil, err
		}
		val, err := interp.execStatement(n, env)
		if err != nil {
			return nil, err
		}
		if val == nil {
			return runtime.Undefined, nil
		}
		return *val, nil
	case ast.Expression:
		return interp.evalExpression(n, env)
	}
	return nil, runtime.NewError("SyntaxError", "cannot evaluate %T", node)
}

// execStatement executes a statement. Expression statements report their
// value through a non-nil pointer so a null result is distinguishable from
// no result.
func (interp *Interpreter) execStatement(stmt ast.Statement, env *runtime.Environment) (*any, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		val, err := interp.evalExpression(s.Expression, env)
		if err != nil {
			return nil, err
		}
		return &val, nil
	case *ast.VariableDeclaration:
		return nil, interp.execVarDecl(s, env)
	default:
		return nil, runtime.NewError("SyntaxError", "unsupported statement: %T", stmt)
	}
}

func (interp *Interpreter) execVarDecl(s *ast.VariableDeclaration, env *runtime.Environment) error {
	for _, decl := range s.Declarations {
		if decl.Value == nil {
			switch s.Kind {
			case "var":
				// already hoisted
				continue
			case "const":
				return runtime.NewError("SyntaxError", "Missing initializer in const declaration")
			}
		}
		var val any = runtime.Undefined
		if decl.Value != nil {
			var err error
			val, err = interp.evalExpression(decl.Value, env)
			if err != nil {
				return err
			}
		}
		if err := interp.bindPattern(decl.Name, val, s.Kind, env); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) bindPattern(pattern ast.Expression, val any, kind string, env *runtime.Environment) error {
	switch p := pattern.(type) {
	case *ast.Identifier:
		return env.Declare(p.Value, kind, val)
	case *ast.ObjectPattern:
		switch runtime.TypeOf(val) {
		case runtime.TypeNull, runtime.TypeUndefined:
			s := runtime.ToString(val)
			return runtime.NewError("TypeError", "Cannot destructure '%s' as it is %s.", s, s)
		}
		used := make(map[string]bool)
		for _, prop := range p.Properties {
			if prop.Mode() == ast.PropertySpread {
				return interp.bindPattern(prop.SpreadArgument(), restObject(val, used), kind, env)
			}
			key, err := interp.getPropertyKey(prop.Key, prop.Computed, env)
			if err != nil {
				return err
			}
			used[key] = true
			target := prop.Value
			if target == nil {
				target = prop.Key
			}
			if err := interp.bindPattern(target, getProperty(val, key), kind, env); err != nil {
				return err
			}
		}
		return nil
	case *ast.RestElement:
		return interp.bindPattern(p.Argument, val, kind, env)
	}
	return runtime.NewError("SyntaxError", "Invalid destructuring assignment target")
}

// restObject collects the own fields of val not named in used, in order.
func restObject(val any, used map[string]bool) *runtime.Object {
	rest := runtime.NewObject()
	switch v := val.(type) {
	case *runtime.Object:
		for _, k := range v.Keys {
			if !used[k] {
				rest.Set(k, v.Fields[k])
			}
		}
	case []any:
		for i, e := range v {
			if k := strconv.Itoa(i); !used[k] {
				rest.Set(k, e)
			}
		}
	}
	return rest
}

func (interp *Interpreter) getPropertyKey(key ast.Expression, computed bool, env *runtime.Environment) (string, error) {
	if computed {
		val, err := interp.evalExpression(key, env)
		if err != nil {
			return "", err
		}
		return runtime.ToPropertyKey(val), nil
	}
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Value, nil
	case *ast.StringLiteral:
		return k.Value, nil
	case *ast.NumberLiteral:
		return runtime.NumberToString(k.Value), nil
	}
	return "", runtime.NewError("SyntaxError", "unsupported property key %T", key)
}

// ---------- Expression evaluation ----------

func (interp *Interpreter) evalExpression(expr ast.Expression, env *runtime.Environment) (any, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return e.Value, nil
	case *ast.StringLiteral:
		return e.Value, nil
	case *ast.BooleanLiteral:
		return e.Value, nil
	case *ast.NullLiteral:
		return nil, nil
	case *ast.Identifier:
		return interp.evalIdentifier(e, env)
	case *ast.ArrayLiteral:
		return interp.evalArrayLiteral(e, env)
	case *ast.ObjectLiteral:
		return interp.evalObjectLiteral(e, env)
	case *ast.MemberExpression:
		return interp.evalMember(e, env)
	case *ast.CallExpression:
		return interp.evalCall(e, env)
	case nil:
		return nil, runtime.NewError("SyntaxError", "missing expression")
	default:
		return nil, runtime.NewError("SyntaxError", "unsupported expression: %T", expr)
	}
}

func (interp *Interpreter) evalIdentifier(e *ast.Identifier, env *runtime.Environment) (any, error) {
	// Handle special globals
	switch e.Value {
	case "undefined":
		return runtime.Undefined, nil
	case "NaN":
		return nanValue, nil
	case "Infinity":
		return infValue, nil
	}
	return env.Get(e.Value)
}

func (interp *Interpreter) evalArrayLiteral(e *ast.ArrayLiteral, env *runtime.Environment) (any, error) {
	elements := make([]any, 0, len(e.Elements))
	for _, elem := range e.Elements {
		if spread, ok := elem.(*ast.SpreadElement); ok {
			val, err := interp.evalExpression(spread.Argument, env)
			if err != nil {
				return nil, err
			}
			items, err := iterate(val)
			if err != nil {
				return nil, err
			}
			elements = append(elements, items...)
			continue
		}
		val, err := interp.evalExpression(elem, env)
		if err != nil {
			return nil, err
		}
		elements = append(elements, val)
	}
	return elements, nil
}

func (interp *Interpreter) evalObjectLiteral(e *ast.ObjectLiteral, env *runtime.Environment) (any, error) {
	obj := runtime.NewObject()
	for _, prop := range e.Properties {
		if prop.Mode() == ast.PropertySpread {
			src, err := interp.evalExpression(prop.SpreadArgument(), env)
			if err != nil {
				return nil, err
			}
			copyOwnFields(obj, src)
			continue
		}

		key, err := interp.getPropertyKey(prop.Key, prop.Computed, env)
		if err != nil {
			return nil, err
		}
		valueExpr := prop.Value
		if prop.Shorthand {
			valueExpr = prop.Key
		}
		val, err := interp.evalExpression(valueExpr, env)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	return obj, nil
}

// copyOwnFields implements object spread. null and undefined spread to
// nothing.
func copyOwnFields(dst *runtime.Object, src any) {
	switch v := src.(type) {
	case *runtime.Object:
		for _, k := range v.Keys {
			dst.Set(k, v.Fields[k])
		}
	case []any:
		for i, e := range v {
			dst.Set(strconv.Itoa(i), e)
		}
	case string:
		for i, r := range []rune(v) {
			dst.Set(strconv.Itoa(i), string(r))
		}
	}
}

// iterate implements array spread over arrays and strings.
func iterate(v any) ([]any, error) {
	switch val := v.(type) {
	case []any:
		return val, nil
	case string:
		out := make([]any, 0, len(val))
		for _, r := range val {
			out = append(out, string(r))
		}
		return out, nil
	}
	return nil, runtime.NewError("TypeError", "%s %s is not iterable", runtime.TypeOf(v), runtime.ToString(v))
}

func (interp *Interpreter) evalCall(e *ast.CallExpression, env *runtime.Environment) (any, error) {
	callee, err := interp.evalExpression(e.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(runtime.CallableFunc)
	if !ok {
		return nil, runtime.NewError("TypeError", "%s is not a function", calleeName(e.Callee))
	}
	args, err := interp.evalArguments(e.Arguments, env)
	if err != nil {
		return nil, err
	}
	result, err := fn(args)
	if err != nil {
		return nil, err
	}
	return runtime.Normalize(result), nil
}

func (interp *Interpreter) evalArguments(exprs []ast.Expression, env *runtime.Environment) ([]any, error) {
	args := make([]any, 0, len(exprs))
	for _, expr := range exprs {
		if spread, ok := expr.(*ast.SpreadElement); ok {
			val, err := interp.evalExpression(spread.Argument, env)
			if err != nil {
				return nil, err
			}
			items, err := iterate(val)
			if err != nil {
				return nil, err
			}
			args = append(args, items...)
			continue
		}
		val, err := interp.evalExpression(expr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return args, nil
}

func calleeName(e ast.Expression) string {
	switch c := e.(type) {
	case *ast.Identifier:
		return c.Value
	case *ast.MemberExpression:
		if id, ok := c.Property.(*ast.Identifier); ok && !c.Computed {
			return calleeName(c.Object) + "." + id.Value
		}
		return calleeName(c.Object) + "[...]"
	}
	return "expression"
}

func (interp *Interpreter) evalMember(e *ast.MemberExpression, env *runtime.Environment) (any, error) {
	obj, err := interp.evalExpression(e.Object, env)
	if err != nil {
		return nil, err
	}
	key, err := interp.resolveMemberKey(e, env)
	if err != nil {
		return nil, err
	}

	switch runtime.TypeOf(obj) {
	case runtime.TypeNull, runtime.TypeUndefined:
		return nil, runtime.NewError("TypeError", "Cannot read properties of %s (reading '%s')", runtime.ToString(obj), key)
	}
	return getProperty(obj, key), nil
}

func (interp *Interpreter) resolveMemberKey(e *ast.MemberExpression, env *runtime.Environment) (string, error) {
	if !e.Computed {
		if id, ok := e.Property.(*ast.Identifier); ok {
			return id.Value, nil
		}
	}
	return interp.getPropertyKey(e.Property, true, env)
}

// getProperty reads key from a value: object fields, array indices and
// length, string indices and length. Anything else reads as Undefined.
func getProperty(obj any, key string) any {
	switch o := obj.(type) {
	case *runtime.Object:
		return o.Get(key)
	case []any:
		if key == "length" {
			return float64(len(o))
		}
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(o) {
			return o[idx]
		}
	case string:
		runes := []rune(o)
		if key == "length" {
			return float64(len(runes))
		}
		if idx, err := strconv.Atoi(key); err == nil && idx >= 0 && idx < len(runes) {
			return string(runes[idx])
		}
	}
	return runtime.Undefined
}
