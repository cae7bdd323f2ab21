package interpreter

import (
	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/runtime"
)

// hoist binds every name declared with var in stmts to undefined before any
// statement runs, so a var read ahead of its declaration yields undefined
// instead of a ReferenceError. let and const are not hoisted.
func (interp *Interpreter) hoist(stmts []ast.Statement, env *runtime.Environment) error {
	for _, stmt := range stmts {
		s, ok := stmt.(*ast.VariableDeclaration)
		if !ok || s.Kind != "var" {
			continue
		}
		for _, decl := range s.Declarations {
			for _, name := range interp.extractBindingNames(decl.Name) {
				if _, exists := env.Lookup(name); exists {
					continue
				}
				if err := env.Declare(name, "var", runtime.Undefined); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// extractBindingNames lists the names a binding target declares, in source
// order.
func (interp *Interpreter) extractBindingNames(node ast.Expression) []string {
	switch n := node.(type) {
	case *ast.Identifier:
		return []string{n.Value}
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range n.Properties {
			switch {
			case prop.Mode() == ast.PropertySpread:
				names = append(names, interp.extractBindingNames(prop.SpreadArgument())...)
			case prop.Value != nil:
				names = append(names, interp.extractBindingNames(prop.Value)...)
			default:
				names = append(names, interp.extractBindingNames(prop.Key)...)
			}
		}
		return names
	case *ast.RestElement:
		return interp.extractBindingNames(n.Argument)
	}
	return nil
}
