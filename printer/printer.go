// Package printer renders syntax trees as JavaScript source.
//
// Non-empty object literals and patterns put one property per line. Arrays
// and argument lists stay on one line, and strings use JSON escaping.
package printer

import (
	"fmt"
	"strings"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/runtime"
	"github.com/example/jsbuild/token"
)

// Print renders node as source text.
func Print(node ast.Node, opts ...Option) (string, error) {
	cfg := config{tabWidth: defaultTabWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &printer{cfg: cfg}
	p.node(node)
	if p.err != nil {
		return "", p.err
	}
	return p.out.String(), nil
}

// MustPrint is like Print but panics on error.
func MustPrint(node ast.Node, opts ...Option) string {
	s, err := Print(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

type printer struct {
	cfg    config
	out    strings.Builder
	indent int
	err    error
}

func (p *printer) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("printer: "+format, args...)
	}
}

func (p *printer) write(s string) { p.out.WriteString(s) }

func (p *printer) paint(f func(string) string, s string) {
	if f != nil {
		s = f(s)
	}
	p.write(s)
}

func (p *printer) colors() *Colors {
	if p.cfg.colors == nil {
		return &Colors{}
	}
	return p.cfg.colors
}

func (p *printer) keyword(s string) { p.paint(p.colors().Keyword, s) }
func (p *printer) ident(s string)   { p.paint(p.colors().Identifier, s) }
func (p *printer) number(s string)  { p.paint(p.colors().Number, s) }
func (p *printer) punct(s string)   { p.paint(p.colors().Punct, s) }

func (p *printer) str(s string) {
	p.paint(p.colors().String, quote(s, p.cfg.quote))
}

func (p *printer) newline() {
	p.write("\n")
	p.write(strings.Repeat(" ", p.indent*p.cfg.tabWidth))
}

func (p *printer) node(n ast.Node) {
	if p.err != nil {
		return
	}
	switch n := n.(type) {
	case *ast.Program:
		for i, stmt := range n.Statements {
			if i > 0 {
				p.newline()
			}
			p.node(stmt)
		}
	case *ast.VariableDeclaration:
		p.declaration(n)
	case *ast.VariableDeclarator:
		p.declarator(n)
	case *ast.ExpressionStatement:
		if startsWithBrace(n.Expression) {
			p.punct("(")
			p.node(n.Expression)
			p.punct(")")
		} else {
			p.node(n.Expression)
		}
		p.punct(";")
	case *ast.Property:
		p.property(n)
	case ast.Expression:
		p.expression(n)
	case nil:
		p.fail("nil node")
	default:
		p.fail("unsupported node %T", n)
	}
}

func (p *printer) declaration(d *ast.VariableDeclaration) {
	if len(d.Declarations) == 0 {
		p.fail("%s declaration without declarators", d.Kind)
		return
	}
	p.keyword(d.Kind)
	p.write(" ")
	for i, decl := range d.Declarations {
		if i > 0 {
			p.punct(",")
			p.write(" ")
		}
		p.declarator(decl)
	}
	p.punct(";")
}

func (p *printer) declarator(d *ast.VariableDeclarator) {
	if d == nil {
		p.fail("nil declarator")
		return
	}
	p.node(d.Name)
	if d.Value != nil {
		p.write(" ")
		p.punct("=")
		p.write(" ")
		p.node(d.Value)
	}
}

func (p *printer) expression(e ast.Expression) {
	switch e := e.(type) {
	case *ast.Identifier:
		p.ident(e.Value)
	case *ast.NumberLiteral:
		p.number(runtime.NumberToString(e.Value))
	case *ast.StringLiteral:
		p.str(e.Value)
	case *ast.BooleanLiteral:
		if e.Value {
			p.keyword("true")
		} else {
			p.keyword("false")
		}
	case *ast.NullLiteral:
		p.keyword("null")
	case *ast.ArrayLiteral:
		p.punct("[")
		p.list(e.Elements)
		p.punct("]")
	case *ast.ObjectLiteral:
		p.properties(e.Properties)
	case *ast.ObjectPattern:
		p.properties(e.Properties)
	case *ast.CallExpression:
		p.node(e.Callee)
		p.punct("(")
		p.list(e.Arguments)
		p.punct(")")
	case *ast.MemberExpression:
		p.member(e)
	case *ast.SpreadElement:
		p.punct("...")
		p.node(e.Argument)
	case *ast.RestElement:
		p.punct("...")
		p.node(e.Argument)
	default:
		p.fail("unsupported expression %T", e)
	}
}

func (p *printer) list(items []ast.Expression) {
	for i, item := range items {
		if i > 0 {
			p.punct(",")
			p.write(" ")
		}
		p.node(item)
	}
}

func (p *printer) properties(props []*ast.Property) {
	if len(props) == 0 {
		p.punct("{}")
		return
	}
	p.punct("{")
	p.indent++
	for i, prop := range props {
		if i > 0 {
			p.punct(",")
		}
		p.newline()
		p.property(prop)
	}
	p.indent--
	p.newline()
	p.punct("}")
}

func (p *printer) property(prop *ast.Property) {
	if prop == nil {
		p.fail("nil property")
		return
	}
	switch prop.Mode() {
	case ast.PropertySpread:
		p.punct("...")
		p.node(prop.SpreadArgument())
		return
	case ast.PropertyShorthand:
		if id, ok := prop.Key.(*ast.Identifier); ok {
			if !token.IsIdentifierName(id.Value) || token.IsKeyword(id.Value) {
				p.fail("shorthand property %q is not an identifier", id.Value)
				return
			}
			p.ident(id.Value)
			return
		}
	}

	if prop.Computed {
		p.punct("[")
		p.node(prop.Key)
		p.punct("]")
	} else {
		p.key(prop.Key)
	}
	p.punct(":")
	p.write(" ")
	p.node(prop.Value)
}

// key prints a non-computed property key. Identifiers that are not valid
// identifier names are quoted.
func (p *printer) key(k ast.Expression) {
	switch k := k.(type) {
	case *ast.Identifier:
		if token.IsIdentifierName(k.Value) {
			p.ident(k.Value)
		} else {
			p.str(k.Value)
		}
	case *ast.StringLiteral, *ast.NumberLiteral:
		p.node(k)
	default:
		p.punct("[")
		p.node(k)
		p.punct("]")
	}
}

func (p *printer) member(m *ast.MemberExpression) {
	if _, ok := m.Object.(*ast.NumberLiteral); ok {
		p.punct("(")
		p.node(m.Object)
		p.punct(")")
	} else {
		p.node(m.Object)
	}

	if !m.Computed {
		if id, ok := m.Property.(*ast.Identifier); ok && token.IsIdentifierName(id.Value) {
			p.punct(".")
			p.ident(id.Value)
			return
		}
	}
	p.punct("[")
	if id, ok := m.Property.(*ast.Identifier); ok && !m.Computed {
		p.str(id.Value)
	} else {
		p.node(m.Property)
	}
	p.punct("]")
}

// startsWithBrace reports whether e prints with a leading `{`, which would
// read as a block at statement start.
func startsWithBrace(e ast.Expression) bool {
	for {
		switch n := e.(type) {
		case *ast.ObjectLiteral, *ast.ObjectPattern:
			return true
		case *ast.MemberExpression:
			e = n.Object
		case *ast.CallExpression:
			e = n.Callee
		default:
			return false
		}
	}
}
