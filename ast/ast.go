package ast

import "github.com/example/jsbuild/token"

// Node is the interface all AST nodes implement.
type Node interface {
	TokenLiteral() string
	Type() string
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Program is the root node of a generated module.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) Type() string { return "Program" }

// ---------- Statements ----------

type VariableDeclaration struct {
	Token        token.Token // var, let, or const
	Kind         string      // "var", "let", "const"
	Declarations []*VariableDeclarator
}

type VariableDeclarator struct {
	Token token.Token
	Name  Expression // Identifier or destructuring pattern
	Value Expression // may be nil
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

// ---------- Expressions ----------

type Identifier struct {
	Token token.Token
	Value string
}

type NumberLiteral struct {
	Token token.Token
	Value float64
}

type StringLiteral struct {
	Token token.Token
	Value string
}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

type NullLiteral struct {
	Token token.Token
}

type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression // may contain nils for elisions [1,,3]
}

type ObjectLiteral struct {
	Token      token.Token
	Properties []*Property
}

// Property is an entry of an object literal or object pattern. Spread
// entries carry the same *SpreadElement (or *RestElement inside patterns)
// as both Key and Value.
type Property struct {
	Token     token.Token
	Key       Expression
	Value     Expression
	Kind      string // "init"
	Shorthand bool
	Computed  bool
}

type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

type MemberExpression struct {
	Token    token.Token
	Object   Expression
	Property Expression
	Computed bool
}

type SpreadElement struct {
	Token    token.Token
	Argument Expression
}

// Destructuring patterns
type ObjectPattern struct {
	Token      token.Token
	Properties []*Property
}

type RestElement struct {
	Token    token.Token
	Argument Expression
}

// PropertyMode distinguishes the three ways a property can be written.
type PropertyMode int

const (
	PropertyStandard PropertyMode = iota
	PropertyShorthand
	PropertySpread
)

func (m PropertyMode) String() string {
	switch m {
	case PropertyShorthand:
		return "shorthand"
	case PropertySpread:
		return "spread"
	default:
		return "standard"
	}
}

// Mode reports how the property is written.
func (p *Property) Mode() PropertyMode {
	switch p.Key.(type) {
	case *SpreadElement, *RestElement:
		return PropertySpread
	}
	if p.Shorthand {
		return PropertyShorthand
	}
	return PropertyStandard
}

// SpreadArgument returns the spread operand of a spread property, or nil.
func (p *Property) SpreadArgument() Expression {
	switch k := p.Key.(type) {
	case *SpreadElement:
		return k.Argument
	case *RestElement:
		return k.Argument
	}
	return nil
}

// --- Node interface implementations ---
// Statement markers
func (s *VariableDeclaration) statementNode() {}
func (s *ExpressionStatement) statementNode() {}

// Expression markers
func (e *Identifier) expressionNode()       {}
func (e *NumberLiteral) expressionNode()    {}
func (e *StringLiteral) expressionNode()    {}
func (e *BooleanLiteral) expressionNode()   {}
func (e *NullLiteral) expressionNode()      {}
func (e *ArrayLiteral) expressionNode()     {}
func (e *ObjectLiteral) expressionNode()    {}
func (e *CallExpression) expressionNode()   {}
func (e *MemberExpression) expressionNode() {}
func (e *SpreadElement) expressionNode()    {}
func (e *ObjectPattern) expressionNode()    {}
func (e *RestElement) expressionNode()      {}

// TokenLiteral implementations
func (s *VariableDeclaration) TokenLiteral() string { return s.Token.Literal }
func (s *VariableDeclarator) TokenLiteral() string  { return s.Token.Literal }
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }

func (e *Identifier) TokenLiteral() string       { return e.Token.Literal }
func (e *NumberLiteral) TokenLiteral() string    { return e.Token.Literal }
func (e *StringLiteral) TokenLiteral() string    { return e.Token.Literal }
func (e *BooleanLiteral) TokenLiteral() string   { return e.Token.Literal }
func (e *NullLiteral) TokenLiteral() string      { return e.Token.Literal }
func (e *ArrayLiteral) TokenLiteral() string     { return e.Token.Literal }
func (e *ObjectLiteral) TokenLiteral() string    { return e.Token.Literal }
func (e *Property) TokenLiteral() string         { return e.Token.Literal }
func (e *CallExpression) TokenLiteral() string   { return e.Token.Literal }
func (e *MemberExpression) TokenLiteral() string { return e.Token.Literal }
func (e *SpreadElement) TokenLiteral() string    { return e.Token.Literal }
func (e *ObjectPattern) TokenLiteral() string    { return e.Token.Literal }
func (e *RestElement) TokenLiteral() string      { return e.Token.Literal }

// Type implementations
func (s *VariableDeclaration) Type() string { return "VariableDeclaration" }
func (s *VariableDeclarator) Type() string  { return "VariableDeclarator" }
func (s *ExpressionStatement) Type() string { return "ExpressionStatement" }

func (e *Identifier) Type() string       { return "Identifier" }
func (e *NumberLiteral) Type() string    { return "NumberLiteral" }
func (e *StringLiteral) Type() string    { return "StringLiteral" }
func (e *BooleanLiteral) Type() string   { return "BooleanLiteral" }
func (e *NullLiteral) Type() string      { return "NullLiteral" }
func (e *ArrayLiteral) Type() string     { return "ArrayLiteral" }
func (e *ObjectLiteral) Type() string    { return "ObjectLiteral" }
func (e *Property) Type() string         { return "Property" }
func (e *CallExpression) Type() string   { return "CallExpression" }
func (e *MemberExpression) Type() string { return "MemberExpression" }
func (e *SpreadElement) Type() string    { return "SpreadElement" }
func (e *ObjectPattern) Type() string    { return "ObjectPattern" }
func (e *RestElement) Type() string      { return "RestElement" }
