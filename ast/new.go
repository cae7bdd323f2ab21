package ast

import (
	"strconv"

	"github.com/example/jsbuild/token"
)

// Constructors for synthesized nodes. Each call returns a fresh node; slices
// passed in are owned by the new node afterwards.

func NewIdentifier(name string) *Identifier {
	return &Identifier{Token: token.Synthetic(token.Identifier, name), Value: name}
}

func NewNumber(v float64) *NumberLiteral {
	return &NumberLiteral{Token: token.Synthetic(token.Number, strconv.FormatFloat(v, 'g', -1, 64)), Value: v}
}

func NewString(v string) *StringLiteral {
	return &StringLiteral{Token: token.Synthetic(token.String, v), Value: v}
}

func NewBoolean(v bool) *BooleanLiteral {
	if v {
		return &BooleanLiteral{Token: token.Synthetic(token.True, "true"), Value: true}
	}
	return &BooleanLiteral{Token: token.Synthetic(token.False, "false"), Value: false}
}

func NewNull() *NullLiteral {
	return &NullLiteral{Token: token.Synthetic(token.Null, "null")}
}

func NewArray(elements []Expression) *ArrayLiteral {
	if elements == nil {
		elements = []Expression{}
	}
	return &ArrayLiteral{Token: token.Synthetic(token.LeftBracket, "["), Elements: elements}
}

func NewObject(properties []*Property) *ObjectLiteral {
	if properties == nil {
		properties = []*Property{}
	}
	return &ObjectLiteral{Token: token.Synthetic(token.LeftBrace, "{"), Properties: properties}
}

func NewObjectPattern(properties []*Property) *ObjectPattern {
	if properties == nil {
		properties = []*Property{}
	}
	return &ObjectPattern{Token: token.Synthetic(token.LeftBrace, "{"), Properties: properties}
}

// NewProperty returns an "init" property. A shorthand property normally has
// the same node as key and value.
func NewProperty(key, value Expression, shorthand bool) *Property {
	return &Property{
		Token:     token.Synthetic(token.Identifier, key.TokenLiteral()),
		Key:       key,
		Value:     value,
		Kind:      "init",
		Shorthand: shorthand,
	}
}

// NewSpreadProperty returns the `...argument` entry of an object literal or
// pattern.
func NewSpreadProperty(argument Expression) *Property {
	spread := NewSpread(argument)
	return &Property{Token: spread.Token, Key: spread, Value: spread, Kind: "init"}
}

func NewSpread(argument Expression) *SpreadElement {
	return &SpreadElement{Token: token.Synthetic(token.Spread, "..."), Argument: argument}
}

func NewRest(argument Expression) *RestElement {
	return &RestElement{Token: token.Synthetic(token.Spread, "..."), Argument: argument}
}

func NewMember(object, property Expression, computed bool) *MemberExpression {
	tok := token.Synthetic(token.Dot, ".")
	if computed {
		tok = token.Synthetic(token.LeftBracket, "[")
	}
	return &MemberExpression{Token: tok, Object: object, Property: property, Computed: computed}
}

func NewCall(callee Expression, arguments []Expression) *CallExpression {
	if arguments == nil {
		arguments = []Expression{}
	}
	return &CallExpression{Token: token.Synthetic(token.LeftParen, "("), Callee: callee, Arguments: arguments}
}

func NewDeclarator(name, value Expression) *VariableDeclarator {
	return &VariableDeclarator{Token: token.Synthetic(token.Identifier, name.TokenLiteral()), Name: name, Value: value}
}

// NewDeclaration returns a declaration of the given kind ("var", "let" or
// "const").
func NewDeclaration(kind string, declarations []*VariableDeclarator) *VariableDeclaration {
	return &VariableDeclaration{
		Token:        token.Synthetic(token.LookupIdentifier(kind), kind),
		Kind:         kind,
		Declarations: declarations,
	}
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{Token: token.Synthetic(token.Identifier, expr.TokenLiteral()), Expression: expr}
}

func NewProgram(statements ...Statement) *Program {
	return &Program{Statements: statements}
}
