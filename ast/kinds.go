package ast

import "reflect"

// The predicates below classify arbitrary values by node kind. They follow
// the ESTree categories rather than Go interface satisfaction: an
// ObjectPattern satisfies Expression so it can sit in a declarator, but it is
// a pattern, not an expression. A nil node pointer is not a node of any kind.

// IsIdentifier reports whether v is a non-nil *Identifier.
func IsIdentifier(v any) bool {
	id, ok := v.(*Identifier)
	return ok && id != nil
}

// IsLiteral reports whether v is a scalar literal node.
func IsLiteral(v any) bool {
	switch v.(type) {
	case *NumberLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral:
		return !isNilNode(v)
	}
	return false
}

// IsExpression reports whether v is a node usable in expression position.
func IsExpression(v any) bool {
	switch v.(type) {
	case *Identifier, *ArrayLiteral, *ObjectLiteral, *CallExpression, *MemberExpression:
		return !isNilNode(v)
	}
	return IsLiteral(v)
}

// IsPattern reports whether v is a node usable as a binding or assignment
// target.
func IsPattern(v any) bool {
	switch v.(type) {
	case *Identifier, *MemberExpression, *ObjectPattern, *RestElement:
		return !isNilNode(v)
	}
	return false
}

func isNilNode(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
