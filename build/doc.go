// Package build turns native Go values and pre-built nodes into JavaScript
// syntax trees.
//
// Every builder coerces its operands through two rules. Where a name is
// expected, ToIdentifier accepts an existing identifier, expression or
// pattern node as is and turns a string into an identifier; anything else is
// an *InvalidIdentifierError. Where a value is expected, ToLiteral accepts an
// existing identifier, expression or literal node as is and turns any scalar
// into a literal. So a bare string means a name in one position and a quoted
// value in the other:
//
//	build.Const("name", "value")                     // const name = "value";
//	build.Const("name", ast.NewIdentifier("value"))  // const name = value;
//
// Builders are pure: each call returns fresh nodes owned by the caller, and a
// failed call returns no node. The Unsafe helpers are the only functions that
// modify a node they were given.
//
// Nested mappings and sequences are serialized recursively. Cyclic values
// recurse without bound; callers pass acyclic data.
package build
