package build

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/example/jsbuild/ast"
	"github.com/example/jsbuild/runtime"
)

// shape is the serializer's view of a native value.
type shape int

const (
	shapeScalar shape = iota
	shapeSequence
	shapeMapping
	shapeNode
)

func shapeOf(v any) shape {
	switch v.(type) {
	case nil, string, bool, float64, int:
		return shapeScalar
	case ast.Node:
		return shapeNode
	case *runtime.Object:
		return shapeMapping
	case []any:
		return shapeSequence
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return shapeSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return shapeMapping
		}
	}
	return shapeScalar
}

// indirect follows non-nil pointers to plain Go values. Nodes and *Object
// are kept as pointers.
func indirect(v any) any {
	for {
		switch v.(type) {
		case ast.Node, *runtime.Object:
			return v
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}
}

type entry struct {
	key   string
	value any
}

// mappingEntries lists the fields of m in serialization order: insertion
// order for *runtime.Object, ascending key order for Go maps.
func mappingEntries(m any) ([]entry, bool) {
	if obj, ok := m.(*runtime.Object); ok {
		if obj == nil {
			return nil, false
		}
		out := make([]entry, 0, obj.Len())
		for _, k := range obj.Keys {
			out = append(out, entry{key: k, value: obj.Fields[k]})
		}
		return out, true
	}

	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make([]entry, 0, rv.Len())
	for _, k := range runtime.SortedMapKeys(rv) {
		out = append(out, entry{key: k.String(), value: rv.MapIndex(k).Interface()})
	}
	return out, true
}

func sequenceItems(seq any) ([]any, bool) {
	if items, ok := seq.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// Value serializes v: mappings become object literals, sequences become
// array literals and everything else goes through ToLiteral.
func Value(v any) (ast.Expression, error) {
	v = indirect(v)
	switch shapeOf(v) {
	case shapeMapping:
		obj, err := Object(v)
		if err != nil {
			return nil, err
		}
		return obj, nil
	case shapeSequence:
		arr, err := Array(v)
		if err != nil {
			return nil, err
		}
		return arr, nil
	}
	return ToLiteral(v)
}

// Array serializes a slice or array element by element. Nested mappings and
// sequences recurse; a *ast.SpreadElement is kept as a spread entry.
func Array(seq any) (*ast.ArrayLiteral, error) {
	items, ok := sequenceItems(indirect(seq))
	if !ok {
		return nil, fmt.Errorf("array from %T: %w", seq, ErrShape)
	}
	elements := make([]ast.Expression, 0, len(items))
	for i, item := range items {
		el, err := arrayElement(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, el)
	}
	return ast.NewArray(elements), nil
}

func arrayElement(v any) (ast.Expression, error) {
	if spread, ok := v.(*ast.SpreadElement); ok {
		return spread, nil
	}
	return Value(v)
}

// Object serializes a *runtime.Object or string-keyed map into an object
// literal with one standard property per field. Keys become identifiers
// and values are serialized with Value.
func Object(m any) (*ast.ObjectLiteral, error) {
	entries, ok := mappingEntries(indirect(m))
	if !ok {
		return nil, fmt.Errorf("object from %T: %w", m, ErrShape)
	}
	props := make([]*ast.Property, 0, len(entries))
	for _, e := range entries {
		value, err := Value(e.value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.key, err)
		}
		prop, err := Property(e.key, value)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return ast.NewObject(props), nil
}

// Pattern turns a mapping into an object pattern. Field values go through
// ToLiteral without recursion, so nested mappings are rejected.
func Pattern(m any) (*ast.ObjectPattern, error) {
	entries, ok := mappingEntries(indirect(m))
	if !ok {
		return nil, fmt.Errorf("pattern from %T: %w", m, ErrShape)
	}
	props := make([]*ast.Property, 0, len(entries))
	for _, e := range entries {
		prop, err := Property(e.key, e.value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.key, err)
		}
		props = append(props, prop)
	}
	return ast.NewObjectPattern(props), nil
}

// ArrayOf wraps already built elements in an array literal.
func ArrayOf(elements ...ast.Expression) *ast.ArrayLiteral {
	return ast.NewArray(slices.Clone(elements))
}

// ObjectOf wraps already built properties in an object literal.
func ObjectOf(props ...*ast.Property) *ast.ObjectLiteral {
	return ast.NewObject(slices.Clone(props))
}

// PatternOf wraps already built properties in an object pattern.
func PatternOf(props ...*ast.Property) *ast.ObjectPattern {
	return ast.NewObjectPattern(slices.Clone(props))
}
