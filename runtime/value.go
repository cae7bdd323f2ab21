package runtime

import (
	"math"
	"strconv"
	"strings"
)

// Values handled by the builder and the interpreter are plain Go values:
//
//	nil            null
//	Undefined      undefined
//	bool           boolean
//	float64        number
//	string         string
//	[]any          array
//	*Object        object with insertion-ordered keys
//	CallableFunc   native function

// ValueType represents the type of a JavaScript value.
type ValueType int

const (
	TypeUndefined ValueType = iota
	TypeNull
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
	TypeFunction
	TypeUnknown
)

func (t ValueType) String() string {
	switch t {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "object" // typeof null === "object" in JS
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray, TypeObject:
		return "object"
	case TypeFunction:
		return "function"
	default:
		return "unknown"
	}
}

// UndefinedType is the type of Undefined.
type UndefinedType struct{}

// Undefined is the JavaScript undefined value.
var Undefined = UndefinedType{}

// CallableFunc is the Go function signature for natives callable from
// evaluated code.
type CallableFunc func(args []any) (any, error)

// TypeOf classifies a normalized value.
func TypeOf(v any) ValueType {
	switch v.(type) {
	case nil:
		return TypeNull
	case UndefinedType:
		return TypeUndefined
	case bool:
		return TypeBoolean
	case float64:
		return TypeNumber
	case string:
		return TypeString
	case []any:
		return TypeArray
	case *Object:
		return TypeObject
	case CallableFunc:
		return TypeFunction
	default:
		return TypeUnknown
	}
}

// Object is a keyed mapping that remembers insertion order. Both fields are
// exported so values compare structurally in tests.
type Object struct {
	Keys   []string
	Fields map[string]any
}

// NewObject creates an object from alternating key/value pairs.
func NewObject(pairs ...any) *Object {
	o := &Object{Fields: make(map[string]any, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Set(pairs[i].(string), pairs[i+1])
	}
	return o
}

// Get retrieves a field, or Undefined when absent.
func (o *Object) Get(name string) any {
	if v, ok := o.Fields[name]; ok {
		return v
	}
	return Undefined
}

// Set sets a field. New keys are appended; existing keys keep their position.
func (o *Object) Set(name string, val any) {
	if o.Fields == nil {
		o.Fields = make(map[string]any)
	}
	if _, ok := o.Fields[name]; !ok {
		o.Keys = append(o.Keys, name)
	}
	o.Fields[name] = val
}

// HasOwnProperty checks whether name is set.
func (o *Object) HasOwnProperty(name string) bool {
	_, ok := o.Fields[name]
	return ok
}

// Len returns the number of fields.
func (o *Object) Len() int { return len(o.Keys) }

// ToString implements the ECMAScript ToString abstract operation for the
// primitive values.
func ToString(v any) string {
	switch val := v.(type) {
	case UndefinedType:
		return "undefined"
	case nil:
		return "null"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return NumberToString(val)
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			if e == nil || e == Undefined {
				continue
			}
			parts[i] = ToString(e)
		}
		return strings.Join(parts, ",")
	case *Object:
		return "[object Object]"
	case CallableFunc:
		return "function () { [native code] }"
	default:
		return "undefined"
	}
}

// NumberToString formats a number the way Number.prototype.toString does
// with radix 10.
func NumberToString(n float64) string {
	switch {
	case isNaN(n):
		return "NaN"
	case isInf(n, 1):
		return "Infinity"
	case isInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	// Shortest round-tripping digits as d.ddde±x.
	e := strconv.FormatFloat(n, 'e', -1, 64)
	mant, expPart, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	k := len(digits)
	point := exp + 1

	switch {
	case k <= point && point <= 21:
		return sign + digits + strings.Repeat("0", point-k)
	case 0 < point && point <= 21:
		return sign + digits[:point] + "." + digits[point:]
	case -6 < point && point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + digits
	}

	expSign := "+"
	if point-1 < 0 {
		expSign = "-"
	}
	expAbs := point - 1
	if expAbs < 0 {
		expAbs = -expAbs
	}
	if k == 1 {
		return sign + digits + "e" + expSign + strconv.Itoa(expAbs)
	}
	return sign + digits[:1] + "." + digits[1:] + "e" + expSign + strconv.Itoa(expAbs)
}

// ToPropertyKey converts a computed key to the string used to index objects.
func ToPropertyKey(v any) string {
	return ToString(v)
}

func isNaN(f float64) bool           { return math.IsNaN(f) }
func isInf(f float64, sign int) bool { return math.IsInf(f, sign) }
