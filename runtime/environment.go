package runtime

import "fmt"

// Error is a JavaScript-style error raised while evaluating a tree, such as
// a ReferenceError for an unbound name.
type Error struct {
	Kind    string // "TypeError", "ReferenceError", "SyntaxError"
	Message string
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

func NewError(kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Environment holds the bindings of the global scope of an evaluated
// module.
type Environment struct {
	store map[string]*Binding
}

type Binding struct {
	Value   any
	Mutable bool   // false for const
	Kind    string // "var", "let", "const"
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]*Binding)}
}

// Declare declares a variable. var may redeclare a var binding; let and
// const may not redeclare anything.
func (e *Environment) Declare(name string, kind string, value any) error {
	if existing, exists := e.store[name]; exists {
		if kind != "var" || existing.Kind != "var" {
			return NewError("SyntaxError", "Identifier '%s' has already been declared", name)
		}
	}
	e.store[name] = &Binding{
		Value:   value,
		Mutable: kind != "const",
		Kind:    kind,
	}
	return nil
}

// Get retrieves a variable value.
func (e *Environment) Get(name string) (any, error) {
	if binding, ok := e.store[name]; ok {
		return binding.Value, nil
	}
	return nil, NewError("ReferenceError", "%s is not defined", name)
}

// Lookup returns the binding for name.
func (e *Environment) Lookup(name string) (*Binding, bool) {
	binding, ok := e.store[name]
	return binding, ok
}
