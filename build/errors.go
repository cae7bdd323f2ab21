package build

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChain is returned when a member chain or declaration is built
	// without any segment or declarator.
	ErrEmptyChain = errors.New("chain needs at least one segment")

	// ErrShape is returned when a serializer receives a value of the wrong
	// shape, such as a scalar passed to Array.
	ErrShape = errors.New("value has the wrong shape")
)

// InvalidIdentifierError reports a value that is neither a node nor a string
// where a name was required.
type InvalidIdentifierError struct {
	Value any
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier type %T: %v", e.Value, e.Value)
}

// InvalidLiteralError reports a value that is neither a node nor a scalar
// where a literal was required.
type InvalidLiteralError struct {
	Value any
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("invalid literal type %T: %v", e.Value, e.Value)
}

// InvalidBindingKindError reports a binding kind that cannot declare a name.
type InvalidBindingKindError struct {
	Value any
}

func (e *InvalidBindingKindError) Error() string {
	return fmt.Sprintf("invalid binding kind type %T: %v", e.Value, e.Value)
}

// Must returns v or panics with err. It is meant for package-level values
// built from constant input.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
