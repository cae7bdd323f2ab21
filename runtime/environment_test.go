package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDeclare(t *testing.T) {
	global := NewEnvironment()
	require.NoError(t, global.Declare("a", "const", 1.0))
	require.NoError(t, global.Declare("v", "var", 1.0))
	require.NoError(t, global.Declare("v", "var", 2.0))

	err := global.Declare("a", "let", 2.0)
	var rtErr *Error
	require.ErrorAs(t, err, &rtErr)
	assert.Equal(t, "SyntaxError", rtErr.Kind)
	assert.Equal(t, "SyntaxError: Identifier 'a' has already been declared", err.Error())

	assert.Error(t, global.Declare("v", "const", 3.0))

	v, err := global.Get("v")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestEnvironmentLookup(t *testing.T) {
	global := NewEnvironment()
	require.NoError(t, global.Declare("fixed", "const", "y"))
	require.NoError(t, global.Declare("open", "let", "x"))

	_, err := global.Get("missing")
	assert.EqualError(t, err, "ReferenceError: missing is not defined")

	b, ok := global.Lookup("fixed")
	require.True(t, ok)
	assert.False(t, b.Mutable)
	assert.Equal(t, "const", b.Kind)

	b, ok = global.Lookup("open")
	require.True(t, ok)
	assert.True(t, b.Mutable)

	_, ok = global.Lookup("missing")
	assert.False(t, ok)
}
