package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return "coded " + e.code }

func TestWrapKeepsChain(t *testing.T) {
	base := New("slot full")
	wrapped := Wrap(base, "reserve capacity")

	assert.EqualError(t, wrapped, "reserve capacity: slot full")
	assert.True(t, Is(wrapped, base))
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(base)), "TestWrapKeepsChain")
}

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "E1"}, "outer")

	found, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "E1", found.code)

	var target *codedError
	assert.True(t, As(err, &target))

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}
