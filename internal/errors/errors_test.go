package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestFind(t *testing.T) {
	base := &codedError{code: "E1"}
	wrapped := Wrap(Wrapf(base, "layer %d", 1), "outer")

	found, ok := Find[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, found)

	_, ok = Find[*codedError](New("plain"))
	assert.False(t, ok)

	_, ok = Find[*codedError](nil)
	assert.False(t, ok)
}

func TestWrapKeepsChain(t *testing.T) {
	sentinel := New("sentinel")
	err := WithStack(Wrap(sentinel, "context"))

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, "context: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsChain")
	assert.NoError(t, Wrap(nil, "nothing"))
}
