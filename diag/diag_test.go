package diag

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchError struct {
	items []string
}

func (e *batchError) Error() string   { return "Batch Failed" }
func (e *batchError) Summary() string { return e.Error() }
func (e *batchError) Helptext() string {
	return "fix the items"
}

func (e *batchError) Reasons() []string {
	out := make([]string, 0, len(e.items))
	for _, item := range e.items {
		out = append(out, fmt.Sprintf("item %s is broken", item))
	}
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Render(&buf, &batchError{items: []string{"a", "b"}})
	assert.Equal(t, "Error: Batch Failed\n - item a is broken\n - item b is broken\nhint: fix the items\n", buf.String())
}

func TestRender_PlainError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Render(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	Render(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestDelegationThroughWrapping(t *testing.T) {
	t.Parallel()

	inner := &batchError{items: []string{"x"}}
	wrapped := fmt.Errorf("context: %w", inner)

	ue, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, ue)
	assert.Equal(t, []string{"item x is broken"}, ReasonsOf(wrapped))
	assert.Equal(t, "fix the items", HelptextOf(wrapped))

	assert.Equal(t, []string{"plain"}, ReasonsOf(errors.New("plain")))
	assert.Nil(t, ReasonsOf(nil))
	assert.Empty(t, HelptextOf(errors.New("plain")))
}

func TestIOError(t *testing.T) {
	t.Parallel()

	err := &IOError{Path: "icons/hat.dmi", Err: os.ErrNotExist}
	assert.Equal(t, "Generic IO Error", err.Summary())
	assert.Equal(t, []string{`Operation on "icons/hat.dmi" failed for reason of "not found"`}, err.Reasons())
	assert.NotEmpty(t, err.Helptext())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
