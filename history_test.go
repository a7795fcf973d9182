package pixelui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryPushAndBack(t *testing.T) {
	h := NewHistory(10)
	_, ok := h.Position()
	assert.False(t, ok, "empty history has no position")

	h.Push("a")
	h.Push("ab")
	h.Push("abc")

	idx, ok := h.Position()
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	assert.Equal(t, "ab", h.Back())
	assert.Equal(t, "a", h.Back())
	assert.Equal(t, "", h.Back(), "stepping before the first entry yields empty text")
	assert.Equal(t, "", h.Back(), "position is floored")
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
}

func TestHistorySkipsDuplicates(t *testing.T) {
	h := NewHistory(10)
	h.Push("x")
	h.Push("x")
	h.Push("y")
	h.Push("y")

	assert.Equal(t, []string{"x", "y"}, h.Entries())
}

func TestHistoryPushDiscardsRedoBranch(t *testing.T) {
	h := NewHistory(10)
	h.Push("a")
	h.Push("ab")
	h.Push("abc")
	h.Back()
	h.Back()

	h.Push("aX")

	assert.Equal(t, []string{"a", "aX"}, h.Entries())
	assert.False(t, h.CanRedo())
	_, ok := h.Forward()
	assert.False(t, ok)
}

func TestHistoryForward(t *testing.T) {
	h := NewHistory(10)
	h.Push("a")
	h.Push("b")

	_, ok := h.Forward()
	assert.False(t, ok, "redo at the newest entry is a no-op")
	idx, _ := h.Position()
	assert.Equal(t, 1, idx)

	h.Back()
	h.Back()
	s, ok := h.Forward()
	require.True(t, ok)
	assert.Equal(t, "a", s)
	s, ok = h.Forward()
	require.True(t, ok)
	assert.Equal(t, "b", s)
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(3)
	for _, s := range []string{"1", "2", "3", "4", "5"} {
		h.Push(s)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"3", "4", "5"}, h.Entries(), "oldest entries are dropped")
	idx, ok := h.Position()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestHistoryDisabled(t *testing.T) {
	h := NewHistory(0)
	h.Push("a")
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "", h.Back())
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := NewHistory(3)
	h.Push("a")
	e := h.Entries()
	e[0] = "changed"
	assert.Equal(t, []string{"a"}, h.Entries())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.CanUndo())
}
