package pixelui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffer(text string, multiline bool) *TextBuffer {
	chars := TextSet1
	if multiline {
		chars = MultilineTextSet
	}
	b := NewTextBuffer(NewCharSet(chars), 256, 256)
	if text != "" {
		b.SetText(text)
	}
	return b
}

func TestCharSet(t *testing.T) {
	cs := NewCharSet("abc")
	assert.True(t, cs.Contains('a'))
	assert.False(t, cs.Contains('d'))
	assert.True(t, cs.ContainsAll("cab"))
	assert.False(t, cs.ContainsAll("abd"))
	assert.False(t, cs.ContainsAll(""), "empty text is not typed")
	assert.Equal(t, "abba", cs.Filter("a-b-b-a!"))
	assert.Equal(t, "abc", cs.String())
}

func TestTextBufferBackspaceAcrossLines(t *testing.T) {
	b := newBuffer("ab\ncd", true)
	require.Equal(t, 5, b.Cursor())

	require.True(t, b.Backspace())
	assert.Equal(t, "ab\nc", b.Text())
	assert.Equal(t, 4, b.Cursor())
}

func TestTextBufferBackspaceAtStart(t *testing.T) {
	b := newBuffer("ab", false)
	b.SetCursor(0, 0)
	assert.True(t, b.Backspace())
	assert.Equal(t, "ab", b.Text())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, []string{"ab"}, b.History().Entries(), "unchanged text is not pushed twice")
}

func TestTextBufferBackspaceAtStartDropsRedo(t *testing.T) {
	b := newBuffer("", false)
	require.True(t, b.Insert("a"))
	b.Undo()
	require.Equal(t, "", b.Text())

	b.Backspace()
	assert.Equal(t, "", b.Text())
	assert.False(t, b.Redo(), "redo branch is gone")
	assert.Equal(t, "", b.Text())
	assert.Equal(t, []string{""}, b.History().Entries())
}

func TestTextBufferBackspaceDeletesSelection(t *testing.T) {
	b := newBuffer("hello", false)
	b.SetCursor(1, 4)

	require.True(t, b.Backspace())
	assert.Equal(t, "ho", b.Text())
	assert.Equal(t, 1, b.Cursor())
	assert.Equal(t, 1, b.Anchor())
}

func TestTextBufferSelectAllThenType(t *testing.T) {
	b := newBuffer("hello", false)
	b.SelectAll()
	assert.Equal(t, 0, b.SelectionStart())
	assert.Equal(t, 5, b.SelectionEnd())
	assert.Equal(t, "hello", b.SelectedText())

	require.True(t, b.Insert("x"))
	assert.Equal(t, "x", b.Text())
	assert.Equal(t, 1, b.Cursor())
	assert.False(t, b.HasSelection())
}

func TestTextBufferSanitizesInsertions(t *testing.T) {
	b := NewTextBuffer(NewCharSet("abc"), 10, 10)
	require.True(t, b.Insert("a@b"))
	assert.Equal(t, "ab", b.Text())
	assert.Equal(t, 2, b.Cursor())
}

func TestTextBufferCharacterLimit(t *testing.T) {
	b := NewTextBuffer(NewCharSet(TextSet1), 5, 10)
	require.True(t, b.Insert("abc"))

	require.True(t, b.Insert("de"), "reaching the limit exactly is allowed")
	assert.Equal(t, "abcde", b.Text())

	b.SetCursor(2, 2)
	entries := b.History().Entries()

	assert.False(t, b.Insert("x"))
	assert.Equal(t, "abcde", b.Text())
	assert.Equal(t, 2, b.Cursor())
	assert.Equal(t, 2, b.Anchor())
	assert.Equal(t, entries, b.History().Entries(), "rejected edit leaves history alone")
}

func TestTextBufferLimitCountsReplacedRange(t *testing.T) {
	b := NewTextBuffer(NewCharSet(TextSet1), 5, 10)
	b.Insert("abcde")
	b.SetCursor(0, 2)

	require.True(t, b.Insert("xy"), "replacing a selection frees its length")
	assert.Equal(t, "xycde", b.Text())
}

func TestTextBufferReplaceRangeClamps(t *testing.T) {
	b := newBuffer("abc", false)

	require.True(t, b.ReplaceRange("x", -5, 1, true))
	assert.Equal(t, "xbc", b.Text())

	require.True(t, b.ReplaceRange("y", 10, 20, true))
	assert.Equal(t, "xbcy", b.Text())
	assert.Equal(t, 4, b.Cursor())

	require.True(t, b.ReplaceRange("z", 2, 0, true), "end before start inserts at start")
	assert.Equal(t, "xbzcy", b.Text())
}

func TestTextBufferUndoRedo(t *testing.T) {
	b := newBuffer("", false)
	b.Insert("a")
	b.Insert("b")
	b.Insert("c")

	b.Undo()
	assert.Equal(t, "ab", b.Text())
	b.Undo()
	assert.Equal(t, "a", b.Text())
	b.Undo()
	assert.Equal(t, "", b.Text(), "undo past the first entry empties the buffer")

	require.True(t, b.Redo())
	assert.Equal(t, "a", b.Text())
	require.True(t, b.Redo())
	require.True(t, b.Redo())
	assert.Equal(t, "abc", b.Text())
	assert.Equal(t, 3, b.Cursor())

	assert.False(t, b.Redo(), "redo at the newest entry is a no-op")
	assert.Equal(t, "abc", b.Text())
}

func TestTextBufferUndoRestoresInitialText(t *testing.T) {
	b := newBuffer("hello", false)
	b.Insert("!")
	require.Equal(t, "hello!", b.Text())

	b.Undo()
	assert.Equal(t, "hello", b.Text())

	b.SetText("other")
	assert.Equal(t, []string{"hello", "hello!"}, b.History().Entries(),
		"later SetText calls are not recorded")
}

func TestTextBufferEditAfterUndoDropsRedo(t *testing.T) {
	b := newBuffer("", false)
	b.Insert("a")
	b.Insert("b")
	b.Undo()
	b.Insert("c")

	assert.Equal(t, "ac", b.Text())
	assert.False(t, b.Redo())
	assert.Equal(t, []string{"a", "ac"}, b.History().Entries())
}

func TestTextBufferHistoryLimit(t *testing.T) {
	b := NewTextBuffer(NewCharSet(TextSet1), 100, 4)
	for i := 0; i < 10; i++ {
		b.Insert(fmt.Sprint(i))
	}
	assert.Equal(t, 4, b.History().Len())
	assert.Equal(t, []string{"0123456", "01234567", "012345678", "0123456789"}, b.History().Entries())
}

func TestTextBufferMoveCaret(t *testing.T) {
	b := newBuffer("abc", false)

	b.MoveCaret(-1, false)
	assert.Equal(t, 2, b.Cursor())
	assert.Equal(t, 2, b.Anchor())

	b.MoveCaret(-1, true)
	b.MoveCaret(-1, true)
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, 2, b.Anchor())
	assert.Equal(t, "ab", b.SelectedText())

	b.MoveCaret(-1, true)
	assert.Equal(t, 0, b.Cursor(), "caret is clamped at the start")

	b.MoveCaret(10, false)
	assert.Equal(t, 3, b.Cursor(), "caret is clamped at the end")
	assert.False(t, b.HasSelection())
}

func TestTextBufferSeekLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		down   bool
		want   int
	}{
		{name: "down keeps column", text: "line1\nline2", cursor: 2, down: true, want: 8},
		{name: "up keeps column", text: "line1\nline2", cursor: 8, down: false, want: 2},
		{name: "down on last line clamps to end", text: "ab\nc", cursor: 4, down: true, want: 4},
		{name: "down clamps to shorter line", text: "abcd\nx", cursor: 3, down: true, want: 6},
		{name: "up clamps to shorter line", text: "x\nabcd", cursor: 6, down: false, want: 1},
		{name: "up on first line stays", text: "ab\ncd", cursor: 1, down: false, want: 1},
		{name: "down from end of line", text: "ab\ncd", cursor: 2, down: true, want: 5},
		{name: "down from empty line", text: "ab\n\ncd", cursor: 3, down: true, want: 4},
		{name: "up from empty line", text: "ab\n\ncd", cursor: 3, down: false, want: 0},
		{name: "up to leading empty line", text: "\nab", cursor: 2, down: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer(tt.text, true)
			b.SetCursor(tt.cursor, tt.cursor)
			b.SeekLine(tt.down, false)
			assert.Equal(t, tt.want, b.Cursor())
			assert.Equal(t, tt.want, b.Anchor())
		})
	}
}

// Line seek has no notion of "no line there": moving down from the last line
// lands on its end, while moving up from the first line keeps the caret.
func TestTextBufferSeekLineAtEdges(t *testing.T) {
	b := newBuffer("ab\ncd", true)
	b.SetCursor(3, 3)
	b.SeekLine(true, false)
	assert.Equal(t, 5, b.Cursor())

	b.SetCursor(1, 1)
	b.SeekLine(false, false)
	assert.Equal(t, 1, b.Cursor())

	b = newBuffer("ab\n\n", true)
	b.SetCursor(3, 3)
	b.SeekLine(true, false)
	assert.Equal(t, 4, b.Cursor())
}

func TestTextBufferSeekLineExtends(t *testing.T) {
	b := newBuffer("line1\nline2", true)
	b.SetCursor(2, 2)
	b.SeekLine(true, true)
	assert.Equal(t, 8, b.Cursor())
	assert.Equal(t, 2, b.Anchor())
	assert.Equal(t, "ne1\nli", b.SelectedText())
}

func TestTextBufferSeekLineSingleLine(t *testing.T) {
	b := newBuffer("abc", false)
	b.SetCursor(1, 1)
	b.SeekLine(true, false)
	assert.Equal(t, 1, b.Cursor())
	b.SeekLine(false, false)
	assert.Equal(t, 1, b.Cursor())
}

func TestTextBufferSelectionInvariant(t *testing.T) {
	b := newBuffer("ab\ncd", true)
	ops := []func(){
		func() { b.MoveCaret(-3, true) },
		func() { b.SeekLine(false, true) },
		func() { b.Insert("xyz") },
		func() { b.SetCursor(-4, 99) },
		func() { b.Backspace() },
		func() { b.Undo() },
		func() { b.SelectAll() },
		func() { b.Redo() },
		func() { b.SeekLine(true, false) },
		func() { b.Undo() },
		func() { b.Undo() },
	}
	for i, op := range ops {
		op()
		start, end := b.SelectionStart(), b.SelectionEnd()
		assert.True(t, 0 <= start && start <= end && end <= b.Len(),
			"step %d: selection [%d, %d) outside [0, %d]", i, start, end, b.Len())
	}
}
