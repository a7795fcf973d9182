package pixelui

import "strings"

// TextSet1 is the printable ASCII range a retro bitmap font covers.
const TextSet1 = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// MultilineTextSet is TextSet1 plus the line break.
const MultilineTextSet = TextSet1 + "\n"

// CharSet is the set of runes a TextBuffer accepts.
type CharSet struct {
	src   string
	runes map[rune]struct{}
}

// NewCharSet creates a set from every rune in chars.
func NewCharSet(chars string) CharSet {
	cs := CharSet{src: chars, runes: make(map[rune]struct{}, len(chars))}
	for _, r := range chars {
		cs.runes[r] = struct{}{}
	}
	return cs
}

// Contains returns true if r is in the set.
func (cs CharSet) Contains(r rune) bool {
	_, ok := cs.runes[r]
	return ok
}

// ContainsAll returns true if s is non-empty and every rune of s is in the set.
func (cs CharSet) ContainsAll(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !cs.Contains(r) {
			return false
		}
	}
	return true
}

// Filter returns s without the runes that are not in the set.
func (cs CharSet) Filter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if cs.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String returns the characters the set was built from.
func (cs CharSet) String() string { return cs.src }

// TextBuffer holds the content, caret and selection of a text field, together
// with its undo history.
//
// Indices count runes. The caret (cursor) and the selection anchor are both
// kept in [0, Len()]; the selection is the range between them.
type TextBuffer struct {
	content []rune
	cursor  int
	anchor  int

	allowed CharSet
	limit   int
	history *History
}

// NewTextBuffer creates an empty buffer accepting only allowed runes, holding
// at most characterLimit runes and historyLimit undo snapshots.
func NewTextBuffer(allowed CharSet, characterLimit, historyLimit int) *TextBuffer {
	return &TextBuffer{
		allowed: allowed,
		limit:   characterLimit,
		history: NewHistory(historyLimit),
	}
}

// Text returns the content.
func (b *TextBuffer) Text() string { return string(b.content) }

// Runes returns a copy of the content.
func (b *TextBuffer) Runes() []rune {
	out := make([]rune, len(b.content))
	copy(out, b.content)
	return out
}

// Len returns the content length in runes.
func (b *TextBuffer) Len() int { return len(b.content) }

// Cursor returns the caret position.
func (b *TextBuffer) Cursor() int { return b.cursor }

// Anchor returns the fixed end of the selection.
func (b *TextBuffer) Anchor() int { return b.anchor }

// SelectionStart returns the lower end of the selection.
func (b *TextBuffer) SelectionStart() int { return min(b.cursor, b.anchor) }

// SelectionEnd returns the upper end of the selection.
func (b *TextBuffer) SelectionEnd() int { return max(b.cursor, b.anchor) }

// HasSelection returns true if the selection is not collapsed.
func (b *TextBuffer) HasSelection() bool { return b.cursor != b.anchor }

// SelectedText returns the selected substring.
func (b *TextBuffer) SelectedText() string {
	return string(b.content[b.SelectionStart():b.SelectionEnd()])
}

// Allowed returns the accepted character set.
func (b *TextBuffer) Allowed() CharSet { return b.allowed }

// Multiline returns true if the buffer accepts line breaks.
func (b *TextBuffer) Multiline() bool { return b.allowed.Contains('\n') }

// CharacterLimit returns the maximum content length.
func (b *TextBuffer) CharacterLimit() int { return b.limit }

// History returns the undo history.
func (b *TextBuffer) History() *History { return b.history }

// ReplaceRange replaces content[start:end] with text and puts the caret after
// the inserted runes, collapsing the selection.
//
// Disallowed runes are dropped from text first. start is clamped to
// [0, Len()] and end to [start, Len()]. If the result would be longer than
// the character limit nothing changes and false is returned. When record is
// set the new content is pushed onto the history.
func (b *TextBuffer) ReplaceRange(text string, start, end int, record bool) bool {
	ins := []rune(b.allowed.Filter(text))
	start = clampi(start, 0, len(b.content))
	end = clampi(end, start, len(b.content))

	if len(b.content)-(end-start)+len(ins) > b.limit {
		return false
	}

	next := make([]rune, 0, len(b.content)-(end-start)+len(ins))
	next = append(next, b.content[:start]...)
	next = append(next, ins...)
	next = append(next, b.content[end:]...)

	b.content = next
	b.cursor = start + len(ins)
	b.anchor = b.cursor
	if record {
		b.history.Push(string(b.content))
	}
	return true
}

// Insert replaces the selection with text.
func (b *TextBuffer) Insert(text string) bool {
	return b.ReplaceRange(text, b.SelectionStart(), b.SelectionEnd(), true)
}

// Backspace deletes the selection, or the rune before the caret when nothing
// is selected. Like every edit it records the result, so a Backspace at the
// start of the text still drops the redo branch.
func (b *TextBuffer) Backspace() bool {
	start, end := b.SelectionStart(), b.SelectionEnd()
	if start == end {
		start = max(0, start-1)
	}
	return b.ReplaceRange("", start, end, true)
}

// Undo restores the previous history snapshot.
// Undoing past the first snapshot empties the buffer.
func (b *TextBuffer) Undo() {
	b.ReplaceRange(b.history.Back(), 0, len(b.content), false)
}

// Redo restores the next history snapshot. It returns false if there is
// nothing to redo.
func (b *TextBuffer) Redo() bool {
	s, ok := b.history.Forward()
	if !ok {
		return false
	}
	return b.ReplaceRange(s, 0, len(b.content), false)
}

// SelectAll selects the whole content with the caret at the end.
func (b *TextBuffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.content)
}

// MoveCaret moves the caret by delta runes. The anchor follows unless extend
// is set, in which case the selection grows or shrinks.
func (b *TextBuffer) MoveCaret(delta int, extend bool) {
	b.cursor = clampi(b.cursor+delta, 0, len(b.content))
	if !extend {
		b.anchor = b.cursor
	}
}

// SeekLine moves the caret to the next (down) or previous line, keeping the
// column where the line is long enough. It does nothing if the buffer does
// not accept line breaks.
func (b *TextBuffer) SeekLine(down, extend bool) {
	if !b.Multiline() {
		return
	}

	lastEOL := lastIndexRune(b.content[:b.cursor], '\n')
	column := b.cursor - lastEOL

	var sought int
	if down {
		sought = indexRune(b.content, '\n', b.cursor)
		if sought < 0 {
			sought = len(b.content)
		}
	} else {
		sought = lastIndexRune(b.content[:max(lastEOL, 0)], '\n')
	}

	nextEOL := indexRune(b.content, '\n', sought+1)
	if nextEOL < 0 {
		nextEOL = len(b.content)
	}

	b.cursor = clampi(min(nextEOL, sought+column), 0, len(b.content))
	if !extend {
		b.anchor = b.cursor
	}
}

// SetText replaces the whole content. Only the first text set on a buffer
// with no history is recorded, so it becomes the bottom of the undo stack.
func (b *TextBuffer) SetText(s string) bool {
	return b.ReplaceRange(s, 0, len(b.content), b.history.Len() == 0)
}

// SetCursor places the caret and the anchor, clamped to the content.
func (b *TextBuffer) SetCursor(cursor, anchor int) {
	b.cursor = clampi(cursor, 0, len(b.content))
	b.anchor = clampi(anchor, 0, len(b.content))
}

// ClearHistory drops every undo snapshot.
func (b *TextBuffer) ClearHistory() {
	b.history.Clear()
}

func indexRune(s []rune, r rune, from int) int {
	for i := max(from, 0); i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}
