package pixelui

// History is a bounded undo/redo stack of text snapshots.
//
// The position is kept as the number of applied entries rather than an index,
// so "before the first entry" is simply zero: entries[:head] are applied and
// entries[head:] can be redone.
type History struct {
	entries []string
	head    int
	limit   int
}

// NewHistory creates a history holding at most limit snapshots.
// A limit of zero or less disables recording.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a snapshot at the current position.
// Entries after the position (the redo branch) are discarded first. A
// snapshot equal to the entry at the position is not recorded twice.
func (h *History) Push(snapshot string) {
	if h.limit <= 0 {
		return
	}
	if h.head > 0 && h.entries[h.head-1] == snapshot {
		return
	}

	h.entries = append(h.entries[:h.head], snapshot)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.head = len(h.entries)
}

// Back moves the position back by one and returns the snapshot now current.
// Moving before the first entry yields the empty string.
func (h *History) Back() string {
	if h.head > 0 {
		h.head--
	}
	if h.head == 0 {
		return ""
	}
	return h.entries[h.head-1]
}

// Forward moves the position forward by one and returns the snapshot now
// current. ok is false, and nothing changes, when there is nothing to redo.
func (h *History) Forward() (snapshot string, ok bool) {
	if h.head >= len(h.entries) {
		return "", false
	}
	h.head++
	return h.entries[h.head-1], true
}

// Position returns the index of the current entry.
// ok is false when the position is before the first entry.
func (h *History) Position() (index int, ok bool) {
	if h.head == 0 {
		return 0, false
	}
	return h.head - 1, true
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.entries) }

// Limit returns the maximum number of snapshots kept.
func (h *History) Limit() int { return h.limit }

// Entries returns a copy of the recorded snapshots, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// CanUndo returns true if Back would move the position.
func (h *History) CanUndo() bool { return h.head > 0 }

// CanRedo returns true if Forward would move the position.
func (h *History) CanRedo() bool { return h.head < len(h.entries) }

// Clear drops every snapshot.
func (h *History) Clear() {
	h.entries = nil
	h.head = 0
}
