package pixelui

import "fmt"

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyChar     // A typed character; KeyEvent.Text holds it
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)

var keyNames = map[Key]string{
	KeyNone:      "--",
	KeyChar:      "Char",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
	KeyA:         "A",
	KeyC:         "C",
	KeyV:         "V",
	KeyX:         "X",
	KeyY:         "Y",
	KeyZ:         "Z",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// String implements fmt.Stringer.
func (k Key) String() string { return KeyName(k) }

// KeyEvent is a key press delivered by an InputSource.
//
// Printable characters arrive as KeyChar with the character in Text; every
// other key arrives with its own Key and an empty Text.
type KeyEvent struct {
	Key   Key
	Text  string
	Ctrl  bool
	Shift bool

	defaultPrevented bool
}

// CharEvent returns the event for typing r.
func CharEvent(r rune) *KeyEvent {
	return &KeyEvent{Key: KeyChar, Text: string(r)}
}

// PreventDefault marks the event as consumed so the host skips its own
// handling (for example turning Ctrl+V into a paste).
func (e *KeyEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented returns true once a handler consumed the event.
func (e *KeyEvent) DefaultPrevented() bool { return e.defaultPrevented }

// String implements fmt.Stringer.
func (e *KeyEvent) String() string {
	name := KeyName(e.Key)
	if e.Key == KeyChar {
		name = fmt.Sprintf("%q", e.Text)
	}
	if e.Shift {
		name = "Shift+" + name
	}
	if e.Ctrl {
		name = "Ctrl+" + name
	}
	return name
}
