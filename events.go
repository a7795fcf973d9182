package pixelui

import "slices"

// ClipboardKind identifies a clipboard operation.
type ClipboardKind uint8

const (
	ClipboardCopy ClipboardKind = iota
	ClipboardCut
	ClipboardPaste
)

func (k ClipboardKind) String() string {
	switch k {
	case ClipboardCopy:
		return "copy"
	case ClipboardCut:
		return "cut"
	case ClipboardPaste:
		return "paste"
	}
	return "?"
}

// ClipboardEvent is a copy, cut or paste request delivered by an InputSource.
//
// For paste, Data holds the clipboard text. For copy and cut, a handler that
// owns a selection sets Data and calls PreventDefault; the host then writes
// Data to the clipboard.
type ClipboardEvent struct {
	Kind ClipboardKind
	Data string

	defaultPrevented bool
}

// PreventDefault marks the event as handled.
func (e *ClipboardEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented returns true once a handler handled the event.
func (e *ClipboardEvent) DefaultPrevented() bool { return e.defaultPrevented }

// InputSource delivers keyboard and clipboard events to subscribers.
// Widgets receive one at construction and cancel their subscriptions when
// destroyed.
type InputSource interface {
	OnKey(fn func(*KeyEvent)) *Subscription
	OnClipboard(fn func(*ClipboardEvent)) *Subscription
}

// Subscription is a registered event handler.
type Subscription struct {
	cancel func()
}

// Cancel removes the handler. Calling it more than once is safe.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

type keyEntry struct {
	handler   func(*KeyEvent)
	cancelled bool
}

type clipboardEntry struct {
	handler   func(*ClipboardEvent)
	cancelled bool
}

// EventBus is an InputSource that the host feeds. Handlers run synchronously
// in subscription order.
type EventBus struct {
	keys      []*keyEntry
	clipboard []*clipboardEntry
}

// NewEventBus creates an event bus with no subscribers.
func NewEventBus() *EventBus {
	return &EventBus{
		keys:      make([]*keyEntry, 0, 8),
		clipboard: make([]*clipboardEntry, 0, 8),
	}
}

// OnKey implements InputSource.
func (b *EventBus) OnKey(fn func(*KeyEvent)) *Subscription {
	entry := &keyEntry{handler: fn}
	b.keys = append(b.keys, entry)
	return &Subscription{cancel: func() {
		entry.cancelled = true
		if i := slices.Index(b.keys, entry); i >= 0 {
			b.keys = append(b.keys[:i:i], b.keys[i+1:]...)
		}
	}}
}

// OnClipboard implements InputSource.
func (b *EventBus) OnClipboard(fn func(*ClipboardEvent)) *Subscription {
	entry := &clipboardEntry{handler: fn}
	b.clipboard = append(b.clipboard, entry)
	return &Subscription{cancel: func() {
		entry.cancelled = true
		if i := slices.Index(b.clipboard, entry); i >= 0 {
			b.clipboard = append(b.clipboard[:i:i], b.clipboard[i+1:]...)
		}
	}}
}

// DispatchKey delivers ev to every key handler subscribed when dispatch
// starts. A handler cancelled by an earlier one is skipped.
// Returns true if a handler prevented the default.
func (b *EventBus) DispatchKey(ev *KeyEvent) bool {
	for _, e := range b.keys {
		if !e.cancelled {
			e.handler(ev)
		}
	}
	return ev.DefaultPrevented()
}

// DispatchClipboard delivers ev to every clipboard handler, skipping those
// cancelled during dispatch.
// Returns true if a handler prevented the default.
func (b *EventBus) DispatchClipboard(ev *ClipboardEvent) bool {
	for _, e := range b.clipboard {
		if !e.cancelled {
			e.handler(ev)
		}
	}
	return ev.DefaultPrevented()
}

// KeyHandlers returns the number of key subscriptions.
func (b *EventBus) KeyHandlers() int { return len(b.keys) }

// ClipboardHandlers returns the number of clipboard subscriptions.
func (b *EventBus) ClipboardHandlers() int { return len(b.clipboard) }
