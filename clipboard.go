package pixelui

import (
	"log/slog"

	"github.com/atotto/clipboard"
)

// ClipboardProvider abstracts system clipboard access.
// A Scene uses it to turn Ctrl+C, Ctrl+X and Ctrl+V into clipboard events.
//
// The OpenGL backend provides one backed by the GLFW window; SystemClipboard
// works without a window.
type ClipboardProvider interface {
	// GetText retrieves text from the clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the clipboard.
	SetText(text string)
}

// MemoryClipboard is a process-local clipboard.
type MemoryClipboard struct {
	text string
}

// GetText implements ClipboardProvider.
func (c *MemoryClipboard) GetText() string { return c.text }

// SetText implements ClipboardProvider.
func (c *MemoryClipboard) SetText(text string) { c.text = text }

// SystemClipboard uses the operating system clipboard through
// github.com/atotto/clipboard. Failures are logged and otherwise ignored.
type SystemClipboard struct {
	Logger *slog.Logger
}

// GetText implements ClipboardProvider.
func (c SystemClipboard) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger().Warn("clipboard read failed", "error", err)
		return ""
	}
	return text
}

// SetText implements ClipboardProvider.
func (c SystemClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		c.logger().Warn("clipboard write failed", "error", err)
	}
}

// Available returns false on platforms where the system clipboard cannot be
// reached (for example Linux without xclip, xsel or wl-clipboard).
func (c SystemClipboard) Available() bool { return !clipboard.Unsupported }

func (c SystemClipboard) logger() *slog.Logger { return loggerOrDiscard(c.Logger) }
