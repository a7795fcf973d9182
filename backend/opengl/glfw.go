package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/pixelui"
)

// KeyHandler receives translated key events. *pixelui.Scene implements it.
type KeyHandler interface {
	HandleKey(ev *pixelui.KeyEvent) bool
}

// GLFWInput turns GLFW key and character callbacks into pixelui key events.
//
// Printable characters come from the character callback so keyboard layouts
// and Shift are respected; the key callback only reports keys that type
// nothing, plus letter keys held with Ctrl for shortcuts.
type GLFWInput struct {
	window  *glfw.Window
	handler KeyHandler
}

// NewGLFWInput installs key and character callbacks on window that forward
// to handler.
func NewGLFWInput(window *glfw.Window, handler KeyHandler) *GLFWInput {
	in := &GLFWInput{window: window, handler: handler}
	window.SetKeyCallback(in.keyCallback)
	window.SetCharCallback(in.charCallback)
	return in
}

// Detach removes the callbacks.
func (in *GLFWInput) Detach() {
	in.window.SetKeyCallback(nil)
	in.window.SetCharCallback(nil)
}

func (in *GLFWInput) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToKey(key)
	if k == pixelui.KeyNone {
		return
	}
	ctrl := mods&(glfw.ModControl|glfw.ModSuper) != 0
	if typesText(k) && !ctrl {
		return
	}
	in.handler.HandleKey(&pixelui.KeyEvent{
		Key:   k,
		Ctrl:  ctrl,
		Shift: mods&glfw.ModShift != 0,
	})
}

func (in *GLFWInput) charCallback(w *glfw.Window, char rune) {
	in.handler.HandleKey(pixelui.CharEvent(char))
}

// typesText reports keys that also produce a character callback.
func typesText(k pixelui.Key) bool {
	switch k {
	case pixelui.KeySpace, pixelui.KeyA, pixelui.KeyC, pixelui.KeyV,
		pixelui.KeyX, pixelui.KeyY, pixelui.KeyZ:
		return true
	}
	return false
}

// glfwKeyToKey maps GLFW keys to pixelui keys.
func glfwKeyToKey(key glfw.Key) pixelui.Key {
	switch key {
	case glfw.KeyTab:
		return pixelui.KeyTab
	case glfw.KeyLeft:
		return pixelui.KeyLeft
	case glfw.KeyRight:
		return pixelui.KeyRight
	case glfw.KeyUp:
		return pixelui.KeyUp
	case glfw.KeyDown:
		return pixelui.KeyDown
	case glfw.KeyPageUp:
		return pixelui.KeyPageUp
	case glfw.KeyPageDown:
		return pixelui.KeyPageDown
	case glfw.KeyHome:
		return pixelui.KeyHome
	case glfw.KeyEnd:
		return pixelui.KeyEnd
	case glfw.KeyInsert:
		return pixelui.KeyInsert
	case glfw.KeyDelete:
		return pixelui.KeyDelete
	case glfw.KeyBackspace:
		return pixelui.KeyBackspace
	case glfw.KeySpace:
		return pixelui.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return pixelui.KeyEnter
	case glfw.KeyEscape:
		return pixelui.KeyEscape
	case glfw.KeyA:
		return pixelui.KeyA
	case glfw.KeyC:
		return pixelui.KeyC
	case glfw.KeyV:
		return pixelui.KeyV
	case glfw.KeyX:
		return pixelui.KeyX
	case glfw.KeyY:
		return pixelui.KeyY
	case glfw.KeyZ:
		return pixelui.KeyZ
	default:
		return pixelui.KeyNone
	}
}

// GLFWClipboard is a pixelui.ClipboardProvider backed by the GLFW window.
type GLFWClipboard struct {
	Window *glfw.Window
}

// GetText implements pixelui.ClipboardProvider.
func (c GLFWClipboard) GetText() string {
	return c.Window.GetClipboardString()
}

// SetText implements pixelui.ClipboardProvider.
func (c GLFWClipboard) SetText(text string) {
	c.Window.SetClipboardString(text)
}

var _ pixelui.ClipboardProvider = GLFWClipboard{}
