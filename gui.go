package pixelui

import (
	"log/slog"
	"slices"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Widget is anything a Scene can draw and tear down.
type Widget interface {
	Draw(s Surface)
	Destroy()
}

// Scene hosts widgets: it owns the EventBus they listen to, feeds them key
// events from the host, bridges the clipboard, and draws them every frame.
type Scene struct {
	renderer  Renderer
	fonts     FontProvider
	style     Style
	bus       *EventBus
	clipboard ClipboardProvider
	logger    *slog.Logger
	widgets   []Widget
}

// SceneOption configures a Scene instance.
type SceneOption func(*Scene)

// WithSceneStyle sets the style new widgets take their defaults from.
func WithSceneStyle(style Style) SceneOption {
	return func(s *Scene) { s.style = style }
}

// WithFontProvider sets where widgets look their fonts up.
func WithFontProvider(fp FontProvider) SceneOption {
	return func(s *Scene) { s.fonts = fp }
}

// WithClipboard sets the clipboard Ctrl+C, Ctrl+X and Ctrl+V operate on.
func WithClipboard(cp ClipboardProvider) SceneOption {
	return func(s *Scene) { s.clipboard = cp }
}

// WithSceneLogger sets the logger for the scene and its widgets.
func WithSceneLogger(l *slog.Logger) SceneOption {
	return func(s *Scene) { s.logger = l }
}

// NewScene creates a scene drawing through renderer.
//
// Without options the scene uses DefaultStyle, a process-local clipboard and
// a font registry holding BasicFont under DefaultFontName.
func NewScene(renderer Renderer, opts ...SceneOption) *Scene {
	s := &Scene{
		renderer:  renderer,
		style:     DefaultStyle(),
		bus:       NewEventBus(),
		clipboard: &MemoryClipboard{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.fonts == nil {
		reg := NewFontRegistry()
		reg.Register(DefaultFontName, BasicFont())
		s.fonts = reg
	}
	s.logger = loggerOrDiscard(s.logger)
	return s
}

// Events returns the bus widgets of this scene listen to.
func (s *Scene) Events() *EventBus { return s.bus }

// Style returns the current style.
func (s *Scene) Style() Style { return s.style }

// SetStyle sets the style used by widgets created afterwards.
func (s *Scene) SetStyle(style Style) { s.style = style }

// Fonts returns the scene's font provider.
func (s *Scene) Fonts() FontProvider { return s.fonts }

// Widgets returns the widgets in draw order.
func (s *Scene) Widgets() []Widget { return s.widgets }

// widgetOptions puts the scene defaults in front of opts so that explicit
// options win.
func (s *Scene) widgetOptions(opts []Option) []Option {
	return append([]Option{WithStyle(s.style), WithLogger(s.logger)}, opts...)
}

// NewTextInput creates a TextInput listening to the scene and adds it.
func (s *Scene) NewTextInput(opts ...Option) (*TextInput, error) {
	t, err := NewTextInput(s.bus, s.fonts, s.widgetOptions(opts)...)
	if err != nil {
		return nil, err
	}
	s.widgets = append(s.widgets, t)
	return t, nil
}

// NewMenu creates a Menu listening to the scene and adds it.
func (s *Scene) NewMenu(opts ...Option) (*Menu, error) {
	m, err := NewMenu(s.bus, s.fonts, s.widgetOptions(opts)...)
	if err != nil {
		return nil, err
	}
	s.widgets = append(s.widgets, m)
	return m, nil
}

// Remove destroys w and stops drawing it.
func (s *Scene) Remove(w Widget) {
	i := slices.Index(s.widgets, w)
	if i < 0 {
		return
	}
	s.widgets = slices.Delete(s.widgets, i, i+1)
	w.Destroy()
}

// HandleKey delivers a key event to the widgets.
//
// A Ctrl+C, Ctrl+X or Ctrl+V that no widget consumed becomes a clipboard
// event: copy and cut write the data a widget provided to the clipboard,
// paste delivers the clipboard text. Returns true if the event was consumed
// either way.
func (s *Scene) HandleKey(ev *KeyEvent) bool {
	if s.bus.DispatchKey(ev) {
		return true
	}
	if !ev.Ctrl {
		return false
	}

	var kind ClipboardKind
	switch ev.Key {
	case KeyC:
		kind = ClipboardCopy
	case KeyX:
		kind = ClipboardCut
	case KeyV:
		kind = ClipboardPaste
	default:
		return false
	}
	return s.HandleClipboard(kind)
}

// HandleClipboard delivers a clipboard event of the given kind to the
// widgets and performs the clipboard side of it.
func (s *Scene) HandleClipboard(kind ClipboardKind) bool {
	ev := &ClipboardEvent{Kind: kind}
	if kind == ClipboardPaste {
		ev.Data = s.clipboard.GetText()
	}
	if !s.bus.DispatchClipboard(ev) {
		return false
	}
	if kind != ClipboardPaste {
		s.clipboard.SetText(ev.Data)
	}
	s.logger.Debug("clipboard", "op", kind.String(), "len", len(ev.Data))
	return true
}

// Render draws every widget into a pooled draw list and hands it to the
// renderer.
func (s *Scene) Render() error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	s.Draw(dl)
	dl.Finalize()
	if s.renderer == nil {
		return nil
	}
	return s.renderer.Render(dl)
}

// Draw draws every widget onto surface in the order they were added.
func (s *Scene) Draw(surface Surface) {
	for _, w := range s.widgets {
		w.Draw(surface)
	}
}

// Resize notifies the renderer of a display size change.
func (s *Scene) Resize(width, height int) {
	if s.renderer != nil {
		s.renderer.Resize(width, height)
	}
}

// Close destroys every widget.
func (s *Scene) Close() {
	for _, w := range s.widgets {
		w.Destroy()
	}
	s.widgets = nil
}
