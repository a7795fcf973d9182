package pixelui

import (
	"fmt"
	"log/slog"
)

// TextInput is an editable text field.
//
// It owns a TextBuffer and subscribes to an InputSource for key and
// clipboard events. Every event it handles updates the buffer, lays the
// text out again and scrolls the view so the caret stays visible.
//
// Keyboard:
//   - Printable characters in the allowed set are inserted
//   - Backspace deletes the selection or the character before the caret
//   - Enter inserts a line break when the allowed set contains '\n'
//   - Left/Right move the caret, Up/Down move between lines
//   - Shift with a navigation key extends the selection
//   - Tab inserts the configured tab string
//   - Ctrl+A selects all, Ctrl+Z undoes, Ctrl+Y redoes
//
// Other Ctrl chords are left to the host, which turns Ctrl+C, Ctrl+X and
// Ctrl+V into clipboard events.
type TextInput struct {
	cfg  TextInputConfig
	face *Face
	buf  *TextBuffer
	pos  Vec2

	layout *TextLayout
	view   TextView
	tints  []textTint

	visible bool
	active  bool

	subs   []*Subscription
	logger *slog.Logger
}

type textTint struct {
	start, end int
	color      uint32
}

// NewTextInput creates a text input listening to src.
// The font is looked up in fonts by the configured name.
func NewTextInput(src InputSource, fonts FontProvider, opts ...Option) (*TextInput, error) {
	cfg, err := resolveTextInputConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("text input: %w", err)
	}
	f, err := fonts.Font(cfg.Font)
	if err != nil {
		return nil, fmt.Errorf("text input: %w", err)
	}

	t := &TextInput{
		cfg:     cfg,
		face:    &Face{Font: f, Size: cfg.FontSize, LineSpacing: cfg.LineSpacing},
		buf:     NewTextBuffer(NewCharSet(cfg.AllowedCharacters), cfg.CharacterLimit, cfg.HistoryLimit),
		pos:     cfg.Position,
		view:    TextView{Origin: Vec2{X: cfg.Padding, Y: cfg.Padding}},
		visible: true,
		active:  true,
		logger:  loggerOrDiscard(ApplyAndGet(opts, OptLogger)),
	}
	if cfg.Text != "" {
		t.buf.SetText(cfg.Text)
	}
	t.refresh()

	t.subs = append(t.subs,
		src.OnKey(t.HandleKey),
		src.OnClipboard(t.HandleClipboard),
	)
	t.logger.Debug("text input created",
		"font", cfg.Font, "size", cfg.FontSize,
		"width", cfg.Width, "height", cfg.Height,
		"multiline", t.buf.Multiline())
	return t, nil
}

// Config returns the resolved configuration.
func (t *TextInput) Config() TextInputConfig { return t.cfg }

// Text returns the current content.
func (t *TextInput) Text() string { return t.buf.Text() }

// SetText replaces the content. It is not an edit: only the first text set
// on an input without history is recorded for undo.
func (t *TextInput) SetText(s string) {
	if !t.buf.SetText(s) {
		t.logger.Debug("text rejected", "reason", "character limit", "limit", t.buf.CharacterLimit())
	}
	t.refresh()
}

// Cursor returns the caret position in runes.
func (t *TextInput) Cursor() int { return t.buf.Cursor() }

// SelectionStart returns the lower end of the selection.
func (t *TextInput) SelectionStart() int { return t.buf.SelectionStart() }

// SelectionEnd returns the upper end of the selection.
func (t *TextInput) SelectionEnd() int { return t.buf.SelectionEnd() }

// SetSelection places the caret and the selection anchor.
func (t *TextInput) SetSelection(cursor, anchor int) {
	t.buf.SetCursor(cursor, anchor)
	t.refresh()
}

// Buffer returns the underlying text buffer.
func (t *TextInput) Buffer() *TextBuffer { return t.buf }

// Layout returns the current text layout.
func (t *TextInput) Layout() *TextLayout { return t.layout }

// View returns the current scroll state.
func (t *TextInput) View() TextView { return t.view }

// Position returns the top-left corner of the input.
func (t *TextInput) Position() Vec2 { return t.pos }

// SetPosition moves the input.
func (t *TextInput) SetPosition(x, y float32) { t.pos = Vec2{X: x, Y: y} }

// Bounds returns the outer rectangle of the input.
func (t *TextInput) Bounds() Rect {
	return Rect{X: t.pos.X, Y: t.pos.Y, W: t.cfg.Width, H: t.cfg.Height}
}

// Visible returns true if the input is drawn.
func (t *TextInput) Visible() bool { return t.visible }

// SetVisible shows or hides the input. A hidden input ignores events.
func (t *TextInput) SetVisible(v bool) { t.visible = v }

// Active returns true if the input takes events.
func (t *TextInput) Active() bool { return t.active }

// SetActive enables or disables event handling.
func (t *TextInput) SetActive(a bool) { t.active = a }

// Disabled returns true if the input ignores events.
func (t *TextInput) Disabled() bool { return !t.visible || !t.active }

// ClearHistory drops every undo snapshot.
func (t *TextInput) ClearHistory() { t.buf.ClearHistory() }

// TintText draws the characters in [start, end) with color until the next
// refresh.
func (t *TextInput) TintText(start, end int, color uint32) {
	t.tints = append(t.tints, textTint{start: start, end: end, color: color})
}

// HandleKey applies a key event. Events the input acts on have their
// default prevented.
func (t *TextInput) HandleKey(ev *KeyEvent) {
	if t.Disabled() {
		return
	}
	if t.handleKey(ev) {
		ev.PreventDefault()
	}
	t.refresh()
}

func (t *TextInput) handleKey(ev *KeyEvent) bool {
	if ev.Ctrl {
		switch ev.Key {
		case KeyA:
			t.buf.SelectAll()
		case KeyZ:
			t.buf.Undo()
		case KeyY:
			t.buf.Redo()
		default:
			return false
		}
		return true
	}

	switch ev.Key {
	case KeyBackspace:
		t.buf.Backspace()
	case KeyEnter:
		if !t.buf.Multiline() {
			return false
		}
		t.insert("\n")
	case KeyLeft:
		t.buf.MoveCaret(-1, ev.Shift)
	case KeyRight:
		t.buf.MoveCaret(1, ev.Shift)
	case KeyUp:
		t.buf.SeekLine(false, ev.Shift)
	case KeyDown:
		t.buf.SeekLine(true, ev.Shift)
	case KeyTab:
		t.insert(t.cfg.Tab)
	case KeyChar, KeySpace:
		text := ev.Text
		if ev.Key == KeySpace && text == "" {
			text = " "
		}
		if !t.buf.Allowed().ContainsAll(text) {
			return false
		}
		t.insert(text)
	default:
		return false
	}
	return true
}

// HandleClipboard applies a clipboard event. Copy and cut put the selected
// text in the event's Data; paste inserts it.
func (t *TextInput) HandleClipboard(ev *ClipboardEvent) {
	if t.Disabled() {
		return
	}
	switch ev.Kind {
	case ClipboardCopy:
		ev.Data = t.buf.SelectedText()
	case ClipboardCut:
		ev.Data = t.buf.SelectedText()
		t.buf.ReplaceRange("", t.buf.SelectionStart(), t.buf.SelectionEnd(), true)
	case ClipboardPaste:
		t.insert(ev.Data)
	}
	ev.PreventDefault()
	t.refresh()
}

func (t *TextInput) insert(text string) {
	if !t.buf.Insert(text) {
		t.logger.Debug("edit rejected",
			"reason", "character limit",
			"limit", t.buf.CharacterLimit(),
			"len", t.buf.Len())
	}
}

// refresh lays the text out again, scrolls the caret into view and runs
// the OnRefresh callback.
func (t *TextInput) refresh() {
	t.layout = NewTextLayout(t.face, t.buf.content)
	t.view.Follow(t.layout, t.buf.Cursor(), Vec2{X: t.cfg.Width, Y: t.cfg.Height}, t.cfg.Padding)
	t.tints = t.tints[:0]
	t.cfg.OnRefresh()
}

// Draw renders the input: the frame, the selection behind the text, then
// the text clipped to the padded inner area.
func (t *TextInput) Draw(s Surface) {
	if !t.visible {
		return
	}
	x, y := t.pos.X, t.pos.Y
	w, h := t.cfg.Width, t.cfg.Height
	b, p := t.cfg.BorderSize, t.cfg.Padding

	s.AddRect(x, y, w, h, t.cfg.BorderColor)
	s.AddRect(x+b, y+b, w-2*b, h-2*b, t.cfg.BackgroundColor)

	s.PushClipRect(x+p, y+p, x+w-p, y+h-p)
	defer s.PopClipRect()

	// Carets sit one pixel left of their layout position.
	origin := t.pos.Add(t.view.Origin)
	for _, r := range t.layout.SelectionRects(t.buf.SelectionStart(), t.buf.SelectionEnd()) {
		s.AddRect(origin.X+r.X-1, origin.Y+r.Y, r.W, r.H, t.cfg.SelectionColor)
	}

	from, to := t.layout.SelectedGlyphs(t.buf.SelectionStart(), t.buf.SelectionEnd())
	scale := t.face.Scale()
	rowH := t.layout.RowHeight()
	for _, g := range t.layout.Glyphs() {
		color := t.glyphColor(g, from, to)
		s.AddGlyph(t.face.Font, g.Rune, origin.X+g.X, origin.Y+float32(g.Row)*rowH, scale, color)
	}
}

func (t *TextInput) glyphColor(g Glyph, selFrom, selTo int) uint32 {
	color := t.cfg.TextColor
	if g.Index >= selFrom && g.Index < selTo {
		color = t.cfg.SelectedTextColor
	}
	for _, tint := range t.tints {
		from, to := t.layout.SelectedGlyphs(tint.start, tint.end)
		if g.Index >= from && g.Index < to {
			color = tint.color
		}
	}
	return color
}

// Destroy unsubscribes the input from its event source.
// It is safe to call more than once.
func (t *TextInput) Destroy() {
	if t.subs == nil {
		return
	}
	for _, sub := range t.subs {
		sub.Cancel()
	}
	t.subs = nil
	t.logger.Debug("text input destroyed")
}
