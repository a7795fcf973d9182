package pixelui

import (
	"fmt"
	"log/slog"
	"slices"
)

// Menu is a vertical list of buttons with one selected entry.
//
// Up and Down move the selection. The list scrolls so the selected button
// is always fully inside the menu's viewport. Labels too wide for a button
// are shortened with an ellipsis.
type Menu struct {
	cfg     MenuConfig
	face    *Face
	buttons []menuButton

	selection int
	scroll    float32 // How far the list is scrolled down, >= 0

	visible bool
	active  bool

	subs   []*Subscription
	logger *slog.Logger
}

type menuButton struct {
	text  string // Label as given
	label string // Label as drawn
}

// NewMenu creates a menu listening to src for Up/Down keys.
// The font is looked up in fonts by the configured name.
func NewMenu(src InputSource, fonts FontProvider, opts ...Option) (*Menu, error) {
	cfg, err := resolveMenuConfig(opts)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}
	f, err := fonts.Font(cfg.Font)
	if err != nil {
		return nil, fmt.Errorf("menu: %w", err)
	}

	m := &Menu{
		cfg:     cfg,
		face:    NewFace(f, cfg.FontSize),
		visible: true,
		active:  true,
		logger:  loggerOrDiscard(ApplyAndGet(opts, OptLogger)),
	}
	m.SetOptions(cfg.Options)
	m.subs = append(m.subs, src.OnKey(m.HandleKey))
	m.logger.Debug("menu created", "options", len(m.buttons), "width", cfg.Width, "height", cfg.Height)
	return m, nil
}

// Config returns the resolved configuration.
func (m *Menu) Config() MenuConfig {
	cfg := m.cfg
	cfg.Options = slices.Clone(cfg.Options)
	return cfg
}

// SetOptions replaces the buttons and selects the first one.
func (m *Menu) SetOptions(labels []string) {
	maxWidth := m.cfg.Width - 2*m.cfg.ButtonPadding
	m.buttons = make([]menuButton, len(labels))
	for i, text := range labels {
		m.buttons[i] = menuButton{
			text:  text,
			label: TruncateText(m.face, text, maxWidth),
		}
	}
	m.scroll = 0
	m.SetSelection(0)
}

// Options returns the labels as given to SetOptions.
func (m *Menu) Options() []string {
	out := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b.text
	}
	return out
}

// Labels returns the labels as drawn.
func (m *Menu) Labels() []string {
	out := make([]string, len(m.buttons))
	for i, b := range m.buttons {
		out[i] = b.label
	}
	return out
}

// Len returns the number of buttons.
func (m *Menu) Len() int { return len(m.buttons) }

// Selection returns the index of the selected button.
func (m *Menu) Selection() int { return m.selection }

// Selected returns the label of the selected button, or "" if the menu is
// empty.
func (m *Menu) Selected() string {
	if len(m.buttons) == 0 {
		return ""
	}
	return m.buttons[m.selection].text
}

// Offset returns how far the list is moved from its resting position.
// It is zero or negative.
func (m *Menu) Offset() float32 { return -m.scroll }

// ButtonY returns the top of button i relative to the menu, after scrolling.
func (m *Menu) ButtonY(i int) float32 {
	return m.clipper().ItemY(i, 0, m.scroll)
}

func (m *Menu) clipper() *ListClipper {
	return NewListClipper(len(m.buttons), m.cfg.ButtonHeight,
		m.cfg.ButtonHeight+m.cfg.ButtonSpacing, m.cfg.Height, m.scroll)
}

// SetSelection selects the button at index, clamped to the valid range,
// and scrolls it into view.
func (m *Menu) SetSelection(index int) {
	if len(m.buttons) == 0 {
		m.selection = 0
		return
	}
	m.selection = clampi(index, 0, len(m.buttons)-1)
	m.scroll = m.clipper().ScrollToItem(m.selection, m.scroll, m.cfg.Height)
}

// Position returns the top-left corner of the menu.
func (m *Menu) Position() Vec2 { return m.cfg.Position }

// Bounds returns the viewport of the menu.
func (m *Menu) Bounds() Rect {
	return Rect{X: m.cfg.Position.X, Y: m.cfg.Position.Y, W: m.cfg.Width, H: m.cfg.Height}
}

// Visible returns true if the menu is drawn.
func (m *Menu) Visible() bool { return m.visible }

// SetVisible shows or hides the menu. A hidden menu ignores keys.
func (m *Menu) SetVisible(v bool) { m.visible = v }

// Active returns true if the menu takes keys.
func (m *Menu) Active() bool { return m.active }

// SetActive enables or disables key handling.
func (m *Menu) SetActive(a bool) { m.active = a }

// Enabled returns true if the menu reacts to keys.
func (m *Menu) Enabled() bool { return m.visible && m.active }

// HandleKey moves the selection on Up and Down.
func (m *Menu) HandleKey(ev *KeyEvent) {
	if !m.Enabled() {
		return
	}
	switch ev.Key {
	case KeyUp:
		m.SetSelection(m.selection - 1)
	case KeyDown:
		m.SetSelection(m.selection + 1)
	default:
		return
	}
	ev.PreventDefault()
}

// Draw renders the buttons clipped to the menu's viewport.
func (m *Menu) Draw(s Surface) {
	if !m.visible {
		return
	}
	x, y := m.cfg.Position.X, m.cfg.Position.Y
	w, bh := m.cfg.Width, m.cfg.ButtonHeight

	s.PushClipRect(x, y, x+w, y+m.cfg.Height)
	defer s.PopClipRect()

	labelY := (bh - m.face.LineHeight()) / 2
	c := m.clipper()
	for i := c.StartIdx; i < c.EndIdx; i++ {
		by := c.ItemY(i, y, m.scroll)
		bg, fg := m.cfg.BackgroundColor, m.cfg.TextColor
		if i == m.selection {
			bg, fg = m.cfg.HighlightBgColor, m.cfg.HighlightTextColor
		}
		s.AddRect(x, by, w, bh, m.cfg.BorderColor)
		s.AddRect(x+1, by+1, w-2, bh-2, bg)
		DrawText(s, m.face, x+m.cfg.ButtonPadding, by+labelY, m.buttons[i].label, fg)
	}
}

// Destroy unsubscribes the menu from its event source.
// It is safe to call more than once.
func (m *Menu) Destroy() {
	if m.subs == nil {
		return
	}
	for _, sub := range m.subs {
		sub.Cancel()
	}
	m.subs = nil
	m.logger.Debug("menu destroyed")
}
