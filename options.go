package pixelui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// ErrInvalidConfig is returned when widget options cannot produce a usable
// configuration.
var ErrInvalidConfig = errors.New("invalid config")

// Option configures a widget at construction.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = pixelui.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	scene.NewTextInput(pixelui.WithOpt(OptCustomThing, value))
//
//	// Read back
//	value := pixelui.ApplyAndGet(opts, OptCustomThing)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// getOr returns the option value if it was set, fallback otherwise.
func getOr[T any](o options, key OptKey[T], fallback T) T {
	if HasOpt(o, key) {
		return GetOpt(o, key)
	}
	return fallback
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptStyle       = NewOptKey("style", DefaultStyle())
	OptLogger      = NewOptKey[*slog.Logger]("logger", nil)
	OptPosition    = NewOptKey("position", Vec2{})
	OptWidth       = NewOptKey[float32]("width", 100)
	OptHeight      = NewOptKey[float32]("height", 0) // Widget specific default
	OptFont        = NewOptKey("font", "")           // Empty uses Style.FontName
	OptFontSize    = NewOptKey[float32]("fontSize", 0)
	OptLineSpacing = NewOptKey[float32]("lineSpacing", 0)
)

// --- Color Options (unset uses the style) ---
var (
	OptBorderColor        = NewOptKey[uint32]("borderColor", 0)
	OptBgColor            = NewOptKey[uint32]("bgColor", 0)
	OptTextColor          = NewOptKey[uint32]("textColor", 0)
	OptSelectionColor     = NewOptKey[uint32]("selectionColor", 0)
	OptSelectedTextColor  = NewOptKey[uint32]("selectedTextColor", 0)
	OptHighlightBgColor   = NewOptKey[uint32]("highlightBgColor", 0)
	OptHighlightTextColor = NewOptKey[uint32]("highlightTextColor", 0)
)

// --- TextInput Options ---
var (
	OptText              = NewOptKey("text", "")
	OptAllowedCharacters = NewOptKey("allowedCharacters", TextSet1)
	OptTab               = NewOptKey("tab", "  ")
	OptCharacterLimit    = NewOptKey("characterLimit", 256)
	OptHistoryLimit      = NewOptKey("historyLimit", 256)
	OptOnRefresh         = NewOptKey[func()]("onRefresh", nil)
)

// --- Menu Options ---
var (
	OptMenuOptions   = NewOptKey[[]string]("menuOptions", nil)
	OptButtonHeight  = NewOptKey[float32]("buttonHeight", 0)
	OptButtonPadding = NewOptKey[float32]("buttonPadding", 0)
	OptButtonSpacing = NewOptKey[float32]("buttonSpacing", 0)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithStyle sets the theme the widget takes its defaults from.
func WithStyle(s Style) Option { return WithOpt(OptStyle, s) }

// WithLogger sets the logger the widget reports to.
func WithLogger(l *slog.Logger) Option { return WithOpt(OptLogger, l) }

// At places the widget's top-left corner.
func At(x, y float32) Option { return WithOpt(OptPosition, Vec2{X: x, Y: y}) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight sets a specific height for the widget.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithSize sets width and height.
func WithSize(width, height float32) Option {
	return func(o *options) {
		WithOpt(OptWidth, width)(o)
		WithOpt(OptHeight, height)(o)
	}
}

// WithFont selects the font by the name it is registered under.
func WithFont(name string) Option { return WithOpt(OptFont, name) }

// WithFontSize sets the pixel size text is drawn at.
func WithFontSize(size float32) Option { return WithOpt(OptFontSize, size) }

// WithLineSpacing adds space between lines, in font units.
func WithLineSpacing(spacing float32) Option { return WithOpt(OptLineSpacing, spacing) }

// WithText sets the initial text of a TextInput.
func WithText(text string) Option { return WithOpt(OptText, text) }

// WithAllowedCharacters restricts what a TextInput accepts.
// Include '\n' to make the input multi-line.
func WithAllowedCharacters(chars string) Option { return WithOpt(OptAllowedCharacters, chars) }

// Multiline makes a TextInput accept TextSet1 plus line breaks.
func Multiline() Option { return WithOpt(OptAllowedCharacters, MultilineTextSet) }

// WithTab sets the text inserted by the Tab key.
func WithTab(tab string) Option { return WithOpt(OptTab, tab) }

// WithCharacterLimit sets the maximum length of the text in runes.
func WithCharacterLimit(n int) Option { return WithOpt(OptCharacterLimit, n) }

// WithHistoryLimit sets how many undo snapshots are kept.
func WithHistoryLimit(n int) Option { return WithOpt(OptHistoryLimit, n) }

// OnRefresh registers a callback run after every state change of a TextInput.
func OnRefresh(fn func()) Option { return WithOpt(OptOnRefresh, fn) }

// WithMenuOptions sets the initial labels of a Menu.
func WithMenuOptions(labels ...string) Option { return WithOpt(OptMenuOptions, labels) }

// WithButtonHeight sets the height of menu buttons.
func WithButtonHeight(h float32) Option { return WithOpt(OptButtonHeight, h) }

// WithButtonPadding sets the horizontal label inset of menu buttons.
func WithButtonPadding(p float32) Option { return WithOpt(OptButtonPadding, p) }

// WithButtonSpacing sets the gap between menu buttons.
func WithButtonSpacing(s float32) Option { return WithOpt(OptButtonSpacing, s) }

// WithColors sets the normal colors of a widget.
func WithColors(border, bg, text uint32) Option {
	return func(o *options) {
		WithOpt(OptBorderColor, border)(o)
		WithOpt(OptBgColor, bg)(o)
		WithOpt(OptTextColor, text)(o)
	}
}

// WithHighlightColors sets the colors of selected text or the selected
// menu button.
func WithHighlightColors(bg, text uint32) Option {
	return func(o *options) {
		WithOpt(OptSelectionColor, bg)(o)
		WithOpt(OptSelectedTextColor, text)(o)
		WithOpt(OptHighlightBgColor, bg)(o)
		WithOpt(OptHighlightTextColor, text)(o)
	}
}

// =============================================================================
// Resolved configurations
// =============================================================================

// TextInputConfig is the frozen configuration of a TextInput.
type TextInputConfig struct {
	Position      Vec2
	Width, Height float32

	Font        string
	FontSize    float32
	LineSpacing float32

	BorderColor       uint32
	BackgroundColor   uint32
	TextColor         uint32
	SelectionColor    uint32
	SelectedTextColor uint32

	BorderSize float32
	Padding    float32

	Text              string
	AllowedCharacters string
	Tab               string
	CharacterLimit    int
	HistoryLimit      int
	OnRefresh         func()
}

func resolveTextInputConfig(opts []Option) (TextInputConfig, error) {
	o := applyOptions(opts)
	st := GetOpt(o, OptStyle)

	cfg := TextInputConfig{
		Position:    GetOpt(o, OptPosition),
		Width:       GetOpt(o, OptWidth),
		Height:      getOr(o, OptHeight, 10),
		Font:        getOr(o, OptFont, st.FontName),
		FontSize:    getOr(o, OptFontSize, st.FontSize),
		LineSpacing: GetOpt(o, OptLineSpacing),

		BorderColor:       getOr(o, OptBorderColor, st.InputBorderColor),
		BackgroundColor:   getOr(o, OptBgColor, st.InputBgColor),
		TextColor:         getOr(o, OptTextColor, st.TextColor),
		SelectionColor:    getOr(o, OptSelectionColor, st.SelectedBgColor),
		SelectedTextColor: getOr(o, OptSelectedTextColor, st.SelectedTextColor),

		BorderSize: st.BorderSize,
		Padding:    st.InputPadding,

		Text:              GetOpt(o, OptText),
		AllowedCharacters: GetOpt(o, OptAllowedCharacters),
		Tab:               GetOpt(o, OptTab),
		CharacterLimit:    GetOpt(o, OptCharacterLimit),
		HistoryLimit:      GetOpt(o, OptHistoryLimit),
		OnRefresh:         GetOpt(o, OptOnRefresh),
	}

	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return cfg, fmt.Errorf("%w: size %vx%v", ErrInvalidConfig, cfg.Width, cfg.Height)
	case cfg.FontSize <= 0:
		return cfg, fmt.Errorf("%w: font size %v", ErrInvalidConfig, cfg.FontSize)
	case cfg.CharacterLimit < 0:
		return cfg, fmt.Errorf("%w: character limit %d", ErrInvalidConfig, cfg.CharacterLimit)
	}
	if cfg.OnRefresh == nil {
		cfg.OnRefresh = func() {}
	}
	return cfg, nil
}

// MenuConfig is the frozen configuration of a Menu.
type MenuConfig struct {
	Position      Vec2
	Width, Height float32

	Font     string
	FontSize float32

	ButtonHeight  float32
	ButtonPadding float32
	ButtonSpacing float32

	BorderColor        uint32
	BackgroundColor    uint32
	TextColor          uint32
	HighlightBgColor   uint32
	HighlightTextColor uint32

	Options []string
}

func resolveMenuConfig(opts []Option) (MenuConfig, error) {
	o := applyOptions(opts)
	st := GetOpt(o, OptStyle)

	cfg := MenuConfig{
		Position: GetOpt(o, OptPosition),
		Width:    GetOpt(o, OptWidth),
		Height:   getOr(o, OptHeight, 100),
		Font:     getOr(o, OptFont, st.FontName),
		FontSize: getOr(o, OptFontSize, st.FontSize),

		ButtonHeight:  getOr(o, OptButtonHeight, st.ButtonHeight),
		ButtonPadding: getOr(o, OptButtonPadding, st.ButtonPadding),
		ButtonSpacing: getOr(o, OptButtonSpacing, st.ButtonSpacing),

		BorderColor:        getOr(o, OptBorderColor, st.BorderColor),
		BackgroundColor:    getOr(o, OptBgColor, st.ButtonColor),
		TextColor:          getOr(o, OptTextColor, st.TextColor),
		HighlightBgColor:   getOr(o, OptHighlightBgColor, st.HighlightBgColor),
		HighlightTextColor: getOr(o, OptHighlightTextColor, st.HighlightTextColor),

		Options: slices.Clone(GetOpt(o, OptMenuOptions)),
	}

	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return cfg, fmt.Errorf("%w: size %vx%v", ErrInvalidConfig, cfg.Width, cfg.Height)
	case cfg.FontSize <= 0:
		return cfg, fmt.Errorf("%w: font size %v", ErrInvalidConfig, cfg.FontSize)
	case cfg.ButtonHeight <= 0:
		return cfg, fmt.Errorf("%w: button height %v", ErrInvalidConfig, cfg.ButtonHeight)
	}
	return cfg, nil
}
