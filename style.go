package pixelui

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Style defines the visual appearance of the widgets.
// Widgets copy the values they need at construction; options passed to a
// widget override them.
type Style struct {
	// Text colors
	TextColor         uint32 `toml:"text_color"`
	SelectedTextColor uint32 `toml:"selected_text_color"`

	// Input colors
	InputBgColor     uint32 `toml:"input_bg_color"`
	InputBorderColor uint32 `toml:"input_border_color"`
	SelectedBgColor  uint32 `toml:"selected_bg_color"`

	// Menu colors
	ButtonColor        uint32 `toml:"button_color"`
	BorderColor        uint32 `toml:"border_color"`
	HighlightBgColor   uint32 `toml:"highlight_bg_color"`
	HighlightTextColor uint32 `toml:"highlight_text_color"`

	// Font
	FontName string  `toml:"font_name"` // Name looked up in the scene's FontProvider
	FontSize float32 `toml:"font_size"`

	// Sizing
	BorderSize    float32 `toml:"border_size"`
	InputPadding  float32 `toml:"input_padding"`
	ButtonHeight  float32 `toml:"button_height"`
	ButtonPadding float32 `toml:"button_padding"`
	ButtonSpacing float32 `toml:"button_spacing"`
}

// DefaultFontName is the font name the default styles use.
const DefaultFontName = "default"

// DefaultStyle returns the default style: dark text on a white field, the
// classic look of pixel art game menus.
func DefaultStyle() Style {
	return Style{
		TextColor:         Hex(0x000000),
		SelectedTextColor: Hex(0xffffff),

		InputBgColor:     Hex(0xffffff),
		InputBorderColor: Hex(0x000000),
		SelectedBgColor:  Hex(0x888888),

		ButtonColor:        Hex(0xffffff),
		BorderColor:        Hex(0x000000),
		HighlightBgColor:   Hex(0x888888),
		HighlightTextColor: Hex(0xffffff),

		FontName: DefaultFontName,
		FontSize: 16,

		BorderSize:    1,
		InputPadding:  2,
		ButtonHeight:  20,
		ButtonPadding: 3,
		ButtonSpacing: 5,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()

	// GTA uses white/yellow text on near black
	s.TextColor = ColorWhite
	s.SelectedTextColor = RGBA(255, 200, 0, 255)

	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputBorderColor = RGBA(0, 150, 200, 255)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)

	s.ButtonColor = RGBA(0, 0, 0, 220)
	s.BorderColor = RGBA(0, 100, 150, 255)
	s.HighlightBgColor = RGBA(0, 120, 180, 255)
	s.HighlightTextColor = RGBA(255, 200, 0, 255)

	s.ButtonHeight = 24
	s.ButtonPadding = 6
	s.ButtonSpacing = 2
	return s
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.TextColor = ColorWhite
	s.InputBgColor = RGBA(30, 30, 30, 255)
	s.InputBorderColor = RGBA(100, 100, 100, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255) // Royal blue
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.BorderColor = RGBA(80, 80, 80, 255)
	s.HighlightBgColor = RGBA(65, 105, 225, 255)
	return s
}

// LoadStyle decodes a TOML theme from r. Keys missing from the document keep
// their DefaultStyle value.
//
// Colors are packed 0xAABBGGRR integers, e.g.
//
//	text_color = 0xFF000000
//	font_size  = 13.0
func LoadStyle(r io.Reader) (Style, error) {
	s := DefaultStyle()
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Style{}, fmt.Errorf("decode style: %w", err)
	}
	if err := s.validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyleFile reads a TOML theme from path.
func LoadStyleFile(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, fmt.Errorf("open style: %w", err)
	}
	defer f.Close()
	return LoadStyle(f)
}

func (s Style) validate() error {
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: font_size must be positive, got %v", ErrInvalidConfig, s.FontSize)
	}
	if s.ButtonHeight <= 0 {
		return fmt.Errorf("%w: button_height must be positive, got %v", ErrInvalidConfig, s.ButtonHeight)
	}
	return nil
}
