package pixelui

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrFontNotFound is returned when a FontProvider has no font for a name.
var ErrFontNotFound = errors.New("font not found")

// FontProvider resolves font names to loaded fonts.
// Widgets look their font up once, at construction.
//
// Example usage:
//
//	fonts := pixelui.NewFontRegistry()
//	fonts.Register("retro", pixelui.BasicFont())
//
//	scene := pixelui.NewScene(renderer, pixelui.WithFontProvider(fonts))
type FontProvider interface {
	// Font returns the font registered under name.
	// Returns an error wrapping ErrFontNotFound if there is none.
	Font(name string) (Font, error)
}

// Font is a bitmap font as seen by the widgets: metrics at the size the font
// was designed for, plus the data needed to draw its glyphs.
//
// All metrics are expressed in pixels at Size(); callers scale them through
// a Face.
type Font interface {
	// Size returns the pixel size the font's metrics are expressed in.
	Size() float32

	// LineHeight returns the declared distance between baselines at Size().
	LineHeight() float32

	// Advance returns the horizontal advance for r at Size().
	// ok is false if the font has no glyph for r.
	Advance(r rune) (adv float32, ok bool)

	// Kern returns the kerning adjustment between r0 and r1 at Size().
	Kern(r0, r1 rune) float32

	// TextureID returns the atlas texture for this font (0 until uploaded).
	TextureID() uint32

	// GlyphQuad returns the screen and texture coordinates for drawing r with
	// its top-left corner at (x, y), scaled by scale.
	GlyphQuad(r rune, x, y, scale float32) (GlyphQuad, bool)
}

// FontRegistry is a simple in-memory FontProvider.
type FontRegistry struct {
	fonts map[string]Font
}

// NewFontRegistry creates an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{fonts: make(map[string]Font)}
}

// Register adds or replaces the font stored under name.
func (r *FontRegistry) Register(name string, f Font) {
	r.fonts[name] = f
}

// Font implements FontProvider.
func (r *FontRegistry) Font(name string) (Font, error) {
	f, ok := r.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return f, nil
}

// Names returns the registered font names in sorted order.
func (r *FontRegistry) Names() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineMetrics describes the vertical rhythm of a Face.
type LineMetrics struct {
	// Scale converts font units (pixels at Font.Size) to screen pixels.
	Scale float32
	// Spacing is the extra space between lines in font units, including the
	// correction that makes RowHeight a whole number of pixels.
	Spacing float32
	// RowHeight is the distance between two rows in whole pixels.
	RowHeight float32
}

// Face is a Font drawn at a particular size.
type Face struct {
	Font Font
	// Size is the requested pixel size.
	Size float32
	// LineSpacing is extra space between lines, in font units.
	LineSpacing float32
}

// NewFace creates a face for f at the given size.
func NewFace(f Font, size float32) *Face {
	return &Face{Font: f, Size: size}
}

// Scale returns the factor between font units and screen pixels.
func (fc *Face) Scale() float32 {
	native := fc.Font.Size()
	if native <= 0 || fc.Size <= 0 {
		return 1
	}
	return fc.Size / native
}

// Lines returns the line metrics for this face.
//
// Scaling a line height by a fractional factor produces fractional rows, which
// would put every glyph of a later row on a half pixel. The row height is
// rounded up to a whole pixel and the difference is folded into Spacing, so
// row offsets stay exact for any number of rows.
func (fc *Face) Lines() LineMetrics {
	scale := fc.Scale()
	raw := (fc.Font.LineHeight() + fc.LineSpacing) * scale
	row := float32(math.Ceil(float64(raw)))
	return LineMetrics{
		Scale:     scale,
		Spacing:   fc.LineSpacing + (row-raw)/scale,
		RowHeight: row,
	}
}

// LineHeight returns the row height in pixels.
func (fc *Face) LineHeight() float32 {
	return fc.Lines().RowHeight
}

// MeasureText returns the width of the widest line of text in pixels.
// Runes the font has no glyph for take no space.
func (fc *Face) MeasureText(text string) float32 {
	scale := fc.Scale()
	var widest, pen float32
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			widest = maxf(widest, pen)
			pen = 0
			prev = -1
			continue
		}
		adv, ok := fc.Font.Advance(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			pen += fc.Font.Kern(prev, r) * scale
		}
		pen += adv * scale
		prev = r
	}
	return maxf(widest, pen)
}
