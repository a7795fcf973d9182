package pixelui_test

import (
	"github.com/go-theft-auto/pixelui"
)

type rectCall struct {
	X, Y, W, H float32
	Color      uint32
}

type glyphCall struct {
	Rune  rune
	X, Y  float32
	Color uint32
}

// recordingSurface keeps every draw call so tests can assert on what a
// widget drew.
type recordingSurface struct {
	rects  []rectCall
	glyphs []glyphCall
	clips  [][4]float32
	depth  int
}

func (s *recordingSurface) AddRect(x, y, w, h float32, color uint32) {
	s.rects = append(s.rects, rectCall{X: x, Y: y, W: w, H: h, Color: color})
}

func (s *recordingSurface) AddGlyph(f pixelui.Font, r rune, x, y, scale float32, color uint32) {
	s.glyphs = append(s.glyphs, glyphCall{Rune: r, X: x, Y: y, Color: color})
}

func (s *recordingSurface) PushClipRect(x1, y1, x2, y2 float32) {
	s.clips = append(s.clips, [4]float32{x1, y1, x2, y2})
	s.depth++
}

func (s *recordingSurface) PopClipRect() { s.depth-- }

func (s *recordingSurface) text() string {
	out := make([]rune, len(s.glyphs))
	for i, g := range s.glyphs {
		out[i] = g.Rune
	}
	return string(out)
}

// basicFonts registers the 7x13 font under the default name.
func basicFonts() *pixelui.FontRegistry {
	fonts := pixelui.NewFontRegistry()
	fonts.Register(pixelui.DefaultFontName, pixelui.BasicFont())
	return fonts
}

func typeText(bus *pixelui.EventBus, text string) {
	for _, r := range text {
		bus.DispatchKey(pixelui.CharEvent(r))
	}
}

func press(bus *pixelui.EventBus, key pixelui.Key) bool {
	return bus.DispatchKey(&pixelui.KeyEvent{Key: key})
}

func ctrl(key pixelui.Key) *pixelui.KeyEvent {
	return &pixelui.KeyEvent{Key: key, Ctrl: true}
}
