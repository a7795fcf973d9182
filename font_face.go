package pixelui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16-column grid of equal cells.
const (
	atlasFirstRune = 32
	atlasLastRune  = 126
	atlasColumns   = 16
)

// FaceFont adapts a golang.org/x/image/font.Face to the Font interface.
// Metrics come straight from the face; glyphs are rasterized once into an
// alpha atlas that a backend uploads and reports back with SetTextureID.
type FaceFont struct {
	face    font.Face
	size    float32
	lineH   float32
	ascent  int
	cellW   int
	cellH   int
	atlas   *image.Alpha
	texture uint32
}

// NewFaceFont creates a font from face and rasterizes its ASCII atlas.
func NewFaceFont(face font.Face) *FaceFont {
	m := face.Metrics()
	f := &FaceFont{
		face:   face,
		size:   fixedToFloat(m.Ascent + m.Descent),
		lineH:  fixedToFloat(m.Height),
		ascent: m.Ascent.Ceil(),
		cellH:  (m.Ascent + m.Descent).Ceil(),
	}

	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		if adv, ok := face.GlyphAdvance(r); ok && adv.Ceil() > f.cellW {
			f.cellW = adv.Ceil()
		}
	}
	if f.cellW == 0 {
		f.cellW = 1
	}
	if f.cellH == 0 {
		f.cellH = 1
	}

	rows := (atlasLastRune - atlasFirstRune + atlasColumns) / atlasColumns
	f.atlas = image.NewAlpha(image.Rect(0, 0, atlasColumns*f.cellW, rows*f.cellH))
	d := font.Drawer{Dst: f.atlas, Src: image.Opaque, Face: face}
	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		col, row := atlasCell(r)
		d.Dot = fixed.P(col*f.cellW, row*f.cellH+f.ascent)
		d.DrawString(string(r))
	}
	return f
}

// BasicFont returns the 7x13 X11 misc-fixed face as a Font.
func BasicFont() *FaceFont {
	return NewFaceFont(basicfont.Face7x13)
}

// Size implements Font.
func (f *FaceFont) Size() float32 { return f.size }

// LineHeight implements Font.
func (f *FaceFont) LineHeight() float32 { return f.lineH }

// Advance implements Font.
func (f *FaceFont) Advance(r rune) (float32, bool) {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return 0, false
	}
	return fixedToFloat(adv), true
}

// Kern implements Font.
func (f *FaceFont) Kern(r0, r1 rune) float32 {
	return fixedToFloat(f.face.Kern(r0, r1))
}

// TextureID implements Font.
func (f *FaceFont) TextureID() uint32 { return f.texture }

// SetTextureID records the texture a backend uploaded Atlas into.
func (f *FaceFont) SetTextureID(id uint32) { f.texture = id }

// Atlas returns the rasterized glyph atlas.
func (f *FaceFont) Atlas() *image.Alpha { return f.atlas }

// GlyphQuad implements Font.
// Runes outside the atlas are drawn as '?'.
func (f *FaceFont) GlyphQuad(r rune, x, y, scale float32) (GlyphQuad, bool) {
	adv, ok := f.Advance(r)
	if !ok {
		return GlyphQuad{}, false
	}
	r = unicodeFallback(r)
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	col, row := atlasCell(r)
	b := f.atlas.Bounds()
	tw, th := float32(b.Dx()), float32(b.Dy())
	cw, ch := float32(f.cellW), float32(f.cellH)
	w := minf(adv, cw)
	return GlyphQuad{
		X0: x, Y0: y,
		X1: x + w*scale, Y1: y + ch*scale,
		U0: float32(col) * cw / tw, V0: float32(row) * ch / th,
		U1: (float32(col)*cw + w) / tw, V1: float32(row+1) * ch / th,
	}, true
}

func atlasCell(r rune) (col, row int) {
	idx := int(r - atlasFirstRune)
	return idx % atlasColumns, idx / atlasColumns
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
