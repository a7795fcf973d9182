package pixelui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFont is a monospace Font for tests: every rune in its set advances
// by adv at size.
type fixedFont struct {
	size, lineH, adv float32
	kern             float32
	runes            string
}

func (f fixedFont) Size() float32       { return f.size }
func (f fixedFont) LineHeight() float32 { return f.lineH }
func (f fixedFont) TextureID() uint32   { return 7 }

func (f fixedFont) Advance(r rune) (float32, bool) {
	for _, c := range f.runes {
		if c == r {
			return f.adv, true
		}
	}
	return 0, false
}

func (f fixedFont) Kern(r0, r1 rune) float32 { return f.kern }

func (f fixedFont) GlyphQuad(r rune, x, y, scale float32) (GlyphQuad, bool) {
	if _, ok := f.Advance(r); !ok {
		return GlyphQuad{}, false
	}
	return GlyphQuad{X0: x, Y0: y, X1: x + f.adv*scale, Y1: y + f.lineH*scale}, true
}

// basicFace is the 7x13 font at its native size: 7px advances, 13px rows.
func basicFace() *Face {
	return NewFace(BasicFont(), 13)
}

func layoutOf(text string) *TextLayout {
	return NewTextLayout(basicFace(), []rune(text))
}

func TestBasicFontMetrics(t *testing.T) {
	f := BasicFont()
	assert.Equal(t, float32(13), f.Size())
	assert.Equal(t, float32(13), f.LineHeight())

	adv, ok := f.Advance('a')
	require.True(t, ok)
	assert.Equal(t, float32(7), adv)

	_, ok = f.Advance('☃')
	assert.False(t, ok)
	_, ok = f.Advance('\n')
	assert.False(t, ok)

	b := f.Atlas().Bounds()
	assert.Equal(t, 16*7, b.Dx())
	assert.Equal(t, 6*13, b.Dy())
}

func TestFaceLinesWholePixels(t *testing.T) {
	f := fixedFont{size: 10, lineH: 10, adv: 5, runes: "ab"}

	lm := NewFace(f, 10).Lines()
	assert.Equal(t, LineMetrics{Scale: 1, Spacing: 0, RowHeight: 10}, lm)

	face := &Face{Font: f, Size: 15, LineSpacing: 1}
	lm = face.Lines()
	assert.Equal(t, float32(1.5), lm.Scale)
	assert.Equal(t, float32(17), lm.RowHeight, "16.5px rows round up")
	assert.InDelta(t, 1+0.5/1.5, lm.Spacing, 1e-5, "rounding is folded into spacing")
	assert.InDelta(t, lm.RowHeight, (f.lineH+lm.Spacing)*lm.Scale, 1e-4)
}

func TestFaceMeasureText(t *testing.T) {
	face := basicFace()
	assert.Equal(t, float32(0), face.MeasureText(""))
	assert.Equal(t, float32(35), face.MeasureText("hello"))
	assert.Equal(t, float32(21), face.MeasureText("ab\nxyz\nc"), "widest line wins")
	assert.Equal(t, float32(14), face.MeasureText("a☃b"), "missing glyphs take no space")

	kerned := NewFace(fixedFont{size: 10, lineH: 10, adv: 5, kern: -1, runes: "ab"}, 20)
	assert.Equal(t, float32(10+10-2), kerned.MeasureText("ab"))
}

func TestTextLayoutGlyphs(t *testing.T) {
	l := layoutOf("ab\ncd")

	want := []Glyph{
		{Index: 0, BufferIndex: 0, Rune: 'a', X: 0, Width: 7, Row: 0},
		{Index: 1, BufferIndex: 1, Rune: 'b', X: 7, Width: 7, Row: 0},
		{Index: 2, BufferIndex: 3, Rune: 'c', X: 0, Width: 7, Row: 1},
		{Index: 3, BufferIndex: 4, Rune: 'd', X: 7, Width: 7, Row: 1},
	}
	if diff := cmp.Diff(want, l.Glyphs()); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, l.Rows())
	assert.Equal(t, float32(13), l.RowHeight())
	assert.Equal(t, float32(26), l.Height())
	assert.Equal(t, float32(14), l.Width())
	assert.Equal(t, 5, l.Len())
}

func TestTextLayoutSkipsMissingGlyphs(t *testing.T) {
	l := layoutOf("a☃b")

	want := []Glyph{
		{Index: 0, BufferIndex: 0, Rune: 'a', X: 0, Width: 7},
		{Index: 1, BufferIndex: 2, Rune: 'b', X: 7, Width: 7},
	}
	if diff := cmp.Diff(want, l.Glyphs()); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestTextLayoutCopiesText(t *testing.T) {
	text := []rune("ab")
	l := NewTextLayout(basicFace(), text)
	text[0] = 'z'
	assert.Equal(t, 'a', l.Glyphs()[0].Rune)
}

func TestTextLayoutLocate(t *testing.T) {
	l := layoutOf("ab\ncd")

	tests := []struct {
		name string
		i    int
		want Location
	}{
		{name: "buffer start", i: 0, want: Location{GlyphIndex: 0, BufferIndex: 0, X: 1, RightEdge: 0, RowTop: 0}},
		{name: "on glyph", i: 1, want: Location{GlyphIndex: 1, BufferIndex: 1, X: 7, RightEdge: 14, RowTop: 0}},
		{name: "on line break", i: 2, want: Location{GlyphIndex: 1, BufferIndex: 1, X: 7, RightEdge: 14, RowTop: 0}},
		{name: "after line break", i: 3, want: Location{GlyphIndex: 2, BufferIndex: 3, X: 1, RightEdge: 0, RowTop: 13}},
		{name: "buffer end", i: 5, want: Location{GlyphIndex: 3, BufferIndex: 4, X: 7, RightEdge: 14, RowTop: 13}},
		{name: "past end is clamped", i: 99, want: Location{GlyphIndex: 3, BufferIndex: 4, X: 7, RightEdge: 14, RowTop: 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, l.Locate(tt.i)); diff != "" {
				t.Errorf("Locate(%d) mismatch (-want +got):\n%s", tt.i, diff)
			}
		})
	}
}

func TestTextLayoutLocateEmptyLines(t *testing.T) {
	l := layoutOf("\n\n")

	loc := l.Locate(2)
	assert.Equal(t, -1, loc.GlyphIndex)
	assert.Equal(t, -1, loc.BufferIndex)
	assert.Equal(t, float32(1), loc.X)
	assert.Equal(t, float32(26), loc.RowTop)

	empty := layoutOf("")
	assert.Equal(t, Location{GlyphIndex: -1, BufferIndex: -1, X: 1}, empty.Locate(0))
	assert.Equal(t, 1, empty.Rows())
}

func TestTextLayoutScaled(t *testing.T) {
	f := fixedFont{size: 10, lineH: 10, adv: 4, runes: "ab"}
	l := NewTextLayout(NewFace(f, 15), []rune("ab\nb"))

	assert.Equal(t, float32(15), l.RowHeight())
	g := l.Glyphs()
	require.Len(t, g, 3)
	assert.Equal(t, float32(6), g[1].X)
	assert.Equal(t, float32(6), g[1].Width)
	assert.Equal(t, float32(15), l.Locate(4).RowTop)
}
