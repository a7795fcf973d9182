package pixelui

import "sort"

// Glyph is one drawn character of a TextLayout.
type Glyph struct {
	Index       int     // Ordinal among the layout's glyphs
	BufferIndex int     // Rune index in the laid out text
	Rune        rune    // Character drawn
	X           float32 // Left edge relative to the text origin
	Width       float32 // Scaled advance
	Row         int     // Visual line, counted from 0
}

// Location is the result of TextLayout.Locate.
type Location struct {
	// GlyphIndex and BufferIndex identify the nearest glyph at or before the
	// located index, or are -1 when there is none.
	GlyphIndex  int
	BufferIndex int

	X         float32 // Left edge of that glyph, or 1 at the start of a row
	RightEdge float32 // X + Width of that glyph, or 0 at the start of a row
	RowTop    float32 // Top of the row in pixels
}

// TextLayout positions the characters of a text for a Face.
//
// Line breaks and runes the font has no glyph for produce no Glyph, so glyph
// ordinals and rune indices drift apart; Locate maps between them.
type TextLayout struct {
	text   []rune
	glyphs []Glyph
	face   *Face
	lines  LineMetrics
	rows   int
	width  float32
}

// NewTextLayout lays text out with face. The layout keeps its own copy of
// the text.
func NewTextLayout(face *Face, text []rune) *TextLayout {
	l := &TextLayout{
		text:  append([]rune(nil), text...),
		face:  face,
		lines: face.Lines(),
		rows:  1,
	}

	scale := l.lines.Scale
	var pen float32
	prev := rune(-1)
	for i, r := range l.text {
		if r == '\n' {
			l.rows++
			pen = 0
			prev = -1
			continue
		}
		adv, ok := face.Font.Advance(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			pen += face.Font.Kern(prev, r) * scale
		}
		l.glyphs = append(l.glyphs, Glyph{
			Index:       len(l.glyphs),
			BufferIndex: i,
			Rune:        r,
			X:           pen,
			Width:       adv * scale,
			Row:         l.rows - 1,
		})
		pen += adv * scale
		prev = r
		l.width = maxf(l.width, pen)
	}
	return l
}

// Glyphs returns the laid out glyphs in text order.
func (l *TextLayout) Glyphs() []Glyph { return l.glyphs }

// Face returns the face the text was laid out with.
func (l *TextLayout) Face() *Face { return l.face }

// Len returns the length of the laid out text in runes.
func (l *TextLayout) Len() int { return len(l.text) }

// Rows returns the number of visual lines.
func (l *TextLayout) Rows() int { return l.rows }

// RowHeight returns the distance between rows in whole pixels.
func (l *TextLayout) RowHeight() float32 { return l.lines.RowHeight }

// Width returns the width of the widest row.
func (l *TextLayout) Width() float32 { return l.width }

// Height returns the height of all rows.
func (l *TextLayout) Height() float32 { return float32(l.rows) * l.lines.RowHeight }

// Locate finds the glyph a caret at rune index i sits after.
//
// The result describes the rightmost glyph whose buffer index is at most i.
// At the start of a row (i is 0, follows a line break, or has no glyph before
// it) X is 1 and RightEdge 0, so a caret drawn there lands on the row's left
// margin. i is clamped to [0, Len()].
func (l *TextLayout) Locate(i int) Location {
	i = clampi(i, 0, len(l.text))

	n := sort.Search(len(l.glyphs), func(k int) bool {
		return l.glyphs[k].BufferIndex > i
	})

	loc := Location{GlyphIndex: -1, BufferIndex: -1}
	if n > 0 {
		g := l.glyphs[n-1]
		loc = Location{
			GlyphIndex:  g.Index,
			BufferIndex: g.BufferIndex,
			X:           g.X,
			RightEdge:   g.X + g.Width,
			RowTop:      float32(g.Row) * l.lines.RowHeight,
		}
	}

	if n == 0 || i == 0 || l.text[i-1] == '\n' {
		loc.X = 1
		loc.RightEdge = 0
		loc.RowTop = float32(countRune(l.text[:i], '\n')) * l.lines.RowHeight
	}
	return loc
}

func countRune(s []rune, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
