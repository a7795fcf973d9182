package pixelui

// CaretCoordinates returns where a caret at rune index i is drawn, relative
// to the text origin.
//
// A caret in front of a glyph sits on that glyph's left edge; anywhere else
// it sits one pixel past the right edge of the glyph before it.
func (l *TextLayout) CaretCoordinates(i int) Vec2 {
	i = clampi(i, 0, len(l.text))
	loc := l.Locate(i)
	x := loc.RightEdge + 1
	if loc.BufferIndex == i {
		x = loc.X
	}
	return Vec2{X: x, Y: loc.RowTop}
}

// SelectionRects returns the highlight rectangles for the rune range
// [start, end), one per visual line, relative to the text origin.
//
// Each rectangle spans from the caret at its start to the caret at its end
// and is at least one pixel wide, so an empty range yields the caret itself.
func (l *TextLayout) SelectionRects(start, end int) []Rect {
	start = clampi(start, 0, len(l.text))
	end = clampi(end, 0, len(l.text))
	if start > end {
		start, end = end, start
	}

	var rects []Rect
	for i := start; i < end; i++ {
		if l.text[i] == '\n' {
			rects = append(rects, l.selectionRect(start, i))
			start = i + 1
		}
	}
	return append(rects, l.selectionRect(start, end))
}

func (l *TextLayout) selectionRect(start, end int) Rect {
	s := l.CaretCoordinates(start)
	e := l.CaretCoordinates(end)
	return Rect{
		X: s.X,
		Y: s.Y,
		W: maxf(1, e.X-s.X+1),
		H: l.lines.RowHeight,
	}
}

// SelectedGlyphs returns the glyph ordinals [from, to) covering the rune
// range [start, end).
func (l *TextLayout) SelectedGlyphs(start, end int) (from, to int) {
	start = clampi(start, 0, len(l.text))
	end = clampi(end, 0, len(l.text))
	if start > end {
		start, end = end, start
	}
	return l.glyphOrdinal(start), l.glyphOrdinal(end)
}

// glyphOrdinal returns the ordinal of the first glyph at or after rune index i.
func (l *TextLayout) glyphOrdinal(i int) int {
	loc := l.Locate(i)
	if loc.BufferIndex < i {
		return loc.GlyphIndex + 1
	}
	return loc.GlyphIndex
}

// TextView is the scroll state of a text inside a fixed viewport.
// Origin is where the text's top-left corner is drawn, relative to the
// viewport.
type TextView struct {
	Origin Vec2
}

// Follow moves the origin by the least amount that keeps the caret at rune
// index cursor visible inside a viewport of the given size, leaving margin
// pixels on every side. Text that fits in the viewport is pinned to the
// margin instead.
func (v *TextView) Follow(l *TextLayout, cursor int, viewport Vec2, margin float32) {
	caret := l.CaretCoordinates(cursor)

	if l.Width() < viewport.X-2*margin {
		v.Origin.X = margin
	} else {
		x := caret.X + v.Origin.X - 1
		left := maxf(0, margin-x)
		right := maxf(0, x-(viewport.X-margin-1))
		v.Origin.X += left - right
	}

	if l.Height() < viewport.Y-2*margin {
		v.Origin.Y = margin
	} else {
		top := caret.Y + v.Origin.Y
		bottom := top + l.RowHeight()
		up := maxf(0, margin-top)
		down := maxf(0, bottom-(viewport.Y-margin))
		v.Origin.Y += up - down
	}
}
