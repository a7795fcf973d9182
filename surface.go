package pixelui

// Surface receives the draw commands of a widget.
// *DrawList implements it; tests record calls instead.
type Surface interface {
	AddRect(x, y, w, h float32, color uint32)
	AddGlyph(f Font, r rune, x, y, scale float32, color uint32)

	// PushClipRect restricts later draws to the rectangle (x1, y1)-(x2, y2),
	// intersected with the current clip.
	PushClipRect(x1, y1, x2, y2 float32)
	PopClipRect()
}

var _ Surface = (*DrawList)(nil)

// DrawText draws a single row of text with its top-left corner at (x, y).
// Line breaks are skipped.
func DrawText(s Surface, face *Face, x, y float32, text string, color uint32) {
	scale := face.Scale()
	pen := x
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			continue
		}
		adv, ok := face.Font.Advance(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			pen += face.Font.Kern(prev, r) * scale
		}
		s.AddGlyph(face.Font, r, pen, y, scale, color)
		pen += adv * scale
		prev = r
	}
}
