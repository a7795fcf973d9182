package pixelui

import "github.com/rivo/uniseg"

// Ellipsis is appended to labels that had to be shortened.
const Ellipsis = "..."

// TruncateText shortens text until it fits maxWidth, appending Ellipsis.
//
// Text that fits is returned as is. Otherwise the ellipsis is appended and,
// while the result is still too wide, the last four grapheme clusters are
// dropped and the ellipsis appended again, so each step removes one
// character of the original text. The bare ellipsis is returned when nothing
// of the text fits.
func TruncateText(face *Face, text string, maxWidth float32) string {
	if face.MeasureText(text) <= maxWidth {
		return text
	}

	label := text + Ellipsis
	for face.MeasureText(label) > maxWidth && label != Ellipsis {
		label = dropGraphemes(label, len(Ellipsis)+1) + Ellipsis
	}
	return label
}

// dropGraphemes removes the last n grapheme clusters of s.
func dropGraphemes(s string, n int) string {
	var bounds []int
	state := -1
	rest := s
	for len(rest) > 0 {
		bounds = append(bounds, len(s)-len(rest))
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	if n >= len(bounds) {
		return ""
	}
	return s[:bounds[len(bounds)-n]]
}
