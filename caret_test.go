package pixelui

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCaretCoordinates(t *testing.T) {
	l := layoutOf("ab\ncd")

	want := []Vec2{
		{X: 1, Y: 0},   // before 'a'
		{X: 7, Y: 0},   // before 'b'
		{X: 15, Y: 0},  // after 'b'
		{X: 1, Y: 13},  // before 'c'
		{X: 7, Y: 13},  // before 'd'
		{X: 15, Y: 13}, // after 'd'
	}
	for i, w := range want {
		assert.Equal(t, w, l.CaretCoordinates(i), "caret %d", i)
	}

	assert.Equal(t, Vec2{X: 1}, layoutOf("").CaretCoordinates(0))
	assert.Equal(t, Vec2{X: 1, Y: 13}, layoutOf("ab\n").CaretCoordinates(3))
}

func TestSelectionRects(t *testing.T) {
	l := layoutOf("ab\ncd")

	tests := []struct {
		name       string
		start, end int
		want       []Rect
	}{
		{
			name:  "caret only",
			start: 1, end: 1,
			want: []Rect{{X: 7, Y: 0, W: 1, H: 13}},
		},
		{
			name:  "within a line",
			start: 0, end: 1,
			want: []Rect{{X: 1, Y: 0, W: 7, H: 13}},
		},
		{
			name:  "across lines",
			start: 0, end: 5,
			want: []Rect{
				{X: 1, Y: 0, W: 15, H: 13},
				{X: 1, Y: 13, W: 15, H: 13},
			},
		},
		{
			name:  "reversed range",
			start: 5, end: 0,
			want: []Rect{
				{X: 1, Y: 0, W: 15, H: 13},
				{X: 1, Y: 13, W: 15, H: 13},
			},
		},
		{
			name:  "just the line break",
			start: 2, end: 3,
			want: []Rect{
				{X: 15, Y: 0, W: 1, H: 13},
				{X: 1, Y: 13, W: 1, H: 13},
			},
		},
		{
			name:  "middle of second line",
			start: 4, end: 5,
			want: []Rect{{X: 7, Y: 13, W: 9, H: 13}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, l.SelectionRects(tt.start, tt.end)); diff != "" {
				t.Errorf("SelectionRects(%d, %d) mismatch (-want +got):\n%s", tt.start, tt.end, diff)
			}
		})
	}
}

func TestSelectedGlyphs(t *testing.T) {
	l := layoutOf("ab\ncd")

	tests := []struct {
		start, end int
		from, to   int
	}{
		{start: 0, end: 5, from: 0, to: 4},
		{start: 1, end: 4, from: 1, to: 3},
		{start: 4, end: 1, from: 1, to: 3},
		{start: 2, end: 3, from: 2, to: 2},
		{start: 0, end: 0, from: 0, to: 0},
	}
	for _, tt := range tests {
		from, to := l.SelectedGlyphs(tt.start, tt.end)
		assert.Equal(t, tt.from, from, "from of [%d, %d)", tt.start, tt.end)
		assert.Equal(t, tt.to, to, "to of [%d, %d)", tt.start, tt.end)
	}
}

func TestTextViewFollowHorizontal(t *testing.T) {
	l := layoutOf(strings.Repeat("a", 20))
	viewport := Vec2{X: 50, Y: 30}
	v := TextView{Origin: Vec2{X: 2, Y: 2}}

	v.Follow(l, 20, viewport, 2)
	assert.Equal(t, Vec2{X: -93, Y: 2}, v.Origin)
	caretX := v.Origin.X + l.CaretCoordinates(20).X - 1
	assert.Equal(t, viewport.X-2-1, caretX, "caret rests against the right margin")

	v.Follow(l, 18, viewport, 2)
	assert.Equal(t, float32(-93), v.Origin.X, "a visible caret does not scroll")

	v.Follow(l, 0, viewport, 2)
	assert.Equal(t, float32(2), v.Origin.X)
}

func TestTextViewFollowVertical(t *testing.T) {
	l := layoutOf("a\na\na\na\na")
	viewport := Vec2{X: 50, Y: 30}
	v := TextView{Origin: Vec2{X: 2, Y: 2}}

	v.Follow(l, l.Len(), viewport, 2)
	assert.Equal(t, Vec2{X: 2, Y: -37}, v.Origin)

	v.Follow(l, 0, viewport, 2)
	assert.Equal(t, Vec2{X: 2, Y: 2}, v.Origin)
}

func TestTextViewFollowPinsShortText(t *testing.T) {
	v := TextView{Origin: Vec2{X: -40, Y: -40}}
	v.Follow(layoutOf("ab"), 2, Vec2{X: 50, Y: 30}, 2)
	assert.Equal(t, Vec2{X: 2, Y: 2}, v.Origin)
}
