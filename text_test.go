package pixelui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	face := basicFace() // 7px per character

	tests := []struct {
		name     string
		text     string
		maxWidth float32
		want     string
	}{
		{name: "fits", text: "Options", maxWidth: 94, want: "Options"},
		{name: "exact fit", text: "abcd", maxWidth: 28, want: "abcd"},
		{name: "shortened", text: "A label far too long", maxWidth: 94, want: "A label fa..."},
		{name: "one character kept", text: "abcdef", maxWidth: 28, want: "a..."},
		{name: "nothing fits", text: "hello", maxWidth: 10, want: "..."},
		{name: "empty", text: "", maxWidth: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(face, tt.text, tt.maxWidth))
		})
	}
}

func TestDropGraphemes(t *testing.T) {
	assert.Equal(t, "ab", dropGraphemes("abcd", 2))
	assert.Equal(t, "", dropGraphemes("ab", 2))
	assert.Equal(t, "", dropGraphemes("ab", 5))
	assert.Equal(t, "x", dropGraphemes("xe\u0301!", 2), "combining marks stay with their base")
	assert.Equal(t, "a", dropGraphemes("a\U0001F1E9\U0001F1EA", 1), "flags are one cluster")
}
