package pixelui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomOptKey(t *testing.T) {
	optBlink := NewOptKey("blink", 500)
	assert.Equal(t, "blink", optBlink.Name())
	assert.Equal(t, 500, optBlink.Default())

	v, set := ApplyAndCheck([]Option{WithText("x")}, optBlink)
	assert.Equal(t, 500, v)
	assert.False(t, set)

	v, set = ApplyAndCheck([]Option{WithOpt(optBlink, 250)}, optBlink)
	assert.Equal(t, 250, v)
	assert.True(t, set)

	// Last write wins.
	assert.Equal(t, 7, ApplyAndGet([]Option{WithOpt(optBlink, 1), WithOpt(optBlink, 7)}, optBlink))
}

func TestGetOptTypeMismatchFallsBack(t *testing.T) {
	asInt := NewOptKey("shared", 3)
	asString := NewOptKey("shared", "three")

	o := applyOptions([]Option{WithOpt(asString, "four")})
	assert.Equal(t, 3, GetOpt(o, asInt))
	assert.True(t, HasOpt(o, asInt))
	assert.Equal(t, "four", GetOpt(o, asString))
}

func TestWithHighlightColorsSetsBothWidgets(t *testing.T) {
	opts := []Option{WithHighlightColors(ColorRed, ColorBlue), WithSize(50, 40)}

	in, err := resolveTextInputConfig(opts)
	assert.NoError(t, err)
	assert.Equal(t, ColorRed, in.SelectionColor)
	assert.Equal(t, ColorBlue, in.SelectedTextColor)

	m, err := resolveMenuConfig(opts)
	assert.NoError(t, err)
	assert.Equal(t, ColorRed, m.HighlightBgColor)
	assert.Equal(t, ColorBlue, m.HighlightTextColor)
	assert.Equal(t, float32(40), m.Height)
}
