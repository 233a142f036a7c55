package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.Equal(SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal(StatusColor+"busy"+DefaultColor, DecorateText("busy", StatusMessage))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(125*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
	assert.Equal("1d 2h 0m 0.00s", FormatTime(26*time.Hour))
}

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(color.NRGBA{R: 0xff, A: 0xff}, HexToRGBA("#ff0000"))
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, HexToRGBA("#fff"))
	assert.Equal(color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, HexToRGBA("11223344"))
}

func TestUtils_Contains(t *testing.T) {
	assert := assert.New(t)

	assert.True(Contains([]string{"a", "b"}, "b"))
	assert.False(Contains([]string{"a", "b"}, "c"))
	assert.True(Contains([]int{1, 2, 3}, 2))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(2.5, Abs(-2.5))
	assert.Equal(3, Abs(3))
}
