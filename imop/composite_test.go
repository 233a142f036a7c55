package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(Copy, op.Get())

	op.Set(SrcOver)
	assert.Equal(SrcOver, op.Get())

	// An unsupported operation should leave the active one untouched.
	op.Set("unsupported_composite_operation")
	assert.Equal(SrcOver, op.Get())
}

func TestComp_Ops(t *testing.T) {
	assert := assert.New(t)
	op := InitOp()

	transparent := color.NRGBA{R: 0, G: 0, B: 0, A: 0}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	bmp := NewBitmap(rect)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)

	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Pick three representative pixels from the generated image output.
	// Depending on the applied composition operation the colors of the
	// selected pixels should be the source color, the backdrop color or transparent.

	// SrcOver
	op.Set(SrcOver)
	op.DrawBitmap(bmp, source, backdrop)

	assert.EqualValues(magenta, bmp.Img.At(9, 0))
	assert.EqualValues(cyan, bmp.Img.At(0, 9))
	assert.EqualValues(cyan, bmp.Img.At(5, 5))

	// Copy
	op.Set(Copy)
	op.DrawBitmap(bmp, source, backdrop)

	assert.EqualValues(transparent, bmp.Img.At(9, 0))
	assert.EqualValues(cyan, bmp.Img.At(0, 9))
	assert.EqualValues(cyan, bmp.Img.At(5, 5))

	// SrcIn
	op.Set(SrcIn)
	op.DrawBitmap(bmp, source, backdrop)

	assert.EqualValues(transparent, bmp.Img.At(9, 0))
	assert.EqualValues(transparent, bmp.Img.At(0, 9))
	assert.EqualValues(cyan, bmp.Img.At(5, 5))

	// Xor
	op.Set(Xor)
	op.DrawBitmap(bmp, source, backdrop)

	assert.EqualValues(magenta, bmp.Img.At(9, 0))
	assert.EqualValues(cyan, bmp.Img.At(0, 9))
	assert.EqualValues(transparent, bmp.Img.At(5, 5))
}
