package carve

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/seamly/carve/utils"
)

// ComputeEnergy converts the image to an energy map of identical dimensions,
// where each entry approximates the local rate of intensity change at that pixel.
// The image is converted to grayscale, then a 3x3 Sobel first derivative is
// applied independently along both axes and the absolute gradient values are
// summed up: energy = |grad_x| + |grad_y|. The values are raw magnitudes:
// unbounded above and exactly zero over perfectly uniform regions.
//
// A blur radius greater than zero smooths the image upfront, suppressing the
// gradient noise of fine textures. The map itself is never normalized.
func (c *Carver) ComputeEnergy(img *image.NRGBA, blurRadius int) []float64 {
	if blurRadius > 0 {
		img = imaging.Blur(img, float64(blurRadius))
	}
	gray := rgbToGrayscale(img)
	energy := make([]float64, c.Width*c.Height)

	for y := 0; y < c.Height; y++ {
		// Clamp the 3x3 window to the image edges.
		yt := utils.Max(y-1, 0) * c.Width
		yc := y * c.Width
		yb := utils.Min(y+1, c.Height-1) * c.Width

		for x := 0; x < c.Width; x++ {
			xl := utils.Max(x-1, 0)
			xr := utils.Min(x+1, c.Width-1)

			// The Sobel kernel is separable: the derivative along one axis
			// is taken over the window columns/rows smoothed with [1 2 1]
			// along the other axis.
			left := gray[yt+xl] + 2*gray[yc+xl] + gray[yb+xl]
			right := gray[yt+xr] + 2*gray[yc+xr] + gray[yb+xr]

			top := gray[yt+xl] + 2*gray[yt+x] + gray[yt+xr]
			bottom := gray[yb+xl] + 2*gray[yb+x] + gray[yb+xr]

			energy[yc+x] = math.Abs(right-left) + math.Abs(bottom-top)
		}
	}
	return energy
}

// rgbToGrayscale converts the image to grayscale mode and
// returns the luminance values as an one dimensional array.
func rgbToGrayscale(src *image.NRGBA) []float64 {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	gray := make([]float64, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			gray[y*width+x] = (0.299*float64(r) +
				0.587*float64(g) +
				0.114*float64(b)) / 256
		}
	}
	return gray
}
