package carve

import (
	"image"
	"math"
)

// Seam is a connected top-to-bottom path through an image holding one column
// index per row. The column choices of two adjacent rows never differ by more
// than one.
type Seam []int

// Carver holds the dynamic programming grids used to locate
// the lowest energy seam of an image.
type Carver struct {
	Width     int
	Height    int
	costs     []float64
	backtrack []int
}

// NewCarver returns an initialized Carver.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:     width,
		Height:    height,
		costs:     make([]float64, width*height),
		backtrack: make([]int, width*height),
	}
}

// Get the cumulated cost at (x, y).
func (c *Carver) get(x, y int) float64 {
	px := x + y*c.Width
	return c.costs[px]
}

// Set the cumulated cost at (x, y).
func (c *Carver) set(x, y int, px float64) {
	idx := x + y*c.Width
	c.costs[idx] = px
}

// FindLowestEnergySeam computes the seam of minimum total energy based on the following logic:
//   - traverse the energy map from the second row to the last row and cumulate
//     for each entry (x, y) the minimum cost of any connected path reaching it,
//     which is the energy at (x, y) summed up with the smallest cumulated cost
//     among the three neighboring entries of the previous row;
//   - pick the entry of the last row holding the smallest cumulated cost;
//   - walk the recorded offsets back to the first row to reconstruct the path.
//
// The energy map must hold Width*Height values laid out row by row.
// Entries outside the map are simply excluded from the candidate set, the
// boundary columns are never penalized. A neighbor only takes over when its
// cost is strictly smaller, keeping the straight-up offset on equal costs.
func (c *Carver) FindLowestEnergySeam(energy []float64) Seam {
	copy(c.costs[:c.Width], energy[:c.Width])

	for y := 1; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			minCost := c.get(x, y-1)
			offset := 0
			if x > 0 && c.get(x-1, y-1) < minCost {
				minCost = c.get(x-1, y-1)
				offset = -1
			}
			if x < c.Width-1 && c.get(x+1, y-1) < minCost {
				minCost = c.get(x+1, y-1)
				offset = 1
			}
			c.set(x, y, energy[x+y*c.Width]+minCost)
			c.backtrack[x+y*c.Width] = offset
		}
	}

	seam := make(Seam, c.Height)

	// Find the lowest cumulated cost on the bottom row,
	// the first occurrence wins on equal costs.
	minCost := math.MaxFloat64
	for x := 0; x < c.Width; x++ {
		if cost := c.get(x, c.Height-1); cost < minCost {
			minCost = cost
			seam[c.Height-1] = x
		}
	}

	// Walk up in the backtrack table and collect the column of each row.
	for y := c.Height - 2; y >= 0; y-- {
		seam[y] = seam[y+1] + c.backtrack[seam[y+1]+(y+1)*c.Width]
	}
	return seam
}

// RemoveSeam returns a new image one column narrower, where each row of the
// source image is copied over without the pixel at the seam column and every
// pixel to its right is shifted left by one. The source image is never mutated.
func (c *Carver) RemoveSeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, c.Width-1, c.Height))

	for y := 0; y < c.Height; y++ {
		src := img.Pix[img.PixOffset(0, y):img.PixOffset(c.Width, y)]
		row := dst.Pix[dst.PixOffset(0, y):dst.PixOffset(c.Width-1, y)]
		cut := seam[y] * 4

		copy(row[:cut], src[:cut])
		copy(row[cut:], src[cut+4:])
	}
	return dst
}
