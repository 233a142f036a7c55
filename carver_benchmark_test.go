package carve

import (
	"testing"
)

func Benchmark_Carver(b *testing.B) {
	img := noiseImg(128, 128)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if img.Bounds().Dx() <= 1 {
			img = noiseImg(128, 128)
		}
		width, height := img.Bounds().Max.X, img.Bounds().Max.Y
		c := NewCarver(width, height)
		energy := c.ComputeEnergy(img, 0)
		seam := c.FindLowestEnergySeam(energy)
		img = c.RemoveSeam(img, seam)
	}
}
