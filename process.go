package carve

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/seamly/carve/imop"
	"github.com/seamly/carve/utils"
)

// The error classes reported by the carving pipeline.
var (
	// ErrInput is returned when the source cannot be decoded to a valid image.
	ErrInput = errors.New("the source is not a valid image")
	// ErrSeamCount is returned when the requested number of seams
	// is not smaller than the image width.
	ErrSeamCount = errors.New("the number of seams must be smaller than the image width")
	// ErrOutput is returned when the carved image cannot be encoded to the destination.
	ErrOutput = errors.New("could not encode the carved image")
)

var (
	imgWorker = make(chan worker) // channel used to transfer the carved image to the GUI
	guiErr    = make(chan error)
)

// worker struct contains all the information needed for transferring the carved image to the Gio GUI.
type worker struct {
	img  *image.NRGBA
	done bool
}

// Processor options
type Processor struct {
	// Seams is the number of vertical seams to remove.
	Seams int
	// BlurRadius smooths the image before the gradient pass. Zero disables it.
	BlurRadius int
	// SeamColor is the hex color used to highlight the debug seams.
	SeamColor string
	Spinner   *utils.Spinner
	Debug     bool
	Preview   bool
}

// Carve removes p.Seams vertical seams from the image, each iteration
// recomputing the energy map of the current image, locating its lowest energy
// seam and excising it. The returned image is exactly p.Seams columns narrower
// and always a new allocation, the source image is never mutated. A single
// Processor may carve multiple images concurrently.
//
// In case the requested seam count is not smaller than the image width no seam
// is removed: a clone of the source image is returned together with ErrSeamCount.
func (p *Processor) Carve(img *image.NRGBA) (*image.NRGBA, error) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()

	if p.Seams >= width {
		return imaging.Clone(img), errors.Wrapf(ErrSeamCount,
			"%d seams requested over a %d pixels wide image", p.Seams, width)
	}

	for i := 0; i < p.Seams; i++ {
		c := NewCarver(img.Bounds().Dx(), height)
		energy := c.ComputeEnergy(img, p.BlurRadius)
		seam := c.FindLowestEnergySeam(energy)

		if p.Preview {
			frame := img
			if p.Debug {
				frame = p.overlaySeam(img, seam)
			}
			go func() {
				select {
				case imgWorker <- worker{img: frame}:
				case <-guiErr:
					return
				}
			}()
		}
		img = c.RemoveSeam(img, seam)
	}

	if p.Seams == 0 {
		img = imaging.Clone(img)
	}

	if p.Preview {
		// Signal that the process is done and no more data is sent through the channel.
		go func() {
			select {
			case imgWorker <- worker{img: img, done: true}:
			case <-guiErr:
				return
			}
		}()
	}
	return img, nil
}

// Process decodes the source image, carves out the requested number of seams
// and encodes the result into the destination, the output format being
// inferred from the destination file extension. We are using the io package,
// since we can provide different input and output types, as long as they
// implement the io.Reader and io.Writer interface.
// It returns the dimensions of the carved image.
func (p *Processor) Process(r io.Reader, w io.Writer) (image.Point, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return image.Point{}, errors.Wrapf(ErrInput, "%v", err)
	}
	img := imaging.Clone(src)

	if p.Preview {
		// Launch the Gio GUI thread.
		go p.showPreview(imgWorker, guiErr, img.Bounds().Dx(), img.Bounds().Dy())
	}

	res, err := p.Carve(img)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(res.Bounds().Dx(), res.Bounds().Dy()), encodeImg(w, res)
}

// overlaySeam composites the seam in the seam color over a copy of the image.
func (p *Processor) overlaySeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	layer := image.NewNRGBA(img.Bounds())
	col := utils.HexToRGBA(p.SeamColor)
	for y, x := range seam {
		layer.SetNRGBA(x, y, color.NRGBA{R: col.R, G: col.G, B: col.B, A: 0xff})
	}

	bitmap := imop.NewBitmap(img.Bounds())
	op := imop.InitOp()
	op.Set(imop.SrcOver)
	op.DrawBitmap(bitmap, layer, img)

	return bitmap.Img
}
