package carve

import (
	"image"
	"log"
	"math"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/seamly/carve/utils"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// showPreview spawns a new Gio GUI window and updates its content
// with the carved image received from a channel.
func (p *Processor) showPreview(workerChan <-chan worker, errChan chan<- error, width, height int) {
	newWidth, newHeight := float64(width), float64(height)

	// Resize the window but retain the image aspect ratio in case the
	// image width and height is greater than the predefined window.
	if width > maxScreenX && height > maxScreenY {
		widthRatio := float64(maxScreenX) / float64(width)
		heightRatio := float64(maxScreenY) / float64(height)
		ratio := math.Min(widthRatio, heightRatio)

		newWidth = float64(width) * ratio
		newHeight = float64(height) * ratio
	}

	w := app.NewWindow(
		app.Title("Seam carving in progress..."),
		app.Size(unit.Px(float32(newWidth)), unit.Px(float32(newHeight))),
	)

	if err := <-p.run(w, workerChan); err != nil {
		log.Printf(utils.DecorateText("GUI error: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage))
	}
	// Closing the channel unblocks every pending frame sender
	// together with the final shutdown wait.
	close(errChan)
}

// run the Gio main thread until a DestroyEvent or an ESC key event is captured.
func (p *Processor) run(w *app.Window, workerChan <-chan worker) chan error {
	var (
		ops op.Ops
		img image.Image
	)
	err := make(chan error)
	go func() {
		for {
			select {
			case e := <-w.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					gtx := layout.NewContext(&ops, e)
					w.Invalidate()

					if img != nil {
						src := paint.NewImageOp(img)
						src.Add(gtx.Ops)

						imgWidget := widget.Image{
							Src:   src,
							Scale: 1 / float32(gtx.Px(unit.Dp(1))),
							Fit:   widget.Contain,
						}
						imgWidget.Layout(gtx)
					}
					e.Frame(gtx.Ops)
				case key.Event:
					switch e.Name {
					case key.NameEscape:
						w.Close()
					}
				case system.DestroyEvent:
					err <- e.Err
					return
				}
			case wk := <-workerChan:
				if wk.done {
					w.Option(app.Title("Seam carving done. Press ESC to close."))
				}
				img = wk.img
				w.Invalidate()
			}
		}
	}()
	return err
}
