package carve

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// encodeImg encodes an image to a destination of type io.Writer.
// When the destination is a file the encoder is picked based on
// the file extension, otherwise the image is encoded as jpeg.
func encodeImg(w io.Writer, img image.Image) error {
	var err error

	switch w := w.(type) {
	case *os.File:
		switch ext := strings.ToLower(filepath.Ext(w.Name())); ext {
		case "", ".jpg", ".jpeg":
			err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".png":
			err = png.Encode(w, img)
		case ".bmp":
			err = bmp.Encode(w, img)
		default:
			return errors.Wrapf(ErrOutput, "%v file type not supported", ext)
		}
	default:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	}

	if err != nil {
		return errors.Wrapf(ErrOutput, "%v", err)
	}
	return nil
}
