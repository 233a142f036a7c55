package carve

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_EncoderIsPickedByExtension(t *testing.T) {
	assert := assert.New(t)

	img := noiseImg(imgWidth, imgHeight)

	for ext, format := range map[string]string{
		".jpg":  "jpeg",
		".jpeg": "jpeg",
		".png":  "png",
		".bmp":  "bmp",
	} {
		path := filepath.Join(t.TempDir(), "out"+ext)
		f, err := os.Create(path)
		assert.NoError(err)

		assert.NoError(encodeImg(f, img))
		assert.NoError(f.Close())

		f, err = os.Open(path)
		assert.NoError(err)
		_, decoded, err := image.Decode(f)
		assert.NoError(err)
		assert.Equal(format, decoded)
		assert.NoError(f.Close())
	}
}

func TestImage_UnsupportedExtensionIsRejected(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "out.tiff")
	f, err := os.Create(path)
	assert.NoError(err)
	defer f.Close()

	err = encodeImg(f, noiseImg(imgWidth, imgHeight))
	assert.ErrorIs(err, ErrOutput)
}

func TestImage_GenericWriterFallsBackToJpeg(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(encodeImg(&buf, noiseImg(imgWidth, imgHeight)))

	_, format, err := image.Decode(&buf)
	assert.NoError(err)
	assert.Equal("jpeg", format)
}
