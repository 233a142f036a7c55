package utils

import (
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUtils_ShouldDownloadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := png.Encode(w, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
			t.Errorf("could not encode the test image: %v", err)
		}
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL)
	if err != nil {
		t.Fatalf("couldn't download test file: %v", err)
	}
	defer os.Remove(f.Name())

	if !strings.Contains(f.Name(), os.TempDir()) {
		t.Errorf("The downloaded image should have been saved in a temporary folder")
	}
}

func TestUtils_ShouldRejectNonImageDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not an image</body></html>"))
	}))
	defer srv.Close()

	if _, err := DownloadImage(srv.URL); err == nil {
		t.Errorf("A non image download should have been rejected")
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/sample.jpg") {
		t.Errorf("A valid URL should have been provided")
	}
	if IsValidUrl("./sample.jpg") {
		t.Errorf("A local path should not be detected as URL")
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleImg := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(sampleImg)
	if err != nil {
		t.Fatalf("could not create the test file: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}
	f.Close()

	ftype, err := DetectContentType(sampleImg)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}

	if !strings.Contains(ftype.(string), "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}
