package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/fireworks/pkg/embedded"
)

// encodeTestImage creates a simple 10x6 blue PNG.
func encodeTestImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 6))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func initTestAssets(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"assets/images/test.png":    {Data: encodeTestImage(t)},
		"assets/images/corrupt.png": {Data: []byte("not an image")},
	}, fstest.MapFS{})
	t.Cleanup(embedded.Reset)
}

func TestDecodeImage(t *testing.T) {
	initTestAssets(t)

	img, err := DecodeImage("assets/images/test.png")
	if err != nil {
		t.Fatalf("DecodeImage() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 10x6", b)
	}

	if _, err := DecodeImage("assets/images/missing.png"); err == nil {
		t.Error("expected error for missing image")
	}
	if _, err := DecodeImage("assets/images/corrupt.png"); err == nil {
		t.Error("expected error for corrupt image")
	}
}

// TestLoadImageCaching tests that loading the same image twice returns the cached instance.
func TestLoadImageCaching(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager()

	if rm.GetImage("assets/images/test.png") != nil {
		t.Fatal("GetImage should return nil before loading")
	}

	img1, err := rm.LoadImage("assets/images/test.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	img2, err := rm.LoadImage("assets/images/test.png")
	if err != nil {
		t.Fatalf("second LoadImage() error: %v", err)
	}
	if img1 != img2 {
		t.Error("expected the cached image on the second load")
	}
	if rm.GetImage("assets/images/test.png") != img1 {
		t.Error("GetImage should return the cached image")
	}
}

func TestLoadFont(t *testing.T) {
	rm := NewResourceManager()

	face, err := rm.LoadFont(22)
	if err != nil {
		t.Fatalf("LoadFont() error: %v", err)
	}
	if face.Size != 22 {
		t.Errorf("face.Size = %v, want 22", face.Size)
	}

	again, _ := rm.LoadFont(22)
	if again != face {
		t.Error("expected cached face for the same size")
	}

	bigger, _ := rm.LoadFont(40)
	if bigger == face || bigger.Source != face.Source {
		t.Error("different sizes should share one source but not one face")
	}
}
