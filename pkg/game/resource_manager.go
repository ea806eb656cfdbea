package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder

	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager loads and caches the images and font faces used by the scenes.
//
// Images are read through the embedded package, so embedded.Init must be
// called first. Fonts come from the bundled Go Regular typeface.
//
// This implementation is NOT thread-safe; load everything from the game
// goroutine.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> Image
	fontFaceCache map[float64]*text.GoTextFace // size -> face
	fontSource    *text.GoTextFaceSource
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// DecodeImage reads and decodes an embedded image without converting it to an
// Ebitengine image.
//
// Parameters:
//   - path: Embedded resource path, e.g. "assets/images/reveal.jpg".
func DecodeImage(path string) (image.Image, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// LoadImage loads an embedded image and caches the resulting ebiten.Image.
// Subsequent calls with the same path return the cached image.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it was never loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont returns a Go Regular face of the given size, creating the shared
// font source on first use.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cachedFace, exists := rm.fontFaceCache[size]; exists {
		return cachedFace, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
