package platform

import (
	"fmt"
	"image"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ImageDecoder decodes image files from disk
type ImageDecoder struct{}

// NewImageDecoder creates a new image decoder
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Decode resolves path and decodes the file it names
func (d *ImageDecoder) Decode(path string) (image.Image, error) {
	absPath, err := ResolveImagePath(path)
	if err != nil {
		return nil, err
	}
	return LoadImage(absPath)
}

// LoadImage loads an image from a file path with WebP support
func LoadImage(path string) (image.Image, error) {
	// Registered decoders: jpeg, png, gif, bmp, tiff, webp
	img, openErr := imaging.Open(path)
	if openErr == nil {
		return img, nil
	}

	if !hasWebPExtension(path) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, openErr)
	}

	// Fallback: libwebp decoder handles files x/image/webp rejects
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err = webp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, openErr)
	}
	return img, nil
}
