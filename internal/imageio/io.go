// Package imageio loads input images and saves generated outputs.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
)

// Load decodes an image from path. PNG, JPEG, GIF, BMP and TIFF are supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FromRGBA wraps a row-major RGBA buffer as an image without copying.
func FromRGBA(buf []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 || len(buf) != 4*w*h {
		return nil, fmt.Errorf("imageio: %d bytes do not describe a %dx%d RGBA image", len(buf), w, h)
	}
	return &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}, nil
}

// Scale enlarges img by an integer factor using nearest-neighbor sampling so
// pixel edges stay crisp. Factors below 2 return img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save writes img to path. The format follows the extension (png or gif);
// anything else is written as PNG.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, img image.Image, ext string) error {
	var err error
	switch strings.ToLower(ext) {
	case ".gif":
		err = gif.Encode(w, img, nil)
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
