// Package assets loads and prepares the puzzle picture.
// Decoding failures are fatal to initialization: the puzzle cannot start
// without its picture.
package assets

import (
	"fmt"
	"image"
	"os"

	// Register stdlib decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	// Register extended decoders
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage opens and decodes a picture from disk.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode image %s: %w", path, err)
	}

	return img, nil
}

// ScaleTo resamples the picture to exactly w×h pixels using Catmull-Rom
// interpolation. The board layout has already locked the aspect ratio, so
// this never distorts the picture.
func ScaleTo(src image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
