package assets

import (
	"image"
	"image/color"
	"math"
)

// Placeholder generates the built-in procedural picture: a diagonal color
// gradient with concentric rings. Used when no image is supplied and for
// SSH sessions, where client-side files are unavailable. Deterministic, so
// puzzles from it are reproducible.
func Placeholder(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Hypot(cx, cy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w)
			fy := float64(y) / float64(h)

			dist := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			ring := 0.5 + 0.5*math.Sin(dist*14*math.Pi)

			r := uint8(40 + 200*fx)
			g := uint8(40 + 180*fy*ring)
			b := uint8(230 - 160*fx*fy)

			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}
