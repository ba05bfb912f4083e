package core

import "image/color"

// Color is a 24-bit RGB color for screen cells. The zero value is black;
// whether a cell actually carries a color is tracked by the cell itself.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color from 8-bit channel values.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromImageColor converts a standard library color to a Color,
// collapsing the 16-bit channels to 8 bits and dropping alpha.
func FromImageColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Dim returns the color with every channel scaled by f (clamped to [0, 1]).
// Used for the ghost preview and disabled UI elements.
func (c Color) Dim(f float64) Color {
	f = ClampF(f, 0, 1)
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Predefined colors for HUD and overlay elements.
var (
	ColorWhite  = Color{R: 0xf0, G: 0xf0, B: 0xf0}
	ColorGray   = Color{R: 0x8a, G: 0x8a, B: 0x8a}
	ColorOrange = Color{R: 0xff, G: 0x87, B: 0x00}
	ColorGreen  = Color{R: 0x5f, G: 0xd7, B: 0x5f}
	ColorBoard  = Color{R: 0x1c, G: 0x1c, B: 0x2a} // Board background
)
