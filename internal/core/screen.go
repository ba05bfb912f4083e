package core

import (
	"strings"
)

// Cell is a single screen cell. A cell is either a text cell (Rune with an
// optional foreground color) or a pixel cell written through SetPixel, in
// which case Fg is the upper half-block color and Bg the lower one.
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	HasFg bool
	HasBg bool
	Pixel bool
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal: games draw runes and
// half-block pixels, the platform handles actual display.
//
// Pixel coordinates are twice as tall as cell coordinates: each cell holds
// two vertically stacked pixels, so a W×H screen exposes a W×2H pixel
// canvas with roughly square pixels.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given cell dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// PixelWidth returns the canvas width in pixels (same as cell width).
func (s *Screen) PixelWidth() int {
	return s.width
}

// PixelHeight returns the canvas height in pixels (two per cell row).
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear resets the entire screen to blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a plain text rune at the given cell position, replacing any
// pixel content. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r}
}

// SetColored places a text rune with a foreground color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetColored(x, y int, r rune, fg Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Fg: fg, HasFg: true}
}

// SetPixel colors a single pixel at (x, py) in pixel coordinates.
// The containing cell becomes a pixel cell; its other half keeps whatever
// pixel color it already had. Out-of-bounds coordinates are ignored.
func (s *Screen) SetPixel(x, py int, c Color) {
	y := py / 2
	if x < 0 || x >= s.width || py < 0 || y >= s.height {
		return
	}
	cell := &s.cells[y][x]
	if !cell.Pixel {
		*cell = Cell{Pixel: true, Rune: ' '}
	}
	if py%2 == 0 {
		cell.Fg = c
		cell.HasFg = true
	} else {
		cell.Bg = c
		cell.HasBg = true
	}
}

// Get returns the rune at the given cell position.
// Returns space for out-of-bounds coordinates and pixel cells.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the full cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	for i, r := range text {
		s.Set(x+i, y, r)
	}
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	for i, r := range text {
		s.SetColored(x+i, y, r, fg)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular cell area with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.Set(x, y, fill)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// String converts the screen buffer to a plain (uncolored) string.
// Pixel cells are rendered as half-block glyphs. Used for tests and
// screenshots; the platform layer does the colored rendering.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			cell := s.cells[y][x]
			switch {
			case cell.Pixel && cell.HasFg && cell.HasBg:
				sb.WriteRune('█')
			case cell.Pixel && cell.HasFg:
				sb.WriteRune('▀')
			case cell.Pixel && cell.HasBg:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(cell.Rune)
			}
		}
	}
	return sb.String()
}

// Row returns the specified row as a plain string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range runes {
		runes[x] = s.cells[y][x].Rune
	}
	return string(runes)
}
