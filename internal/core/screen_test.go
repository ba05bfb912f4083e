package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, expected 'X'", got)
	}

	// Out of bounds writes must be ignored, reads return space
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, expected space", got)
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("Get(99,99) = %q, expected space", got)
	}
}

func TestScreenSetPixel(t *testing.T) {
	s := NewScreen(4, 2)
	red := NewColor(255, 0, 0)
	blue := NewColor(0, 0, 255)

	// Pixel canvas is 4x4: two pixel rows per cell row
	if s.PixelWidth() != 4 || s.PixelHeight() != 4 {
		t.Fatalf("pixel canvas = %dx%d, expected 4x4", s.PixelWidth(), s.PixelHeight())
	}

	s.SetPixel(1, 0, red)  // Upper half of cell (1,0)
	s.SetPixel(1, 1, blue) // Lower half of cell (1,0)

	cell := s.GetCell(1, 0)
	if !cell.Pixel {
		t.Fatal("cell (1,0) should be a pixel cell")
	}
	if !cell.HasFg || cell.Fg != red {
		t.Errorf("upper pixel = %+v, expected red", cell.Fg)
	}
	if !cell.HasBg || cell.Bg != blue {
		t.Errorf("lower pixel = %+v, expected blue", cell.Bg)
	}

	// Writing a pixel over a text cell replaces the text
	s.Set(2, 0, 'Z')
	s.SetPixel(2, 0, red)
	cell = s.GetCell(2, 0)
	if !cell.Pixel || cell.HasBg {
		t.Errorf("pixel over text cell = %+v, expected fresh pixel cell", cell)
	}

	// Out of bounds pixels ignored
	s.SetPixel(-1, 0, red)
	s.SetPixel(0, 4, red)
	s.SetPixel(0, -1, red)
}

func TestScreenStringHalfBlocks(t *testing.T) {
	s := NewScreen(3, 1)
	c := NewColor(1, 2, 3)

	s.SetPixel(0, 0, c) // Upper only
	s.SetPixel(1, 1, c) // Lower only
	s.SetPixel(2, 0, c) // Both
	s.SetPixel(2, 1, c)

	if got := s.String(); got != "▀▄█" {
		t.Errorf("String() = %q, expected \"▀▄█\"", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.Set(2, 1, '#')

	s.Resize(6, 3)
	if got := s.Get(2, 1); got != '#' {
		t.Errorf("content lost after shrink: Get(2,1) = %q", got)
	}

	s.Resize(20, 10)
	if got := s.Get(2, 1); got != '#' {
		t.Errorf("content lost after grow: Get(2,1) = %q", got)
	}
	if got := s.Get(19, 9); got != ' ' {
		t.Errorf("new area not blank: Get(19,9) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 2)

	s.DrawText(1, 0, "hello")
	if got := strings.TrimRight(s.Row(0), " "); got != " hello" {
		t.Errorf("Row(0) = %q, expected \" hello\"", got)
	}

	// Clipped text must not panic
	s.DrawText(6, 1, "world")
	if got := s.Get(7, 1); got != 'o' {
		t.Errorf("clipped text: Get(7,1) = %q, expected 'o'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges wrong")
	}
}
