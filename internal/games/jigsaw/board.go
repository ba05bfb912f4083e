package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Board describes the assembled puzzle layout in viewport pixel coordinates.
// Cell size is computed once from the viewport and the picture's aspect
// ratio; the picture is scaled uniformly to fit, never stretched.
//
// Callers must pass positive rows/cols and a viewport large enough to fit at
// least one pixel per cell after padding; this is a programmer error the
// layout does not validate.
type Board struct {
	Rows, Cols   int
	CellW, CellH float64
	Origin       core.Vec // Top-left of the assembled picture
	W, H         float64  // Assembled picture dimensions
}

// NewBoard computes the board layout for a picture of imgW×imgH pixels
// inside a viewW×viewH pixel viewport with the given padding on every side.
// The assembled picture is centered in the viewport.
func NewBoard(rows, cols int, viewW, viewH, padding int, imgW, imgH int) Board {
	availW := float64(viewW - 2*padding)
	availH := float64(viewH - 2*padding)

	scale := availW / float64(imgW)
	if s := availH / float64(imgH); s < scale {
		scale = s
	}

	w := float64(imgW) * scale
	h := float64(imgH) * scale

	return Board{
		Rows:   rows,
		Cols:   cols,
		CellW:  w / float64(cols),
		CellH:  h / float64(rows),
		Origin: core.V((float64(viewW)-w)/2, (float64(viewH)-h)/2),
		W:      w,
		H:      h,
	}
}

// PieceID returns the dense row-major piece id for grid coordinates.
func (b Board) PieceID(r, c int) int {
	return r*b.Cols + c
}

// InBounds reports whether (r,c) is a valid grid coordinate.
// Out-of-range neighbors simply do not exist.
func (b Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// CellTarget returns the world position of cell (r,c)'s top-left corner in
// the assembled picture.
func (b Board) CellTarget(r, c int) core.Vec {
	return b.Origin.Add(core.V(float64(c)*b.CellW, float64(r)*b.CellH))
}
