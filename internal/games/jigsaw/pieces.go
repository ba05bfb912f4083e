package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Piece is an immutable puzzle piece. Target and Size never change after
// creation; a board re-layout rebuilds the whole catalog and invalidates
// every cluster.
type Piece struct {
	ID       int      // Dense id, 0..rows*cols-1, row-major
	Row, Col int      // Grid coordinates
	Target   core.Vec // World position of the cell's top-left when solved
	Size     core.Vec // Logical (pre-distortion) cell dimensions
	Path     Path     // Closed boundary, local to Target

	bounds core.Box // Cached Path.Bounds()
}

// Bounds returns the piece boundary's bounding box in local coordinates.
// Wavy edges extend slightly beyond the logical cell rectangle.
func (p *Piece) Bounds() core.Box {
	return p.bounds
}

// BuildPieces composes the piece catalog from the board layout and the
// shared edge tables. Each piece's closed path concatenates its four
// bounding edges: top forward, right forward, bottom reversed, left
// reversed, which winds the contour consistently and never self-intersects.
func BuildPieces(b Board, edges *EdgeSet) []Piece {
	pieces := make([]Piece, 0, b.Rows*b.Cols)

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			path := buildPiecePath(b, edges, r, c)
			piece := Piece{
				ID:     b.PieceID(r, c),
				Row:    r,
				Col:    c,
				Target: b.CellTarget(r, c),
				Size:   core.V(b.CellW, b.CellH),
				Path:   path,
				bounds: path.Bounds(),
			}
			pieces = append(pieces, piece)
		}
	}

	return pieces
}

// buildPiecePath concatenates the four shared edges of cell (r,c) into one
// closed contour. Shared corner points are emitted once: each edge starts
// where the previous one ended, and the left edge's final point coincides
// with the path start.
func buildPiecePath(b Board, edges *EdgeSet, r, c int) Path {
	top := edges.H[r][c]
	right := edges.V[c+1][r]
	bottom := edges.H[r+1][c]
	left := edges.V[c][r]

	path := make(Path, 0, 4*EdgeSegments)

	// Top, left to right
	path = append(path, top...)

	// Right, top to bottom, shifted to the cell's right border
	for _, p := range right[1:] {
		path = append(path, p.Add(core.V(b.CellW, 0)))
	}

	// Bottom, right to left, shifted to the cell's bottom border
	for i := len(bottom) - 2; i >= 0; i-- {
		path = append(path, bottom[i].Add(core.V(0, b.CellH)))
	}

	// Left, bottom to top, dropping the final point that closes the loop
	for i := len(left) - 2; i >= 1; i-- {
		path = append(path, left[i])
	}

	return path
}
