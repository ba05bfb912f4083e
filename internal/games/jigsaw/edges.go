package jigsaw

import (
	"math"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Edge generation parameters. Interior edges are smooth periodic waves;
// the sin(pi*t) envelope pins both endpoints to the cell corners so the
// boundary path always closes exactly.
const (
	// EdgeSegments is the number of line segments per edge polyline.
	EdgeSegments = 12

	// waveCycles is how many full lateral oscillations an interior edge
	// makes along its length.
	waveCycles = 2

	// waveAmplitude is the lateral displacement as a fraction of the
	// opposite cell dimension.
	waveAmplitude = 0.08

	// phaseSteps quantizes the per-edge phase so adjacent edges look
	// distinct while staying a pure function of the grid indices.
	phaseSteps = 9
)

// Polyline is an ordered point sequence local to a cell's top-left corner,
// monotonic along the edge's primary axis.
type Polyline []core.Vec

// EdgeSet holds every boundary polyline of the board exactly once.
// H[r][c] is the horizontal edge above cell (r,c) for r in 0..rows;
// V[c][r] is the vertical edge left of cell (r,c) for c in 0..cols.
// Both cells adjacent to an edge read the same entry, which is what
// guarantees gap-free shared borders.
type EdgeSet struct {
	Rows, Cols int
	H          [][]Polyline
	V          [][]Polyline
}

// BuildEdges deterministically generates the shared edge tables for a board.
// Perimeter edges are straight; interior edges get a wavy lateral offset
// whose phase depends only on the grid indices, so the same dimensions
// always produce the same board.
func BuildEdges(rows, cols int, cellW, cellH float64) *EdgeSet {
	es := &EdgeSet{
		Rows: rows,
		Cols: cols,
		H:    make([][]Polyline, rows+1),
		V:    make([][]Polyline, cols+1),
	}

	for r := 0; r <= rows; r++ {
		es.H[r] = make([]Polyline, cols)
		for c := 0; c < cols; c++ {
			interior := r > 0 && r < rows
			es.H[r][c] = buildEdge(cellW, cellH*waveAmplitude, interior, edgePhase(r, c))
		}
	}

	for c := 0; c <= cols; c++ {
		es.V[c] = make([]Polyline, rows)
		for r := 0; r < rows; r++ {
			interior := c > 0 && c < cols
			// Vertical edges run along Y with lateral offset in X;
			// build along X and swap the components.
			line := buildEdge(cellH, cellW*waveAmplitude, interior, edgePhase(r+3, c+5))
			swapped := make(Polyline, len(line))
			for i, p := range line {
				swapped[i] = core.V(p.Y, p.X)
			}
			es.V[c][r] = swapped
		}
	}

	return es
}

// edgePhase derives the wave phase from the grid indices. Purely a visual
// variation knob; any function of (r,c) keeps the board reproducible.
func edgePhase(r, c int) float64 {
	step := (r*13 + c*7) % phaseSteps
	return 2 * math.Pi * float64(step) / phaseSteps
}

// buildEdge produces a single polyline from (0,0) to (length,0) with the
// lateral wave in Y. Straight edges keep the same point count so piece
// paths always have a fixed size.
func buildEdge(length, amp float64, interior bool, phase float64) Polyline {
	line := make(Polyline, EdgeSegments+1)
	for i := 0; i <= EdgeSegments; i++ {
		t := float64(i) / EdgeSegments
		lateral := 0.0
		if interior {
			lateral = amp * math.Sin(math.Pi*t) * math.Sin(2*math.Pi*waveCycles*t+phase)
		}
		line[i] = core.V(t*length, lateral)
	}
	return line
}
