package jigsaw

import (
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func testBoard(rows, cols int) Board {
	return NewBoard(rows, cols, 120, 80, 4, 120, 80)
}

func TestBuildPiecesCatalog(t *testing.T) {
	b := testBoard(3, 4)
	pieces := BuildPieces(b, BuildEdges(b.Rows, b.Cols, b.CellW, b.CellH))

	if len(pieces) != 12 {
		t.Fatalf("piece count = %d, want 12", len(pieces))
	}

	for i, p := range pieces {
		if p.ID != i {
			t.Errorf("pieces[%d].ID = %d, piece ids must be dense and row-major", i, p.ID)
		}
		if want := b.PieceID(p.Row, p.Col); p.ID != want {
			t.Errorf("piece (%d,%d) has id %d, want %d", p.Row, p.Col, p.ID, want)
		}
		if want := b.CellTarget(p.Row, p.Col); p.Target != want {
			t.Errorf("piece %d target = %v, want %v", p.ID, p.Target, want)
		}
	}
}

func TestPiecePathPointCount(t *testing.T) {
	b := testBoard(2, 3)
	pieces := BuildPieces(b, BuildEdges(b.Rows, b.Cols, b.CellW, b.CellH))

	for _, p := range pieces {
		if len(p.Path) != 4*EdgeSegments {
			t.Errorf("piece %d path has %d points, want %d", p.ID, len(p.Path), 4*EdgeSegments)
		}
	}
}

func TestPiecePathContains(t *testing.T) {
	b := testBoard(2, 3)
	pieces := BuildPieces(b, BuildEdges(b.Rows, b.Cols, b.CellW, b.CellH))

	for _, p := range pieces {
		center := core.V(b.CellW/2, b.CellH/2)
		if !p.Path.Contains(center) {
			t.Errorf("piece %d does not contain its cell center", p.ID)
		}
		if p.Path.Contains(core.V(-b.CellW, -b.CellH)) {
			t.Errorf("piece %d contains a far-away point", p.ID)
		}
	}
}

func TestPieceBoundsCoverPath(t *testing.T) {
	b := testBoard(3, 3)
	pieces := BuildPieces(b, BuildEdges(b.Rows, b.Cols, b.CellW, b.CellH))

	for i := range pieces {
		p := &pieces[i]
		bounds := p.Bounds()
		for j, pt := range p.Path {
			if pt.X < bounds.Min.X || pt.X > bounds.Max.X ||
				pt.Y < bounds.Min.Y || pt.Y > bounds.Max.Y {
				t.Errorf("piece %d path point %d (%v) outside bounds %v", p.ID, j, pt, bounds)
			}
		}
	}
}

// Adjacent pieces read the same edge table entry, so a point's side of the
// shared border decides its owner: wherever the border bulges, exactly one
// of the two pieces contains the probe point.
func TestAdjacentPiecesShareBorder(t *testing.T) {
	b := testBoard(3, 4)
	edges := BuildEdges(b.Rows, b.Cols, b.CellW, b.CellH)
	pieces := BuildPieces(b, edges)

	upper := pieces[b.PieceID(0, 1)]
	lower := pieces[b.PieceID(1, 1)]

	// Probe just above and below the shared horizontal border, well away
	// from the wave amplitude.
	margin := b.CellH * waveAmplitude * 2
	probeUpper := core.V(b.CellW/2, b.CellH-margin)
	probeLower := core.V(b.CellW/2, b.CellH+margin)

	if !upper.Path.Contains(probeUpper) {
		t.Error("upper piece does not contain point above the shared border")
	}
	if upper.Path.Contains(probeLower) {
		t.Error("upper piece contains point below the shared border")
	}

	// The same world points in the lower piece's local frame.
	toLower := upper.Target.Sub(lower.Target)
	if lower.Path.Contains(probeUpper.Add(toLower)) {
		t.Error("lower piece contains point above the shared border")
	}
	if !lower.Path.Contains(probeLower.Add(toLower)) {
		t.Error("lower piece does not contain point below the shared border")
	}
}

func TestNewBoardCentersPicture(t *testing.T) {
	b := NewBoard(2, 2, 100, 60, 5, 200, 120)

	// Uniform scale: the picture keeps its aspect ratio.
	if got, want := b.W/b.H, 200.0/120.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("aspect ratio = %v, want %v", got, want)
	}

	// Centered: equal margins on both axes.
	if right := 100 - (b.Origin.X + b.W); right < b.Origin.X-1e-9 || right > b.Origin.X+1e-9 {
		t.Errorf("horizontal margins differ: left %v, right %v", b.Origin.X, right)
	}
	if bottom := 60 - (b.Origin.Y + b.H); bottom < b.Origin.Y-1e-9 || bottom > b.Origin.Y+1e-9 {
		t.Errorf("vertical margins differ: top %v, bottom %v", b.Origin.Y, bottom)
	}
}

func TestBoardInBounds(t *testing.T) {
	b := testBoard(3, 4)

	tests := []struct {
		name string
		r, c int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last", 2, 3, true},
		{"row overflow", 3, 0, false},
		{"col overflow", 0, 4, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.InBounds(tt.r, tt.c); got != tt.want {
				t.Errorf("InBounds(%d, %d) = %v, want %v", tt.r, tt.c, got, tt.want)
			}
		})
	}
}
