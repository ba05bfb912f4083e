package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Snapshot captures the observable puzzle state for determinism testing.
type Snapshot struct {
	Tick       int
	Moves      int
	Clusters   int
	Solved     bool
	DragActive bool

	// PiecePos holds every piece's world position, indexed by piece id.
	PiecePos []core.Vec
}

// Snapshot returns the current puzzle snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Moves:      g.moves,
		Solved:     g.Solved(),
		DragActive: g.drag.active,
		PiecePos:   make([]core.Vec, len(g.pieces)),
	}
	if g.clusters != nil {
		snap.Clusters = g.clusters.Count()
		for i := range g.pieces {
			piece := &g.pieces[i]
			snap.PiecePos[i] = piece.Target.Add(g.clusters.ClusterOf(piece.ID).Pos)
		}
	}
	return snap
}
