package jigsaw

import (
	"math"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// dragSession tracks the single active drag. At most one exists at a time;
// the design assumes one pointer (multi-touch is out of scope).
type dragSession struct {
	cluster int      // Dragged cluster id
	grab    core.Vec // Pointer-to-cluster offset recorded at pick-up
	target  core.Vec // Position the cluster eases toward
	active  bool
}

// gridNeighbors are the four grid-adjacent offsets checked during a snap
// scan. Out-of-range coordinates are simply not neighbors.
var gridNeighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// hitTest returns the topmost piece containing the point, or nil.
// Clusters are walked most-recently-interacted first and members in reverse
// insertion order, so the last cluster the user touched takes input
// priority over overlapping siblings. A cheap bounding-box check rejects
// pieces before the exact point-in-path test.
func (g *Game) hitTest(p core.Vec) (*Piece, *Cluster) {
	order := g.clusters.All()
	for i := len(order) - 1; i >= 0; i-- {
		cl := order[i]
		for j := len(cl.Members) - 1; j >= 0; j-- {
			piece := &g.pieces[cl.Members[j]]
			world := piece.Target.Add(cl.Pos)
			if !piece.Bounds().Translate(world).Contains(p) {
				continue
			}
			if piece.Path.Contains(p.Sub(world)) {
				return piece, cl
			}
		}
	}
	return nil, nil
}

// beginDrag starts a drag if the pointer hits a piece. The hit cluster is
// promoted to the front of the render and hit-test order.
func (g *Game) beginDrag(p core.Vec) {
	if g.drag.active {
		return
	}
	piece, cl := g.hitTest(p)
	if piece == nil {
		return
	}

	g.clusters.Promote(cl.ID)
	g.drag = dragSession{
		cluster: cl.ID,
		grab:    p.Sub(cl.Pos),
		target:  cl.Pos,
		active:  true,
	}
}

// moveDrag updates the drag target instantly on pointer move.
// The eased cluster position is the only state rendering reads.
func (g *Game) moveDrag(p core.Vec) {
	if !g.drag.active {
		return
	}
	g.drag.target = p.Sub(g.drag.grab)
}

// updateDrag eases the dragged cluster toward the target by a fixed
// fraction of the remaining distance, with the step magnitude clamped.
// Runs once per simulation tick while a drag is active.
func (g *Game) updateDrag() {
	if !g.drag.active {
		return
	}
	cl := g.clusters.ByID(g.drag.cluster)
	if cl == nil {
		g.drag.active = false
		return
	}

	step := g.drag.target.Sub(cl.Pos).
		Scale(g.cfg.Physics.DragLerp).
		ClampLength(g.cfg.Physics.MaxStep)
	cl.Pos = cl.Pos.Add(step)
}

// cancelDrag unconditionally clears the active drag session without any
// snap evaluation.
func (g *Game) cancelDrag() {
	g.drag.active = false
}

// endDrag releases the dragged cluster: the eased position is rounded and
// the snap scan runs against grid neighbors.
func (g *Game) endDrag() {
	if !g.drag.active {
		return
	}
	id := g.drag.cluster
	g.drag.active = false

	cl := g.clusters.ByID(id)
	if cl == nil {
		return
	}
	cl.Pos = cl.Pos.Round()
	g.trySnap(id)
}

// trySnap examines every member of the released cluster for grid-adjacent
// neighbors in other clusters. Aligning a piece with its neighbor means
// adopting the neighbor cluster's offset exactly, so the ideal offset is
// that cluster's position; if the released cluster is within snap distance
// of it, the offset snaps to the ideal value and the clusters merge.
// A member merges at most once, and with lock_on_snap the whole release
// stops after the first merge.
func (g *Game) trySnap(clusterID int) {
	cl := g.clusters.ByID(clusterID)
	if cl == nil {
		return
	}

	snap := g.cfg.Physics.SnapDistance
	members := append([]int(nil), cl.Members...)
	current := clusterID

	for _, pieceID := range members {
		piece := &g.pieces[pieceID]
		merged := false

		for _, d := range gridNeighbors {
			nr, nc := piece.Row+d[0], piece.Col+d[1]
			if !g.board.InBounds(nr, nc) {
				continue
			}
			neighbor := g.clusters.ClusterOf(g.board.PieceID(nr, nc))
			if neighbor.ID == current {
				continue
			}

			me := g.clusters.ByID(current)
			ideal := neighbor.Pos
			if me.Pos.Dist(ideal) > snap {
				continue
			}

			me.Pos = ideal
			current = g.clusters.MergePreferLarger(current, neighbor.ID)
			g.moves++
			if g.snapCue != nil {
				g.snapCue()
			}
			merged = true
			break
		}

		if merged && g.cfg.Physics.LockOnSnap {
			break
		}
	}
}

// shuffleClusters scatters every cluster across a disk centered on the
// viewport: uniform angle, uniform radius. Each cluster's first member is
// its representative point. Shuffling never merges or splits clusters.
func (g *Game) shuffleClusters() {
	center := core.V(float64(g.viewW)/2, float64(g.viewH)/2)
	radius := g.cfg.Shuffle.RadiusFrac * math.Min(float64(g.viewW), float64(g.viewH))

	for _, cl := range g.clusters.All() {
		angle := g.rng.Float64() * 2 * math.Pi
		dist := g.rng.Float64() * radius
		desired := center.Add(core.V(math.Cos(angle)*dist, math.Sin(angle)*dist))
		cl.Pos = desired.Sub(g.repTarget(cl)).Round()
	}

	if g.cfg.Shuffle.Separate {
		g.separateClusters()
	}
}

// separateClusters runs a fixed number of relaxation passes over all
// cluster pairs, pushing too-close pairs apart along the connecting vector
// by half the deficit each. Approximate on purpose: it reduces overlap but
// does not guarantee none. Zero-distance pairs are left untouched.
func (g *Game) separateClusters() {
	threshold := g.cfg.Shuffle.SpacingFrac * math.Min(g.board.CellW, g.board.CellH)
	order := g.clusters.All()

	for pass := 0; pass < g.cfg.Shuffle.Passes; pass++ {
		for i := 0; i < len(order); i++ {
			for j := i + 1; j < len(order); j++ {
				a, b := order[i], order[j]
				delta := g.repPoint(b).Sub(g.repPoint(a))
				dist := delta.Length()
				if dist == 0 || dist >= threshold {
					continue
				}
				push := delta.Normalize().Scale((threshold - dist) / 2)
				a.Pos = a.Pos.Sub(push)
				b.Pos = b.Pos.Add(push)
			}
		}
	}
}

// repTarget returns the representative point of a cluster at identity
// offset: the center of its first member's cell.
func (g *Game) repTarget(cl *Cluster) core.Vec {
	rep := &g.pieces[cl.Members[0]]
	return rep.Target.Add(rep.Size.Scale(0.5))
}

// repPoint returns the representative point at the cluster's current
// offset.
func (g *Game) repPoint(cl *Cluster) core.Vec {
	return g.repTarget(cl).Add(cl.Pos)
}

// resetPositions returns every cluster to its target position without
// changing membership.
func (g *Game) resetPositions() {
	for _, cl := range g.clusters.All() {
		cl.Pos = core.Vec{}
	}
}
