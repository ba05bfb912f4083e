package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Cluster is a maximal connected set of pieces that move together.
// Pos is the offset added to every member's target to get its world
// position. Clusters merge but never split.
type Cluster struct {
	ID      int
	Members []int // Piece ids in insertion order; never empty
	Pos     core.Vec
}

// Clusters is the registry grouping pieces into movable clusters.
// The order slice doubles as render and interaction order: clusters are
// drawn front-to-back as last-to-first, and hit-testing walks it from the
// most recently interacted cluster backwards.
//
// The piece index is maintained in lockstep with membership: a merge
// updates both before anyone can observe the new state.
type Clusters struct {
	order   []*Cluster      // Back-to-front; last = most recently interacted
	byID    map[int]*Cluster
	byPiece []int // Piece id -> cluster id
	nextID  int
}

// NewClusters creates an empty registry.
func NewClusters() *Clusters {
	return &Clusters{byID: make(map[int]*Cluster)}
}

// CreateSingletons resets the registry to one cluster per piece with
// identity offsets. Cluster ids come from a monotonic counter; they only
// need uniqueness, not unpredictability.
func (cs *Clusters) CreateSingletons(pieceCount int) {
	cs.order = make([]*Cluster, 0, pieceCount)
	cs.byID = make(map[int]*Cluster, pieceCount)
	cs.byPiece = make([]int, pieceCount)
	cs.nextID = 0

	for id := 0; id < pieceCount; id++ {
		cl := &Cluster{ID: cs.nextID, Members: []int{id}}
		cs.nextID++
		cs.order = append(cs.order, cl)
		cs.byID[cl.ID] = cl
		cs.byPiece[id] = cl.ID
	}
}

// Count returns the number of clusters. The puzzle is solved at one.
func (cs *Clusters) Count() int {
	return len(cs.order)
}

// ClusterOf returns the cluster containing the given piece.
func (cs *Clusters) ClusterOf(pieceID int) *Cluster {
	return cs.byID[cs.byPiece[pieceID]]
}

// ByID returns the cluster with the given id, or nil if it was absorbed.
func (cs *Clusters) ByID(id int) *Cluster {
	return cs.byID[id]
}

// All returns the clusters in back-to-front order. The slice is owned by
// the registry; callers must not mutate it.
func (cs *Clusters) All() []*Cluster {
	return cs.order
}

// Promote moves the cluster to the front of the interaction order
// (the end of the slice), preserving members and position.
func (cs *Clusters) Promote(id int) {
	for i, cl := range cs.order {
		if cl.ID == id {
			cs.order = append(append(cs.order[:i:i], cs.order[i+1:]...), cl)
			return
		}
	}
}

// MergePreferLarger folds the smaller cluster's members into the larger
// one and discards the smaller cluster's identity. On a tie the second
// argument survives, which keeps the operation deterministic. The
// survivor's position is kept; callers align positions before merging.
// Returns the surviving cluster's id.
func (cs *Clusters) MergePreferLarger(a, b int) int {
	ca, cb := cs.byID[a], cs.byID[b]
	if ca == nil || cb == nil || ca == cb {
		if cb != nil {
			return b
		}
		return a
	}

	survivor, absorbed := cb, ca
	if len(ca.Members) > len(cb.Members) {
		survivor, absorbed = ca, cb
	}

	survivor.Members = append(survivor.Members, absorbed.Members...)
	for _, pieceID := range absorbed.Members {
		cs.byPiece[pieceID] = survivor.ID
	}

	delete(cs.byID, absorbed.ID)
	for i, cl := range cs.order {
		if cl == absorbed {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}

	return survivor.ID
}
