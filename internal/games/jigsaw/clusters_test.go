package jigsaw

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func TestCreateSingletons(t *testing.T) {
	cs := NewClusters()
	cs.CreateSingletons(6)

	if cs.Count() != 6 {
		t.Fatalf("Count() = %d, want 6", cs.Count())
	}

	for pieceID := 0; pieceID < 6; pieceID++ {
		cl := cs.ClusterOf(pieceID)
		if cl == nil {
			t.Fatalf("piece %d has no cluster", pieceID)
		}
		if len(cl.Members) != 1 || cl.Members[0] != pieceID {
			t.Errorf("cluster of piece %d has members %v, want [%d]", pieceID, cl.Members, pieceID)
		}
		if (cl.Pos != core.Vec{}) {
			t.Errorf("singleton cluster of piece %d has offset %v, want zero", pieceID, cl.Pos)
		}
	}
}

func TestMergePreferLarger(t *testing.T) {
	t.Run("larger survives", func(t *testing.T) {
		cs := NewClusters()
		cs.CreateSingletons(4)

		// Grow one cluster to size 2 first.
		a := cs.ClusterOf(0).ID
		grown := cs.MergePreferLarger(a, cs.ClusterOf(1).ID)

		// Merging a singleton into it keeps the larger cluster's id.
		got := cs.MergePreferLarger(cs.ClusterOf(2).ID, grown)
		if got != grown {
			t.Errorf("survivor = %d, want larger cluster %d", got, grown)
		}
		if cs.Count() != 2 {
			t.Errorf("Count() = %d, want 2", cs.Count())
		}
	})

	t.Run("tie keeps second argument", func(t *testing.T) {
		cs := NewClusters()
		cs.CreateSingletons(2)

		first := cs.ClusterOf(0).ID
		second := cs.ClusterOf(1).ID
		if got := cs.MergePreferLarger(first, second); got != second {
			t.Errorf("survivor = %d, want second argument %d", got, second)
		}
	})

	t.Run("same cluster is a no-op", func(t *testing.T) {
		cs := NewClusters()
		cs.CreateSingletons(3)

		id := cs.ClusterOf(0).ID
		if got := cs.MergePreferLarger(id, id); got != id {
			t.Errorf("survivor = %d, want %d", got, id)
		}
		if cs.Count() != 3 {
			t.Errorf("Count() = %d, want 3", cs.Count())
		}
	})

	t.Run("survivor keeps its position", func(t *testing.T) {
		cs := NewClusters()
		cs.CreateSingletons(3)

		a := cs.ClusterOf(0)
		b := cs.ClusterOf(1)
		a.Pos = core.V(5, 7)
		b.Pos = core.V(5, 7)
		cs.MergePreferLarger(a.ID, b.ID) // tie, b survives

		c := cs.ClusterOf(2)
		c.Pos = core.V(9, 9)
		survivor := cs.MergePreferLarger(b.ID, c.ID) // b larger, b survives
		if got := cs.ByID(survivor).Pos; got != core.V(5, 7) {
			t.Errorf("survivor position = %v, want (5, 7)", got)
		}
	})
}

// Random merges must keep the piece partition intact: every piece belongs
// to exactly one live cluster, and the piece index agrees with membership.
func TestClustersPartitionInvariant(t *testing.T) {
	const pieces = 24
	cs := NewClusters()
	cs.CreateSingletons(pieces)
	rng := rand.New(rand.NewSource(7))

	for cs.Count() > 1 {
		order := cs.All()
		a := order[rng.Intn(len(order))]
		b := order[rng.Intn(len(order))]
		if a == b {
			continue
		}
		before := cs.Count()
		cs.MergePreferLarger(a.ID, b.ID)
		if cs.Count() != before-1 {
			t.Fatalf("merge changed count from %d to %d, want %d", before, cs.Count(), before-1)
		}

		seen := make(map[int]int)
		for _, cl := range cs.All() {
			for _, pieceID := range cl.Members {
				if prev, dup := seen[pieceID]; dup {
					t.Fatalf("piece %d in clusters %d and %d", pieceID, prev, cl.ID)
				}
				seen[pieceID] = cl.ID
				if cs.ClusterOf(pieceID) != cl {
					t.Fatalf("piece index disagrees with membership for piece %d", pieceID)
				}
			}
		}
		if len(seen) != pieces {
			t.Fatalf("partition covers %d pieces, want %d", len(seen), pieces)
		}
	}
}

func TestPromote(t *testing.T) {
	cs := NewClusters()
	cs.CreateSingletons(4)

	target := cs.ClusterOf(1)
	cs.Promote(target.ID)

	order := cs.All()
	if order[len(order)-1] != target {
		t.Errorf("promoted cluster is not frontmost")
	}
	if cs.Count() != 4 {
		t.Errorf("Count() = %d after promote, want 4", cs.Count())
	}

	// Promoting the frontmost cluster keeps the order stable.
	cs.Promote(target.ID)
	if got := cs.All()[len(cs.All())-1]; got != target {
		t.Errorf("re-promoting frontmost cluster moved it")
	}
}
