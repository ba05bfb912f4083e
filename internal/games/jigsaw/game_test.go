package jigsaw

import (
	"sync"
	"testing"

	"github.com/vovakirdan/tui-jigsaw/internal/config"
	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "jigsaw" {
		t.Errorf("ID() = %q, want %q", g.ID(), "jigsaw")
	}
	if g.Title() == "" {
		t.Error("Title() is empty")
	}
}

func TestResetBuildsCatalog(t *testing.T) {
	g := newTestGame(t, 3, 4, 1)

	state := g.State()
	if state.Pieces != 12 {
		t.Errorf("Pieces = %d, want 12", state.Pieces)
	}
	if state.Clusters != 12 {
		t.Errorf("Clusters = %d after reset, want one per piece", state.Clusters)
	}
	if state.Solved {
		t.Error("freshly shuffled puzzle reports solved")
	}
	if state.Moves != 0 || state.Ticks != 0 {
		t.Errorf("Moves/Ticks = %d/%d after reset, want 0/0", state.Moves, state.Ticks)
	}
	if g.picture == nil {
		t.Fatal("no picture after reset")
	}
	pb := g.picture.Bounds()
	if pb.Dx() != int(g.board.W+0.5) || pb.Dy() != int(g.board.H+0.5) {
		t.Errorf("picture is %dx%d, want board size %vx%v", pb.Dx(), pb.Dy(), g.board.W, g.board.H)
	}
}

func TestResetRebuildsEverything(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	// Merge a pair, then re-layout: a reset invalidates all clusters.
	g.clusters.MergePreferLarger(g.clusters.ClusterOf(0).ID, g.clusters.ClusterOf(1).ID)
	g.Reset(core.RuntimeConfig{ScreenW: 90, ScreenH: 36, TickRate: 60, Seed: 2})

	if got := g.clusters.Count(); got != 6 {
		t.Errorf("Clusters = %d after re-layout, want 6 singletons", got)
	}
}

func TestDeterministicShuffle(t *testing.T) {
	a := newTestGame(t, 4, 6, 1234)
	b := newTestGame(t, 4, 6, 1234)

	snapA, snapB := a.Snapshot(), b.Snapshot()
	if len(snapA.PiecePos) != len(snapB.PiecePos) {
		t.Fatalf("piece counts differ: %d vs %d", len(snapA.PiecePos), len(snapB.PiecePos))
	}
	for i := range snapA.PiecePos {
		if snapA.PiecePos[i] != snapB.PiecePos[i] {
			t.Fatalf("piece %d position differs for equal seeds: %v vs %v",
				i, snapA.PiecePos[i], snapB.PiecePos[i])
		}
	}

	// Different seeds produce a different scatter.
	c := newTestGame(t, 4, 6, 99)
	snapC := c.Snapshot()
	same := true
	for i := range snapA.PiecePos {
		if snapA.PiecePos[i] != snapC.PiecePos[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced an identical scatter")
	}
}

func TestStepCountsTicks(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if got := g.State().Ticks; got != 10 {
		t.Errorf("Ticks = %d after 10 steps, want 10", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	state := g.Step(in).State
	if !state.Paused {
		t.Fatal("pause action did not pause")
	}

	// Ticks and inputs are ignored while paused.
	in.Clear()
	in.AddPointer(core.PointerDown, core.V(50, 40))
	for i := 0; i < 5; i++ {
		g.Step(in)
	}
	if got := g.State().Ticks; got != 0 {
		t.Errorf("Ticks advanced to %d while paused, want 0", got)
	}
	if g.drag.active {
		t.Error("drag started while paused")
	}

	in.Clear()
	in.Set(core.ActionPause)
	if state := g.Step(in).State; state.Paused {
		t.Error("second pause action did not unpause")
	}
}

func TestGhostToggle(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionGhost)
	g.Step(in)
	if !g.ghost {
		t.Error("ghost action did not enable the preview")
	}
	g.Step(in)
	if g.ghost {
		t.Error("second ghost action did not disable the preview")
	}
}

func TestShuffleActionRestartsClock(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	in := core.NewInputFrame()
	for i := 0; i < 30; i++ {
		g.Step(in)
	}

	in.Set(core.ActionShuffle)
	state := g.Step(in).State
	if state.Ticks > 1 {
		t.Errorf("Ticks = %d after shuffle, want restart from zero", state.Ticks)
	}
	if g.drag.active {
		t.Error("shuffle left a drag active")
	}
}

func TestSolvedStopsClock(t *testing.T) {
	g := newTestGame(t, 1, 2, 1)

	// Solve by snapping the pair together.
	g.clusters.ClusterOf(0).Pos = core.V(10, 6)
	right := g.clusters.ClusterOf(1)
	right.Pos = core.V(11, 6)
	g.drag = dragSession{cluster: right.ID, active: true}
	g.endDrag()

	if !g.Solved() {
		t.Fatal("puzzle not solved after final merge")
	}

	ticks := g.State().Ticks
	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if got := g.State().Ticks; got != ticks {
		t.Errorf("Ticks advanced from %d to %d after solving, want frozen", ticks, got)
	}
}

func TestPauseCancelsDrag(t *testing.T) {
	g := newTestGame(t, 2, 3, 1)

	cl := g.clusters.ClusterOf(0)
	grab := g.pieces[0].Target.Add(cl.Pos).Add(g.pieces[0].Size.Scale(0.5))

	in := core.NewInputFrame()
	in.AddPointer(core.PointerDown, grab)
	g.Step(in)
	if !g.drag.active {
		t.Fatal("pointer down on a piece did not start a drag")
	}

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)
	if g.drag.active {
		t.Fatal("pausing left the drag active")
	}

	// A release swallowed by the pause must not leave motion behind.
	in.Clear()
	in.AddPointer(core.PointerUp, grab.Add(core.V(30, 0)))
	g.Step(in)

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)

	before := cl.Pos
	in.Clear()
	for i := 0; i < 30; i++ {
		g.Step(in)
	}
	if cl.Pos != before {
		t.Errorf("cluster drifted from %v to %v after unpause", before, cl.Pos)
	}
}

func TestOptionsGamesIgnorePackageKnobs(t *testing.T) {
	easy := NewWithOptions(Options{
		ConfigPath: missingConfigPath(t),
		Difficulty: config.DifficultyEasy,
	})
	hard := NewWithOptions(Options{
		ConfigPath: missingConfigPath(t),
		Difficulty: config.DifficultyHard,
	})

	SetDifficultyPreset("expert")
	t.Cleanup(func() { SetDifficultyPreset("") })

	rt := core.RuntimeConfig{ScreenW: 120, ScreenH: 48, TickRate: 60, Seed: 1}
	easy.Reset(rt)
	hard.Reset(rt)

	if got, want := easy.State().Pieces, config.PieceCount(config.DifficultyEasy); got != want {
		t.Errorf("easy game has %d pieces, want %d", got, want)
	}
	if got, want := hard.State().Pieces, config.PieceCount(config.DifficultyHard); got != want {
		t.Errorf("hard game has %d pieces, want %d", got, want)
	}
}

// A game with per-instance options never touches the package knobs, so one
// session picking a difficulty cannot disturb a game resetting on another
// goroutine. Meaningful under the race detector.
func TestConcurrentSessionsDoNotShareKnobs(t *testing.T) {
	g := NewWithOptions(Options{
		ConfigPath: missingConfigPath(t),
		Difficulty: config.DifficultyNormal,
	})
	t.Cleanup(func() { SetDifficultyPreset("") })

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			SetDifficultyPreset("hard")
			SetDifficultyPreset("easy")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: int64(i)})
		}
	}()
	wg.Wait()

	if got, want := g.State().Pieces, config.PieceCount(config.DifficultyNormal); got != want {
		t.Errorf("game has %d pieces, want its own preset's %d", got, want)
	}
}

func TestStepDeterministicUnderSameInput(t *testing.T) {
	script := func(g *Game) Snapshot {
		in := core.NewInputFrame()
		grab := g.pieces[2].Target.Add(g.clusters.ClusterOf(2).Pos).
			Add(g.pieces[2].Size.Scale(0.5))
		in.AddPointer(core.PointerDown, grab)
		g.Step(in)

		in.Clear()
		in.AddPointer(core.PointerMove, grab.Add(core.V(20, 10)))
		g.Step(in)

		in.Clear()
		for i := 0; i < 60; i++ {
			g.Step(in)
		}
		in.AddPointer(core.PointerUp, grab.Add(core.V(20, 10)))
		g.Step(in)
		return g.Snapshot()
	}

	a := script(newTestGame(t, 3, 4, 777))
	b := script(newTestGame(t, 3, 4, 777))

	if a.Tick != b.Tick || a.Moves != b.Moves || a.Clusters != b.Clusters {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	for i := range a.PiecePos {
		if a.PiecePos[i] != b.PiecePos[i] {
			t.Fatalf("piece %d position diverged: %v vs %v", i, a.PiecePos[i], b.PiecePos[i])
		}
	}
}

func TestTinyScreenRefusesLayout(t *testing.T) {
	g := NewWithOptions(Options{
		ConfigPath: missingConfigPath(t),
		Grid:       config.GridConfig{Rows: 2, Cols: 3},
	})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	if !g.screenTooSmall {
		t.Fatal("20x8 screen accepted for layout")
	}

	// Stepping and rendering must stay safe.
	in := core.NewInputFrame()
	in.AddPointer(core.PointerDown, core.V(5, 5))
	g.Step(in)

	s := core.NewScreen(20, 8)
	g.Render(s)
}
