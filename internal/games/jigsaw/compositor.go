package jigsaw

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jigsaw/internal/core"
)

// Render draws the current puzzle state to the screen buffer:
// board background, optional ghost preview, pieces back-to-front, HUD, and
// state overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderBoard(dst)
	if g.ghost {
		g.renderGhost(dst)
	}
	g.renderPieces(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderBoard fills the assembled picture's footprint with the board
// background color.
func (g *Game) renderBoard(dst *core.Screen) {
	x0 := int(math.Floor(g.board.Origin.X))
	y0 := int(math.Floor(g.board.Origin.Y))
	x1 := int(math.Ceil(g.board.Origin.X + g.board.W))
	y1 := int(math.Ceil(g.board.Origin.Y + g.board.H))

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dst.SetPixel(px, py, core.ColorBoard)
		}
	}
}

// renderGhost draws the complete picture dimmed inside the board area, as
// a placement aid beneath the pieces.
func (g *Game) renderGhost(dst *core.Screen) {
	x0 := int(math.Floor(g.board.Origin.X))
	y0 := int(math.Floor(g.board.Origin.Y))

	bounds := g.picture.Bounds()
	for iy := 0; iy < bounds.Dy(); iy++ {
		for ix := 0; ix < bounds.Dx(); ix++ {
			c := g.picture.RGBAAt(bounds.Min.X+ix, bounds.Min.Y+iy)
			dst.SetPixel(x0+ix, y0+iy, core.NewColor(c.R, c.G, c.B).Dim(0.35))
		}
	}
}

// renderPieces composites every piece at its world position: back-to-front
// cluster order, members in insertion order, each pixel clipped by the
// piece's boundary path and sampled from the piece's proportional slice of
// the scaled picture.
func (g *Game) renderPieces(dst *core.Screen) {
	for _, cl := range g.clusters.All() {
		for _, pieceID := range cl.Members {
			g.renderPiece(dst, &g.pieces[pieceID], cl.Pos)
		}
	}
}

// renderPiece rasterizes one piece. Pixel centers are tested against the
// boundary path; because adjacent pieces share the exact same edge
// polyline, every pixel inside the assembled picture belongs to exactly
// one piece and no seams appear.
func (g *Game) renderPiece(dst *core.Screen, piece *Piece, clusterPos core.Vec) {
	world := piece.Target.Add(clusterPos)
	bb := piece.Bounds().Translate(world)

	x0 := max(int(math.Floor(bb.Min.X)), 0)
	y0 := max(int(math.Floor(bb.Min.Y)), 0)
	x1 := min(int(math.Ceil(bb.Max.X)), g.viewW)
	y1 := min(int(math.Ceil(bb.Max.Y)), g.viewH)

	picBounds := g.picture.Bounds()
	picW, picH := picBounds.Dx(), picBounds.Dy()

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			local := core.V(float64(px)+0.5, float64(py)+0.5).Sub(world)
			if !piece.Path.Contains(local) {
				continue
			}

			// Source pixel: the piece's slice of the board-scaled picture
			sx := core.Clamp(int(float64(piece.Col)*g.board.CellW+local.X), 0, picW-1)
			sy := core.Clamp(int(float64(piece.Row)*g.board.CellH+local.Y), 0, picH-1)
			c := g.picture.RGBAAt(picBounds.Min.X+sx, picBounds.Min.Y+sy)
			dst.SetPixel(px, py, core.NewColor(c.R, c.G, c.B))
		}
	}
}

// renderHUD draws the status line and key hints.
func (g *Game) renderHUD(dst *core.Screen) {
	state := g.State()

	title := "Jigsaw"
	dst.DrawTextColored(1, 0, title, core.ColorOrange)

	status := fmt.Sprintf("Pieces: %d  Clusters: %d  Moves: %d  Time: %s",
		state.Pieces, state.Clusters, state.Moves, g.formatElapsed())
	dst.DrawTextColored(len(title)+3, 0, status, core.ColorWhite)

	hints := "drag: mouse  s: shuffle  r: reset  g: ghost  p: pause  q: quit"
	dst.DrawTextColored(1, dst.Height()-1, hints, core.ColorGray)
}

// renderOverlay draws the solved and paused banners.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.Solved():
		subtitle := fmt.Sprintf("Time: %s  |  Moves: %d  |  S to shuffle again", g.formatElapsed(), g.moves)
		g.drawCenteredBox(dst, "PUZZLE SOLVED!", subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box over the play area.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorGreen)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// formatElapsed renders the tick counter as mm:ss.
func (g *Game) formatElapsed() string {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	secs := g.tick / rate
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
