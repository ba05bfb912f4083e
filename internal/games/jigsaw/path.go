package jigsaw

import "github.com/vovakirdan/tui-jigsaw/internal/core"

// Path is a closed polygon boundary, stored as an ordered point list in
// coordinates local to a piece's top-left corner. The closing segment from
// the last point back to the first is implicit.
type Path []core.Vec

// Bounds returns the axis-aligned bounding box of the path.
func (p Path) Bounds() core.Box {
	if len(p) == 0 {
		return core.Box{}
	}
	b := core.Box{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		if pt.X < b.Min.X {
			b.Min.X = pt.X
		}
		if pt.Y < b.Min.Y {
			b.Min.Y = pt.Y
		}
		if pt.X > b.Max.X {
			b.Max.X = pt.X
		}
		if pt.Y > b.Max.Y {
			b.Max.Y = pt.Y
		}
	}
	return b
}

// Contains reports whether the point lies inside the closed path, using the
// even-odd crossing rule. The paths built from the shared edge tables never
// self-intersect, so even-odd and nonzero winding agree.
func (p Path) Contains(pt core.Vec) bool {
	inside := false
	n := len(p)
	for i := 0; i < n; i++ {
		a := p[i]
		b := p[(i+1)%n]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		// X coordinate where the edge crosses the horizontal ray at pt.Y
		x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}
