package core

import "math"

// Vec represents a 2D point or vector in pixel coordinates.
// X increases to the right, Y increases downward (screen coordinates).
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector scaled by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Length returns the length of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// ClampLength returns the vector with its magnitude capped at max,
// direction preserved.
func (v Vec) ClampLength(max float64) Vec {
	l := v.Length()
	if l <= max {
		return v
	}
	return v.Scale(max / l)
}

// Round returns the vector with both components rounded to the nearest
// integer.
func (v Vec) Round() Vec {
	return Vec{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// Box is an axis-aligned bounding box in pixel coordinates.
type Box struct {
	Min, Max Vec
}

// Contains returns true if the point is inside the box (half-open on the
// max edges, consistent with Rect).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Translate returns the box shifted by the given offset.
func (b Box) Translate(off Vec) Box {
	return Box{Min: b.Min.Add(off), Max: b.Max.Add(off)}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}
