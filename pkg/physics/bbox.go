// pkg/physics/bbox.go
package physics

import "math"

// BoundingBox is a rectangle given by two opposite corners. Nothing keeps
// UpperLeft above and left of BottomRight: Rotate moves the corners
// independently, so consumers read the extent through Min and Max.
type BoundingBox struct {
	UpperLeft   Vector2D
	BottomRight Vector2D
}

// NewBoundingBox creates a box from its upper-left corner and a size
func NewBoundingBox(upperLeft Vector2D, width, height float64) BoundingBox {
	return BoundingBox{
		UpperLeft:   upperLeft,
		BottomRight: upperLeft.Add(Vector2D{X: width, Y: height}),
	}
}

// BoundingBoxOf returns the smallest axis-aligned box enclosing points.
// An empty argument list yields the zero box.
func BoundingBoxOf(points ...Vector2D) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return BoundingBox{UpperLeft: lo, BottomRight: hi}
}

// Rotate rotates both corners about the coordinate origin. The result is
// not re-aligned and may not bound the rotated shape.
func (b BoundingBox) Rotate(angle Angle) BoundingBox {
	return BoundingBox{
		UpperLeft:   b.UpperLeft.Rotate(angle),
		BottomRight: b.BottomRight.Rotate(angle),
	}
}

// Translate moves both corners by v
func (b BoundingBox) Translate(v Vector2D) BoundingBox {
	return BoundingBox{
		UpperLeft:   b.UpperLeft.Add(v),
		BottomRight: b.BottomRight.Add(v),
	}
}

// Transform rotates all four corners about the origin, re-encloses them and
// moves the result by offset. Unlike Rotate the result always covers the
// rotated rectangle.
func (b BoundingBox) Transform(rotation Angle, offset Vector2D) BoundingBox {
	corners := b.Corners()
	for i := range corners {
		corners[i] = corners[i].Rotate(rotation)
	}
	return BoundingBoxOf(corners[:]...).Translate(offset)
}

// Min returns the corner with the smallest coordinates
func (b BoundingBox) Min() Vector2D {
	return Vector2D{
		X: math.Min(b.UpperLeft.X, b.BottomRight.X),
		Y: math.Min(b.UpperLeft.Y, b.BottomRight.Y),
	}
}

// Max returns the corner with the largest coordinates
func (b BoundingBox) Max() Vector2D {
	return Vector2D{
		X: math.Max(b.UpperLeft.X, b.BottomRight.X),
		Y: math.Max(b.UpperLeft.Y, b.BottomRight.Y),
	}
}

// Normalize returns the same rectangle with UpperLeft at Min and BottomRight at Max
func (b BoundingBox) Normalize() BoundingBox {
	return BoundingBox{UpperLeft: b.Min(), BottomRight: b.Max()}
}

// Width returns the horizontal extent
func (b BoundingBox) Width() float64 {
	return math.Abs(b.BottomRight.X - b.UpperLeft.X)
}

// Height returns the vertical extent
func (b BoundingBox) Height() float64 {
	return math.Abs(b.BottomRight.Y - b.UpperLeft.Y)
}

// Center returns the midpoint of the two corners
func (b BoundingBox) Center() Vector2D {
	return b.UpperLeft.Add(b.BottomRight).Scale(0.5)
}

// Corners returns the four corners of the axis-aligned rectangle spanned by
// UpperLeft and BottomRight, clockwise from UpperLeft.
func (b BoundingBox) Corners() [4]Vector2D {
	return [4]Vector2D{
		b.UpperLeft,
		{X: b.BottomRight.X, Y: b.UpperLeft.Y},
		b.BottomRight,
		{X: b.UpperLeft.X, Y: b.BottomRight.Y},
	}
}

// Contains reports whether point lies inside the box (edges included)
func (b BoundingBox) Contains(point Vector2D) bool {
	lo, hi := b.Min(), b.Max()
	return point.X >= lo.X && point.X <= hi.X && point.Y >= lo.Y && point.Y <= hi.Y
}

// Intersects reports whether the two boxes overlap with positive area.
// Boxes that only touch along an edge do not intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	aLo, aHi := b.Min(), b.Max()
	bLo, bHi := other.Min(), other.Max()
	return aLo.X < bHi.X && aHi.X > bLo.X &&
		aLo.Y < bHi.Y && aHi.Y > bLo.Y
}
