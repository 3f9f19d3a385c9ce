// pkg/physics/circle.go
package physics

// Circle represents a circular outline
type Circle struct {
	Center Vector2D
	Radius float64
}

// CircleIn returns the largest circle centred in box. For non-square boxes
// the radius follows the shorter side.
func CircleIn(box BoundingBox) Circle {
	r := box.Width()
	if h := box.Height(); h < r {
		r = h
	}
	return Circle{Center: box.Center(), Radius: r / 2}
}

// Bounds returns the square that circumscribes the circle
func (c Circle) Bounds() BoundingBox {
	offset := Vector2D{X: c.Radius, Y: c.Radius}
	return BoundingBox{
		UpperLeft:   c.Center.Sub(offset),
		BottomRight: c.Center.Add(offset),
	}
}

// Contains reports whether point lies inside or on the circle
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.Sub(point).LengthSquared() <= c.Radius*c.Radius
}

// PointAt returns the point on the circle at the given angle
func (c Circle) PointAt(angle Angle) Vector2D {
	return c.Center.Add(FromAngle(angle, c.Radius))
}
