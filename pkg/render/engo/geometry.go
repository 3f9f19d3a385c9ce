// Package engo draws the simulation with the engo game engine. Everything
// except the pure geometry in this file needs the engo build tag, since
// engo links against OpenGL.
package engo

import (
	"github.com/chewxy/math32"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// Segment is a line segment expressed the way engo places a rectangle: a
// top-left anchor, a length along the rotated X axis and a rotation in
// degrees about the anchor.
type Segment struct {
	X, Y     float32
	Length   float32
	Rotation float32
}

// SegmentBetween converts a world-space segment into engo placement
func SegmentBetween(a, b physics.Vector2D) Segment {
	dx := float32(b.X - a.X)
	dy := float32(b.Y - a.Y)
	return Segment{
		X:        float32(a.X),
		Y:        float32(a.Y),
		Length:   math32.Hypot(dx, dy),
		Rotation: math32.Atan2(dy, dx) * 180 / math32.Pi,
	}
}

// Segments converts a polyline into its segments
func Segments(points []physics.Vector2D) []Segment {
	if len(points) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		out = append(out, SegmentBetween(points[i-1], points[i]))
	}
	return out
}

// End returns the far end of the segment
func (s Segment) End() (float32, float32) {
	sin, cos := math32.Sincos(s.Rotation * math32.Pi / 180)
	return s.X + s.Length*cos, s.Y + s.Length*sin
}
