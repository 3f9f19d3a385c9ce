package entity

import (
	"image/color"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// recordingSurface records draw calls for inspection
type recordingSurface struct {
	width, height int
	clears        int
	polylines     [][]physics.Vector2D
	ellipses      []physics.BoundingBox
	colors        []color.Color
	presents      int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 800, height: 600}
}

func (r *recordingSurface) Size() (int, int) { return r.width, r.height }

func (r *recordingSurface) Clear() { r.clears++ }

func (r *recordingSurface) DrawPolyline(points []physics.Vector2D, c color.Color) {
	r.polylines = append(r.polylines, append([]physics.Vector2D(nil), points...))
	r.colors = append(r.colors, c)
}

func (r *recordingSurface) DrawEllipse(bounds physics.BoundingBox, c color.Color) {
	r.ellipses = append(r.ellipses, bounds)
	r.colors = append(r.colors, c)
}

func (r *recordingSurface) Present() error {
	r.presents++
	return nil
}
