package entity

import (
	"image/color"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// Surface is the drawing target handed to entities for one frame. Its
// coordinate system matches world coordinates, one unit per pixel.
type Surface interface {
	Size() (width, height int)
	Clear()
	DrawPolyline(points []physics.Vector2D, c color.Color)
	DrawEllipse(bounds physics.BoundingBox, c color.Color)
	Present() error
}

// Transform maps a point from one coordinate frame to another
type Transform func(physics.Vector2D) physics.Vector2D

// Colors used by the default entity renderers
var (
	ShipColor     color.Color = color.White
	AsteroidColor color.Color = color.Gray{Y: 128}
)
