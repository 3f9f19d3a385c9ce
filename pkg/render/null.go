// pkg/render/null.go
package render

import (
	"context"
	"image/color"

	"github.com/opd-ai/go-spaceshooter/pkg/logging"
	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// NullSurface accepts every draw call and only logs it at debug level.
// It backs runs without any display.
type NullSurface struct {
	width, height int
	logger        *logging.Logger
	frames        int
}

// NewNullSurface creates a NullSurface that reports the given size
func NewNullSurface(width, height int, logger *logging.Logger) *NullSurface {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullSurface{width: width, height: height, logger: logger}
}

// Size implements entity.Surface.
func (n *NullSurface) Size() (int, int) {
	return n.width, n.height
}

// Clear implements entity.Surface.
func (n *NullSurface) Clear() {
	n.logger.Debug(context.Background(), "Clear called")
}

// DrawPolyline implements entity.Surface.
func (n *NullSurface) DrawPolyline(points []physics.Vector2D, c color.Color) {
	if len(points) == 0 {
		n.logger.Debug(context.Background(), "DrawPolyline called with no points")
		return
	}
	n.logger.Debug(context.Background(), "DrawPolyline called",
		"points", len(points),
		"start_x", points[0].X,
		"start_y", points[0].Y,
	)
}

// DrawEllipse implements entity.Surface.
func (n *NullSurface) DrawEllipse(bounds physics.BoundingBox, c color.Color) {
	center := bounds.Center()
	n.logger.Debug(context.Background(), "DrawEllipse called",
		"center_x", center.X,
		"center_y", center.Y,
		"width", bounds.Width(),
		"height", bounds.Height(),
	)
}

// Present implements entity.Surface.
func (n *NullSurface) Present() error {
	n.frames++
	n.logger.Debug(context.Background(), "Present called", "frame", n.frames)
	return nil
}

// Frames returns the number of presented frames
func (n *NullSurface) Frames() int {
	return n.frames
}
