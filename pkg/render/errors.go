// pkg/render/errors.go
package render

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-spaceshooter/pkg/entity"
)

var (
	// ErrNoSurface is returned when a frame is rendered without a surface
	ErrNoSurface = errors.New("no drawing surface")
	// ErrSurfaceSize is returned for a surface with a non-positive dimension
	ErrSurfaceSize = errors.New("invalid surface size")
)

// CheckSurface verifies that s can be drawn on
func CheckSurface(s entity.Surface) error {
	if s == nil {
		return ErrNoSurface
	}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceSize, w, h)
	}
	return nil
}
