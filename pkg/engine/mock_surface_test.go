package engine

import (
	"errors"
	"image/color"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

var errPresent = errors.New("present failed")

// mockSurface counts draw calls and can be told to fail Present
type mockSurface struct {
	width, height int
	clears        int
	polylines     int
	ellipses      int
	presents      int
	failPresent   bool
}

func newMockSurface() *mockSurface {
	return &mockSurface{width: 800, height: 600}
}

func (m *mockSurface) Size() (int, int) { return m.width, m.height }

func (m *mockSurface) Clear() { m.clears++ }

func (m *mockSurface) DrawPolyline([]physics.Vector2D, color.Color) { m.polylines++ }

func (m *mockSurface) DrawEllipse(physics.BoundingBox, color.Color) { m.ellipses++ }

func (m *mockSurface) Present() error {
	m.presents++
	if m.failPresent {
		return errPresent
	}
	return nil
}
