package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// litNear reports whether any pixel within radius of (x, y) is not black
func litNear(img *image.RGBA, x, y, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c := img.RGBAAt(x+dx, y+dy)
			if c.R != 0 || c.G != 0 || c.B != 0 {
				return true
			}
		}
	}
	return false
}

func TestRasterSurface_EnsureSize(t *testing.T) {
	s := NewRasterSurface(100, 50)

	if s.EnsureSize(100, 50) {
		t.Error("EnsureSize with the current size should not reallocate")
	}
	if !s.EnsureSize(200, 80) {
		t.Error("EnsureSize with a new size should reallocate")
	}
	if w, h := s.Size(); w != 200 || h != 80 {
		t.Errorf("Size() = %dx%d, want 200x80", w, h)
	}
}

func TestRasterSurface_DrawPolyline(t *testing.T) {
	s := NewRasterSurface(100, 100)
	s.Clear()

	s.DrawPolyline([]physics.Vector2D{{X: 10, Y: 50}, {X: 90, Y: 50}}, color.White)

	if !litNear(s.Image(), 50, 50, 1) {
		t.Error("expected stroked pixels along the line")
	}
	if litNear(s.Image(), 50, 20, 2) {
		t.Error("pixels far from the line should stay black")
	}

	s.Clear()
	if litNear(s.Image(), 50, 50, 1) {
		t.Error("Clear should reset the bitmap")
	}
}

func TestRasterSurface_DrawEllipse(t *testing.T) {
	s := NewRasterSurface(200, 200)
	s.Clear()

	box := physics.BoundingBox{UpperLeft: physics.Vector2D{X: 50, Y: 50}, BottomRight: physics.Vector2D{X: 150, Y: 150}}
	s.DrawEllipse(box, color.White)

	if !litNear(s.Image(), 150, 100, 2) {
		t.Error("expected outline at the right edge")
	}
	if litNear(s.Image(), 100, 100, 5) {
		t.Error("ellipse interior should not be filled")
	}
}

func TestRasterSurface_WritePNG(t *testing.T) {
	s := NewRasterSurface(64, 32)
	s.DrawPolyline([]physics.Vector2D{{X: 0, Y: 0}, {X: 63, Y: 31}}, color.White)

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("decoded size %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}
