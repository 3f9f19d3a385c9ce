// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// strokeWidth is one pixel in 26.6 fixed point
const strokeWidth = fixed.Int26_6(64)

// RasterSurface strokes outlines into an in-memory RGBA image. It backs the
// headless frontend and PNG snapshots.
type RasterSurface struct {
	img        *image.RGBA
	stroker    *rasterx.Stroker
	scanner    *rasterx.ScannerGV
	background color.Color
}

// NewRasterSurface creates a black bitmap of the given size
func NewRasterSurface(width, height int) *RasterSurface {
	r := &RasterSurface{background: color.Black}
	r.EnsureSize(width, height)
	return r
}

// EnsureSize recreates the bitmap when its size differs from width x height.
// It reports whether a new bitmap was allocated.
func (r *RasterSurface) EnsureSize(width, height int) bool {
	if r.img != nil {
		b := r.img.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return false
		}
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.scanner = rasterx.NewScannerGV(width, height, r.img, r.img.Bounds())
	r.stroker = rasterx.NewStroker(width, height, r.scanner)
	r.stroker.SetStroke(strokeWidth, 4*strokeWidth, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.MiterClip)
	r.Clear()
	return true
}

// Size implements entity.Surface.
func (r *RasterSurface) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements entity.Surface.
func (r *RasterSurface) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// DrawPolyline implements entity.Surface.
func (r *RasterSurface) DrawPolyline(points []physics.Vector2D, c color.Color) {
	if len(points) < 2 {
		return
	}
	r.stroker.Clear()
	r.stroker.SetColor(c)
	r.stroker.Start(rasterx.ToFixedP(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		r.stroker.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	r.stroker.Stop(false)
	r.stroker.Draw()
}

// DrawEllipse implements entity.Surface.
func (r *RasterSurface) DrawEllipse(bounds physics.BoundingBox, c color.Color) {
	center := bounds.Center()
	r.stroker.Clear()
	r.stroker.SetColor(c)
	rasterx.AddEllipse(center.X, center.Y, bounds.Width()/2, bounds.Height()/2, 0, r.stroker)
	r.stroker.Draw()
}

// Present implements entity.Surface. The bitmap is always current, so there
// is nothing to flush.
func (r *RasterSurface) Present() error {
	return nil
}

// Image returns the underlying bitmap
func (r *RasterSurface) Image() *image.RGBA {
	return r.img
}

// WritePNG encodes the current bitmap as PNG
func (r *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}
