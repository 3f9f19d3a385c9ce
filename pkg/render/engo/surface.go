//go:build engo

// pkg/render/engo/surface.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

// outlineWidth is the stroke width of every outline, in pixels
const outlineWidth = 1

// shape is a pooled render entity
type shape struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// Surface implements entity.Surface with pooled engo entities. Line
// segments are thin rotated rectangles and ellipses are circle outlines.
// Entities are reused frame to frame; the ones a frame does not need are
// hidden on Present.
type Surface struct {
	width, height int
	renderSystem  *common.RenderSystem

	lines     []*shape
	ellipses  []*shape
	usedLines int
	usedEll   int
}

// NewSurface creates a surface drawing through renderSystem
func NewSurface(renderSystem *common.RenderSystem, width, height int) *Surface {
	return &Surface{
		width:        width,
		height:       height,
		renderSystem: renderSystem,
	}
}

// Size implements entity.Surface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear implements entity.Surface.
func (s *Surface) Clear() {
	s.usedLines = 0
	s.usedEll = 0
}

func (s *Surface) newShape(drawable common.Drawable) *shape {
	sh := &shape{BasicEntity: ecs.NewBasic()}
	sh.RenderComponent = common.RenderComponent{Drawable: drawable}
	s.renderSystem.Add(&sh.BasicEntity, &sh.RenderComponent, &sh.SpaceComponent)
	return sh
}

func (s *Surface) nextLine() *shape {
	if s.usedLines == len(s.lines) {
		s.lines = append(s.lines, s.newShape(common.Rectangle{}))
	}
	sh := s.lines[s.usedLines]
	s.usedLines++
	return sh
}

func (s *Surface) nextEllipse() *shape {
	if s.usedEll == len(s.ellipses) {
		s.ellipses = append(s.ellipses, s.newShape(common.Circle{}))
	}
	sh := s.ellipses[s.usedEll]
	s.usedEll++
	return sh
}

// DrawPolyline implements entity.Surface.
func (s *Surface) DrawPolyline(points []physics.Vector2D, c color.Color) {
	for _, seg := range Segments(points) {
		sh := s.nextLine()
		sh.Color = c
		sh.Hidden = false
		sh.SpaceComponent = common.SpaceComponent{
			Position: engo.Point{X: seg.X, Y: seg.Y},
			Width:    seg.Length,
			Height:   outlineWidth,
			Rotation: seg.Rotation,
		}
	}
}

// DrawEllipse implements entity.Surface.
func (s *Surface) DrawEllipse(bounds physics.BoundingBox, c color.Color) {
	lo := bounds.Min()
	sh := s.nextEllipse()
	sh.Drawable = common.Circle{BorderWidth: outlineWidth, BorderColor: c}
	sh.Color = color.Transparent
	sh.Hidden = false
	sh.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: float32(lo.X), Y: float32(lo.Y)},
		Width:    float32(bounds.Width()),
		Height:   float32(bounds.Height()),
	}
}

// Present implements entity.Surface.
func (s *Surface) Present() error {
	for _, sh := range s.lines[s.usedLines:] {
		sh.Hidden = true
	}
	for _, sh := range s.ellipses[s.usedEll:] {
		sh.Hidden = true
	}
	return nil
}
