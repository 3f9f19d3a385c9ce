// pkg/render/terminal.go
package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spaceshooter/pkg/physics"
)

const (
	lineRune    = '*'
	ellipseRune = 'o'
)

// TerminalSurface draws world coordinates onto a tcell screen, scaling the
// world rectangle to whatever cell grid the terminal currently has.
type TerminalSurface struct {
	screen        tcell.Screen
	width, height int
	background    tcell.Style
}

// NewTerminalSurface creates a surface for a world of the given size. The
// screen must already be initialised.
func NewTerminalSurface(screen tcell.Screen, worldWidth, worldHeight int) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		width:      worldWidth,
		height:     worldHeight,
		background: tcell.StyleDefault.Background(tcell.ColorBlack),
	}
}

// Size returns the world size, not the cell grid.
func (t *TerminalSurface) Size() (int, int) {
	return t.width, t.height
}

// Resize redraws the screen after the terminal changed size. Scaling is
// recomputed on every draw, so nothing else needs updating.
func (t *TerminalSurface) Resize() {
	t.screen.Sync()
}

// worldToCell converts world coordinates to screen cells
func (t *TerminalSurface) worldToCell(p physics.Vector2D) (int, int) {
	cols, rows := t.screen.Size()
	x := int(math.Floor(p.X * float64(cols) / float64(t.width)))
	y := int(math.Floor(p.Y * float64(rows) / float64(t.height)))
	return x, y
}

func (t *TerminalSurface) setCell(x, y int, r rune, style tcell.Style) {
	cols, rows := t.screen.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

// Clear implements entity.Surface.
func (t *TerminalSurface) Clear() {
	t.screen.SetStyle(t.background)
	t.screen.Clear()
}

// DrawPolyline implements entity.Surface.
func (t *TerminalSurface) DrawPolyline(points []physics.Vector2D, c color.Color) {
	style := t.background.Foreground(toTCellColor(c))
	if len(points) == 1 {
		x, y := t.worldToCell(points[0])
		t.setCell(x, y, lineRune, style)
		return
	}
	for i := 1; i < len(points); i++ {
		x0, y0 := t.worldToCell(points[i-1])
		x1, y1 := t.worldToCell(points[i])
		t.line(x0, y0, x1, y1, style)
	}
}

// line plots a cell-space segment using Bresenham's algorithm
func (t *TerminalSurface) line(x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		t.setCell(x0, y0, lineRune, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawEllipse implements entity.Surface.
func (t *TerminalSurface) DrawEllipse(bounds physics.BoundingBox, c color.Color) {
	style := t.background.Foreground(toTCellColor(c))
	center := bounds.Center()
	rx, ry := bounds.Width()/2, bounds.Height()/2

	cols, rows := t.screen.Size()
	// Enough samples that neighbouring points land in adjacent cells.
	cellsX := rx * float64(cols) / float64(t.width)
	cellsY := ry * float64(rows) / float64(t.height)
	steps := int(4*math.Pi*math.Max(cellsX, cellsY)) + 8

	for i := 0; i < steps; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		x, y := t.worldToCell(physics.Vector2D{X: center.X + rx*cos, Y: center.Y + ry*sin})
		t.setCell(x, y, ellipseRune, style)
	}
}

// Present implements entity.Surface.
func (t *TerminalSurface) Present() error {
	t.screen.Show()
	return nil
}

func toTCellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorWhite
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
