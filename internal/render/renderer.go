// Package render draws grid cells and full-screen fills onto a pixel surface.
package render

import (
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/hal"
)

// Renderer clips every pixel to the surface before writing it, so no call
// ever fails or reaches outside the video memory.
type Renderer struct {
	surface  hal.PixelSurface
	bounds   core.Rect
	cellSize int
}

// New creates a renderer for surface with the given cell size.
func New(surface hal.PixelSurface, cellSize int) *Renderer {
	return &Renderer{
		surface:  surface,
		bounds:   core.NewRect(0, 0, surface.Width(), surface.Height()),
		cellSize: cellSize,
	}
}

// CellSize returns the side of one cell in pixels.
func (r *Renderer) CellSize() int {
	return r.cellSize
}

// FillScreen sets every pixel to c. Used on state transitions only.
func (r *Renderer) FillScreen(c core.Color) {
	r.fillRect(r.bounds, c)
}

// FillCell fills the cell-sized square whose top-left corner is p.
func (r *Renderer) FillCell(p core.Point, c core.Color) {
	r.fillRect(core.NewRect(p.X, p.Y, r.cellSize, r.cellSize), c)
}

func (r *Renderer) fillRect(area core.Rect, c core.Color) {
	clipped := area.Intersect(r.bounds)
	if clipped.Empty() {
		return
	}
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			r.surface.Write(x, y, c)
		}
	}
}
