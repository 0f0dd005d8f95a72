package core

// Geometry describes the pixel surface and the grid laid over it.
type Geometry struct {
	ScreenW  int // Surface width in pixels
	ScreenH  int // Surface height in pixels
	CellSize int // Side of one grid cell in pixels
}

// DefaultGeometry returns the 320x240 surface with 8-pixel cells.
func DefaultGeometry() Geometry {
	return Geometry{
		ScreenW:  320,
		ScreenH:  240,
		CellSize: 8,
	}
}

// Cols returns the number of cells along the x axis.
func (g Geometry) Cols() int {
	return g.ScreenW / g.CellSize
}

// Rows returns the number of cells along the y axis.
func (g Geometry) Rows() int {
	return g.ScreenH / g.CellSize
}

// Bounds returns the whole surface as a rectangle.
func (g Geometry) Bounds() Rect {
	return NewRect(0, 0, g.ScreenW, g.ScreenH)
}

// Inside reports whether p lies within [0, ScreenW) x [0, ScreenH).
func (g Geometry) Inside(p Point) bool {
	return g.Bounds().Contains(p.X, p.Y)
}

// CellRect returns the pixel area of the cell whose top-left corner is p.
func (g Geometry) CellRect(p Point) Rect {
	return NewRect(p.X, p.Y, g.CellSize, g.CellSize)
}
