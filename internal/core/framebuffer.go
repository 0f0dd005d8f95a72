package core

import (
	"strings"
)

// Framebuffer is an in-memory pixel surface, one Color byte per pixel,
// laid out row by row like the video controller's memory.
type Framebuffer struct {
	width  int
	height int
	pix    []Color
}

// NewFramebuffer creates a framebuffer of the given size filled with black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the surface width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the surface height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Write stores one pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Write(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// At returns the pixel at (x, y), or black for out-of-bounds coordinates.
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorBlack
	}
	return f.pix[y*f.width+x]
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Count returns how many pixels currently hold c.
func (f *Framebuffer) Count(c Color) int {
	n := 0
	for _, p := range f.pix {
		if p == c {
			n++
		}
	}
	return n
}

// CellMap renders the buffer as text with one rune per cell, sampling the
// top-left pixel of each cell.
func (f *Framebuffer) CellMap(cellSize int) string {
	if cellSize <= 0 {
		cellSize = 1
	}
	var sb strings.Builder
	rows := f.height / cellSize
	cols := f.width / cellSize
	sb.Grow(rows * (cols + 1))

	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			sb.WriteRune('\n')
		}
		for cx := 0; cx < cols; cx++ {
			sb.WriteRune(f.At(cx*cellSize, cy*cellSize).Rune())
		}
	}
	return sb.String()
}
