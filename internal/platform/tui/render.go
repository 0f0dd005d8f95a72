package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// cellWidth is how many terminal columns one game cell takes; two columns
// make a cell roughly square.
const cellWidth = 2

var (
	segmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff3030")).
			Background(lipgloss.Color("#200000")).
			Bold(true).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// styleCache maps palette bytes to background styles.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) get(col core.Color) lipgloss.Style {
	st, ok := c[col]
	if !ok {
		st = lipgloss.NewStyle().Background(lipgloss.Color(col.Hex()))
		c[col] = st
	}
	return st
}

// RenderFramebuffer draws the framebuffer one block per game cell, sampling
// the top-left pixel of each cell. Runs of equal color share one style to
// keep the escape sequences down.
func RenderFramebuffer(fb *core.Framebuffer, cellSize int) string {
	if cellSize <= 0 {
		cellSize = 1
	}
	styles := styleCache{}
	cols := fb.Width() / cellSize
	rows := fb.Height() / cellSize

	var sb strings.Builder
	sb.Grow(rows * (cols*cellWidth + 1) * 4)

	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			sb.WriteRune('\n')
		}

		cx := 0
		for cx < cols {
			start := fb.At(cx*cellSize, cy*cellSize)
			n := 0
			for cx < cols && fb.At(cx*cellSize, cy*cellSize) == start {
				n++
				cx++
			}
			sb.WriteString(styles.get(start).Render(strings.Repeat(" ", n*cellWidth)))
		}
	}
	return sb.String()
}

// RenderSegments draws the seven-digit readout.
func RenderSegments(digits string) string {
	return segmentStyle.Render(digits)
}
