package snake

import (
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/rng"
)

// ApplePolicy decides what happens when a placement lands on the snake.
type ApplePolicy string

const (
	// AppleAllowOverlap accepts the first placement, even on the body.
	// This is what the board firmware has always done.
	AppleAllowOverlap ApplePolicy = "allow_overlap"
	// AppleRetryUntilFree draws again until the cell is free.
	AppleRetryUntilFree ApplePolicy = "retry_until_free"
)

// ParseApplePolicy validates a policy name. Empty selects AppleAllowOverlap.
func ParseApplePolicy(s string) (ApplePolicy, error) {
	switch ApplePolicy(s) {
	case "", AppleAllowOverlap:
		return AppleAllowOverlap, nil
	case AppleRetryUntilFree:
		return AppleRetryUntilFree, nil
	default:
		return "", fmt.Errorf("snake: unknown apple policy %q", s)
	}
}

// drawApple consumes two generator draws: x first, then y.
func (s *Session) drawApple() core.Point {
	return applePoint(s.rng, s.geom)
}

func applePoint(g *rng.LCG, geom core.Geometry) core.Point {
	cell := geom.CellSize
	x := g.Intn(geom.Cols()) * cell
	y := g.Intn(geom.Rows()) * cell
	return core.Point{X: x, Y: y}
}

// AppleSequence returns the first n apple cells a fresh generator loaded
// with seed produces, ignoring the snake. With AppleAllowOverlap this is
// exactly where the apples of a session appear.
func AppleSequence(geom core.Geometry, seed uint32, n int) []core.Point {
	g := rng.New(seed)
	out := make([]core.Point, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, applePoint(g, geom))
	}
	return out
}

// placeApple picks the next apple cell according to the policy.
func (s *Session) placeApple() {
	p := s.drawApple()

	if s.policy == AppleRetryUntilFree {
		cells := s.geom.Cols() * s.geom.Rows()
		for attempts := 1; s.occupies(p) && attempts < cells; attempts++ {
			p = s.drawApple()
		}
		if s.occupies(p) {
			p = s.nextFreeCell(p)
		}
	}

	s.apple = p
}

// nextFreeCell scans forward in row-major order from p for a cell the body
// does not occupy. Returns p when the grid is full.
func (s *Session) nextFreeCell(p core.Point) core.Point {
	cell := s.geom.CellSize
	cols, rows := s.geom.Cols(), s.geom.Rows()
	total := cols * rows
	start := (p.Y/cell)*cols + p.X/cell

	for i := 1; i < total; i++ {
		idx := (start + i) % total
		c := core.Point{X: (idx % cols) * cell, Y: (idx / cols) * cell}
		if !s.occupies(c) {
			return c
		}
	}
	return p
}
