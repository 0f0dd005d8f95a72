// Package input turns raw button and switch levels into turn commands.
package input

import (
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/hal"
)

// Reading is the result of one polling pass.
type Reading struct {
	Pressed bool        // Button level this pass
	Edge    bool        // Button went from released to pressed since the last pass
	Action  core.Action // Turn selected by the switches on an edge, else ActionNone
}

// Sampler debounces the button on its rising edge. The previous level is the
// only state it keeps.
type Sampler struct {
	in   hal.Inputs
	last bool
}

// NewSampler creates a sampler reading from in.
func NewSampler(in hal.Inputs) *Sampler {
	return &Sampler{in: in}
}

// Sample reads the inputs once. A turn fires only on a rising edge, so
// holding the button produces a single command. The switches are read only
// on that edge: an even value turns right, an odd value turns left.
func (s *Sampler) Sample() Reading {
	pressed := s.in.ReadButton()
	r := Reading{Pressed: pressed}

	if pressed && !s.last {
		r.Edge = true
		if s.in.ReadSwitches()%2 == 0 {
			r.Action = core.ActionTurnRight
		} else {
			r.Action = core.ActionTurnLeft
		}
	}
	s.last = pressed
	return r
}
