// Package rng implements the firmware's linear congruential generator.
//
// The generator is never reseeded from external entropy, so the sequence of
// apple placements for a given seed is reproducible bit for bit.
package rng

// DefaultSeed is the state loaded at power-on.
const DefaultSeed uint32 = 12345

const (
	multiplier = 1103515245
	increment  = 12345
	mask       = 0x7FFFFFFF
)

// LCG is a 31-bit linear congruential generator.
type LCG struct {
	state uint32
}

// New returns a generator loaded with seed.
func New(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() uint32 {
	g.state = (g.state*multiplier + increment) & mask
	return g.state
}

// Intn returns Next() reduced modulo n. n must be positive.
func (g *LCG) Intn(n int) int {
	return int(g.Next() % uint32(n))
}

// State returns the current state without advancing.
func (g *LCG) State() uint32 {
	return g.state
}
