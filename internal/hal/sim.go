package hal

import "github.com/vovakirdan/pixel-snake/internal/core"

// SimBoard is a complete simulated board with concrete peripheral types,
// so frontends can both wire it and drive it.
type SimBoard struct {
	Framebuffer *core.Framebuffer
	Timer       Timer
	Inputs      *SimInputs
	Segments    *SegmentBank
}

// NewSimBoard creates a simulated board with a w x h framebuffer and the
// given timer.
func NewSimBoard(w, h int, timer Timer) *SimBoard {
	return &SimBoard{
		Framebuffer: core.NewFramebuffer(w, h),
		Timer:       timer,
		Inputs:      NewSimInputs(),
		Segments:    NewSegmentBank(),
	}
}

// Board returns the peripherals behind the driver interfaces.
func (b *SimBoard) Board() Board {
	return Board{
		Surface:  b.Framebuffer,
		Timer:    b.Timer,
		Inputs:   b.Inputs,
		Segments: b.Segments,
	}
}
