// Package hal defines the driver boundary between the firmware core and the
// board peripherals, and provides simulated peripherals for desktop runs.
package hal

import "github.com/vovakirdan/pixel-snake/internal/core"

// PixelSurface is the video controller's pixel memory.
// Callers bounds-check before writing.
type PixelSurface interface {
	Width() int
	Height() int
	Write(x, y int, c core.Color)
}

// Timer is a periodic interrupt source.
type Timer interface {
	// Configure programs the period in clock ticks and starts the timer.
	Configure(periodTicks uint32)
	// Acknowledge clears the pending/status flag of the last event.
	Acknowledge()
	// Events delivers one value per interrupt.
	Events() <-chan struct{}
}

// Inputs is the digital input block: one momentary button and a switch bank.
type Inputs interface {
	ReadButton() bool
	ReadSwitches() uint32
}

// SegmentDisplay drives a row of seven-segment digits.
// Out-of-range indexes are ignored; out-of-range values blank the digit.
type SegmentDisplay interface {
	SetDigit(index, value int)
}

// Board bundles the peripherals the firmware is wired to.
type Board struct {
	Surface  PixelSurface
	Timer    Timer
	Inputs   Inputs
	Segments SegmentDisplay
}
