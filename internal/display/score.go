// Package display shows the score on the seven-segment bank.
package display

import "github.com/vovakirdan/pixel-snake/internal/hal"

// Digits is how many displays the score is spread across.
const Digits = hal.DigitCount

// ScoreDisplay writes a non-negative score as decimal digits.
type ScoreDisplay struct {
	dev hal.SegmentDisplay
}

// NewScoreDisplay creates a score display on dev.
func NewScoreDisplay(dev hal.SegmentDisplay) *ScoreDisplay {
	return &ScoreDisplay{dev: dev}
}

// Show emits exactly seven digits, least significant first. Unused
// high-order displays show 0 rather than blank; digits above the seventh
// are dropped.
func (d *ScoreDisplay) Show(score int) {
	if score < 0 {
		score = 0
	}
	for i := 0; i < Digits; i++ {
		d.dev.SetDigit(i, score%10)
		score /= 10
	}
}
