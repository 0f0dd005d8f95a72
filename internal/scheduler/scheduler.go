// Package scheduler divides the timer interrupt down to the game tick rate.
//
// The scheduler is the only asynchronous caller into the game: Run services
// the timer from its own goroutine while the polling loop runs elsewhere.
package scheduler

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// DefaultDivider is how many timer events make one game tick.
const DefaultDivider = 2

// Game is the state the scheduler advances.
type Game interface {
	Playing() bool
	Tick() snake.Outcome
}

// Scheduler counts timer events and issues a game tick every divider events.
type Scheduler struct {
	timer   hal.Timer
	game    Game
	divider int
	count   int
	logger  *log.Logger
}

// New creates a scheduler. A divider below 1 falls back to DefaultDivider.
func New(timer hal.Timer, game Game, divider int, logger *log.Logger) *Scheduler {
	if divider < 1 {
		divider = DefaultDivider
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		timer:   timer,
		game:    game,
		divider: divider,
		logger:  logger,
	}
}

// HandleInterrupt services one timer event: it always acknowledges the
// peripheral, and on every divider-th event ticks the game if a session is
// in play. Returns the tick outcome, or OutcomeIdle when no tick ran.
func (s *Scheduler) HandleInterrupt() snake.Outcome {
	s.timer.Acknowledge()

	s.count++
	if s.count < s.divider {
		return snake.OutcomeIdle
	}
	s.count = 0

	if !s.game.Playing() {
		return snake.OutcomeIdle
	}
	outcome := s.game.Tick()
	if outcome.GameOver() {
		s.logger.Debug("tick ended the game", "outcome", outcome)
	}
	return outcome
}

// Run services timer events until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	events := s.timer.Events()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped")
			return ctx.Err()
		case <-events:
			s.HandleInterrupt()
		}
	}
}
