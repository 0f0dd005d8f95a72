// Package firmware wires the peripherals, game session, input sampler and
// scheduler into the program the board runs.
package firmware

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/display"
	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/input"
	"github.com/vovakirdan/pixel-snake/internal/render"
	"github.com/vovakirdan/pixel-snake/internal/scheduler"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// DefaultPollInterval is the pause between main-loop passes.
const DefaultPollInterval = 5 * time.Millisecond

// Options configures a Machine.
type Options struct {
	Game        snake.Options
	TimerPeriod uint32 // Timer period register value
	TickDivider int    // Timer events per game tick
}

// PollResult reports what one main-loop pass did.
type PollResult struct {
	Started      bool        // A press started or restarted a session
	Turn         core.Action // Turn applied to the heading, or ActionNone
	GameOverDrew bool        // The game-over fill was drawn this pass
}

// Machine is the firmware image bound to a board.
type Machine struct {
	board     hal.Board
	opts      Options
	session   *snake.Session
	sampler   *input.Sampler
	scheduler *scheduler.Scheduler
	renderer  *render.Renderer
	scores    *display.ScoreDisplay
	logger    *log.Logger
}

// New builds a machine on board. The session starts NotStarted.
func New(board hal.Board, opts Options, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := render.New(board.Surface, opts.Game.Geometry.CellSize)
	scores := display.NewScoreDisplay(board.Segments)
	session := snake.New(opts.Game, r, scores, logger.WithPrefix("snake"))

	return &Machine{
		board:     board,
		opts:      opts,
		session:   session,
		sampler:   input.NewSampler(board.Inputs),
		scheduler: scheduler.New(board.Timer, session, opts.TickDivider, logger.WithPrefix("sched")),
		renderer:  r,
		scores:    scores,
		logger:    logger,
	}
}

// Session returns the game session.
func (m *Machine) Session() *snake.Session {
	return m.session
}

// Scheduler returns the timer scheduler.
func (m *Machine) Scheduler() *scheduler.Scheduler {
	return m.scheduler
}

// Boot programs the timer, paints the background and zeroes the score.
func (m *Machine) Boot() {
	m.board.Timer.Configure(m.opts.TimerPeriod)
	m.session.Inspect(func() {
		m.renderer.FillScreen(m.opts.Game.Palette.Background)
	})
	m.scores.Show(0)
	m.logger.Info("booted",
		"width", m.board.Surface.Width(), "height", m.board.Surface.Height(),
		"period", m.opts.TimerPeriod, "divider", m.opts.TickDivider)
}

// Poll runs one pass of the main loop. A press while no game is in play
// starts a new session; that press is consumed and does not also turn.
// While playing, a debounced press turns the snake. After a loss the
// screen is filled once with the game-over color.
func (m *Machine) Poll() PollResult {
	var res PollResult

	reading := m.sampler.Sample()
	if reading.Pressed && !m.session.Playing() {
		m.session.Reset()
		res.Started = true
	} else if reading.Action.IsTurn() {
		m.session.Turn(reading.Action)
		res.Turn = reading.Action
	}

	res.GameOverDrew = m.session.ShowGameOver()
	return res
}

// Inspect runs fn under the session lock so it can read the framebuffer
// consistently.
func (m *Machine) Inspect(fn func()) {
	m.session.Inspect(fn)
}

// Run boots the machine, services the timer in a separate goroutine and
// polls every interval until ctx is cancelled.
func (m *Machine) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	m.Boot()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		//nolint:errcheck // Run only returns the context error
		m.scheduler.Run(ctx)
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var err error
	for err == nil {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-ticker.C:
			m.Poll()
		}
	}

	cancel()
	wg.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
