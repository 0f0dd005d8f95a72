// Package snake holds the game state: the body arena, heading, apple, score
// and lifecycle flags, together with the movement and collision rules.
//
// A Session is shared by two contexts: the timer-driven scheduler, which
// calls Tick, and the polling loop, which calls Reset, Turn and
// ShowGameOver. Every multi-field mutation runs under one mutex; the heading
// alone is handed over through an atomic so turning never waits on a tick.
package snake

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/render"
	"github.com/vovakirdan/pixel-snake/internal/rng"
)

// MaxLength is the capacity of the body arena.
const MaxLength = 512

// DefaultInitialLength is the body length after a reset.
const DefaultInitialLength = 5

// Phase is the lifecycle state derived from the started/over flags.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome is what a single Tick did.
type Outcome int

const (
	OutcomeIdle    Outcome = iota // Not playing; nothing happened
	OutcomeMoved                  // Plain move, tail erased
	OutcomeGrew                   // Ate the apple
	OutcomeHitWall                // Head would leave the screen; game over
	OutcomeHitSelf                // Head would enter the body; game over
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeGrew:
		return "grew"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "unknown"
	}
}

// GameOver reports whether the outcome ended the session.
func (o Outcome) GameOver() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

// Palette holds the colors the game draws with.
type Palette struct {
	Background core.Color
	Snake      core.Color
	Apple      core.Color
	GameOver   core.Color
}

// DefaultPalette matches the board's colors.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorGreen,
		Snake:      core.ColorDarkBlue,
		Apple:      core.ColorRed,
		GameOver:   core.ColorBlack,
	}
}

// Options configures a Session.
type Options struct {
	Geometry      core.Geometry
	InitialLength int
	Palette       Palette
	Seed          uint32
	ApplePolicy   ApplePolicy
}

// DefaultOptions returns the board defaults.
func DefaultOptions() Options {
	return Options{
		Geometry:      core.DefaultGeometry(),
		InitialLength: DefaultInitialLength,
		Palette:       DefaultPalette(),
		Seed:          rng.DefaultSeed,
		ApplePolicy:   AppleAllowOverlap,
	}
}

// ScoreSink receives the score whenever it changes.
type ScoreSink interface {
	Show(score int)
}

// Session is one power-on lifetime of the game.
type Session struct {
	mu sync.Mutex

	geom          core.Geometry
	initialLength int
	palette       Palette
	policy        ApplePolicy
	rng           *rng.LCG

	body   [MaxLength]core.Point // Head at index 0
	length int
	apple  core.Point
	score  int
	ticks  uint64

	started       bool
	over          bool
	gameOverDrawn bool
	lastOutcome   Outcome
	direction     atomic.Int32
	renderer      *render.Renderer
	scores        ScoreSink
	logger        *log.Logger
}

// New creates a session in the NotStarted phase. The generator is seeded
// once here and never reseeded, including across resets.
func New(opts Options, r *render.Renderer, scores ScoreSink, logger *log.Logger) *Session {
	if opts.InitialLength <= 0 {
		opts.InitialLength = DefaultInitialLength
	}
	if opts.InitialLength > MaxLength {
		opts.InitialLength = MaxLength
	}
	if opts.ApplePolicy == "" {
		opts.ApplePolicy = AppleAllowOverlap
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		geom:          opts.Geometry,
		initialLength: opts.InitialLength,
		palette:       opts.Palette,
		policy:        opts.ApplePolicy,
		rng:           rng.New(opts.Seed),
		renderer:      r,
		scores:        scores,
		logger:        logger,
	}
	s.direction.Store(int32(DirRight))
	return s
}

// Reset starts a new game: background fill, centered body heading right,
// score zero and a fresh apple. The body is first drawn by the next tick.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderer.FillScreen(s.palette.Background)

	cell := s.geom.CellSize
	s.length = s.initialLength
	for i := 0; i < s.length; i++ {
		s.body[i] = core.Point{X: s.geom.ScreenW/2 - i*cell, Y: s.geom.ScreenH / 2}
	}
	s.score = 0
	s.direction.Store(int32(DirRight))
	s.over = false
	s.started = true
	s.gameOverDrawn = false
	s.lastOutcome = OutcomeIdle
	s.placeApple()
	s.showScore()

	s.logger.Info("session started", "head", s.body[0], "apple", s.apple)
}

// Tick advances the snake by one cell. It does nothing unless the session
// is Playing. A collision ends the game without touching the body, score
// or apple.
func (s *Session) Tick() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.over {
		return OutcomeIdle
	}
	s.ticks++

	dir := s.Direction()
	dx, dy := dir.Delta()
	cell := s.geom.CellSize
	head := s.body[0].Add(dx*cell, dy*cell)

	if !s.geom.Inside(head) {
		return s.endGame(OutcomeHitWall, head)
	}
	if s.occupies(head) {
		return s.endGame(OutcomeHitSelf, head)
	}

	vacated := s.body[s.length-1]
	copy(s.body[1:s.length], s.body[:s.length-1])
	s.body[0] = head

	outcome := OutcomeMoved
	if head == s.apple {
		outcome = OutcomeGrew
		if s.length < MaxLength {
			s.body[s.length] = vacated
			s.length++
		} else {
			// Full arena: the tail segment is dropped even though we ate.
			s.renderer.FillCell(vacated, s.palette.Background)
		}
		s.score++
		s.showScore()
		s.placeApple()
		s.logger.Debug("apple eaten", "score", s.score, "length", s.length, "next", s.apple)
	} else {
		s.renderer.FillCell(vacated, s.palette.Background)
	}

	s.draw()
	s.lastOutcome = outcome
	return outcome
}

func (s *Session) endGame(reason Outcome, head core.Point) Outcome {
	s.over = true
	s.lastOutcome = reason
	s.logger.Info("game over", "reason", reason, "at", head, "score", s.score, "length", s.length)
	return reason
}

// draw paints every body cell and the apple.
func (s *Session) draw() {
	for i := 0; i < s.length; i++ {
		s.renderer.FillCell(s.body[i], s.palette.Snake)
	}
	s.renderer.FillCell(s.apple, s.palette.Apple)
}

func (s *Session) showScore() {
	if s.scores != nil {
		s.scores.Show(s.score)
	}
}

// occupies reports whether p is one of the body cells.
func (s *Session) occupies(p core.Point) bool {
	for i := 0; i < s.length; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// Turn applies a turn action to the heading and returns the new heading.
// Safe to call concurrently with Tick; the next tick uses whatever heading
// is current when it starts.
func (s *Session) Turn(a core.Action) Direction {
	for {
		old := Direction(s.direction.Load())
		next := old.Apply(a)
		if s.direction.CompareAndSwap(int32(old), int32(next)) {
			return next
		}
	}
}

// Direction returns the current heading.
func (s *Session) Direction() Direction {
	return Direction(s.direction.Load())
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase()
}

func (s *Session) phase() Phase {
	switch {
	case !s.started:
		return PhaseNotStarted
	case s.over:
		return PhaseGameOver
	default:
		return PhasePlaying
	}
}

// Playing reports whether ticks currently advance the game.
func (s *Session) Playing() bool {
	return s.Phase() == PhasePlaying
}

// ShowGameOver fills the screen with the game-over color once per lost
// game. Returns true if it drew.
func (s *Session) ShowGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.over || s.gameOverDrawn {
		return false
	}
	s.renderer.FillScreen(s.palette.GameOver)
	s.gameOverDrawn = true
	return true
}

// Inspect runs fn while holding the session lock, so fn can read the
// framebuffer without racing a tick.
func (s *Session) Inspect(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
