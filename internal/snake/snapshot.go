package snake

import "github.com/vovakirdan/pixel-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and
// for frontends that display it.
type Snapshot struct {
	Ticks       uint64
	Phase       Phase
	Dir         Direction
	Score       int
	Length      int
	HeadX       int
	HeadY       int
	AppleX      int
	AppleY      int
	Body        []core.Point // Head first
	LastOutcome Outcome
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := make([]core.Point, s.length)
	copy(body, s.body[:s.length])

	snap := Snapshot{
		Ticks:       s.ticks,
		Phase:       s.phase(),
		Dir:         s.Direction(),
		Score:       s.score,
		Length:      s.length,
		AppleX:      s.apple.X,
		AppleY:      s.apple.Y,
		Body:        body,
		LastOutcome: s.lastOutcome,
	}
	if s.length > 0 {
		snap.HeadX = s.body[0].X
		snap.HeadY = s.body[0].Y
	}
	return snap
}

// Apple returns the apple cell from the snapshot.
func (s Snapshot) Apple() core.Point {
	return core.Point{X: s.AppleX, Y: s.AppleY}
}

// Head returns the head cell from the snapshot.
func (s Snapshot) Head() core.Point {
	return core.Point{X: s.HeadX, Y: s.HeadY}
}
