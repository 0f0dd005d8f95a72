package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/display"
	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/render"
	"github.com/vovakirdan/pixel-snake/internal/rng"
)

type fixture struct {
	s    *Session
	fb   *core.Framebuffer
	bank *hal.SegmentBank
	pal  Palette
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	fb := core.NewFramebuffer(opts.Geometry.ScreenW, opts.Geometry.ScreenH)
	bank := hal.NewSegmentBank()
	r := render.New(fb, opts.Geometry.CellSize)
	s := New(opts, r, display.NewScoreDisplay(bank), nil)
	return fixture{s: s, fb: fb, bank: bank, pal: opts.Palette}
}

func newStarted(t *testing.T) fixture {
	t.Helper()
	f := newFixture(t, DefaultOptions())
	f.s.Reset()
	return f
}

// setBody replaces the body, head first, for scenario tests.
func (f fixture) setBody(points ...core.Point) {
	f.s.length = len(points)
	copy(f.s.body[:], points)
}

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

// firstApple is where the first two draws from the default seed land on a
// 40x30 grid of 8-pixel cells.
func firstApple() core.Point {
	g := rng.New(rng.DefaultSeed)
	return pt(int(g.Next()%40)*8, int(g.Next()%30)*8)
}

func TestPowerOnIsNotStarted(t *testing.T) {
	f := newFixture(t, DefaultOptions())

	if f.s.Phase() != PhaseNotStarted {
		t.Fatalf("phase = %v, expected not_started", f.s.Phase())
	}
	if got := f.s.Tick(); got != OutcomeIdle {
		t.Errorf("Tick() before start = %v, expected idle", got)
	}
	if f.s.ShowGameOver() {
		t.Error("ShowGameOver should not draw before a game is lost")
	}
}

func TestResetScenario(t *testing.T) {
	f := newStarted(t)
	snap := f.s.Snapshot()

	expected := []core.Point{pt(160, 120), pt(152, 120), pt(144, 120), pt(136, 120), pt(128, 120)}
	if snap.Length != 5 {
		t.Fatalf("length = %d, expected 5", snap.Length)
	}
	for i, p := range expected {
		if snap.Body[i] != p {
			t.Errorf("body[%d] = %+v, expected %+v", i, snap.Body[i], p)
		}
	}
	if snap.Dir != DirRight {
		t.Errorf("direction = %v, expected right", snap.Dir)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("phase = %v, expected playing", snap.Phase)
	}
	if got := f.fb.Count(f.pal.Background); got != 320*240 {
		t.Errorf("reset should fill the background, got %d background pixels", got)
	}
	if f.bank.String() != "0000000" {
		t.Errorf("score display = %q, expected 0000000", f.bank.String())
	}
}

func TestFirstTickMovesAndErasesTail(t *testing.T) {
	f := newStarted(t)

	// Paint the tail so the erase is observable.
	f.s.renderer.FillCell(pt(128, 120), f.pal.Snake)

	if got := f.s.Tick(); got != OutcomeMoved {
		t.Fatalf("Tick() = %v, expected moved", got)
	}

	snap := f.s.Snapshot()
	if snap.Head() != pt(168, 120) {
		t.Errorf("head = %+v, expected (168, 120)", snap.Head())
	}
	if snap.Length != 5 || snap.Score != 0 {
		t.Errorf("length/score = %d/%d, expected 5/0", snap.Length, snap.Score)
	}
	if f.fb.At(168, 120) != f.pal.Snake || f.fb.At(175, 127) != f.pal.Snake {
		t.Error("new head cell should be drawn")
	}
	if f.fb.At(128, 120) != f.pal.Background || f.fb.At(135, 127) != f.pal.Background {
		t.Error("vacated tail cell should be erased to background")
	}
	if f.fb.At(snap.AppleX, snap.AppleY) != f.pal.Apple {
		t.Error("apple should be drawn")
	}
}

func TestEatingAppleGrowsAndSkipsErase(t *testing.T) {
	f := newStarted(t)

	probe := *f.s.rng
	nextApple := pt(int(probe.Next()%40)*8, int(probe.Next()%30)*8)

	f.s.apple = pt(168, 120)
	if got := f.s.Tick(); got != OutcomeGrew {
		t.Fatalf("Tick() = %v, expected grew", got)
	}

	snap := f.s.Snapshot()
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.Length != 6 {
		t.Errorf("length = %d, expected 6", snap.Length)
	}
	if snap.Body[5] != pt(128, 120) {
		t.Errorf("tail = %+v, expected the old tail (128, 120)", snap.Body[5])
	}
	if f.fb.At(128, 120) != f.pal.Snake {
		t.Error("growth must not erase the old tail cell")
	}
	if snap.Apple() != nextApple {
		t.Errorf("new apple = %+v, expected %+v from the generator", snap.Apple(), nextApple)
	}
	if f.bank.String() != "0000001" {
		t.Errorf("score display = %q, expected 0000001", f.bank.String())
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		head core.Point
	}{
		{"right edge", DirRight, pt(312, 120)},
		{"left edge", DirLeft, pt(0, 120)},
		{"top edge", DirUp, pt(160, 0)},
		{"bottom edge", DirDown, pt(160, 232)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newStarted(t)
			// A straight body trailing away from the wall.
			dx, dy := tc.dir.Delta()
			body := make([]core.Point, 5)
			for i := range body {
				body[i] = tc.head.Add(-dx*8*i, -dy*8*i)
			}
			f.setBody(body...)
			f.s.direction.Store(int32(tc.dir))
			before := f.s.Snapshot()

			if got := f.s.Tick(); got != OutcomeHitWall {
				t.Fatalf("Tick() = %v, expected hit_wall", got)
			}
			assertUnchangedExceptPhase(t, before, f.s.Snapshot())
		})
	}
}

func TestSelfCollision(t *testing.T) {
	f := newStarted(t)
	// Head at (16,16) heading right into body[3] at (24,16).
	f.setBody(pt(16, 16), pt(16, 24), pt(24, 24), pt(24, 16), pt(32, 16))
	before := f.s.Snapshot()

	if got := f.s.Tick(); got != OutcomeHitSelf {
		t.Fatalf("Tick() = %v, expected hit_self", got)
	}
	assertUnchangedExceptPhase(t, before, f.s.Snapshot())
}

func TestMovingIntoTailIsCollision(t *testing.T) {
	f := newStarted(t)
	// Six-cell loop whose tail sits right of the head.
	f.setBody(pt(8, 8), pt(8, 16), pt(16, 16), pt(24, 16), pt(24, 8), pt(16, 8))

	if got := f.s.Tick(); got != OutcomeHitSelf {
		t.Errorf("Tick() = %v, expected hit_self even though the tail would move", got)
	}
}

func assertUnchangedExceptPhase(t *testing.T, before, after Snapshot) {
	t.Helper()
	if after.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game_over", after.Phase)
	}
	if after.Score != before.Score || after.Apple() != before.Apple() || after.Length != before.Length {
		t.Errorf("score/apple/length changed: %+v -> %+v", before, after)
	}
	for i := range before.Body {
		if before.Body[i] != after.Body[i] {
			t.Errorf("body[%d] changed: %+v -> %+v", i, before.Body[i], after.Body[i])
		}
	}
}

func TestNoTicksAfterGameOver(t *testing.T) {
	f := newStarted(t)
	f.s.direction.Store(int32(DirUp))
	f.setBody(pt(160, 0), pt(160, 8), pt(160, 16), pt(160, 24), pt(160, 32))

	f.s.Tick()
	before := f.s.Snapshot()
	for i := 0; i < 3; i++ {
		if got := f.s.Tick(); got != OutcomeIdle {
			t.Fatalf("Tick() after game over = %v, expected idle", got)
		}
	}
	if after := f.s.Snapshot(); after.Ticks != before.Ticks {
		t.Error("idle ticks should not be counted")
	}
}

func TestGameOverScreenOnce(t *testing.T) {
	f := newStarted(t)
	f.s.direction.Store(int32(DirUp))
	f.setBody(pt(160, 0), pt(160, 8), pt(160, 16), pt(160, 24), pt(160, 32))
	f.s.Tick()

	if !f.s.ShowGameOver() {
		t.Fatal("first ShowGameOver should draw")
	}
	if got := f.fb.Count(f.pal.GameOver); got != 320*240 {
		t.Errorf("expected a full game-over fill, got %d pixels", got)
	}
	if f.s.ShowGameOver() {
		t.Error("second ShowGameOver should not draw again")
	}

	f.s.Reset()
	if f.s.Phase() != PhasePlaying {
		t.Fatalf("phase after restart = %v, expected playing", f.s.Phase())
	}
	if got := f.fb.Count(f.pal.Background); got != 320*240 {
		t.Error("restart should refill the background")
	}
}

func TestRestartKeepsGeneratorSequence(t *testing.T) {
	f := newStarted(t)
	first := f.s.Snapshot().Apple()
	if first != firstApple() {
		t.Fatalf("first apple = %+v, expected %+v", first, firstApple())
	}
	if first != pt(48, 40) {
		t.Errorf("first apple = %+v, expected (48, 40)", first)
	}

	// The generator is not reseeded, so a restart continues the sequence.
	probe := *f.s.rng
	expected := pt(int(probe.Next()%40)*8, int(probe.Next()%30)*8)
	f.s.Reset()
	if got := f.s.Snapshot().Apple(); got != expected {
		t.Errorf("apple after restart = %+v, expected %+v", got, expected)
	}
}

func TestGrowthSaturatesAtCapacity(t *testing.T) {
	f := newStarted(t)

	// Serpentine from the bottom row up; the last generated cell is the head.
	var path []core.Point
	for k := 0; len(path) < MaxLength; k++ {
		row := 29 - k
		for i := 0; i < 40 && len(path) < MaxLength; i++ {
			col := i
			if k%2 == 1 {
				col = 39 - i
			}
			path = append(path, pt(col*8, row*8))
		}
	}
	body := make([]core.Point, MaxLength)
	for i := range path {
		body[MaxLength-1-i] = path[i]
	}
	f.setBody(body...)

	head := body[0]
	if head != pt(31*8, 17*8) {
		t.Fatalf("unexpected head %+v", head)
	}
	tail := body[MaxLength-1]
	f.s.renderer.FillCell(tail, f.pal.Snake)
	f.s.apple = head.Add(8, 0)

	if got := f.s.Tick(); got != OutcomeGrew {
		t.Fatalf("Tick() = %v, expected grew", got)
	}
	snap := f.s.Snapshot()
	if snap.Length != MaxLength {
		t.Errorf("length = %d, expected saturation at %d", snap.Length, MaxLength)
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if f.fb.At(tail.X, tail.Y) != f.pal.Background {
		t.Error("dropped tail should be erased at capacity")
	}
}

func TestTurnIsModular(t *testing.T) {
	f := newStarted(t)

	turns := []struct {
		action   core.Action
		expected Direction
	}{
		{core.ActionTurnRight, DirDown},
		{core.ActionTurnRight, DirLeft},
		{core.ActionTurnRight, DirUp},
		{core.ActionTurnRight, DirRight},
		{core.ActionTurnLeft, DirUp},
		{core.ActionTurnLeft, DirLeft},
		{core.ActionNone, DirLeft},
	}

	for i, tc := range turns {
		if got := f.s.Turn(tc.action); got != tc.expected {
			t.Errorf("turn %d: %v -> %v, expected %v", i, tc.action, got, tc.expected)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two sessions fed the same turns produce identical snapshots.
	a := newStarted(t)
	b := newStarted(t)

	turns := rand.New(rand.NewSource(7))
	for i := 0; i < 400; i++ {
		var action core.Action
		switch turns.Intn(6) {
		case 0:
			action = core.ActionTurnLeft
		case 1:
			action = core.ActionTurnRight
		}
		a.s.Turn(action)
		b.s.Turn(action)

		if oa, ob := a.s.Tick(), b.s.Tick(); oa != ob {
			t.Fatalf("tick %d: outcomes diverged %v vs %v", i, oa, ob)
		}
		if a.s.Phase() == PhaseGameOver {
			a.s.Reset()
			b.s.Reset()
		}
	}

	sa, sb := a.s.Snapshot(), b.s.Snapshot()
	if sa.Head() != sb.Head() || sa.Apple() != sb.Apple() || sa.Score != sb.Score || sa.Dir != sb.Dir {
		t.Errorf("snapshots diverged: %+v vs %+v", sa, sb)
	}
}

func TestTickInvariants(t *testing.T) {
	f := newStarted(t)
	turns := rand.New(rand.NewSource(99))

	for i := 0; i < 5000; i++ {
		if f.s.Phase() == PhaseGameOver {
			f.s.Reset()
		}
		switch turns.Intn(5) {
		case 0:
			f.s.Turn(core.ActionTurnLeft)
		case 1:
			f.s.Turn(core.ActionTurnRight)
		}

		before := f.s.Snapshot()
		assertNoDuplicates(t, before)
		if before.Length < DefaultInitialLength || before.Length > MaxLength {
			t.Fatalf("length %d out of range", before.Length)
		}

		dx, dy := before.Dir.Delta()
		candidate := before.Head().Add(dx*8, dy*8)

		outcome := f.s.Tick()
		after := f.s.Snapshot()

		switch outcome {
		case OutcomeMoved:
			if after.Score != before.Score || after.Length != before.Length {
				t.Fatalf("plain move changed score/length")
			}
		case OutcomeGrew:
			if candidate != before.Apple() {
				t.Fatalf("grew without landing on the apple")
			}
			if after.Score != before.Score+1 {
				t.Fatalf("score %d -> %d, expected +1", before.Score, after.Score)
			}
		case OutcomeHitWall, OutcomeHitSelf:
			if after.Score != before.Score || after.Head() != before.Head() {
				t.Fatalf("collision mutated state")
			}
		default:
			t.Fatalf("unexpected outcome %v while playing", outcome)
		}
		if outcome == OutcomeMoved && candidate == before.Apple() {
			t.Fatalf("landed on the apple without growing")
		}
	}
}

func assertNoDuplicates(t *testing.T, snap Snapshot) {
	t.Helper()
	seen := make(map[core.Point]bool, len(snap.Body))
	for _, p := range snap.Body {
		if seen[p] {
			t.Fatalf("duplicate body cell %+v", p)
		}
		seen[p] = true
	}
}
