// Package headless hosts the firmware without a terminal UI. It replays a
// script of button presses and game ticks deterministically and prints the
// resulting state, which makes it suitable for CI and for checking a seed.
package headless

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/pixel-snake/internal/firmware"
	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/registry"
	"github.com/vovakirdan/pixel-snake/internal/scheduler"
)

// maxTicksUntilOver bounds an until-over step.
const maxTicksUntilOver = 100_000

// Frontend replays scripts against a simulated board.
type Frontend struct {
	out io.Writer
}

// New creates a headless frontend writing its report to out.
func New(out io.Writer) *Frontend {
	return &Frontend{out: out}
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return New(os.Stdout)
	})
}

// Name returns the frontend identifier.
func (f *Frontend) Name() string {
	return "headless"
}

// Description returns a one-line summary.
func (f *Frontend) Description() string {
	return "Replay a scripted session and print the final state"
}

// Run executes env.Args["script"] (or DefaultScript) and prints a report.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	src := env.Args["script"]
	if src == "" {
		src = DefaultScript
	}
	steps, err := ParseScript(src)
	if err != nil {
		return err
	}

	m, sim, err := Play(ctx, env, steps)
	if err != nil {
		return err
	}
	return f.report(m, sim, env.Config.Screen.CellSize)
}

// Play boots a machine on a fresh simulated board and applies steps. The
// calling goroutine plays the part of the timer interrupt, so the same steps
// and seed always give the same result.
func Play(ctx context.Context, env registry.Env, steps []Step) (*firmware.Machine, *hal.SimBoard, error) {
	cfg := env.Config
	timer := hal.NewManualTimer()
	sim := hal.NewSimBoard(cfg.Screen.Width, cfg.Screen.Height, timer)
	m := firmware.New(sim.Board(), firmware.Options{
		Game:        cfg.SnakeOptions(),
		TimerPeriod: cfg.TimerPeriod(),
		TickDivider: cfg.Timer.TickDivider,
	}, env.Logger)
	m.Boot()

	divider := cfg.Timer.TickDivider
	if divider < 1 {
		divider = scheduler.DefaultDivider
	}
	r := &replay{m: m, sim: sim, divider: divider}
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		r.apply(step)
		if env.Logger != nil {
			env.Logger.Debug("step done", "index", i, "kind", step.Kind, "phase", m.Session().Phase())
		}
	}
	return m, sim, nil
}

type replay struct {
	m       *firmware.Machine
	sim     *hal.SimBoard
	divider int
}

func (r *replay) apply(step Step) {
	switch step.Kind {
	case StepPress:
		r.tap()
	case StepLeft:
		r.sim.Inputs.SetSwitches(r.sim.Inputs.ReadSwitches() | 1)
		r.tap()
	case StepRight:
		r.sim.Inputs.SetSwitches(r.sim.Inputs.ReadSwitches() &^ 1)
		r.tap()
	case StepTick:
		for i := 0; i < step.Count; i++ {
			r.tick()
		}
	case StepUntilOver:
		for i := 0; i < maxTicksUntilOver && r.m.Session().Playing(); i++ {
			r.tick()
		}
	}
	r.m.Poll()
}

// tap holds the button for exactly one polling pass.
func (r *replay) tap() {
	r.sim.Inputs.SetButton(true)
	r.m.Poll()
	r.sim.Inputs.SetButton(false)
}

// tick raises enough timer events for one game tick.
func (r *replay) tick() {
	for i := 0; i < r.divider; i++ {
		r.m.Scheduler().HandleInterrupt()
	}
}

func (f *Frontend) report(m *firmware.Machine, sim *hal.SimBoard, cellSize int) error {
	snap := m.Session().Snapshot()

	var cells string
	m.Inspect(func() {
		cells = sim.Framebuffer.CellMap(cellSize)
	})

	_, err := fmt.Fprintf(f.out,
		"phase:   %s\nlast:    %s\nticks:   %d\nscore:   %d\nlength:  %d\nhead:    (%d, %d) heading %s\napple:   (%d, %d)\ndisplay: %s\n\n%s\n",
		snap.Phase, snap.LastOutcome, snap.Ticks, snap.Score, snap.Length,
		snap.HeadX, snap.HeadY, snap.Dir, snap.AppleX, snap.AppleY,
		sim.Segments.String(), cells)
	if err != nil {
		return fmt.Errorf("headless: cannot write report: %w", err)
	}
	return nil
}
