package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/firmware"
	"github.com/vovakirdan/pixel-snake/internal/hal"
	"github.com/vovakirdan/pixel-snake/internal/registry"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// Model is the Bubble Tea model hosting one firmware machine.
type Model struct {
	machine  *firmware.Machine
	sim      *hal.SimBoard
	cellSize int
	interval time.Duration
	keys     KeyMap
	help     help.Model
	held     bool // Button is down and must be released after the next poll
	last     firmware.PollResult
	quitting bool
}

// NewModel creates a model for a machine running on sim. The machine must
// already be booted; the model only polls it.
func NewModel(m *firmware.Machine, sim *hal.SimBoard, cellSize int, interval time.Duration) Model {
	if interval <= 0 {
		interval = firmware.DefaultPollInterval
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		machine:  m,
		sim:      sim,
		cellSize: cellSize,
		interval: interval,
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init starts the polling loop.
func (m Model) Init() tea.Cmd {
	return pollCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case PollMsg:
		return m.handlePoll()
	}

	return m, nil
}

// handleKey drives the simulated inputs. Button presses are held until the
// next poll so the sampler sees exactly one rising edge.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd, bit := m.keys.MapKey(msg)
	in := m.sim.Inputs
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandPress:
		m.tap()
	case CommandLeft:
		in.SetSwitches(in.ReadSwitches() | 1)
		m.tap()
	case CommandRight:
		in.SetSwitches(in.ReadSwitches() &^ 1)
		m.tap()
	case CommandToggle:
		in.ToggleSwitch(bit)
	}
	return m, nil
}

func (m *Model) tap() {
	if m.held {
		return
	}
	m.sim.Inputs.SetButton(true)
	m.held = true
}

// handlePoll runs one main-loop pass and schedules the next.
func (m Model) handlePoll() (tea.Model, tea.Cmd) {
	m.last = m.machine.Poll()
	if m.held {
		m.sim.Inputs.SetButton(false)
		m.held = false
	}
	return m, pollCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var screen string
	m.machine.Inspect(func() {
		screen = RenderFramebuffer(m.sim.Framebuffer, m.cellSize)
	})
	snap := m.machine.Session().Snapshot()

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n\n")
	b.WriteString(RenderSegments(m.sim.Segments.String()))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(statusLine(snap, m.sim.Inputs.ReadSwitches())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func statusLine(snap snake.Snapshot, switches uint32) string {
	var state string
	switch snap.Phase {
	case snake.PhaseNotStarted:
		state = "press the button to start"
	case snake.PhaseGameOver:
		state = fmt.Sprintf("game over (%s), press to restart", snap.LastOutcome)
	default:
		state = fmt.Sprintf("heading %s, length %d", snap.Dir, snap.Length)
	}
	return fmt.Sprintf("%s | switches %010b", state, switches)
}

// Frontend runs the firmware in the terminal.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Play in the terminal with a real-time timer"
}

// Run boots a machine on a simulated board with a wall-clock timer and
// hands the terminal to Bubble Tea until the user quits or ctx ends.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	cfg := env.Config
	logger := env.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	timer := hal.NewTickerTimer(cfg.Timer.ClockHz)
	defer timer.Stop()

	sim := hal.NewSimBoard(cfg.Screen.Width, cfg.Screen.Height, timer)
	m := firmware.New(sim.Board(), firmware.Options{
		Game:        cfg.SnakeOptions(),
		TimerPeriod: cfg.TimerPeriod(),
		TickDivider: cfg.Timer.TickDivider,
	}, logger)
	m.Boot()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		//nolint:errcheck // Returns ctx.Err() on shutdown
		m.Scheduler().Run(runCtx)
	}()

	model := NewModel(m, sim, cfg.Screen.CellSize, cfg.Input.PollInterval)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(runCtx))
	_, err := p.Run()

	cancel()
	<-done

	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("session closed", "score", m.Session().Snapshot().Score)
	return nil
}
