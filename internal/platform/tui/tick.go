// Package tui hosts the firmware in a Bubble Tea terminal UI. The keyboard
// drives the simulated button and switches, and the framebuffer and score
// digits are drawn with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg is sent to run one pass of the firmware main loop.
type PollMsg time.Time

// pollCmd returns a Bubble Tea command that sends a poll message after interval.
func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
