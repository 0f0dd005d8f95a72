package headless

import (
	"fmt"
	"strconv"
	"strings"
)

// StepKind is one scripted action.
type StepKind int

const (
	StepPress     StepKind = iota // Tap the button with the switches as they are
	StepLeft                      // Set switch 0 and tap: turn left
	StepRight                     // Clear switch 0 and tap: turn right
	StepTick                      // Advance N game ticks
	StepUntilOver                 // Tick until the game ends
)

// Step is a parsed script entry.
type Step struct {
	Kind  StepKind
	Count int
}

// DefaultScript starts a game and lets it run into the right-hand wall.
const DefaultScript = "start,until-over"

// ParseScript parses a comma-separated list of steps:
// start|press, left, right, tick[:n], until-over.
func ParseScript(src string) ([]Step, error) {
	var steps []Step
	for _, raw := range strings.Split(src, ",") {
		tok := strings.TrimSpace(strings.ToLower(raw))
		if tok == "" {
			continue
		}

		name, arg, hasArg := strings.Cut(tok, ":")
		switch name {
		case "start", "press":
			steps = append(steps, Step{Kind: StepPress})
		case "left":
			steps = append(steps, Step{Kind: StepLeft})
		case "right":
			steps = append(steps, Step{Kind: StepRight})
		case "until-over":
			steps = append(steps, Step{Kind: StepUntilOver})
		case "tick":
			n := 1
			if hasArg {
				v, err := strconv.Atoi(arg)
				if err != nil || v < 1 {
					return nil, fmt.Errorf("headless: bad tick count %q", arg)
				}
				n = v
			}
			steps = append(steps, Step{Kind: StepTick, Count: n})
		default:
			return nil, fmt.Errorf("headless: unknown step %q", tok)
		}
	}
	return steps, nil
}
