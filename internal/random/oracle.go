package random

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StatusView renders a read-only snapshot of the running competition for
// the oracle's "show" interception. It returns the empty string when no
// competition is active.
type StatusView interface {
	StatusBoard() string
}

// Oracle is the interactive Source: every draw becomes a prompt the
// player answers. "show" mid-prompt renders the status board and asks
// again; "quit" returns a default answer and flags the session for
// shutdown.
type Oracle struct {
	in   *bufio.Scanner
	out  io.Writer
	view StatusView
	quit bool
}

// NewOracle builds an oracle reading answers from in and writing
// prompts to w. The scanner is shared with the command loop so both
// read the same stream without double buffering.
func NewOracle(in *bufio.Scanner, w io.Writer) *Oracle {
	return &Oracle{in: in, out: w}
}

// SetView attaches the competition snapshot used by the "show"
// interception.
func (o *Oracle) SetView(v StatusView) { o.view = v }

// Interrupted reports that the player answered a prompt with "quit".
func (o *Oracle) Interrupted() bool { return o.quit }

const (
	promptYesNo        = "Decide %s: yes or no? (y/n)"
	promptYesNoClamped = "Decide %s (clamped to %d%%): yes or no? (y/n)"
	promptFloatRange   = "Decide %s: a number between %.2f and %.2f?"
	promptIntRange     = "Decide %s: an integer between %d and %d?"

	errYesOrNo        = "Error, enter y or n."
	errNotADouble     = "Error, not a valid double."
	errNotAnInteger   = "Error, not a valid integer."
	errNoCompetition  = "Error, no active competition. Try 'show monsters' to see all available monsters."
	errCommandBlocked = "Error, commands are not allowed during debug input. Please answer the prompt."

	quitToken = "quit"
	showToken = "show"
)

// ask prints the prompt and returns the player's answer, handling the
// show interception and the quit token. Closed input counts as quit.
func (o *Oracle) ask(prompt string) string {
	for {
		fmt.Fprintln(o.out, prompt)
		if !o.in.Scan() {
			o.quit = true
			return quitToken
		}
		input := strings.TrimSpace(o.in.Text())
		if strings.EqualFold(input, quitToken) {
			o.quit = true
			return quitToken
		}
		if strings.HasPrefix(strings.ToLower(input), showToken) {
			if strings.EqualFold(input, showToken) {
				o.renderBoard()
			} else {
				fmt.Fprintln(o.out, errCommandBlocked)
			}
			continue
		}
		return input
	}
}

func (o *Oracle) renderBoard() {
	if o.view == nil {
		fmt.Fprintln(o.out, errNoCompetition)
		return
	}
	board := o.view.StatusBoard()
	if board == "" {
		fmt.Fprintln(o.out, errNoCompetition)
		return
	}
	fmt.Fprint(o.out, board)
}

// Chance asks the player to decide a percentage check. The default on
// quit is false.
func (o *Oracle) Chance(context string, percent int) bool {
	clamped, wasClamped := clampRate(o.out, percent)
	prompt := fmt.Sprintf(promptYesNo, context)
	if wasClamped {
		prompt = fmt.Sprintf(promptYesNoClamped, context, clamped)
	}
	for {
		switch strings.ToLower(o.ask(prompt)) {
		case quitToken:
			return false
		case "y":
			return true
		case "n":
			return false
		default:
			fmt.Fprintln(o.out, errYesOrNo)
		}
	}
}

// Float asks the player for a real number in [min,max]. The default on
// quit is min.
func (o *Oracle) Float(context string, min, max float64) float64 {
	max = clampFloatRange(o.out, min, max)
	prompt := fmt.Sprintf(promptFloatRange, context, min, max)
	for {
		input := o.ask(prompt)
		if input == quitToken && o.quit {
			return min
		}
		val, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintln(o.out, errNotADouble)
			continue
		}
		if val < min || val > max {
			fmt.Fprintln(o.out, errOutOfRange)
			continue
		}
		return val
	}
}

// Int asks the player for an integer in [min,max]. The default on quit
// is min.
func (o *Oracle) Int(context string, min, max int) int {
	max = clampIntRange(o.out, min, max)
	prompt := fmt.Sprintf(promptIntRange, context, min, max)
	for {
		input := o.ask(prompt)
		if input == quitToken && o.quit {
			return min
		}
		val, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(o.out, errNotAnInteger)
			continue
		}
		if val < min || val > max {
			fmt.Fprintln(o.out, errOutOfRange)
			continue
		}
		return val
	}
}
