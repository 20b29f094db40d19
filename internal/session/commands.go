package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/weiyudev/Monster-Competition/internal/battle"
	"github.com/weiyudev/Monster-Competition/internal/config"
	"github.com/weiyudev/Monster-Competition/internal/game"
)

const (
	errNoChooser      = "Error, no monster is currently selecting an action."
	errActionUsage    = "Error, usage: action <actionName> [<targetMonsterName>]"
	errActionUnknown  = "Error, %s does not know the action %s."
	errTargetUnknown  = "Error, unknown target monster: %s"
	errNoTarget       = "Error, no valid target for the action."
	errCompUsage      = "Error, usage: competition <monster1> <monster2> ..."
	errMonsterUnknown = "Error, unknown monster: %s"
	errLoadUsage      = "Error, usage: load <path> [<seed>|debug]"
	errLoadSecondArg  = "Error, the second argument must be either 'debug' or a numeric seed value."
	errLoadFailed     = "Error, failed to load file %s: %s"
	errPassArgs       = "Error, the 'pass' command does not accept any arguments."
	errShowUnknown    = "Error, unknown show command: %s"

	noteSeedIgnored = "Note: The seed/debug parameter is accepted but not applied in the current implementation."
	msgEnter        = "The %d monsters enter the competition!"
	msgPrompt       = "What should %s do?"
)

// Handle dispatches one command line. Unknown commands are dropped
// silently.
func (s *Session) Handle(line string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}
	args := tokens[1:]
	switch strings.ToLower(tokens[0]) {
	case "load":
		s.handleLoad(args)
	case "competition":
		s.handleCompetition(args)
	case "show":
		s.handleShow(args)
	case "action":
		s.handleAction(args)
	case "pass":
		s.handlePass(args)
	case "quit":
		// A bare quit exits in Run; reaching here means stray arguments.
		fmt.Fprintln(s.out, "Error, the 'quit' command does not accept any arguments.")
		s.promptChooser()
	default:
		s.log.Debug("ignoring unknown command", "command", tokens[0])
	}
}

// promptChooser asks the next monster for its choice, if a choice is
// being collected.
func (s *Session) promptChooser() {
	if s.sched == nil {
		return
	}
	if m := s.sched.Chooser(); m != nil {
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, msgPrompt+"\n", m.Name)
	}
}

// interrupted reports the oracle having seen a quit token, which ends
// the session after the current command.
func (s *Session) interrupted() bool {
	if s.oracle != nil && s.oracle.Interrupted() {
		s.done = true
		return true
	}
	return false
}

func (s *Session) handleLoad(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(s.out, errLoadUsage)
		return
	}
	if len(args) == 2 {
		if !strings.EqualFold(args[1], "debug") {
			if _, err := strconv.ParseInt(args[1], 10, 64); err != nil {
				fmt.Fprintln(s.out, errLoadSecondArg)
				return
			}
		}
		// Re-seeding mid-process would fork the transcript; the value is
		// validated and set aside.
		fmt.Fprintln(s.out, noteSeedIgnored)
	}
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.out, errLoadFailed+"\n", path, err)
		return
	}
	s.echo(string(data))
	set, err := config.Parse(data)
	if err != nil {
		fmt.Fprintf(s.out, errLoadFailed+"\n", path, err)
		return
	}
	s.set = set
	s.comp = nil
	s.sched = nil
	s.Announce()
}

// echo prints the configuration file exactly as read.
func (s *Session) echo(raw string) {
	fmt.Fprint(s.out, raw)
	if raw != "" && !strings.HasSuffix(raw, "\n") {
		fmt.Fprintln(s.out)
	}
}

func (s *Session) handleCompetition(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, errCompUsage)
		return
	}
	// The old competition is gone whether or not the new one assembles.
	s.comp = nil
	s.sched = nil

	total := map[string]int{}
	for _, name := range args {
		total[name]++
	}
	seen := map[string]int{}
	comp := battle.NewCompetition()
	for _, name := range args {
		template := s.set.Monster(name)
		if template == nil {
			fmt.Fprintf(s.out, errMonsterUnknown+"\n", name)
			return
		}
		seen[name]++
		display := name
		if total[name] > 1 {
			display = fmt.Sprintf("%s#%d", name, seen[name])
		}
		comp.Add(template.Clone(display))
	}
	fmt.Fprintf(s.out, msgEnter+"\n", len(args))

	s.comp = comp
	s.sched = battle.NewScheduler(comp, s.rng, s.sink)
	s.sched.Begin()
	s.promptChooser()
}

func (s *Session) handleAction(args []string) {
	chooser := s.chooser()
	if chooser == nil {
		fmt.Fprintln(s.out, errNoChooser)
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.out, errActionUsage)
		s.promptChooser()
		return
	}
	action := chooser.ActionByName(args[0])
	if action == nil {
		fmt.Fprintf(s.out, errActionUnknown+"\n", chooser.Name, args[0])
		s.promptChooser()
		return
	}
	target, ok := s.resolveTarget(chooser, args)
	if !ok {
		return
	}
	if target == nil && len(s.comp.All()) > 2 {
		fmt.Fprintln(s.out, errNoTarget)
		s.promptChooser()
		return
	}
	s.sched.Choose(action, target)
	if s.interrupted() {
		return
	}
	s.promptChooser()
}

// resolveTarget picks the named target, or the first live opponent when
// none is named. ok is false when a named target does not exist.
func (s *Session) resolveTarget(chooser *game.Monster, args []string) (*game.Monster, bool) {
	if len(args) > 1 {
		for _, m := range s.comp.All() {
			if m.Name == args[1] && m != chooser {
				return m, true
			}
		}
		fmt.Fprintf(s.out, errTargetUnknown+"\n", args[1])
		s.promptChooser()
		return nil, false
	}
	for _, m := range s.comp.All() {
		if m != chooser && !m.Fainted() {
			return m, true
		}
	}
	return nil, true
}

func (s *Session) handlePass(args []string) {
	if len(args) > 0 {
		fmt.Fprintln(s.out, errPassArgs)
		s.promptChooser()
		return
	}
	if s.chooser() == nil {
		fmt.Fprintln(s.out, errNoChooser)
		return
	}
	s.sched.Pass()
	if s.interrupted() {
		return
	}
	s.promptChooser()
}

func (s *Session) handleShow(args []string) {
	chooser := s.chooser()
	if len(args) == 0 {
		if chooser == nil {
			fmt.Fprintln(s.out, errNoChooser)
			return
		}
		fmt.Fprint(s.out, s.renderer.StatusBoard(s.comp.All(), chooser))
		s.promptChooser()
		return
	}
	if len(args) > 1 {
		fmt.Fprintf(s.out, errShowUnknown+"\n", strings.Join(args, " "))
		s.promptChooser()
		return
	}
	switch strings.ToLower(args[0]) {
	case "monsters":
		fmt.Fprint(s.out, s.renderer.MonsterList(s.set.Monsters))
		s.promptChooser()
	case "actions":
		if chooser == nil {
			fmt.Fprintln(s.out, errNoChooser)
			return
		}
		fmt.Fprint(s.out, s.renderer.ActionList(chooser))
		s.promptChooser()
	case "stats":
		if chooser == nil {
			fmt.Fprintln(s.out, errNoChooser)
			return
		}
		fmt.Fprint(s.out, s.renderer.StatView(chooser))
		s.promptChooser()
	case "status":
		if chooser == nil {
			fmt.Fprintln(s.out, errNoChooser)
			return
		}
		fmt.Fprint(s.out, s.renderer.StatusBoard(s.comp.All(), chooser))
		s.promptChooser()
	default:
		fmt.Fprintf(s.out, errShowUnknown+"\n", args[0])
		s.promptChooser()
	}
}

func (s *Session) chooser() *game.Monster {
	if s.sched == nil {
		return nil
	}
	return s.sched.Chooser()
}
