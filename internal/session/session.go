// Package session runs the interactive command loop: loading
// configurations, assembling competitions, collecting action choices,
// and printing the battle transcript.
package session

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/weiyudev/Monster-Competition/internal/battle"
	"github.com/weiyudev/Monster-Competition/internal/config"
	"github.com/weiyudev/Monster-Competition/internal/game"
	"github.com/weiyudev/Monster-Competition/internal/random"
	"github.com/weiyudev/Monster-Competition/internal/render"
)

// Session owns one game process: the loaded template set, the running
// competition if any, and the command dispatch over an input stream.
type Session struct {
	out      io.Writer
	rng      random.Source
	oracle   *random.Oracle
	renderer *render.Renderer
	log      *slog.Logger

	set   *config.Set
	comp  *battle.Competition
	sched *battle.Scheduler
	done  bool
}

// New builds a session. oracle may be nil when the random source is not
// interactive.
func New(set *config.Set, rng random.Source, oracle *random.Oracle, out io.Writer, log *slog.Logger) *Session {
	s := &Session{
		out:      out,
		rng:      rng,
		oracle:   oracle,
		renderer: render.New(),
		log:      log,
		set:      set,
	}
	if oracle != nil {
		oracle.SetView(s)
	}
	return s
}

// sink prints battle narration line by line as it happens, so oracle
// prompts land between the right lines.
func (s *Session) sink(e battle.Event) {
	fmt.Fprintln(s.out, e.Message())
}

// Announce prints the load summary for the current template set.
func (s *Session) Announce() {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Loaded %d actions, %d monsters.\n", len(s.set.Actions), len(s.set.Monsters))
}

// Run consumes commands until EOF or quit. Blank lines are skipped;
// only a bare "quit" exits. The scanner is shared with an interactive
// random source, whose mid-battle prompts consume lines of the same
// stream.
func (s *Session) Run(scanner *bufio.Scanner) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}
		s.Handle(line)
		if s.done {
			return
		}
	}
}

// StatusBoard renders the running competition for the interactive
// random source's mid-prompt "show". Empty when no competition runs.
func (s *Session) StatusBoard() string {
	if s.comp == nil || len(s.comp.All()) == 0 {
		return ""
	}
	return s.renderer.StatusBoard(s.comp.All(), s.currentMonster())
}

// currentMonster is the monster the status board stars: the current
// chooser, or the first roster member during resolution.
func (s *Session) currentMonster() *game.Monster {
	if s.sched == nil {
		return nil
	}
	if m := s.sched.Chooser(); m != nil {
		return m
	}
	all := s.comp.All()
	if len(all) > 0 {
		return all[0]
	}
	return nil
}
