package battle

import (
	"github.com/weiyudev/Monster-Competition/internal/game"
	"github.com/weiyudev/Monster-Competition/internal/random"
)

// Phase is the scheduler's position in the round loop.
type Phase int

const (
	// PhaseCheckEnd: between rounds, testing the end condition.
	PhaseCheckEnd Phase = iota
	// PhaseCollect: gathering one choice per live monster, roster order.
	PhaseCollect
	// PhaseResolve: executing the collected choices in speed order.
	PhaseResolve
	// PhaseTerminated: the competition is over.
	PhaseTerminated
)

type choice struct {
	action *game.Action
	target *game.Monster
}

// Scheduler drives a competition round by round: collect one choice per
// live monster, then resolve them fastest first, then tick protections
// and start over. All narration flows through the sink.
type Scheduler struct {
	comp    *Competition
	exec    *executor
	rng     random.Source
	sink    Sink
	state   Phase
	round   int
	chooser int
	choices map[*game.Monster]choice
}

// NewScheduler builds a scheduler over a freshly assembled roster.
func NewScheduler(comp *Competition, rng random.Source, sink Sink) *Scheduler {
	return &Scheduler{
		comp:    comp,
		exec:    &executor{rng: rng, sink: sink},
		rng:     rng,
		sink:    sink,
		choices: map[*game.Monster]choice{},
	}
}

// Phase returns the scheduler's current phase.
func (s *Scheduler) Phase() Phase { return s.state }

// Round returns the current round number, starting at 1.
func (s *Scheduler) Round() int { return s.round }

// Begin starts the first round.
func (s *Scheduler) Begin() {
	s.round = 1
	s.startRound()
}

func (s *Scheduler) startRound() {
	s.state = PhaseCheckEnd
	s.choices = map[*game.Monster]choice{}
	if s.checkEnd() {
		s.state = PhaseTerminated
		return
	}
	s.state = PhaseCollect
	s.chooser = -1
	s.advanceChooser()
}

// Chooser returns the monster whose choice is currently being collected,
// or nil outside the collect phase.
func (s *Scheduler) Chooser() *game.Monster {
	if s.state != PhaseCollect {
		return nil
	}
	return s.comp.All()[s.chooser]
}

// Choose records the chooser's action and advances. Once every live
// monster has chosen, the round resolves immediately.
func (s *Scheduler) Choose(action *game.Action, target *game.Monster) {
	m := s.Chooser()
	if m == nil {
		return
	}
	s.choices[m] = choice{action: action, target: target}
	s.advanceChooser()
}

// Pass records the chooser passing its turn and advances.
func (s *Scheduler) Pass() {
	if s.Chooser() == nil {
		return
	}
	s.advanceChooser()
}

func (s *Scheduler) advanceChooser() {
	all := s.comp.All()
	for i := s.chooser + 1; i < len(all); i++ {
		if !all[i].Fainted() {
			s.chooser = i
			return
		}
	}
	s.resolveRound()
}

func (s *Scheduler) resolveRound() {
	s.state = PhaseResolve
	ended := false
	for _, m := range s.comp.SpeedOrder() {
		if m.Fainted() {
			continue
		}
		s.sink.emit(Spacer{})
		s.sink.emit(TurnStarted{m.Name})
		cond := s.tickCondition(m)
		ch, acting := s.choices[m]
		acting = acting && ch.action != nil
		var plan repeatPlan
		if acting {
			// Repeat counts commit before the announcement.
			plan = s.exec.planRepeats(ch.action)
			s.sink.emit(ActionUsed{m.Name, ch.action.Name})
		} else {
			s.sink.emit(Passed{m.Name})
		}
		if cond == game.ConditionSleep {
			continue
		}
		if acting {
			s.exec.execute(m, ch.target, ch.action, plan)
		}
		s.applyBurn(m, cond)
		if s.checkEnd() {
			ended = true
		}
	}
	if ended {
		s.announce()
	}
	for _, m := range s.comp.All() {
		if !m.Fainted() && m.TickProtection() {
			s.sink.emit(ProtectionFaded{m.Name})
		}
	}
	s.choices = map[*game.Monster]choice{}
	if s.comp.Ended() {
		s.state = PhaseTerminated
		return
	}
	s.round++
	s.startRound()
}

// tickCondition rolls the 33% end chance for the monster's condition and
// narrates the outcome. It returns the condition still in force.
func (s *Scheduler) tickCondition(m *game.Monster) game.Condition {
	cond := m.Condition()
	if cond == game.ConditionNone {
		return game.ConditionNone
	}
	if s.rng.Chance(ctxConditionEnd, conditionEndChance) {
		s.sink.emit(ConditionEnded{m.Name, cond})
		m.ClearCondition()
		return game.ConditionNone
	}
	s.sink.emit(ConditionOngoing{m.Name, cond})
	return cond
}

// applyBurn charges the burn tax after a monster's action resolves. It
// fires even when the monster already fainted during its own action, and
// respects a damage protection.
func (s *Scheduler) applyBurn(m *game.Monster, cond game.Condition) {
	if cond != game.ConditionBurn {
		return
	}
	tax := burnTax(m.Base.HP)
	s.sink.emit(BurnDamage{m.Name, tax})
	fainted, blocked := m.TakeDamage(tax)
	if blocked {
		s.sink.emit(DamageBlocked{m.Name})
		return
	}
	if fainted {
		s.sink.emit(Fainted{m.Name})
	}
}

func (s *Scheduler) checkEnd() bool {
	if len(s.comp.Alive()) < 2 {
		s.comp.setEnded()
		return true
	}
	return false
}

func (s *Scheduler) announce() {
	alive := s.comp.Alive()
	s.sink.emit(Spacer{})
	if len(alive) == 1 {
		s.sink.emit(Winner{alive[0].Name})
	} else {
		s.sink.emit(Draw{})
	}
}
