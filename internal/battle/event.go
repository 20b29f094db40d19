// Package battle executes competitions: the damage formula, the effect
// pipeline, and the round scheduler. It mutates internal/game state and
// narrates everything it does through a Sink, so the presentation layer
// decides where the transcript goes.
package battle

import (
	"fmt"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

// Event is one line of battle narration.
type Event interface {
	Message() string
}

// Sink receives narration events in transcript order. The engine calls
// it synchronously, so an interactive random source can interleave its
// prompts at the right spots.
type Sink func(Event)

func (s Sink) emit(e Event) {
	if s != nil {
		s(e)
	}
}

// Spacer is the blank transcript line before a turn or an announcement.
type Spacer struct{}

// TurnStarted opens a monster's turn.
type TurnStarted struct{ Name string }

// ConditionEnded reports a status condition wearing off at turn start.
type ConditionEnded struct {
	Name      string
	Condition game.Condition
}

// ConditionOngoing reports a status condition persisting at turn start.
type ConditionOngoing struct {
	Name      string
	Condition game.Condition
}

// ConditionInflicted reports a freshly applied status condition.
type ConditionInflicted struct {
	Name      string
	Condition game.Condition
}

// ActionUsed announces the action a monster performs this turn.
type ActionUsed struct{ Name, Action string }

// Passed announces a monster passing its turn.
type Passed struct{ Name string }

// ActionFailed reports a first-effect failure aborting the whole action.
type ActionFailed struct{}

// VeryEffective and NotVeryEffective report the element matchup of a
// base-strength calculation.
type VeryEffective struct{}

// NotVeryEffective reports an unfavorable element matchup.
type NotVeryEffective struct{}

// CriticalHit reports a successful critical roll.
type CriticalHit struct{}

// DamageTaken reports damage landing on a monster.
type DamageTaken struct {
	Name   string
	Amount int
}

// DamageBlocked reports a damage protection absorbing a hit.
type DamageBlocked struct{ Name string }

// BurnDamage reports the end-of-turn burn tax.
type BurnDamage struct {
	Name   string
	Amount int
}

// Fainted reports a monster dropping out of the competition.
type Fainted struct{ Name string }

// Healed reports restored health. Amount is the requested amount, which
// may exceed what the HP cap actually restored.
type Healed struct {
	Name   string
	Amount int
}

// StatRose and StatFell report stage changes; StatShielded reports a
// stat protection bouncing a negative change.
type StatRose struct {
	Name string
	Stat game.Stat
}

// StatFell reports a stage decrease.
type StatFell struct {
	Name string
	Stat game.Stat
}

// StatShielded reports a blocked negative stage change.
type StatShielded struct{ Name string }

// ProtectionGranted reports a new protection on the acting monster.
type ProtectionGranted struct {
	Name string
	Kind game.ProtectionKind
}

// ProtectionFaded reports a protection expiring at the round boundary.
type ProtectionFaded struct{ Name string }

// Winner announces the sole survivor.
type Winner struct{ Name string }

// Draw announces a competition everyone fainted out of.
type Draw struct{}

func (Spacer) Message() string { return "" }

func (e TurnStarted) Message() string {
	return fmt.Sprintf("It's %s's turn.", e.Name)
}

func (e ConditionEnded) Message() string   { return e.Condition.EndMessage(e.Name) }
func (e ConditionOngoing) Message() string { return e.Condition.OngoingMessage(e.Name) }
func (e ConditionInflicted) Message() string {
	return e.Condition.StartMessage(e.Name)
}

func (e ActionUsed) Message() string {
	return fmt.Sprintf("%s uses %s!", e.Name, e.Action)
}

func (e Passed) Message() string { return fmt.Sprintf("%s passes!", e.Name) }

func (ActionFailed) Message() string { return "The action failed..." }

func (VeryEffective) Message() string    { return "It is very effective!" }
func (NotVeryEffective) Message() string { return "It is not very effective..." }
func (CriticalHit) Message() string      { return "Critical hit!" }

func (e DamageTaken) Message() string {
	return fmt.Sprintf("%s takes %d damage!", e.Name, e.Amount)
}

func (e DamageBlocked) Message() string {
	return fmt.Sprintf("%s is protected and takes no damage!", e.Name)
}

func (e BurnDamage) Message() string {
	return fmt.Sprintf("%s takes %d damage from burning!", e.Name, e.Amount)
}

func (e Fainted) Message() string { return fmt.Sprintf("%s faints!", e.Name) }

func (e Healed) Message() string {
	return fmt.Sprintf("%s gains back %d health!", e.Name, e.Amount)
}

func (e StatRose) Message() string {
	return fmt.Sprintf("%s's %s rises!", e.Name, e.Stat)
}

func (e StatFell) Message() string {
	return fmt.Sprintf("%s's %s decreases...", e.Name, e.Stat)
}

func (e StatShielded) Message() string {
	return fmt.Sprintf("%s is protected and is unaffected!", e.Name)
}

func (e ProtectionGranted) Message() string {
	if e.Kind == game.ProtectionDamage {
		return fmt.Sprintf("%s is now protected against damage!", e.Name)
	}
	return fmt.Sprintf("%s is now protected against status changes!", e.Name)
}

func (e ProtectionFaded) Message() string {
	return fmt.Sprintf("%s's protection fades away...", e.Name)
}

func (e Winner) Message() string {
	return fmt.Sprintf("%s has no opponents left and wins the competition!", e.Name)
}

func (Draw) Message() string {
	return "All monsters have fainted. The competition ends without a winner!"
}
