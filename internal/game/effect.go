package game

// TargetKind selects which combatant an effect lands on.
type TargetKind string

const (
	// TargetSelf applies the effect to the acting monster.
	TargetSelf TargetKind = "user"
	// TargetOpponent applies the effect to the chosen target monster.
	TargetOpponent TargetKind = "target"
)

// StrengthKind selects how an effect's magnitude is computed.
type StrengthKind string

const (
	// StrengthBase feeds the value through the full damage formula.
	StrengthBase StrengthKind = "base"
	// StrengthRel reads the value as a percentage of the target's base HP.
	StrengthRel StrengthKind = "rel"
	// StrengthAbs uses the value literally.
	StrengthAbs StrengthKind = "abs"
)

// Strength is the declared magnitude of a damage or heal effect.
type Strength struct {
	Kind  StrengthKind
	Value int
}

// Count is a fixed repetition/duration count or a closed integer range
// sampled once at execution time.
type Count struct {
	Random bool
	Min    int
	Max    int
}

// FixedCount builds a Count that always yields n.
func FixedCount(n int) Count {
	return Count{Min: n, Max: n}
}

// RandomCount builds a Count sampled uniformly from [min,max].
func RandomCount(min, max int) Count {
	return Count{Random: true, Min: min, Max: max}
}

// Effect is the closed set of declarative effect variants an action is
// composed of. The set is sealed so the battle pipeline can dispatch
// exhaustively; new variants are a compile-time-visible change.
type Effect interface {
	effect()
}

// DamageEffect deals damage to the selected combatant.
type DamageEffect struct {
	Target   TargetKind
	Strength Strength
	HitRate  int
}

// HealEffect restores health to the selected combatant, capped at base HP.
type HealEffect struct {
	Target   TargetKind
	Strength Strength
	HitRate  int
}

// InflictConditionEffect puts a status condition on the selected
// combatant unless it already carries one.
type InflictConditionEffect struct {
	Target    TargetKind
	Condition Condition
	HitRate   int
}

// StatChangeEffect shifts one stat stage of the selected combatant.
type StatChangeEffect struct {
	Target  TargetKind
	Stat    Stat
	Delta   int
	HitRate int
}

// ProtectEffect shields the acting monster against damage or against
// negative stat changes for a number of rounds. A new protection always
// replaces the previous one.
type ProtectEffect struct {
	Kind    ProtectionKind
	Rounds  Count
	HitRate int
}

// ContinueEffect is a pure gate: it has no consequence beyond its own
// hit check deciding whether the action's first-effect rule trips.
type ContinueEffect struct {
	HitRate int
}

// RepeatEffect runs its sub-effects a sampled-once number of times.
// Sub-effects may not contain another RepeatEffect.
type RepeatEffect struct {
	Count   Count
	Effects []Effect
}

func (DamageEffect) effect()           {}
func (HealEffect) effect()             {}
func (InflictConditionEffect) effect() {}
func (StatChangeEffect) effect()       {}
func (ProtectEffect) effect()          {}
func (ContinueEffect) effect()         {}
func (RepeatEffect) effect()           {}
