package game

// ProtectionKind is the shield a Protect effect grants. A monster holds
// at most one protection; setting a new one replaces the old.
type ProtectionKind string

const (
	ProtectionNone ProtectionKind = ""
	// ProtectionDamage blocks all incoming damage, including burn damage.
	ProtectionDamage ProtectionKind = "health"
	// ProtectionStatChanges blocks negative stat stage changes.
	ProtectionStatChanges ProtectionKind = "stats"
)

// StageResult reports what a stage change did, so the caller can narrate
// it. The model itself never prints.
type StageResult int

const (
	// StageUnchanged: the stage was already clamped at the boundary.
	StageUnchanged StageResult = iota
	// StageRose: the stage went up.
	StageRose
	// StageFell: the stage went down.
	StageFell
	// StageProtected: a negative change bounced off a stat protection.
	StageProtected
)

// Monster is one combatant: an immutable base block plus the mutable
// battle state of the current competition. Templates are monsters too;
// Clone spawns a fresh battle instance from one.
type Monster struct {
	Name    string
	Element Element
	Base    Stats
	Actions []*Action

	currentHP        int
	cond             Condition
	stages           map[Stat]int
	protection       ProtectionKind
	protectionRounds int
}

// NewMonster builds a monster at full health with neutral stages.
func NewMonster(name string, element Element, base Stats, actions []*Action) *Monster {
	return &Monster{
		Name:      name,
		Element:   element,
		Base:      base,
		Actions:   actions,
		currentHP: base.HP,
		stages:    map[Stat]int{},
	}
}

// Clone spawns a fresh battle instance under the given display name,
// sharing the immutable base block and action list.
func (m *Monster) Clone(name string) *Monster {
	return NewMonster(name, m.Element, m.Base, m.Actions)
}

// ActionByName returns the named action, or nil.
func (m *Monster) ActionByName(name string) *Action {
	for _, a := range m.Actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// CurrentHP returns the monster's current health.
func (m *Monster) CurrentHP() int { return m.currentHP }

// Fainted reports whether the monster is out of the competition.
func (m *Monster) Fainted() bool { return m.currentHP <= 0 }

// Condition returns the current status condition, ConditionNone if healthy.
func (m *Monster) Condition() Condition { return m.cond }

// SetCondition inflicts a status condition. It reports false if the
// monster already carries one; conditions never overwrite each other.
func (m *Monster) SetCondition(c Condition) bool {
	if m.cond != ConditionNone {
		return false
	}
	m.cond = c
	return true
}

// ClearCondition removes the current status condition.
func (m *Monster) ClearCondition() { m.cond = ConditionNone }

// Stage returns the current stage of a stat, in [MinStage, MaxStage].
func (m *Monster) Stage(s Stat) int { return m.stages[s] }

// ChangeStage shifts a stat stage by delta, clamped to the stage bounds,
// and reports what happened. A stat-change protection blocks negative
// deltas entirely.
func (m *Monster) ChangeStage(s Stat, delta int) StageResult {
	if m.protection == ProtectionStatChanges && delta < 0 {
		return StageProtected
	}
	old := m.stages[s]
	now := clampStage(old + delta)
	m.stages[s] = now
	switch {
	case now > old:
		return StageRose
	case now < old:
		return StageFell
	default:
		return StageUnchanged
	}
}

// TakeDamage applies damage. blocked reports that a damage protection
// absorbed it; fainted reports that this damage dropped the monster from
// alive to fainted.
func (m *Monster) TakeDamage(damage int) (fainted, blocked bool) {
	if m.protection == ProtectionDamage {
		return false, true
	}
	wasAlive := m.currentHP > 0
	m.currentHP -= damage
	if m.currentHP < 0 {
		m.currentHP = 0
	}
	return wasAlive && m.currentHP <= 0, false
}

// Heal restores health, capped at base HP. Callers narrate the requested
// amount, not the capped one.
func (m *Monster) Heal(amount int) {
	m.currentHP += amount
	if m.currentHP > m.Base.HP {
		m.currentHP = m.Base.HP
	}
}

// Protection returns the active protection kind.
func (m *Monster) Protection() ProtectionKind { return m.protection }

// SetProtection replaces any active protection with a new one lasting
// the given number of round boundaries.
func (m *Monster) SetProtection(kind ProtectionKind, rounds int) {
	m.protection = kind
	m.protectionRounds = rounds
}

// TickProtection counts down the active protection at a round boundary
// and reports whether it just faded.
func (m *Monster) TickProtection() (faded bool) {
	if m.protectionRounds <= 0 {
		return false
	}
	m.protectionRounds--
	if m.protectionRounds == 0 {
		faded = m.protection != ProtectionNone
		m.protection = ProtectionNone
	}
	return faded
}

// EffectiveAtk is base ATK scaled by its stage factor, reduced while
// burning, floored at 1.
func (m *Monster) EffectiveAtk() float64 {
	v := float64(m.Base.Atk) * stageFactor(atkDefSpdFactorBase, m.stages[StatAtk])
	if m.cond == ConditionBurn {
		v *= conditionMultiplier
	}
	return floorStat(v)
}

// EffectiveDef is base DEF scaled by its stage factor, reduced while
// wet, floored at 1.
func (m *Monster) EffectiveDef() float64 {
	v := float64(m.Base.Def) * stageFactor(atkDefSpdFactorBase, m.stages[StatDef])
	if m.cond == ConditionWet {
		v *= conditionMultiplier
	}
	return floorStat(v)
}

// EffectiveSpd is base SPD scaled by its stage factor, reduced while
// caught in quicksand, floored at 1.
func (m *Monster) EffectiveSpd() float64 {
	v := float64(m.Base.Spd) * stageFactor(atkDefSpdFactorBase, m.stages[StatSpd])
	if m.cond == ConditionQuicksand {
		v *= conditionMultiplier
	}
	return floorStat(v)
}

// EffectivePrc is base PRC scaled by its stage factor, floored at 1.
func (m *Monster) EffectivePrc() float64 {
	return floorStat(float64(m.Base.Prc) * stageFactor(prcAglFactorBase, m.stages[StatPrc]))
}

// EffectiveAgl is base AGL scaled by its stage factor, floored at 1.
func (m *Monster) EffectiveAgl() float64 {
	return floorStat(float64(m.Base.Agl) * stageFactor(prcAglFactorBase, m.stages[StatAgl]))
}

// Effective returns the effective value of any stat.
func (m *Monster) Effective(s Stat) float64 {
	switch s {
	case StatAtk:
		return m.EffectiveAtk()
	case StatDef:
		return m.EffectiveDef()
	case StatSpd:
		return m.EffectiveSpd()
	case StatPrc:
		return m.EffectivePrc()
	default:
		return m.EffectiveAgl()
	}
}

func floorStat(v float64) float64 {
	if v < minStatValue {
		return minStatValue
	}
	return v
}
