package battle

import (
	"math"

	"github.com/weiyudev/Monster-Competition/internal/game"
	"github.com/weiyudev/Monster-Competition/internal/random"
)

// executor runs one action's effect list against the battle state,
// narrating through the sink. It holds no per-action state; repeat
// counts committed before the action announcement travel in a
// repeatPlan.
type executor struct {
	rng  random.Source
	sink Sink
}

// repeatPlan maps a top-level effect index to its committed repeat
// count. Counts are drawn before the "uses" announcement so an
// interactive source is asked at the right moment.
type repeatPlan map[int]int

// planRepeats commits the repeat counts of an action's top-level repeat
// effects. Nested repeats cannot exist.
func (x *executor) planRepeats(action *game.Action) repeatPlan {
	plan := repeatPlan{}
	for i, eff := range action.Effects {
		if rep, ok := eff.(game.RepeatEffect); ok {
			plan[i] = x.sampleCount(rep.Count, ctxRepeatCount)
		}
	}
	return plan
}

func (x *executor) sampleCount(c game.Count, context string) int {
	if c.Random {
		return x.rng.Int(context, c.Min, c.Max)
	}
	return c.Min
}

// execute runs an action. target may be nil or fainted; the self-only
// fast path then applies everything to the actor and cannot fail.
// Otherwise a failing first effect aborts the whole action.
func (x *executor) execute(actor, target *game.Monster, action *game.Action, plan repeatPlan) {
	effects := action.Effects
	if selfDamageOnly(effects) && (target == nil || target.Fainted()) {
		for i, eff := range effects {
			x.apply(eff, actor, actor, action, plan, i)
			if actor.Fainted() {
				break
			}
		}
		return
	}
	if !x.apply(effects[0], actor, target, action, plan, 0) {
		x.sink.emit(ActionFailed{})
		return
	}
	if actor.Fainted() {
		return
	}
	for i := 1; i < len(effects); i++ {
		eff := effects[i]
		if target != nil && target.Fainted() {
			if dmg, ok := eff.(game.DamageEffect); ok {
				if dmg.Target == game.TargetSelf {
					x.apply(eff, actor, actor, action, plan, i)
				}
				continue
			}
		}
		x.apply(eff, actor, target, action, plan, i)
		if actor.Fainted() {
			break
		}
	}
}

// selfDamageOnly reports whether every effect is a self-targeted damage
// effect, the shape eligible for the opponent-less fast path.
func selfDamageOnly(effects []game.Effect) bool {
	for _, eff := range effects {
		dmg, ok := eff.(game.DamageEffect)
		if !ok || dmg.Target != game.TargetSelf {
			return false
		}
	}
	return true
}

// apply runs one effect and reports its success. Failures are silent;
// the caller decides whether they abort anything.
func (x *executor) apply(eff game.Effect, user, target *game.Monster, action *game.Action, plan repeatPlan, idx int) bool {
	if user.Fainted() || target == nil || target.Fainted() {
		return false
	}
	switch e := eff.(type) {
	case game.DamageEffect:
		return x.applyDamage(e, user, target, action)
	case game.HealEffect:
		return x.applyHeal(e, user, target, action)
	case game.InflictConditionEffect:
		return x.applyCondition(e, user, target)
	case game.StatChangeEffect:
		return x.applyStatChange(e, user, target)
	case game.ProtectEffect:
		return x.applyProtect(e, user)
	case game.ContinueEffect:
		return x.rng.Chance(ctxContinue, e.HitRate)
	case game.RepeatEffect:
		return x.applyRepeat(e, user, target, action, plan, idx)
	default:
		return false
	}
}

func (x *executor) applyDamage(e game.DamageEffect, user, target *game.Monster, action *game.Action) bool {
	if !x.rng.Chance(ctxAttackHit, hitChance(user, target, e.HitRate, e.Target)) {
		return false
	}
	real := target
	if e.Target == game.TargetSelf {
		real = user
	}
	if real.Protection() == game.ProtectionDamage {
		x.sink.emit(DamageBlocked{real.Name})
		return true
	}
	// rel/abs magnitudes read the declared target, even when the damage
	// lands on the user.
	damage := x.computeValue(user, target, action.Element, e.Strength)
	x.sink.emit(DamageTaken{real.Name, damage})
	if fainted, _ := real.TakeDamage(damage); fainted {
		x.sink.emit(Fainted{real.Name})
	}
	return true
}

func (x *executor) applyHeal(e game.HealEffect, user, target *game.Monster, action *game.Action) bool {
	if !x.rng.Chance(ctxHealEffect, e.HitRate) {
		return false
	}
	real := target
	if e.Target == game.TargetSelf {
		real = user
	}
	var amount int
	switch e.Strength.Kind {
	case game.StrengthBase:
		amount = x.computeValue(user, target, action.Element, e.Strength)
	case game.StrengthRel:
		amount = relAmount(real.Base.HP, e.Strength.Value)
	default:
		amount = e.Strength.Value
	}
	real.Heal(amount)
	x.sink.emit(Healed{real.Name, amount})
	return true
}

func (x *executor) applyCondition(e game.InflictConditionEffect, user, target *game.Monster) bool {
	if !x.rng.Chance(ctxInflictCond, e.HitRate) {
		return false
	}
	real := target
	if e.Target == game.TargetSelf {
		real = user
	}
	// An existing condition is never overwritten; the effect still
	// counts as a success.
	if real.SetCondition(e.Condition) {
		x.sink.emit(ConditionInflicted{real.Name, e.Condition})
	}
	return true
}

func (x *executor) applyStatChange(e game.StatChangeEffect, user, target *game.Monster) bool {
	if !x.rng.Chance(ctxStatChange, e.HitRate) {
		return false
	}
	real := target
	if e.Target == game.TargetSelf {
		real = user
	}
	switch real.ChangeStage(e.Stat, e.Delta) {
	case game.StageProtected:
		x.sink.emit(StatShielded{real.Name})
	case game.StageRose:
		x.sink.emit(StatRose{real.Name, e.Stat})
	case game.StageFell:
		x.sink.emit(StatFell{real.Name, e.Stat})
	}
	return true
}

func (x *executor) applyProtect(e game.ProtectEffect, user *game.Monster) bool {
	if !x.rng.Chance(ctxProtect, e.HitRate) {
		return false
	}
	rounds := x.sampleCount(e.Rounds, ctxProtectDur)
	user.SetProtection(e.Kind, rounds)
	x.sink.emit(ProtectionGranted{user.Name, e.Kind})
	return true
}

func (x *executor) applyRepeat(e game.RepeatEffect, user, target *game.Monster, action *game.Action, plan repeatPlan, idx int) bool {
	count, committed := plan[idx]
	if !committed {
		count = x.sampleCount(e.Count, ctxRepeatCount)
	}
	anyIteration := false
	for i := 0; i < count; i++ {
		if user.Fainted() || target.Fainted() {
			return anyIteration
		}
		anySuccess := false
		for _, sub := range e.Effects {
			if x.apply(sub, user, target, action, nil, 0) {
				anySuccess = true
			}
			if user.Fainted() || target.Fainted() {
				return anyIteration || anySuccess
			}
		}
		if anySuccess {
			anyIteration = true
		} else if i == 0 {
			// A fully missed first iteration fails the repeat, and with
			// it a first-position action.
			return false
		}
	}
	return anyIteration
}

// computeValue resolves a strength declaration into hit points. Only
// "base" strength runs the full damage formula with its narration and
// its two random draws.
func (x *executor) computeValue(user, target *game.Monster, element game.Element, s game.Strength) int {
	switch s.Kind {
	case game.StrengthRel:
		return relAmount(target.Base.HP, s.Value)
	case game.StrengthAbs:
		return s.Value
	}
	factor := element.EffectFactor(target.Element)
	switch factor {
	case game.ElementAdvantage:
		x.sink.emit(VeryEffective{})
	case game.ElementDisadvantage:
		x.sink.emit(NotVeryEffective{})
	}
	crit := 1.0
	if x.rng.Chance(ctxCriticalHit, critChance(user, target)) {
		crit = critFactor
		x.sink.emit(CriticalHit{})
	}
	same := 1.0
	if user.Element == element {
		same = sameElementBonus
	}
	rnd := x.rng.Float(ctxDamageRandom, randomFactorMin, randomFactorMax)
	total := float64(s.Value) *
		factor *
		(user.EffectiveAtk() / target.EffectiveDef()) *
		crit *
		same *
		rnd *
		normalization
	return int(math.Ceil(total))
}
