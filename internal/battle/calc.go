package battle

import (
	"math"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

// Context labels handed to the random source so the interactive backend
// can name each draw.
const (
	ctxAttackHit    = "attack hit"
	ctxCriticalHit  = "critical hit"
	ctxDamageRandom = "damage random"
	ctxHealEffect   = "heal effect"
	ctxInflictCond  = "inflict status"
	ctxStatChange   = "stat change"
	ctxContinue     = "continue"
	ctxProtect      = "protection effect"
	ctxProtectDur   = "protect rounds"
	ctxRepeatCount  = "repeat count"
	ctxConditionEnd = "condition end"
)

const (
	critFactor       = 2.0
	sameElementBonus = 1.5
	randomFactorMin  = 0.85
	randomFactorMax  = 1.0
	normalization    = 1.0 / 3.0

	burnTaxPercent     = 0.1
	conditionEndChance = 33
)

// critChance is the critical-hit percentage: 100 * 10^(-SpdT/SpdA),
// truncated to an integer.
func critChance(attacker, target *game.Monster) int {
	return int(100.0 * math.Pow(10, -target.EffectiveSpd()/attacker.EffectiveSpd()))
}

// hitChance scales a declared hit rate by the attacker's precision and,
// for opponent-targeted effects, the defender's agility, clamped to
// 0..100 and truncated.
func hitChance(user, target *game.Monster, rate int, kind game.TargetKind) int {
	base := float64(clampPercent(rate))
	var final float64
	if kind == game.TargetOpponent {
		agl := target.EffectiveAgl()
		ratio := user.EffectivePrc()
		if agl > 0 {
			ratio = user.EffectivePrc() / agl
		}
		final = base * ratio
	} else {
		final = base * user.EffectivePrc()
	}
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	return int(final)
}

// relAmount is ceil(baseHP * pct / 100), the "rel" strength rule.
func relAmount(baseHP, pct int) int {
	return int(math.Ceil(float64(baseHP) * float64(pct) / 100.0))
}

// burnTax is ceil(10% of base HP).
func burnTax(baseHP int) int {
	return int(math.Ceil(float64(baseHP) * burnTaxPercent))
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
