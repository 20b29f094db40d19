package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewActionValid(t *testing.T) {
	action, err := NewAction("Tackle", Normal, []Effect{
		DamageEffect{Target: TargetOpponent, Strength: Strength{Kind: StrengthBase, Value: 40}, HitRate: 95},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Tackle", action.Name)
	assert.Equal(t, Normal, action.Element)
}

func TestNewActionRejectsEmpty(t *testing.T) {
	_, err := NewAction("", Normal, []Effect{ContinueEffect{HitRate: 100}})
	assert.Error(t, err)

	_, err = NewAction("Hollow", Normal, nil)
	assert.Error(t, err)
}

func TestNewActionRejectsBadHitRate(t *testing.T) {
	_, err := NewAction("Wild", Fire, []Effect{
		DamageEffect{Target: TargetOpponent, Strength: Strength{Kind: StrengthBase, Value: 10}, HitRate: 101},
	})
	assert.Error(t, err)

	_, err = NewAction("Wild", Fire, []Effect{
		ContinueEffect{HitRate: -1},
	})
	assert.Error(t, err)
}

func TestNewActionRejectsNestedRepeat(t *testing.T) {
	inner := RepeatEffect{Count: FixedCount(2), Effects: []Effect{
		DamageEffect{Target: TargetOpponent, Strength: Strength{Kind: StrengthAbs, Value: 1}, HitRate: 100},
	}}
	_, err := NewAction("Flurry", Normal, []Effect{
		RepeatEffect{Count: FixedCount(2), Effects: []Effect{inner}},
	})
	assert.Error(t, err)
}

func TestNewActionRejectsEmptyRepeat(t *testing.T) {
	_, err := NewAction("Flurry", Normal, []Effect{
		RepeatEffect{Count: FixedCount(3)},
	})
	assert.Error(t, err)
}

func TestNewActionRejectsBadCounts(t *testing.T) {
	_, err := NewAction("Flurry", Normal, []Effect{
		RepeatEffect{Count: Count{Min: 0, Max: 2}, Effects: []Effect{
			ContinueEffect{HitRate: 100},
		}},
	})
	assert.Error(t, err)

	_, err = NewAction("Shield", Normal, []Effect{
		ProtectEffect{Kind: ProtectionDamage, Rounds: Count{Random: true, Min: 3, Max: 1}, HitRate: 100},
	})
	assert.Error(t, err)
}

func TestNewActionRejectsZeroDeltaAndMissingPieces(t *testing.T) {
	_, err := NewAction("Stare", Normal, []Effect{
		StatChangeEffect{Target: TargetOpponent, Stat: StatAtk, Delta: 0, HitRate: 100},
	})
	assert.Error(t, err)

	_, err = NewAction("Hex", Normal, []Effect{
		InflictConditionEffect{Target: TargetOpponent, Condition: ConditionNone, HitRate: 100},
	})
	assert.Error(t, err)

	_, err = NewAction("Ward", Normal, []Effect{
		ProtectEffect{Kind: ProtectionKind("mind"), Rounds: FixedCount(1), HitRate: 100},
	})
	assert.Error(t, err)
}

func TestElementEffectFactor(t *testing.T) {
	cases := []struct {
		action, target Element
		factor         float64
	}{
		{Water, Fire, ElementAdvantage},
		{Fire, Earth, ElementAdvantage},
		{Earth, Water, ElementAdvantage},
		{Fire, Water, ElementDisadvantage},
		{Earth, Fire, ElementDisadvantage},
		{Water, Earth, ElementDisadvantage},
		{Water, Water, ElementNeutral},
		{Normal, Fire, ElementNeutral},
		{Fire, Normal, ElementNeutral},
	}
	for _, c := range cases {
		assert.Equal(t, c.factor, c.action.EffectFactor(c.target), "%s vs %s", c.action, c.target)
	}
}
