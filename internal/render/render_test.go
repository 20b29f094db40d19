package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

func newMonster(name string, hp int) *game.Monster {
	return game.NewMonster(name, game.Fire, game.Stats{HP: hp, Atk: 11, Def: 10, Spd: 12, Prc: 2, Agl: 1}, nil)
}

func TestStatusBoard(t *testing.T) {
	r := New()
	a := newMonster("Flamander", 20)
	b := newMonster("Pebbles", 20)
	b.TakeDamage(10)
	c := newMonster("Puddle", 20)
	c.TakeDamage(99)

	board := r.StatusBoard([]*game.Monster{a, b, c}, b)
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "[XXXXXXXXXXXXXXXXXXXX] 1 Flamander (OK)", lines[0])
	assert.Equal(t, "[XXXXXXXXXX__________] 2 *Pebbles (OK)", lines[1])
	assert.Equal(t, "[____________________] 3 Puddle (FAINTED)", lines[2])
}

func TestStatusBoardConditionTag(t *testing.T) {
	r := New()
	a := newMonster("Flamander", 20)
	a.SetCondition(game.ConditionBurn)
	board := r.StatusBoard([]*game.Monster{a}, a)
	assert.Contains(t, board, "(BURN)")
}

func TestHealthBarRoundsUp(t *testing.T) {
	m := newMonster("Sliver", 30)
	m.TakeDamage(29)
	// 1/30 of 20 cells still shows a sliver of health.
	assert.Equal(t, "[X___________________]", healthBar(m))
}

func TestMonsterList(t *testing.T) {
	r := New()
	out := r.MonsterList([]*game.Monster{newMonster("Flamander", 20)})
	assert.Equal(t, "Flamander: ELEMENT FIRE, HP 20, ATK 11, DEF 10, SPD 12\n", out)
}

func TestActionList(t *testing.T) {
	r := New()
	tackle, err := game.NewAction("Tackle", game.Normal, []game.Effect{
		game.DamageEffect{Target: game.TargetOpponent, Strength: game.Strength{Kind: game.StrengthBase, Value: 40}, HitRate: 95},
	})
	require.NoError(t, err)
	swipes, err := game.NewAction("Fury Swipes", game.Normal, []game.Effect{
		game.RepeatEffect{Count: game.RandomCount(2, 5), Effects: []game.Effect{
			game.DamageEffect{Target: game.TargetOpponent, Strength: game.Strength{Kind: game.StrengthRel, Value: 10}, HitRate: 85},
		}},
	})
	require.NoError(t, err)
	gamble, err := game.NewAction("Gamble", game.Normal, []game.Effect{
		game.ContinueEffect{HitRate: 50},
		game.DamageEffect{Target: game.TargetOpponent, Strength: game.Strength{Kind: game.StrengthAbs, Value: 25}, HitRate: 100},
	})
	require.NoError(t, err)
	harden, err := game.NewAction("Harden", game.Normal, []game.Effect{
		game.StatChangeEffect{Target: game.TargetSelf, Stat: game.StatDef, Delta: 1, HitRate: 100},
	})
	require.NoError(t, err)

	m := game.NewMonster("Flamander", game.Fire,
		game.Stats{HP: 20, Atk: 10, Def: 10, Spd: 10, Prc: 1, Agl: 1},
		[]*game.Action{tackle, swipes, gamble, harden})

	out := r.ActionList(m)
	assert.Contains(t, out, "ACTIONS OF Flamander")
	assert.Contains(t, out, "Tackle: ELEMENT NORMAL, Damage b40, HitRate 95")
	// Damage inside a repeat is still summarized.
	assert.Contains(t, out, "Fury Swipes: ELEMENT NORMAL, Damage r10, HitRate 85")
	// A leading continue gate's rate wins over the damage rate.
	assert.Contains(t, out, "Gamble: ELEMENT NORMAL, Damage a25, HitRate 50")
	// No damage effect anywhere.
	assert.Contains(t, out, "Harden: ELEMENT NORMAL, Damage --, HitRate 100")
}

func TestStatView(t *testing.T) {
	r := New()
	m := newMonster("Flamander", 20)
	m.TakeDamage(5)
	m.ChangeStage(game.StatAtk, 2)
	m.ChangeStage(game.StatSpd, -1)

	out := r.StatView(m)
	assert.Contains(t, out, "STATS OF Flamander")
	assert.Contains(t, out, "HP 15/20")
	assert.Contains(t, out, "ATK 11(+2)")
	assert.Contains(t, out, "SPD 12(-1)")
	assert.Contains(t, out, "DEF 10,")
}
