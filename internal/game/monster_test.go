package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonster(name string) *Monster {
	return NewMonster(name, Fire, Stats{HP: 30, Atk: 10, Def: 10, Spd: 10, Prc: 1, Agl: 1}, nil)
}

func TestCloneIsFresh(t *testing.T) {
	template := testMonster("Flamander")
	template.TakeDamage(10)
	template.SetCondition(ConditionBurn)

	clone := template.Clone("Flamander#1")
	assert.Equal(t, "Flamander#1", clone.Name)
	assert.Equal(t, 30, clone.CurrentHP())
	assert.Equal(t, ConditionNone, clone.Condition())
	assert.Equal(t, template.Element, clone.Element)
}

func TestChangeStageClampsAtBounds(t *testing.T) {
	m := testMonster("Flamander")
	for i := 0; i < 5; i++ {
		assert.Equal(t, StageRose, m.ChangeStage(StatAtk, 1))
	}
	require.Equal(t, MaxStage, m.Stage(StatAtk))

	// Already at the ceiling, nothing moves.
	assert.Equal(t, StageUnchanged, m.ChangeStage(StatAtk, 1))
	assert.Equal(t, MaxStage, m.Stage(StatAtk))

	assert.Equal(t, StageFell, m.ChangeStage(StatAtk, -2))
	assert.Equal(t, 3, m.Stage(StatAtk))
}

func TestStatProtectionBlocksOnlyNegativeChanges(t *testing.T) {
	m := testMonster("Flamander")
	m.SetProtection(ProtectionStatChanges, 2)

	assert.Equal(t, StageProtected, m.ChangeStage(StatDef, -1))
	assert.Equal(t, 0, m.Stage(StatDef))

	assert.Equal(t, StageRose, m.ChangeStage(StatDef, 1))
	assert.Equal(t, 1, m.Stage(StatDef))
}

func TestTakeDamage(t *testing.T) {
	m := testMonster("Flamander")

	fainted, blocked := m.TakeDamage(10)
	assert.False(t, fainted)
	assert.False(t, blocked)
	assert.Equal(t, 20, m.CurrentHP())

	fainted, _ = m.TakeDamage(50)
	assert.True(t, fainted)
	assert.Equal(t, 0, m.CurrentHP())
	assert.True(t, m.Fainted())

	// Damage on an already fainted monster does not faint it again.
	fainted, _ = m.TakeDamage(5)
	assert.False(t, fainted)
}

func TestDamageProtectionBlocks(t *testing.T) {
	m := testMonster("Flamander")
	m.SetProtection(ProtectionDamage, 1)

	fainted, blocked := m.TakeDamage(99)
	assert.False(t, fainted)
	assert.True(t, blocked)
	assert.Equal(t, 30, m.CurrentHP())
}

func TestHealCapsAtBaseHP(t *testing.T) {
	m := testMonster("Flamander")
	m.TakeDamage(10)
	m.Heal(25)
	assert.Equal(t, 30, m.CurrentHP())
}

func TestSetConditionNeverOverwrites(t *testing.T) {
	m := testMonster("Flamander")
	assert.True(t, m.SetCondition(ConditionBurn))
	assert.False(t, m.SetCondition(ConditionSleep))
	assert.Equal(t, ConditionBurn, m.Condition())

	m.ClearCondition()
	assert.True(t, m.SetCondition(ConditionSleep))
}

func TestTickProtection(t *testing.T) {
	m := testMonster("Flamander")
	m.SetProtection(ProtectionDamage, 2)

	assert.False(t, m.TickProtection())
	assert.Equal(t, ProtectionDamage, m.Protection())

	assert.True(t, m.TickProtection())
	assert.Equal(t, ProtectionNone, m.Protection())

	// No protection, nothing fades.
	assert.False(t, m.TickProtection())
}

func TestProtectionReplaces(t *testing.T) {
	m := testMonster("Flamander")
	m.SetProtection(ProtectionDamage, 3)
	m.SetProtection(ProtectionStatChanges, 1)
	assert.Equal(t, ProtectionStatChanges, m.Protection())

	assert.True(t, m.TickProtection())
	assert.Equal(t, ProtectionNone, m.Protection())
}
