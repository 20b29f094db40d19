package battle

import (
	"sort"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

// Competition is the roster of one match: battle clones in entry order
// plus the ended flag. Templates never enter a Competition directly.
type Competition struct {
	monsters []*game.Monster
	ended    bool
}

// NewCompetition builds an empty competition.
func NewCompetition() *Competition {
	return &Competition{}
}

// Add appends a battle clone to the roster.
func (c *Competition) Add(m *game.Monster) {
	c.monsters = append(c.monsters, m)
}

// All returns the roster in entry order.
func (c *Competition) All() []*game.Monster {
	return c.monsters
}

// Alive returns the monsters still standing, in entry order.
func (c *Competition) Alive() []*game.Monster {
	var alive []*game.Monster
	for _, m := range c.monsters {
		if !m.Fainted() {
			alive = append(alive, m)
		}
	}
	return alive
}

// ByName finds a roster member by display name, or nil.
func (c *Competition) ByName(name string) *game.Monster {
	for _, m := range c.monsters {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Ended reports whether the match is over.
func (c *Competition) Ended() bool { return c.ended }

func (c *Competition) setEnded() { c.ended = true }

// SpeedOrder returns the roster sorted by effective speed, fastest
// first. The sort is stable so equal speeds keep entry order.
func (c *Competition) SpeedOrder() []*game.Monster {
	ordered := make([]*game.Monster, len(c.monsters))
	copy(ordered, c.monsters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].EffectiveSpd() > ordered[j].EffectiveSpd()
	})
	return ordered
}
