package game

import "fmt"

// Stat identifies one of the five modifiable battle stats. Base HP is not
// a Stat: it has no stage and never changes during a competition.
type Stat string

// The modifiable stats, in display order.
const (
	StatAtk Stat = "ATK"
	StatDef Stat = "DEF"
	StatSpd Stat = "SPD"
	StatPrc Stat = "PRC"
	StatAgl Stat = "AGL"
)

// BattleStats lists all stage-modifiable stats.
var BattleStats = []Stat{StatAtk, StatDef, StatSpd, StatPrc, StatAgl}

// ParseStat maps a config token to a Stat.
func ParseStat(s string) (Stat, error) {
	for _, st := range BattleStats {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stat %q", s)
}

// Stats holds a monster's base attribute block. PRC and AGL default to 1
// when a configuration omits them.
type Stats struct {
	HP  int
	Atk int
	Def int
	Spd int
	Prc int
	Agl int
}

// Stage bounds and stat-factor bases.
const (
	MinStage = -5
	MaxStage = 5

	// minStatValue floors every effective stat.
	minStatValue = 1.0

	atkDefSpdFactorBase = 2
	prcAglFactorBase    = 3
)

// stageFactor returns the multiplicative factor for a stat at the given
// stage: (k+s)/k for non-negative stages, k/(k-s) for negative ones.
func stageFactor(base, stage int) float64 {
	if stage >= 0 {
		return float64(base+stage) / float64(base)
	}
	return float64(base) / float64(base-stage)
}

func clampStage(stage int) int {
	if stage < MinStage {
		return MinStage
	}
	if stage > MaxStage {
		return MaxStage
	}
	return stage
}
