package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

// Set is a compiled configuration: the action and monster templates of
// one game, plus the raw file text for the load echo.
type Set struct {
	Actions  []*game.Action
	Monsters []*game.Monster
	Raw      string

	actionIndex  map[string]*game.Action
	monsterIndex map[string]*game.Monster
}

// Action returns the named action template, or nil.
func (s *Set) Action(name string) *game.Action { return s.actionIndex[name] }

// Monster returns the named monster template, or nil.
func (s *Set) Monster(name string) *game.Monster { return s.monsterIndex[name] }

// Load reads and compiles a configuration file. Every construction
// invariant is enforced here, so a loaded Set can always battle.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles raw YAML into a Set.
func Parse(data []byte) (*Set, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	set := &Set{
		Raw:          string(data),
		actionIndex:  map[string]*game.Action{},
		monsterIndex: map[string]*game.Monster{},
	}
	for _, spec := range doc.Actions {
		action, err := compileAction(spec)
		if err != nil {
			return nil, err
		}
		if set.actionIndex[action.Name] != nil {
			return nil, fmt.Errorf("duplicate action %s", action.Name)
		}
		set.Actions = append(set.Actions, action)
		set.actionIndex[action.Name] = action
	}
	for _, spec := range doc.Monsters {
		monster, err := compileMonster(spec, set.actionIndex)
		if err != nil {
			return nil, err
		}
		if set.monsterIndex[monster.Name] != nil {
			return nil, fmt.Errorf("duplicate monster %s", monster.Name)
		}
		set.Monsters = append(set.Monsters, monster)
		set.monsterIndex[monster.Name] = monster
	}
	return set, nil
}

func compileAction(spec ActionSpec) (*game.Action, error) {
	element, err := game.ParseElement(spec.Element)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", spec.Name, err)
	}
	effects, err := compileEffects(spec.Effects)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", spec.Name, err)
	}
	return game.NewAction(spec.Name, element, effects)
}

func compileEffects(specs []EffectSpec) ([]game.Effect, error) {
	var effects []game.Effect
	for _, spec := range specs {
		eff, err := compileEffect(spec)
		if err != nil {
			return nil, err
		}
		effects = append(effects, eff)
	}
	return effects, nil
}

func compileEffect(spec EffectSpec) (game.Effect, error) {
	switch spec.Kind {
	case "damage":
		target, err := compileTarget(spec.Target)
		if err != nil {
			return nil, err
		}
		strength, err := compileStrength(spec.Strength)
		if err != nil {
			return nil, err
		}
		return game.DamageEffect{Target: target, Strength: strength, HitRate: spec.HitRate}, nil
	case "heal":
		target, err := compileTarget(spec.Target)
		if err != nil {
			return nil, err
		}
		strength, err := compileStrength(spec.Strength)
		if err != nil {
			return nil, err
		}
		return game.HealEffect{Target: target, Strength: strength, HitRate: spec.HitRate}, nil
	case "inflictStatusCondition":
		target, err := compileTarget(spec.Target)
		if err != nil {
			return nil, err
		}
		cond, err := game.ParseCondition(spec.Condition)
		if err != nil {
			return nil, err
		}
		return game.InflictConditionEffect{Target: target, Condition: cond, HitRate: spec.HitRate}, nil
	case "inflictStatChange":
		target, err := compileTarget(spec.Target)
		if err != nil {
			return nil, err
		}
		stat, err := game.ParseStat(spec.Stat)
		if err != nil {
			return nil, err
		}
		return game.StatChangeEffect{Target: target, Stat: stat, Delta: spec.Delta, HitRate: spec.HitRate}, nil
	case "protect":
		var kind game.ProtectionKind
		switch spec.Protect {
		case "health":
			kind = game.ProtectionDamage
		case "stats":
			kind = game.ProtectionStatChanges
		default:
			return nil, fmt.Errorf("unknown protection target %q", spec.Protect)
		}
		rounds, err := compileCount(spec.Rounds)
		if err != nil {
			return nil, err
		}
		return game.ProtectEffect{Kind: kind, Rounds: rounds, HitRate: spec.HitRate}, nil
	case "continue":
		return game.ContinueEffect{HitRate: spec.HitRate}, nil
	case "repeat":
		count, err := compileCount(spec.Count)
		if err != nil {
			return nil, err
		}
		subs, err := compileEffects(spec.Effects)
		if err != nil {
			return nil, err
		}
		return game.RepeatEffect{Count: count, Effects: subs}, nil
	default:
		return nil, fmt.Errorf("unknown effect kind %q", spec.Kind)
	}
}

func compileTarget(s string) (game.TargetKind, error) {
	switch s {
	case "user":
		return game.TargetSelf, nil
	case "target":
		return game.TargetOpponent, nil
	default:
		return "", fmt.Errorf("unknown target %q", s)
	}
}

func compileStrength(spec *StrengthSpec) (game.Strength, error) {
	if spec == nil {
		return game.Strength{}, fmt.Errorf("missing strength")
	}
	switch spec.Kind {
	case "base", "rel", "abs":
		return game.Strength{Kind: game.StrengthKind(spec.Kind), Value: spec.Value}, nil
	default:
		return game.Strength{}, fmt.Errorf("unknown strength kind %q", spec.Kind)
	}
}

func compileCount(spec *CountSpec) (game.Count, error) {
	if spec == nil {
		return game.Count{}, fmt.Errorf("missing count")
	}
	if spec.Fixed != nil {
		return game.FixedCount(*spec.Fixed), nil
	}
	return game.RandomCount(spec.Min, spec.Max), nil
}

func compileMonster(spec MonsterSpec, actions map[string]*game.Action) (*game.Monster, error) {
	element, err := game.ParseElement(spec.Element)
	if err != nil {
		return nil, fmt.Errorf("monster %s: %w", spec.Name, err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("monster without a name")
	}
	stats, err := compileStats(spec.Stats)
	if err != nil {
		return nil, fmt.Errorf("monster %s: %w", spec.Name, err)
	}
	var list []*game.Action
	for _, name := range spec.Actions {
		action := actions[name]
		if action == nil {
			return nil, fmt.Errorf("monster %s references unknown action %s", spec.Name, name)
		}
		list = append(list, action)
	}
	return game.NewMonster(spec.Name, element, stats, list), nil
}

func compileStats(spec StatsSpec) (game.Stats, error) {
	stats := game.Stats{
		HP:  spec.HP,
		Atk: spec.Atk,
		Def: spec.Def,
		Spd: spec.Spd,
		Prc: 1,
		Agl: 1,
	}
	if spec.Prc != nil {
		stats.Prc = *spec.Prc
	}
	if spec.Agl != nil {
		stats.Agl = *spec.Agl
	}
	if stats.HP < 1 || stats.Atk < 1 || stats.Def < 1 || stats.Spd < 1 || stats.Prc < 1 || stats.Agl < 1 {
		return game.Stats{}, fmt.Errorf("stats must be positive")
	}
	return stats, nil
}
