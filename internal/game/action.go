package game

import "fmt"

// Action is a named, elementally typed sequence of effects. Actions are
// immutable after construction; NewAction is the only way to build one.
type Action struct {
	Name    string
	Element Element
	Effects []Effect
}

// NewAction validates and builds an action. It rejects empty effect
// lists, hit rates outside 0..100, malformed counts, and repeats nested
// inside repeats.
func NewAction(name string, element Element, effects []Effect) (*Action, error) {
	if name == "" {
		return nil, fmt.Errorf("action without a name")
	}
	if len(effects) == 0 {
		return nil, fmt.Errorf("action %s has no effects", name)
	}
	for _, eff := range effects {
		if err := validateEffect(eff, false); err != nil {
			return nil, fmt.Errorf("action %s: %w", name, err)
		}
	}
	return &Action{Name: name, Element: element, Effects: effects}, nil
}

func validateEffect(eff Effect, nested bool) error {
	switch e := eff.(type) {
	case DamageEffect:
		return validateHitRate(e.HitRate)
	case HealEffect:
		return validateHitRate(e.HitRate)
	case InflictConditionEffect:
		if e.Condition == ConditionNone {
			return fmt.Errorf("inflict effect without a condition")
		}
		return validateHitRate(e.HitRate)
	case StatChangeEffect:
		if e.Delta == 0 {
			return fmt.Errorf("stat change with zero delta")
		}
		return validateHitRate(e.HitRate)
	case ProtectEffect:
		if e.Kind != ProtectionDamage && e.Kind != ProtectionStatChanges {
			return fmt.Errorf("unknown protection kind %q", e.Kind)
		}
		if err := validateCount(e.Rounds); err != nil {
			return err
		}
		return validateHitRate(e.HitRate)
	case ContinueEffect:
		return validateHitRate(e.HitRate)
	case RepeatEffect:
		if nested {
			return fmt.Errorf("repeat nested inside repeat")
		}
		if len(e.Effects) == 0 {
			return fmt.Errorf("repeat with no effects")
		}
		if err := validateCount(e.Count); err != nil {
			return err
		}
		for _, sub := range e.Effects {
			if err := validateEffect(sub, true); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown effect %T", eff)
	}
}

func validateHitRate(rate int) error {
	if rate < 0 || rate > 100 {
		return fmt.Errorf("hit rate %d outside 0..100", rate)
	}
	return nil
}

func validateCount(c Count) error {
	if c.Min < 1 || c.Max < c.Min {
		return fmt.Errorf("invalid count range [%d,%d]", c.Min, c.Max)
	}
	return nil
}
