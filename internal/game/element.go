// Package game holds the passive battle data model: elements, status
// conditions, stats, monsters, and the closed effect set that actions are
// built from. Execution semantics live in internal/battle.
package game

import "fmt"

// Element is the elemental type of a monster or an action.
type Element string

// The four elements of the competition. NORMAL sits outside the
// advantage cycle.
const (
	Water  Element = "WATER"
	Fire   Element = "FIRE"
	Earth  Element = "EARTH"
	Normal Element = "NORMAL"
)

// Elements lists all valid elements in declaration order.
var Elements = []Element{Water, Fire, Earth, Normal}

// ParseElement maps a config token to an Element.
func ParseElement(s string) (Element, error) {
	for _, e := range Elements {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown element %q", s)
}

// Element effectiveness factors. The advantage cycle is
// WATER > FIRE > EARTH > WATER; the reverse pairing is weak and every
// other combination (including anything involving NORMAL) is neutral.
const (
	ElementAdvantage    = 2.0
	ElementDisadvantage = 0.5
	ElementNeutral      = 1.0
)

// EffectFactor returns the damage multiplier of an action element
// against a target element.
func (e Element) EffectFactor(target Element) float64 {
	switch {
	case e == Water && target == Fire,
		e == Fire && target == Earth,
		e == Earth && target == Water:
		return ElementAdvantage
	case e == Fire && target == Water,
		e == Earth && target == Fire,
		e == Water && target == Earth:
		return ElementDisadvantage
	default:
		return ElementNeutral
	}
}
