// Package config loads the action and monster definitions a competition
// is played with from a YAML file and compiles them into validated game
// templates.
package config

// Document is the top-level shape of a configuration file.
type Document struct {
	Actions  []ActionSpec  `yaml:"actions"`
	Monsters []MonsterSpec `yaml:"monsters"`
}

// ActionSpec declares one action.
type ActionSpec struct {
	Name    string       `yaml:"name"`
	Element string       `yaml:"element"`
	Effects []EffectSpec `yaml:"effects"`
}

// EffectSpec declares one effect. Kind selects the variant; the other
// fields are read per kind.
type EffectSpec struct {
	Kind      string        `yaml:"kind"`
	Target    string        `yaml:"target"`
	Strength  *StrengthSpec `yaml:"strength"`
	Condition string        `yaml:"condition"`
	Stat      string        `yaml:"stat"`
	Delta     int           `yaml:"delta"`
	Protect   string        `yaml:"protect"`
	Rounds    *CountSpec    `yaml:"rounds"`
	Count     *CountSpec    `yaml:"count"`
	HitRate   int           `yaml:"hit_rate"`
	Effects   []EffectSpec  `yaml:"effects"`
}

// StrengthSpec declares a damage or heal magnitude.
type StrengthSpec struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
}

// CountSpec declares a fixed count or an inclusive random range.
type CountSpec struct {
	Fixed *int `yaml:"fixed"`
	Min   int  `yaml:"min"`
	Max   int  `yaml:"max"`
}

// MonsterSpec declares one monster template.
type MonsterSpec struct {
	Name    string    `yaml:"name"`
	Element string    `yaml:"element"`
	Stats   StatsSpec `yaml:"stats"`
	Actions []string  `yaml:"actions"`
}

// StatsSpec declares a monster's base stats. PRC and AGL may be omitted
// and default to 1.
type StatsSpec struct {
	HP  int  `yaml:"hp"`
	Atk int  `yaml:"atk"`
	Def int  `yaml:"def"`
	Spd int  `yaml:"spd"`
	Prc *int `yaml:"prc"`
	Agl *int `yaml:"agl"`
}
