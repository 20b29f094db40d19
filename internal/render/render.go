// Package render turns game state into the terminal surfaces of the
// show commands: the status board, the template listing, and the action
// and stat views of the current chooser.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/weiyudev/Monster-Competition/internal/game"
)

const healthBarLength = 20

// Renderer renders the show surfaces. Styling degrades to plain text on
// non-terminal outputs, so transcripts stay byte-stable.
type Renderer struct {
	header  lipgloss.Style
	fainted lipgloss.Style
}

// New builds a Renderer.
func New() *Renderer {
	return &Renderer{
		header:  lipgloss.NewStyle().Bold(true),
		fainted: lipgloss.NewStyle().Faint(true),
	}
}

// StatusBoard renders one line per roster member: a 20-cell health bar,
// the entry number, a star on the current chooser, and the condition
// tag.
func (r *Renderer) StatusBoard(monsters []*game.Monster, current *game.Monster) string {
	var b strings.Builder
	for i, m := range monsters {
		line := fmt.Sprintf("%s %d %s%s (%s)", healthBar(m), i+1, marker(m, current), m.Name, statusTag(m))
		if m.Fainted() {
			line = r.fainted.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func healthBar(m *game.Monster) string {
	var b strings.Builder
	b.WriteString("[")
	filled := 0
	if !m.Fainted() {
		filled = int(ceilDiv(healthBarLength*m.CurrentHP(), m.Base.HP))
	}
	for i := 0; i < healthBarLength; i++ {
		if i < filled {
			b.WriteString("X")
		} else {
			b.WriteString("_")
		}
	}
	b.WriteString("]")
	return b.String()
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func marker(m, current *game.Monster) string {
	if m == current {
		return "*"
	}
	return ""
}

func statusTag(m *game.Monster) string {
	switch {
	case m.Fainted():
		return "FAINTED"
	case m.Condition() == game.ConditionNone:
		return "OK"
	default:
		return string(m.Condition())
	}
}

// MonsterList renders the loaded templates with their base stats.
func (r *Renderer) MonsterList(templates []*game.Monster) string {
	var b strings.Builder
	for _, m := range templates {
		fmt.Fprintf(&b, "%s: ELEMENT %s, HP %d, ATK %d, DEF %d, SPD %d\n",
			m.Name, m.Element, m.Base.HP, m.Base.Atk, m.Base.Def, m.Base.Spd)
	}
	return b.String()
}

// ActionList renders the chooser's actions with a summary of the first
// damage effect ("b"/"r"/"a" plus value) and the leading hit rate.
func (r *Renderer) ActionList(m *game.Monster) string {
	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("ACTIONS OF %s", m.Name)))
	b.WriteString("\n")
	for _, action := range m.Actions {
		summary, rate := actionSummary(action)
		fmt.Fprintf(&b, "%s: ELEMENT %s, Damage %s, HitRate %d\n", action.Name, action.Element, summary, rate)
	}
	return b.String()
}

// actionSummary finds the first damage effect, looking inside repeats,
// and reports its strength summary and hit rate. A leading continue
// effect's rate takes precedence over the damage rate.
func actionSummary(action *game.Action) (string, int) {
	summary := "--"
	rate := effectHitRate(action.Effects[0])
	leadingContinue := false
	if _, ok := action.Effects[0].(game.ContinueEffect); ok {
		leadingContinue = true
	}
	if dmg, ok := firstDamage(action.Effects); ok {
		summary = strengthSummary(dmg.Strength)
		if !leadingContinue {
			rate = dmg.HitRate
		}
	}
	return summary, rate
}

func firstDamage(effects []game.Effect) (game.DamageEffect, bool) {
	for _, eff := range effects {
		switch e := eff.(type) {
		case game.DamageEffect:
			return e, true
		case game.RepeatEffect:
			if dmg, ok := firstDamage(e.Effects); ok {
				return dmg, true
			}
		}
	}
	return game.DamageEffect{}, false
}

func strengthSummary(s game.Strength) string {
	switch s.Kind {
	case game.StrengthBase:
		return fmt.Sprintf("b%d", s.Value)
	case game.StrengthRel:
		return fmt.Sprintf("r%d", s.Value)
	default:
		return fmt.Sprintf("a%d", s.Value)
	}
}

func effectHitRate(eff game.Effect) int {
	switch e := eff.(type) {
	case game.DamageEffect:
		return e.HitRate
	case game.HealEffect:
		return e.HitRate
	case game.InflictConditionEffect:
		return e.HitRate
	case game.StatChangeEffect:
		return e.HitRate
	case game.ProtectEffect:
		return e.HitRate
	case game.ContinueEffect:
		return e.HitRate
	case game.RepeatEffect:
		if dmg, ok := firstDamage(e.Effects); ok {
			return dmg.HitRate
		}
	}
	return 0
}

// StatView renders the chooser's current stats with stage annotations
// such as "(+2)".
func (r *Renderer) StatView(m *game.Monster) string {
	var b strings.Builder
	b.WriteString(r.header.Render(fmt.Sprintf("STATS OF %s", m.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "HP %d/%d", m.CurrentHP(), m.Base.HP)
	fmt.Fprintf(&b, ", ATK %d%s", m.Base.Atk, stageNote(m.Stage(game.StatAtk)))
	fmt.Fprintf(&b, ", DEF %d%s", m.Base.Def, stageNote(m.Stage(game.StatDef)))
	fmt.Fprintf(&b, ", SPD %d%s", m.Base.Spd, stageNote(m.Stage(game.StatSpd)))
	fmt.Fprintf(&b, ", PRC %d%s", m.Base.Prc, stageNote(m.Stage(game.StatPrc)))
	fmt.Fprintf(&b, ", AGL %d%s", m.Base.Agl, stageNote(m.Stage(game.StatAgl)))
	b.WriteString("\n")
	return b.String()
}

func stageNote(stage int) string {
	if stage == 0 {
		return ""
	}
	return fmt.Sprintf("(%+d)", stage)
}
