package game

import "fmt"

// Condition is a status condition a monster can suffer from. A monster
// carries at most one condition at a time; the zero value means none.
type Condition string

// The status conditions of the competition.
const (
	ConditionNone      Condition = ""
	ConditionWet       Condition = "WET"
	ConditionBurn      Condition = "BURN"
	ConditionQuicksand Condition = "QUICKSAND"
	ConditionSleep     Condition = "SLEEP"
)

// Conditions lists all inflictable conditions.
var Conditions = []Condition{ConditionWet, ConditionBurn, ConditionQuicksand, ConditionSleep}

// ParseCondition maps a config token to a Condition.
func ParseCondition(s string) (Condition, error) {
	for _, c := range Conditions {
		if string(c) == s {
			return c, nil
		}
	}
	return ConditionNone, fmt.Errorf("unknown status condition %q", s)
}

// conditionMultiplier is the stat reduction applied by WET, BURN and
// QUICKSAND to their respective stats. SLEEP leaves stats untouched and
// blocks acting instead.
const conditionMultiplier = 0.75

type conditionText struct {
	start, ongoing, end string
}

var conditionTexts = map[Condition]conditionText{
	ConditionWet:       {"%s becomes soaking wet!", "%s is soaking wet!", "%s dried up!"},
	ConditionBurn:      {"%s caught on fire!", "%s is burning!", "%s's burning has faded!"},
	ConditionQuicksand: {"%s gets caught by quicksand!", "%s is caught in quicksand!", "%s escaped the quicksand!"},
	ConditionSleep:     {"%s falls asleep!", "%s is asleep!", "%s woke up!"},
}

// StartMessage is the narration emitted when the condition is inflicted.
func (c Condition) StartMessage(name string) string {
	return fmt.Sprintf(conditionTexts[c].start, name)
}

// OngoingMessage is the narration emitted each turn the condition persists.
func (c Condition) OngoingMessage(name string) string {
	return fmt.Sprintf(conditionTexts[c].ongoing, name)
}

// EndMessage is the narration emitted when the condition wears off.
func (c Condition) EndMessage(name string) string {
	return fmt.Sprintf(conditionTexts[c].end, name)
}
