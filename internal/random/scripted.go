package random

// Scripted is a deterministic Source fed from prepared queues, used in
// tests and demos. Empty queues fall back to a success, the lower float
// bound, and the lower integer bound.
type Scripted struct {
	chances []bool
	floats  []float64
	ints    []int

	// Contexts records the label of every draw in order.
	Contexts []string
}

// NewScripted builds an empty scripted source.
func NewScripted() *Scripted {
	return &Scripted{}
}

// PushChance queues answers for upcoming Chance draws.
func (s *Scripted) PushChance(answers ...bool) *Scripted {
	s.chances = append(s.chances, answers...)
	return s
}

// PushFloat queues values for upcoming Float draws.
func (s *Scripted) PushFloat(values ...float64) *Scripted {
	s.floats = append(s.floats, values...)
	return s
}

// PushInt queues values for upcoming Int draws.
func (s *Scripted) PushInt(values ...int) *Scripted {
	s.ints = append(s.ints, values...)
	return s
}

func (s *Scripted) Chance(context string, percent int) bool {
	s.Contexts = append(s.Contexts, context)
	if len(s.chances) == 0 {
		return true
	}
	v := s.chances[0]
	s.chances = s.chances[1:]
	return v
}

func (s *Scripted) Float(context string, min, max float64) float64 {
	s.Contexts = append(s.Contexts, context)
	if len(s.floats) == 0 {
		return min
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Scripted) Int(context string, min, max int) int {
	s.Contexts = append(s.Contexts, context)
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}
