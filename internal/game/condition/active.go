package condition

import "fmt"

// Modifier is one temporary adjustment to a stat.
type Modifier struct {
	// Source names what applied the modifier (e.g. a skill ID).
	Source    string
	Stat      Stat
	Delta     int
	Remaining int // turns left; the modifier is removed when this reaches 0
}

// ActiveSet is the ordered collection of modifiers on one combatant.
// It is not safe for concurrent use; the caller must serialise access.
type ActiveSet struct {
	mods []Modifier
}

// NewActiveSet creates an empty ActiveSet.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{}
}

// Apply appends a modifier to the set. Re-applying the same source stacks a
// second entry; each entry counts down independently.
//
// Precondition: remaining must be >= 1.
// Postcondition: Len() is incremented by one and Sum(stat) includes delta.
func (s *ActiveSet) Apply(source string, stat Stat, delta, remaining int) error {
	if remaining < 1 {
		return fmt.Errorf("Apply: remaining must be >= 1, got %d", remaining)
	}
	s.mods = append(s.mods, Modifier{Source: source, Stat: stat, Delta: delta, Remaining: remaining})
	return nil
}

// Tick decrements Remaining on every modifier by 1 and removes those that reach 0.
// Order of the survivors is preserved.
//
// Postcondition: every remaining modifier has Remaining >= 1; returns the expired modifiers.
func (s *ActiveSet) Tick() []Modifier {
	var expired []Modifier
	kept := s.mods[:0]
	for _, m := range s.mods {
		m.Remaining--
		if m.Remaining <= 0 {
			expired = append(expired, m)
			continue
		}
		kept = append(kept, m)
	}
	s.mods = kept
	return expired
}

// Sum returns the net delta of all active modifiers for stat.
func (s *ActiveSet) Sum(stat Stat) int {
	if s == nil {
		return 0
	}
	total := 0
	for _, m := range s.mods {
		if m.Stat == stat && m.Remaining > 0 {
			total += m.Delta
		}
	}
	return total
}

// Has reports whether any active modifier came from source.
func (s *ActiveSet) Has(source string) bool {
	for _, m := range s.mods {
		if m.Source == source {
			return true
		}
	}
	return false
}

// Len returns the number of active modifiers.
func (s *ActiveSet) Len() int { return len(s.mods) }

// Clear removes every modifier.
func (s *ActiveSet) Clear() { s.mods = nil }

// All returns a copy of the active modifiers in application order.
func (s *ActiveSet) All() []Modifier {
	out := make([]Modifier, len(s.mods))
	copy(out, s.mods)
	return out
}
