package combat

import "fmt"

// Rules holds the tunable constants of the hit check.
type Rules struct {
	// ArmorFactor is K in roll*20 + hit >= AC*K.
	ArmorFactor int
	// FumbleChance is the bottom band of rolls that always miss.
	FumbleChance float64
	// CriticalChance is the top band of rolls that always hit.
	CriticalChance float64
}

// DefaultRules returns K = 2 with 5% fumble and critical bands.
func DefaultRules() Rules {
	return Rules{ArmorFactor: 2, FumbleChance: 0.05, CriticalChance: 0.05}
}

// Validate reports whether the bands leave room for the formula to decide.
func (r Rules) Validate() error {
	if r.ArmorFactor < 1 {
		return fmt.Errorf("armor factor must be >= 1, got %d", r.ArmorFactor)
	}
	if r.FumbleChance <= 0 || r.CriticalChance <= 0 || r.FumbleChance+r.CriticalChance >= 1 {
		return fmt.Errorf("fumble (%v) and critical (%v) chances must be > 0 and sum below 1",
			r.FumbleChance, r.CriticalChance)
	}
	return nil
}

// Hits decides a hit check for roll in [0,1).
//
// Postcondition: rolls below FumbleChance miss; rolls at or above
// 1-CriticalChance hit; otherwise hits iff roll*20 + hitBonus >= armorClass*ArmorFactor.
func (r Rules) Hits(roll float64, hitBonus, armorClass int) bool {
	switch {
	case roll < r.FumbleChance:
		return false
	case roll >= 1-r.CriticalChance:
		return true
	}
	return roll*20+float64(hitBonus) >= float64(armorClass*r.ArmorFactor)
}

// HitChance returns the probability that Hits succeeds for a uniform roll.
func (r Rules) HitChance(hitBonus, armorClass int) float64 {
	// Smallest roll satisfying the formula.
	threshold := float64(armorClass*r.ArmorFactor-hitBonus) / 20
	lo := max(threshold, r.FumbleChance)
	hi := 1 - r.CriticalChance
	formula := max(0, hi-lo)
	return formula + r.CriticalChance
}
