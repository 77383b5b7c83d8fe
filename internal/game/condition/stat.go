// Package condition tracks the temporary stat modifiers (buffs and debuffs)
// active on a combatant.
package condition

import "strings"

// Stat names a combat statistic a modifier can adjust.
type Stat string

const (
	StatHit    Stat = "hit"
	StatDamage Stat = "damage"
	StatAC     Stat = "ac"
	StatSpeed  Stat = "speed"
	// StatThorns is damage reflected onto an attacker whose hit lands.
	StatThorns Stat = "thorns"
	// StatPoison is extra damage added to every landed weapon hit.
	StatPoison Stat = "poison"
)

// aliases maps content spellings onto canonical Stat values.
var aliases = map[string]Stat{
	"hit":        StatHit,
	"hitbonus":   StatHit,
	"damage":     StatDamage,
	"basedmg":    StatDamage,
	"ac":         StatAC,
	"speed":      StatSpeed,
	"thorns":     StatThorns,
	"poison":     StatPoison,
	"poison_dmg": StatPoison,
}

// ParseStat resolves a stat name as written in content files.
//
// Postcondition: Returns (stat, true) for a known name (case-insensitive), or ("", false).
func ParseStat(name string) (Stat, bool) {
	s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}
