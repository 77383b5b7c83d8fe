package combat

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/condition"
)

// Strike is the outcome of one damage instance against the target.
type Strike struct {
	// Checked is false for strikes that bypass the hit check.
	Checked bool
	Roll    float64
	Hit     bool
	// Damage is the HP actually removed from the target.
	Damage int
	// Halved is true when the target's defending flag absorbed half.
	Halved bool
	// Reflected is thorns damage dealt back to the attacker.
	Reflected int
}

// ActionResult describes one resolved turn for the caller to render.
type ActionResult struct {
	ActorID    string
	TargetID   string
	Action     Action
	Strikes    []Strike
	Healed     int
	MPSpent    int
	Buff       *condition.Modifier
	Expired    []condition.Modifier
	TargetDied bool
	// ActorDied is set when reflected damage killed the actor.
	ActorDied bool
	Events    []string
}

// Terminal reports whether the encounter ended on this turn.
func (r ActionResult) Terminal() bool { return r.TargetDied || r.ActorDied }

// DamageDealt returns the total HP removed from the target.
func (r ActionResult) DamageDealt() int {
	total := 0
	for _, s := range r.Strikes {
		total += s.Damage
	}
	return total
}

// Missed reports whether every hit-checked strike missed.
func (r ActionResult) Missed() bool {
	if len(r.Strikes) == 0 {
		return false
	}
	for _, s := range r.Strikes {
		if s.Hit {
			return false
		}
	}
	return true
}

func (r *ActionResult) eventf(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}
