package combat

// ActionType identifies what a combatant intends to do on its turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack
	ActionDefend
	ActionSkill
	ActionItem
)

// String returns the human-readable name of the ActionType.
// Postcondition: returns "attack", "defend", "skill", "item", or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionSkill:
		return "skill"
	case ActionItem:
		return "item"
	default:
		return "unknown"
	}
}

// Action is one player or monster intent.
type Action struct {
	Type ActionType
	// SkillID is set for ActionSkill.
	SkillID string
	// ItemID is set for ActionItem.
	ItemID string
}

// Attack returns a basic weapon attack.
func Attack() Action { return Action{Type: ActionAttack} }

// Defend returns a defend action.
func Defend() Action { return Action{Type: ActionDefend} }

// Skill returns an action casting the skill with id.
func Skill(id string) Action { return Action{Type: ActionSkill, SkillID: id} }

// Item returns an action using one unit of the consumable with id.
func Item(id string) Action { return Action{Type: ActionItem, ItemID: id} }
