// Package command provides the command registry, parser, and built-in command definitions
// for the terminal front end.
package command

// Categories for organizing commands.
const (
	CategoryCombat  = "combat"
	CategoryExplore = "explore"
	CategoryShop    = "shop"
	CategorySystem  = "system"
)

// Handler identifiers mapping commands to engine calls.
const (
	HandlerAttack    = "attack"
	HandlerDefend    = "defend"
	HandlerSkill     = "skill"
	HandlerItem      = "item"
	HandlerNext      = "next"
	HandlerUse       = "use"
	HandlerStatus    = "status"
	HandlerSkills    = "skills"
	HandlerInventory = "inventory"
	HandlerShop      = "shop"
	HandlerBuy       = "buy"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument form, e.g. "skill <id>". Empty when the command takes none.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (combat, explore, shop, system).
	Category string
	// Handler maps to the engine call that serves the command.
	Handler string
	// MinArgs is the number of arguments the command requires.
	MinArgs int
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Combat commands
		{Name: "attack", Aliases: []string{"a", "atk"}, Help: "Strike the monster with your weapon", Category: CategoryCombat, Handler: HandlerAttack},
		{Name: "defend", Aliases: []string{"d", "def"}, Help: "Halve the next blow you take", Category: CategoryCombat, Handler: HandlerDefend},
		{Name: "skill", Aliases: []string{"k", "cast"}, Usage: "skill <id>", Help: "Use one of your class skills", Category: CategoryCombat, Handler: HandlerSkill, MinArgs: 1},
		{Name: "item", Aliases: []string{"throw"}, Usage: "item <id>", Help: "Use a consumable in combat", Category: CategoryCombat, Handler: HandlerItem, MinArgs: 1},

		// Exploration commands
		{Name: "next", Aliases: []string{"n", "go"}, Help: "Walk on to the next room", Category: CategoryExplore, Handler: HandlerNext},
		{Name: "use", Aliases: []string{"drink"}, Usage: "use <id>", Help: "Drink a healing potion outside combat", Category: CategoryExplore, Handler: HandlerUse, MinArgs: 1},
		{Name: "status", Aliases: []string{"st"}, Help: "Show your hero and the current room", Category: CategoryExplore, Handler: HandlerStatus},
		{Name: "skills", Aliases: []string{"sk"}, Help: "List your class skills", Category: CategoryExplore, Handler: HandlerSkills},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "Show backpack contents and gold", Category: CategoryExplore, Handler: HandlerInventory},

		// Shop commands
		{Name: "shop", Aliases: nil, Help: "List items for sale", Category: CategoryShop, Handler: HandlerShop},
		{Name: "buy", Aliases: []string{"b"}, Usage: "buy <id>", Help: "Buy an item; gear is equipped at once", Category: CategoryShop, Handler: HandlerBuy, MinArgs: 1},

		// System commands
		{Name: "help", Aliases: []string{"?", "h"}, Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Abandon the run", Category: CategorySystem, Handler: HandlerQuit},
	}
}

// IsCombatCommand reports whether the handler resolves a combat turn.
func IsCombatCommand(handler string) bool {
	switch handler {
	case HandlerAttack, HandlerDefend, HandlerSkill, HandlerItem:
		return true
	default:
		return false
	}
}
