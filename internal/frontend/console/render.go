package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/crawl/internal/game/character"
	"github.com/cory-johannsen/crawl/internal/game/combat"
	"github.com/cory-johannsen/crawl/internal/game/command"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/errs"
	"github.com/cory-johannsen/crawl/internal/game/inventory"
	"github.com/cory-johannsen/crawl/internal/game/ruleset"
	"github.com/cory-johannsen/crawl/internal/gameserver"
)

const barWidth = 20

// RenderRoom formats what the hero found on entering a room.
func RenderRoom(run *dungeon.Run, out dungeon.RoomOutcome) string {
	var b strings.Builder
	b.WriteString("\n")
	switch out.Kind {
	case dungeon.OutcomeCleared:
		b.WriteString(Colorf(BrightGreen+Bold, "%s is cleared!", run.Dungeon.Name))
		b.WriteString("\n")
		return b.String()
	default:
		b.WriteString(Colorf(BrightYellow, "%s, room %d of %d", run.Dungeon.Name, out.Room, run.Dungeon.Rooms))
		b.WriteString("\n")
	}
	switch out.Kind {
	case dungeon.OutcomeEmpty:
		b.WriteString(Colorize(Dim, "The room is empty."))
	case dungeon.OutcomeHeal:
		b.WriteString(Colorf(Green, "A healing spring restores %d HP.", out.Healed))
	case dungeon.OutcomeMonster:
		b.WriteString(Colorf(Red, "A %s blocks the way!", out.Monster.Name))
	case dungeon.OutcomeBoss:
		b.WriteString(Colorf(BrightRed+Bold, "The guardian of this place awakens: %s!", out.Monster.Name))
	}
	b.WriteString("\n")
	if out.Monster != nil {
		b.WriteString(renderGauge(out.Monster))
	}
	return b.String()
}

// RenderTurn formats one hero turn and the monster's answer.
func RenderTurn(run *dungeon.Run, res gameserver.TurnResult) string {
	var b strings.Builder
	writeEvents(&b, Cyan, res.Hero)
	if res.Monster != nil {
		writeEvents(&b, Magenta, *res.Monster)
	}
	switch {
	case res.Victory != nil:
		b.WriteString(renderVictory(res.Victory))
	case res.Defeat:
		b.WriteString(Colorize(BrightRed+Bold, "You have fallen. The run is over."))
		b.WriteString("\n")
	default:
		b.WriteString(renderGauge(run.Hero.Combatant))
		if run.Monster != nil {
			b.WriteString(renderGauge(run.Monster))
		}
	}
	return b.String()
}

func writeEvents(b *strings.Builder, color string, res combat.ActionResult) {
	for _, ev := range res.Events {
		b.WriteString(Colorize(color, ev))
		b.WriteString("\n")
	}
}

func renderVictory(v *gameserver.Victory) string {
	var b strings.Builder
	b.WriteString(Colorf(BrightGreen, "Victory! +%d xp, +%s", v.XP, inventory.FormatGold(v.Gold)))
	b.WriteString("\n")
	for _, item := range v.Loot {
		b.WriteString(Colorf(Green, "  found %dx %s", item.Quantity, item.ItemDefID))
		b.WriteString("\n")
	}
	for _, item := range v.Lost {
		b.WriteString(Colorf(Dim, "  no room for %dx %s", item.Quantity, item.ItemDefID))
		b.WriteString("\n")
	}
	if v.LevelUp.Gained() > 0 {
		b.WriteString(Colorf(BrightYellow+Bold, "Level up! %d -> %d", v.LevelUp.From, v.LevelUp.To))
		b.WriteString("\n")
		for _, s := range v.LevelUp.Unlocked {
			b.WriteString(Colorf(Yellow, "  new skill: %s (%s)", s.Name, s.ID))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderGauge(c *combat.Combatant) string {
	line := fmt.Sprintf("%-18s HP %s %d/%d", c.Name, Bar(c.CurrentHP, c.MaxHP, barWidth), c.CurrentHP, c.MaxHP)
	if c.MaxMP > 0 {
		line += fmt.Sprintf("  MP %d/%d", c.CurrentMP, c.MaxMP)
	}
	return line + "\n"
}

// RenderStatus formats the hero sheet.
func RenderStatus(run *dungeon.Run, levels *ruleset.LevelTable) string {
	hero := run.Hero
	c := hero.Combatant
	st := combat.EffectiveStats(c)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Colorf(BrightYellow, "%s the %s, level %d", hero.Name, hero.Archetype.Name, hero.Level))
	b.WriteString("\n")
	xp := fmt.Sprintf("XP %d", hero.Experience)
	if next, ok := levels.Threshold(hero.Level + 1); ok {
		xp += fmt.Sprintf(" / %d", next)
	}
	b.WriteString(xp + "\n")
	b.WriteString(renderGauge(c))
	b.WriteString(fmt.Sprintf("Weapon %s (%d-%d)  Armor %s\n", hero.Weapon.Name, st.MinDamage, st.MaxDamage, hero.Armor.Name))
	b.WriteString(fmt.Sprintf("Hit +%d  AC %d  Speed %d\n", st.HitBonus, st.ArmorClass, st.Speed))
	for _, m := range c.Modifiers.All() {
		b.WriteString(Colorf(Cyan, "  %s: %s %+d (%d turns)", m.Source, m.Stat, m.Delta, m.Remaining))
		b.WriteString("\n")
	}
	b.WriteString(Colorf(Dim, "%s, room %d of %d, %s", run.Dungeon.Name, min(run.Room, run.Dungeon.Rooms), run.Dungeon.Rooms, run.Status))
	b.WriteString("\n")
	return b.String()
}

// RenderSkills formats the hero's class skills.
func RenderSkills(skills []gameserver.SkillStatus) string {
	if len(skills) == 0 {
		return Colorize(Dim, "You know no skills.") + "\n"
	}
	var b strings.Builder
	for _, s := range skills {
		color := White
		note := ""
		switch {
		case !s.Unlocked:
			color = Dim
			note = fmt.Sprintf(" (level %d)", s.Skill.Level)
		case !s.Affordable:
			color = Yellow
			note = " (not enough MP)"
		}
		b.WriteString(Colorf(color, "  %-14s %-22s %2d MP  %s%s", s.Skill.ID, s.Skill.Name, s.Skill.Cost, s.Skill.Description, note))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderShop formats the shop listing, dimming what the hero cannot afford.
func RenderShop(items []inventory.ShopItem, gold int) string {
	var b strings.Builder
	b.WriteString(Colorf(BrightYellow, "Shop (you have %s)", inventory.FormatGold(gold)))
	b.WriteString("\n")
	for _, item := range items {
		color := White
		if item.Price > gold {
			color = Dim
		}
		b.WriteString(Colorf(color, "  %-12s %-24s %-10s %s", item.ID, item.Name, item.Kind, inventory.FormatGold(item.Price)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderInventory formats the backpack and purse.
func RenderInventory(hero *character.Character) string {
	var b strings.Builder
	b.WriteString(Colorf(BrightYellow, "Backpack %d/%d  Gold %s", hero.Backpack.UsedSlots(), hero.Backpack.MaxSlots, inventory.FormatGold(hero.Purse.Gold())))
	b.WriteString("\n")
	items := hero.Backpack.Items()
	if len(items) == 0 {
		b.WriteString(Colorize(Dim, "  (empty)"))
		b.WriteString("\n")
	}
	for _, inst := range items {
		b.WriteString(fmt.Sprintf("  %dx %s\n", inst.Quantity, inst.ItemDefID))
	}
	return b.String()
}

// RenderHelp lists every command grouped by category.
func RenderHelp(reg *command.Registry) string {
	cats := reg.CommandsByCategory()
	var b strings.Builder
	for _, cat := range []string{command.CategoryCombat, command.CategoryExplore, command.CategoryShop, command.CategorySystem} {
		b.WriteString(Colorize(Cyan, strings.ToUpper(cat[:1])+cat[1:]+":"))
		b.WriteString("\n")
		for _, cmd := range cats[cat] {
			usage := cmd.Usage
			if usage == "" {
				usage = cmd.Name
			}
			aliases := ""
			if len(cmd.Aliases) > 0 {
				aliases = " (" + strings.Join(cmd.Aliases, ", ") + ")"
			}
			b.WriteString(fmt.Sprintf("  %s%-12s%s %s%s\n", BrightCyan, usage, Reset, cmd.Help, Colorize(Dim, aliases)))
		}
	}
	return b.String()
}

// RenderError formats an engine error for the player.
func RenderError(err error) string {
	switch errs.CodeOf(err) {
	case errs.CodeInsufficientResource, errs.CodeSkillNotUnlocked:
		return Colorize(Yellow, err.Error()) + "\n"
	case errs.CodeNotFound, errs.CodeInvalidAction:
		return Colorize(Red, err.Error()) + "\n"
	default:
		return Colorf(BrightRed, "error: %v", err) + "\n"
	}
}
