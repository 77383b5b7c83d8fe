package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/crawl/internal/game/errs"
)

// ItemInstance represents a stack of one consumable in a backpack.
type ItemInstance struct {
	InstanceID string
	ItemDefID  string
	Quantity   int
}

// Backpack holds a hero's consumables in a bounded number of stacks.
type Backpack struct {
	MaxSlots int
	items    []ItemInstance
}

// NewBackpack creates a Backpack with the given slot limit.
//
// Precondition: maxSlots >= 0.
// Postcondition: returned Backpack has zero items.
func NewBackpack(maxSlots int) *Backpack {
	return &Backpack{MaxSlots: maxSlots}
}

// Add places quantity units of the consumable def into the backpack, filling
// existing stacks before opening new ones.
// It is atomic: if the slot limit would be exceeded, no state is modified.
//
// Precondition: def must not be nil; quantity > 0.
// Postcondition: on success Count(def.ID) grows by quantity; on error the backpack is unchanged.
func (b *Backpack) Add(def *ConsumableDef, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("backpack: quantity must be > 0")
	}

	// Phase 1: compute how much merges into existing stacks and how many new slots are needed.
	remaining := quantity
	for i := range b.items {
		if b.items[i].ItemDefID == def.ID {
			remaining -= min(remaining, def.MaxStack-b.items[i].Quantity)
		}
	}
	newSlots := (remaining + def.MaxStack - 1) / def.MaxStack
	if len(b.items)+newSlots > b.MaxSlots {
		return errs.Newf(errs.CodeInvalidAction, "backpack: not enough slots for %d %s", quantity, def.Name)
	}

	// Phase 2: apply.
	remaining = quantity
	for i := range b.items {
		if remaining == 0 {
			break
		}
		if b.items[i].ItemDefID == def.ID {
			take := min(remaining, def.MaxStack-b.items[i].Quantity)
			b.items[i].Quantity += take
			remaining -= take
		}
	}
	for remaining > 0 {
		q := min(remaining, def.MaxStack)
		b.items = append(b.items, ItemInstance{
			InstanceID: uuid.New().String(),
			ItemDefID:  def.ID,
			Quantity:   q,
		})
		remaining -= q
	}
	return nil
}

// Take removes one unit of itemDefID, drawing from the last stack holding it.
//
// Postcondition: returns errs.ErrNotFound when no unit is carried; otherwise Count decreases by one.
func (b *Backpack) Take(itemDefID string) error {
	for i := len(b.items) - 1; i >= 0; i-- {
		if b.items[i].ItemDefID != itemDefID {
			continue
		}
		b.items[i].Quantity--
		if b.items[i].Quantity == 0 {
			b.items = append(b.items[:i], b.items[i+1:]...)
		}
		return nil
	}
	return errs.NotFound("carried item", itemDefID)
}

// Count returns the total quantity of itemDefID across all stacks.
func (b *Backpack) Count(itemDefID string) int {
	n := 0
	for _, inst := range b.items {
		if inst.ItemDefID == itemDefID {
			n += inst.Quantity
		}
	}
	return n
}

// Items returns a snapshot copy of all items in the backpack.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Items() []ItemInstance {
	out := make([]ItemInstance, len(b.items))
	copy(out, b.items)
	return out
}

// UsedSlots returns the number of occupied slots.
func (b *Backpack) UsedSlots() int {
	return len(b.items)
}
