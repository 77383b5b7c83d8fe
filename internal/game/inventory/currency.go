package inventory

import (
	"fmt"

	"github.com/cory-johannsen/crawl/internal/game/errs"
)

// Purse holds a hero's gold.
// Invariant: Gold >= 0.
type Purse struct {
	gold int
}

// Gold returns the current balance.
func (p *Purse) Gold() int { return p.gold }

// Earn adds amount to the balance. Non-positive amounts are ignored.
func (p *Purse) Earn(amount int) {
	if amount > 0 {
		p.gold += amount
	}
}

// Spend removes amount from the balance.
//
// Precondition: amount >= 0.
// Postcondition: returns errs.ErrInsufficientResource and leaves the balance
// unchanged when amount exceeds it.
func (p *Purse) Spend(amount int) error {
	if amount > p.gold {
		return errs.Newf(errs.CodeInsufficientResource, "need %s, have %s", FormatGold(amount), FormatGold(p.gold))
	}
	p.gold -= amount
	return nil
}

// FormatGold returns a human-readable gold amount.
func FormatGold(amount int) string {
	if amount == 1 {
		return "1 gold piece"
	}
	return fmt.Sprintf("%d gold pieces", amount)
}
