/*
ledger.go - The two-tier budget ledger

PURPOSE:
  Tracks the two independent, simultaneously enforced spending ceilings:

  1. FORTNIGHTLY: a fixed ceiling (9999.00 by default) on combined spend,
     reset to the full amount exactly once at each fortnight advance.
  2. ANNUAL PER CATEGORY: a cumulative cap per category, derived as
     4 x the category's reference quarterly spend and fixed for the run.

  The ledger owns explicit per-category accounts - never a loosely-typed
  map mutated from multiple call sites. Cumulative category spend is
  monotonically non-decreasing and, because the policy asks the ledger for
  a ceiling before every order, can approach but never exceed its cap.

  The fortnightly balance, by contrast, MAY be overdrawn by the emergency
  out-of-stock path; overdrafts are a reporting classification downstream,
  not a blocking error.
*/
package sim

import (
	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
)

// DefaultFortnightlyCeiling is the standard fortnightly spending ceiling.
var DefaultFortnightlyCeiling = decimal.RequireFromString("9999.00")

type categoryAccount struct {
	name  string
	cap   decimal.Decimal
	spent decimal.Decimal
}

// BudgetLedger enforces the fortnightly and per-category annual ceilings
// for one run.
type BudgetLedger struct {
	fortnightCeiling   decimal.Decimal
	fortnightRemaining decimal.Decimal
	accounts           []categoryAccount
	index              map[string]int
}

// NewBudgetLedger builds a ledger with one account per category, annual
// caps derived from the category configs, and a full fortnightly budget.
func NewBudgetLedger(categories []catalog.CategoryConfig, fortnightCeiling decimal.Decimal) *BudgetLedger {
	l := &BudgetLedger{
		fortnightCeiling:   fortnightCeiling,
		fortnightRemaining: fortnightCeiling,
		index:              make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		l.index[c.Name] = len(l.accounts)
		l.accounts = append(l.accounts, categoryAccount{name: c.Name, cap: c.AnnualCap()})
	}
	return l
}

// ResetFortnight restores the fortnightly balance to the full ceiling.
// Called exactly once per fortnight boundary, before any ordering decision
// of that day.
func (l *BudgetLedger) ResetFortnight() {
	l.fortnightRemaining = l.fortnightCeiling
}

// FortnightRemaining returns the remaining fortnightly budget. Negative
// when the emergency path has overdrawn it.
func (l *BudgetLedger) FortnightRemaining() decimal.Decimal {
	return l.fortnightRemaining
}

// CategoryRemaining returns the unspent portion of a category's annual
// cap, clamped at zero. Unknown categories have nothing to spend.
func (l *BudgetLedger) CategoryRemaining(category string) decimal.Decimal {
	i, ok := l.index[category]
	if !ok {
		return decimal.Zero
	}
	remaining := l.accounts[i].cap.Sub(l.accounts[i].spent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// CeilingFor returns the budget ceiling available to an order in the given
// category: the lesser of the remaining fortnightly budget and the
// category's remaining annual cap.
func (l *BudgetLedger) CeilingFor(category string) decimal.Decimal {
	return decimal.Min(l.fortnightRemaining, l.CategoryRemaining(category))
}

// Debit records a spend against both ceilings.
func (l *BudgetLedger) Debit(category string, amount decimal.Decimal) {
	l.fortnightRemaining = l.fortnightRemaining.Sub(amount)
	if i, ok := l.index[category]; ok {
		l.accounts[i].spent = l.accounts[i].spent.Add(amount)
	}
}

// CategorySpend returns a copy of the cumulative annual spend per category.
func (l *BudgetLedger) CategorySpend() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.accounts))
	for _, a := range l.accounts {
		out[a.name] = a.spent
	}
	return out
}

// CategoryCaps returns a copy of the annual cap per category.
func (l *BudgetLedger) CategoryCaps() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.accounts))
	for _, a := range l.accounts {
		out[a.name] = a.cap
	}
	return out
}

// TotalSpend returns the grand total spent across all categories.
func (l *BudgetLedger) TotalSpend() decimal.Decimal {
	total := decimal.Zero
	for _, a := range l.accounts {
		total = total.Add(a.spent)
	}
	return total
}
