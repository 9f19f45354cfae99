/*
policy.go - Budget-constrained ordering policy

PURPOSE:
  Decides, per product per day, whether to order and under which cadence,
  then executes the order under the ledger's combined ceiling. Products
  are visited in the explicit category order priority (staples and
  perishables first) so essential categories see the freshest fortnightly
  budget.

ORDER KINDS:
  High-rotation categories order FORTNIGHTLY on fortnight boundary days or
  whenever coverage drops below 5 days. Everything else orders MONTHLY on
  monthly boundary days, with ad hoc REFILLs below 10 days of coverage.

EMERGENCY PATH:
  The rotating grain/pasta of the day is force-replenished when its stock
  hits zero, under a fixed 500 ceiling clamped to the category's remaining
  annual cap. The emergency order bypasses the fortnightly ceiling (an
  overdraft there is a reporting classification, not a block) but goes
  through the same in-transit guard as every other order, so an item whose
  replacement is already on the road is not ordered twice.
*/
package sim

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	// dailyDemandShare estimates steady daily consumption as this share of
	// the population eating one ration each.
	dailyDemandShare = 0.20

	// minDailyDemand guards the coverage division for near-zero rations.
	minDailyDemand = 0.1

	coverageFloorFast = 5.0  // high-rotation: order below this many days
	coverageFloorSlow = 10.0 // others: refill below this many days

	fortnightBoundaryInterval = 15 // day%15 == 1 is a fortnightly order day
	monthlyBoundaryInterval   = 30 // day%30 == 1 is a monthly order day
)

// emergencyCeiling funds the out-of-stock refill of the rotating grain or
// pasta of the day.
var emergencyCeiling = decimal.NewFromInt(500)

// OrderingPolicy runs the daily purchasing pass for one simulation.
type OrderingPolicy struct {
	population int
	ledger     *BudgetLedger
	items      []*Item // in category order priority
}

// NewOrderingPolicy sorts the run's items by their category order
// priority (stable, so catalog order breaks ties) and binds the ledger.
func NewOrderingPolicy(items []*Item, ledger *BudgetLedger, population int) *OrderingPolicy {
	ordered := make([]*Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderPriority < ordered[j].OrderPriority
	})
	return &OrderingPolicy{population: population, ledger: ledger, items: ordered}
}

// RunDay executes the full ordering pass for one day. Returns the total
// spent and the purchase-log lines produced.
func (p *OrderingPolicy) RunDay(day int) (decimal.Decimal, []string) {
	total := decimal.Zero
	var logs []string

	fortnightDay := day%fortnightBoundaryInterval == 1
	monthlyDay := day%monthlyBoundaryInterval == 1

	for _, it := range p.items {
		kind, ok := p.decide(it, fortnightDay, monthlyDay)
		if !ok {
			continue
		}

		ceiling := p.ledger.CeilingFor(it.Product.Category)
		spend, line := it.PlaceOrder(day, kind, ceiling, p.population)
		if spend.IsPositive() {
			p.ledger.Debit(it.Product.Category, spend)
			total = total.Add(spend)
			if line != "" {
				logs = append(logs, line)
			}
		}
	}
	return total, logs
}

// decide selects the order kind for one item, or none.
func (p *OrderingPolicy) decide(it *Item, fortnightDay, monthlyDay bool) (OrderKind, bool) {
	coverage := p.coverageDays(it)

	if it.HighRotation {
		if fortnightDay || coverage < coverageFloorFast {
			return OrderFortnightly, true
		}
		return "", false
	}
	if monthlyDay {
		return OrderMonthly, true
	}
	if coverage < coverageFloorSlow {
		return OrderRefill, true
	}
	return "", false
}

// coverageDays estimates how many days the current stock lasts.
func (p *OrderingPolicy) coverageDays(it *Item) float64 {
	daily := float64(p.population) * dailyDemandShare * it.Product.Ration
	if daily <= 0 {
		daily = minDailyDemand
	}
	return it.Stock / daily
}

// EmergencyRefill force-replenishes a rotating menu pick whose stock has
// run out. Safety net independent of the category's normal cadence; the
// returned log line carries the out-of-stock tag.
func (p *OrderingPolicy) EmergencyRefill(day int, it *Item) (decimal.Decimal, string) {
	if it == nil || it.Stock > 0 {
		return decimal.Zero, ""
	}

	ceiling := decimal.Min(emergencyCeiling, p.ledger.CategoryRemaining(it.Product.Category))
	spend, line := it.PlaceOrder(day, OrderRefill, ceiling, p.population)
	if !spend.IsPositive() {
		return decimal.Zero, ""
	}
	p.ledger.Debit(it.Product.Category, spend)

	if line == "" {
		// Emergency orders are always audit-worthy, even small ones.
		po := it.Pending[len(it.Pending)-1]
		line = formatOrderLine(day, OrderRefill, it.Product.Name, po.ArrivalDay, spend)
	}
	return spend, line + " (OUT OF STOCK)"
}
