/*
result.go - The immutable simulation result

PURPOSE:
  The full audit trail of one run, and exactly the payload external
  collaborators work with: the storage layer persists it, the rendering
  layer charts it. The core neither persists nor renders.
*/
package sim

import (
	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
)

// ItemSnapshot is the per-product audit payload: one stock sample per
// simulated day, plus the attributes charts group by.
type ItemSnapshot struct {
	Name         string
	Category     string
	Priority     catalog.Tier
	StockHistory []float64
}

// Result is the outcome of a full 365-day run. Immutable once produced.
type Result struct {
	Population int
	Seed       int64

	// CategorySpend is the final cumulative annual spend per category;
	// CategoryCaps the annual ceilings it was held under.
	CategorySpend map[string]decimal.Decimal
	CategoryCaps  map[string]decimal.Decimal

	// FortnightSpend holds the total spend of each of the 26 budget
	// periods, keyed 1-26.
	FortnightSpend map[int]decimal.Decimal

	// PurchaseLog is the chronological, human-readable purchase audit.
	PurchaseLog []string

	Items []ItemSnapshot

	// TotalSpend is the grand total; it always equals the sum of
	// CategorySpend.
	TotalSpend decimal.Decimal
}
