/*
item.go - Per-product inventory state machine

PURPOSE:
  One Item tracks one product through the year: on-hand stock, in-transit
  orders, and the append-only daily stock history that ends up in the
  simulation result. All ordering mechanics that are local to a single
  product live here (restock targets, budget truncation, batching boost,
  lead times, audit-log thresholds); the cross-product decision of WHEN to
  order lives in policy.go.

INVARIANTS:
  - Stock never goes negative: consumption is clamped to available stock.
  - A pending order arrives strictly after the day it was placed, is merged
    into stock exactly once, and is never partially delivered.
  - History is append-only, one sample per simulated day.
*/
package sim

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
)

const (
	// refillFillRatio is the restock target for ad hoc REFILL orders,
	// deliberately above the perishable steady-state fill.
	refillFillRatio = 0.40

	// transitRefusalShare: an order is refused while in-transit quantity
	// already exceeds this share of the restock target.
	transitRefusalShare = 0.80

	// refillBatchBoost enlarges a REFILL order when the bigger order still
	// fits the budget ceiling, to encourage batching.
	refillBatchBoost = 1.10

	// consumptionNoiseStdDev is the spread of the daily consumption noise,
	// centered at 1.
	consumptionNoiseStdDev = 0.05
)

// logLineThreshold keeps the purchase log meaningful: spends at or below
// this amount are logged only for Critical products.
var logLineThreshold = decimal.NewFromInt(50)

// Item is the mutable per-product state, owned exclusively by one run.
type Item struct {
	Product       catalog.Product
	MaxStock      float64
	FillRatio     float64
	HighRotation  bool
	FastDelivery  bool
	OrderPriority int

	Stock   float64
	Pending []PendingOrder
	History []float64

	rng RandomSource
}

// newItem builds the item for a product with its category's warehousing
// parameters. Initial stock starts between 10% and 40% of capacity.
func newItem(p catalog.Product, cfg catalog.CategoryConfig, rng RandomSource) *Item {
	return &Item{
		Product:       p,
		MaxStock:      cfg.MaxStock,
		FillRatio:     cfg.TargetFillRatio,
		HighRotation:  cfg.HighRotation,
		FastDelivery:  cfg.FastDelivery,
		OrderPriority: cfg.OrderPriority,
		Stock:         cfg.MaxStock * rng.Uniform(0.10, 0.40),
		rng:           rng,
	}
}

// InTransit returns the total quantity currently on order.
func (it *Item) InTransit() float64 {
	var total float64
	for _, po := range it.Pending {
		total += po.Quantity
	}
	return total
}

// ReceiveArrivals merges every pending order whose arrival day has come
// into stock and drops it from the pending set. Calling it again on the
// same day with no new orders placed in between is a no-op.
func (it *Item) ReceiveArrivals(day int) {
	kept := it.Pending[:0]
	for _, po := range it.Pending {
		if po.ArrivalDay <= day {
			it.Stock += po.Quantity
		} else {
			kept = append(kept, po)
		}
	}
	it.Pending = kept
}

// PlaceOrder tries to place a replenishment order of the given kind under
// the given budget ceiling. It returns the amount spent (zero when the
// order is refused) and a purchase-log line (empty for refusals and for
// small non-critical spends).
//
// Refusal cases: in-transit cover already near the target, no shortfall,
// or a ceiling that affords less than one unit.
func (it *Item) PlaceOrder(day int, kind OrderKind, ceiling decimal.Decimal, population int) (decimal.Decimal, string) {
	target := it.MaxStock * it.FillRatio
	if kind == OrderRefill {
		target = it.MaxStock * refillFillRatio
	}

	inTransit := it.InTransit()
	if inTransit > target*transitRefusalShare {
		return decimal.Zero, ""
	}

	shortfall := target - (it.Stock + inTransit)
	if shortfall <= 0 {
		return decimal.Zero, ""
	}

	qty := shortfall
	if it.Product.Price.Mul(decimal.NewFromFloat(qty)).GreaterThan(ceiling) {
		// Truncate to what the ceiling affords, in whole units.
		qty = ceiling.Div(it.Product.Price).Floor().InexactFloat64()
	}
	if qty < 1 {
		return decimal.Zero, ""
	}

	if kind == OrderRefill {
		boosted := qty * refillBatchBoost
		if it.Product.Price.Mul(decimal.NewFromFloat(boosted)).LessThanOrEqual(ceiling) {
			qty = math.Floor(boosted)
		}
	}

	cost := it.Product.Price.Mul(decimal.NewFromFloat(qty))
	arrival := day + it.leadTime(kind)
	it.Pending = append(it.Pending, PendingOrder{ArrivalDay: arrival, Quantity: qty, Cost: cost})

	line := ""
	if cost.GreaterThan(logLineThreshold) || it.Product.Priority == catalog.TierCritical {
		line = formatOrderLine(day, kind, it.Product.Name, arrival, cost)
	}
	return cost, line
}

// formatOrderLine renders one human-readable purchase audit line.
func formatOrderLine(day int, kind OrderKind, name string, arrival int, cost decimal.Decimal) string {
	return fmt.Sprintf("[Day %d] ORDER(%s): %-20s | ETA: Day %d | $%s",
		day, kind.Label(), name, arrival, cost.StringFixed(2))
}

// leadTime draws the stochastic delivery delay in days: 2-6 for
// fast-delivery categories, 15-29 for scheduled monthly orders, 7-14
// otherwise. Always at least one day.
func (it *Item) leadTime(kind OrderKind) int {
	if it.FastDelivery {
		return it.rng.IntBetween(2, 7)
	}
	if kind == OrderMonthly {
		return it.rng.IntBetween(15, 30)
	}
	return it.rng.IntBetween(7, 15)
}

// Consume applies one day of demand: patrons x participation x ration,
// scaled by narrow normal noise, clamped to available stock. Returns the
// amount actually consumed.
func (it *Item) Consume(patrons int, participation float64) float64 {
	if participation <= 0 || it.Stock <= 0 {
		return 0
	}
	theoretical := float64(patrons) * participation * it.Product.Ration *
		it.rng.Normal(1, consumptionNoiseStdDev)
	consumed := math.Min(theoretical, it.Stock)
	if consumed < 0 {
		consumed = 0
	}
	it.Stock -= consumed
	return consumed
}

// Snapshot freezes the item's audit payload for the simulation result.
func (it *Item) Snapshot() ItemSnapshot {
	history := make([]float64, len(it.History))
	copy(history, it.History)
	return ItemSnapshot{
		Name:         it.Product.Name,
		Category:     it.Product.Category,
		Priority:     it.Product.Priority,
		StockHistory: history,
	}
}
