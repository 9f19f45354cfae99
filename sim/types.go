/*
Package sim provides the core warehouse provisioning simulation engine.

PURPOSE:
  This package contains the year-long simulation of an institutional
  food-service warehouse: calendar-driven patron demand, per-product
  inventory depletion, and replenishment ordering under two simultaneous
  budget ceilings (a resettable fortnightly cap and a per-category annual
  cap) with category-specific stochastic delivery lead times.

KEY CONCEPTS IN THIS FILE (types.go):
  - OrderKind: The three replenishment cadences (fortnightly/monthly/refill)
  - PendingOrder: An in-transit purchase awaiting its arrival day
  - RandomSource: The single injectable source of all randomness

DESIGN PRINCIPLES:
  1. Determinism: Every random draw flows through one seedable RandomSource
  2. Precision: Money uses decimal.Decimal; physical stock is float64
  3. Isolation: A run owns all its state; runs never share anything mutable
  4. No fatal paths: The engine declines to order and clamps consumption,
     it never fails mid-year

USAGE:
  result, err := sim.Run(catalog.Default(), sim.Params{
      Population: 2226,
      Seed:       42,
  })

SEE ALSO:
  - calendar.go: Daily patron demand
  - item.go: Per-product inventory state machine
  - ledger.go: The two-tier budget ledger
  - menu.go: Daily menu participation
  - policy.go: The ordering policy
  - engine.go: The 365-day loop
*/
package sim

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ORDER KINDS
// =============================================================================

// OrderKind identifies the replenishment cadence that triggered an order.
// The kind determines the restock target and the lead-time band.
type OrderKind string

const (
	// OrderFortnightly is the scheduled order for high-rotation categories.
	OrderFortnightly OrderKind = "FORTNIGHTLY"
	// OrderMonthly is the scheduled order for slow-moving categories.
	OrderMonthly OrderKind = "MONTHLY"
	// OrderRefill is an ad hoc top-up triggered by low coverage.
	OrderRefill OrderKind = "REFILL"
)

// Label returns the single-letter tag used in purchase-log lines.
func (k OrderKind) Label() string {
	switch k {
	case OrderMonthly:
		return "M"
	case OrderFortnightly:
		return "F"
	default:
		return "R"
	}
}

// =============================================================================
// PENDING ORDER - An in-transit purchase
// =============================================================================

// PendingOrder is a placed purchase that has not arrived yet. It is owned
// exclusively by its item; the full quantity is merged into stock on its
// arrival day and the record is removed. Orders are never partially
// delivered.
type PendingOrder struct {
	ArrivalDay int // absolute day index, always > the day the order was placed
	Quantity   float64
	Cost       decimal.Decimal
}

// =============================================================================
// RANDOM SOURCE - Single injectable randomness abstraction
// =============================================================================

// RandomSource funnels every random draw of a run: demand jitter, delivery
// lead times, consumption noise, and menu rotation/selection. It is
// seedable for reproducible runs and substitutable with a deterministic
// stub in tests.
type RandomSource interface {
	// Uniform returns a draw from [lo, hi).
	Uniform(lo, hi float64) float64

	// IntBetween returns an integer draw from [lo, hi).
	IntBetween(lo, hi int) int

	// IntN returns an integer draw from [0, n).
	IntN(n int) int

	// Normal returns a draw from N(mean, stddev).
	Normal(mean, stddev float64) float64

	// Perm returns a random permutation of [0, n). Used for selection
	// without replacement.
	Perm(n int) []int
}

type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns the default RandomSource backed by math/rand.
// The same seed always yields the same draw sequence.
func NewSeededSource(seed int64) RandomSource {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Uniform(lo, hi float64) float64 { return lo + s.r.Float64()*(hi-lo) }
func (s *seededSource) IntBetween(lo, hi int) int      { return lo + s.r.Intn(hi-lo) }
func (s *seededSource) IntN(n int) int                 { return s.r.Intn(n) }
func (s *seededSource) Normal(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}
func (s *seededSource) Perm(n int) []int { return s.r.Perm(n) }
