/*
engine.go - The 365-day simulation clock

PURPOSE:
  Orchestrates one run: for each day, fortnight bookkeeping, demand,
  order arrivals, the priority-ordered purchasing pass, the daily menu
  with its emergency refills, consumption, and history capture.

DAY SEQUENCE (fixed):
  1. Advance the fortnight index; reset the fortnightly budget when it
     advances, BEFORE any ordering decision of that day.
  2. Compute expected patrons from the calendar.
  3. Merge arrived orders into stock for every item.
  4. Run the ordering policy across all items in category order priority.
  5. Build the menu plan; emergency-refill the rotating grain/pasta when
     stocked out.
  6. Apply consumption; append the day's stock sample to every history.
  7. Accumulate the day's spend into the current fortnight bucket.

CONCURRENCY:
  Single-threaded and bounded (365 iterations, no I/O, no blocking).
  A run owns all its state; independent runs may execute in parallel.
*/
package sim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
)

const (
	// DaysPerYear is the fixed length of a run.
	DaysPerYear = 365
	// FortnightsPerYear is the number of budget periods in a run.
	FortnightsPerYear = 26

	fortnightLength = 14 // days per budget period for indexing
)

// Params configures one run. Population is required; everything else has
// defaults.
type Params struct {
	// Population is the target population size. Must be positive.
	Population int

	// Seed fixes the random sequence for reproducible runs. Zero means
	// derive a seed from the wall clock.
	Seed int64

	// Rand overrides the seeded default source entirely. Used by tests.
	Rand RandomSource

	// Calendar overrides the default 2025 operating calendar.
	Calendar *CalendarConfig

	// FortnightlyCeiling overrides DefaultFortnightlyCeiling when positive.
	FortnightlyCeiling decimal.Decimal
}

// FortnightIndex maps a day of the year to its budget period, 1-26.
func FortnightIndex(day int) int {
	idx := day/fortnightLength + 1
	if idx > FortnightsPerYear {
		idx = FortnightsPerYear
	}
	return idx
}

// Run simulates one full year for the given catalog and parameters.
func Run(cat *catalog.Catalog, p Params) (*Result, error) {
	if p.Population <= 0 {
		return nil, ErrInvalidPopulation
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	seed := p.Seed
	rng := p.Rand
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = NewSeededSource(seed)
	}

	cal := p.Calendar
	if cal == nil {
		cal = DefaultCalendar()
	}

	ceiling := p.FortnightlyCeiling
	if !ceiling.IsPositive() {
		ceiling = DefaultFortnightlyCeiling
	}

	// One item per product, in catalog order.
	items := make([]*Item, 0, len(cat.Products))
	for _, product := range cat.Products {
		cfg := cat.Category(product.Category)
		items = append(items, newItem(product, *cfg, rng))
	}

	ledger := NewBudgetLedger(cat.Categories, ceiling)
	policy := NewOrderingPolicy(items, ledger, p.Population)
	planner := NewMenuPlanner(items, rng)

	fortnightSpend := make(map[int]decimal.Decimal, FortnightsPerYear)
	for i := 1; i <= FortnightsPerYear; i++ {
		fortnightSpend[i] = decimal.Zero
	}
	var purchaseLog []string

	fortnight := 1
	for day := 1; day <= DaysPerYear; day++ {
		if idx := FortnightIndex(day); idx > fortnight {
			fortnight = idx
			ledger.ResetFortnight()
		}

		patrons := cal.ExpectedPatrons(day, p.Population, rng)

		for _, it := range items {
			it.ReceiveArrivals(day)
		}

		daySpend, logs := policy.RunDay(day)

		plan := planner.Plan()
		for _, pick := range [...]*Item{plan.GrainOfDay, plan.PastaOfDay} {
			spend, line := policy.EmergencyRefill(day, pick)
			if spend.IsPositive() {
				daySpend = daySpend.Add(spend)
				logs = append(logs, line)
			}
		}
		purchaseLog = append(purchaseLog, logs...)

		for _, it := range items {
			it.Consume(patrons, plan.Participation[it])
			it.History = append(it.History, it.Stock)
		}

		fortnightSpend[fortnight] = fortnightSpend[fortnight].Add(daySpend)
	}

	snapshots := make([]ItemSnapshot, len(items))
	for i, it := range items {
		snapshots[i] = it.Snapshot()
	}

	return &Result{
		Population:     p.Population,
		Seed:           seed,
		CategorySpend:  ledger.CategorySpend(),
		CategoryCaps:   ledger.CategoryCaps(),
		FortnightSpend: fortnightSpend,
		PurchaseLog:    purchaseLog,
		Items:          snapshots,
		TotalSpend:     ledger.TotalSpend(),
	}, nil
}
