/*
Package store defines the persistence collaborator for simulation runs.

PURPOSE:
  The engine hands off a sim.Result and forgets about it; this package
  owns durable persistence, listing, retrieval by an opaque identifier,
  and deletion. It also derives the reporting classifications (category
  caps reached, fortnightly overdrafts) that history views display.

CLASSIFICATIONS (reporting only, never blocking):
  Category: "OK", or "LIMIT REACHED" when spend reached 99% of its cap.
  Fortnight: "OK", "NEAR LIMIT" above 9500, "CRITICAL OVERFLOW" above the
  9999 ceiling (possible only through the emergency out-of-stock path).

IMPLEMENTATIONS:
  - memory.go: In-memory archive for testing/dev
  - sqlite/: Production SQLite archive

SEE ALSO:
  - sim/result.go: The payload being persisted
  - api: The HTTP shell consuming this interface
*/
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/catalog"
	"github.com/warp/canteen-engine/sim"
)

// ErrRunNotFound is returned when the requested run identifier is unknown.
var ErrRunNotFound = errors.New("simulation run not found")

// =============================================================================
// RECORDS
// =============================================================================

// RunSummary is the listing row for a stored run.
type RunSummary struct {
	ID         string
	CreatedAt  time.Time
	Population int
	TotalSpend decimal.Decimal
}

// CategoryDetail is the stored per-category outcome.
type CategoryDetail struct {
	Category string
	Spend    decimal.Decimal
	Cap      decimal.Decimal
	Status   string
}

// FortnightDetail is the stored per-budget-period outcome.
type FortnightDetail struct {
	Fortnight int
	Spend     decimal.Decimal
	Alert     string
}

// StockDetail is the stored per-product stock trajectory.
type StockDetail struct {
	Product  string
	Category string
	Priority catalog.Tier
	History  []float64
}

// Run is a fully hydrated stored simulation.
type Run struct {
	RunSummary
	Categories  []CategoryDetail
	Fortnights  []FortnightDetail
	Stocks      []StockDetail
	PurchaseLog []string
}

// Summary aggregates the whole archive for the home view.
type Summary struct {
	RunCount     int
	AverageTotal decimal.Decimal
}

// PopulationPoint relates a run's population to its total spend, for the
// population/cost curve.
type PopulationPoint struct {
	Population int
	TotalSpend decimal.Decimal
}

// =============================================================================
// ARCHIVE - Persistence interface
// =============================================================================

// Archive persists simulation results. Runs are immutable once saved;
// the only mutation is deletion of a whole run.
type Archive interface {
	// Save persists a result and returns the new run's opaque identifier.
	Save(ctx context.Context, result *sim.Result) (string, error)

	// List returns summaries of all stored runs, most recent first.
	List(ctx context.Context) ([]RunSummary, error)

	// Get returns a fully hydrated run.
	Get(ctx context.Context, id string) (*Run, error)

	// Delete removes a run and all its details.
	Delete(ctx context.Context, id string) error

	// Summary returns archive-wide aggregates.
	Summary(ctx context.Context) (Summary, error)

	// PopulationCurve returns (population, total spend) pairs ordered by
	// ascending population.
	PopulationCurve(ctx context.Context) ([]PopulationPoint, error)
}

// =============================================================================
// REPORTING CLASSIFICATIONS
// =============================================================================

const (
	StatusOK           = "OK"
	StatusLimitReached = "LIMIT REACHED"
	AlertNearLimit     = "NEAR LIMIT"
	AlertCriticalOver  = "CRITICAL OVERFLOW"
)

var (
	capWarningShare    = decimal.RequireFromString("0.99")
	fortnightNearLimit = decimal.NewFromInt(9500)
	fortnightOverflow  = decimal.RequireFromString("9999.01")
)

// ClassifyCategory labels a category's annual outcome.
func ClassifyCategory(spend, cap decimal.Decimal) string {
	if spend.GreaterThanOrEqual(cap.Mul(capWarningShare)) {
		return StatusLimitReached
	}
	return StatusOK
}

// ClassifyFortnight labels a budget period's outcome.
func ClassifyFortnight(spend decimal.Decimal) string {
	if spend.GreaterThan(fortnightOverflow) {
		return AlertCriticalOver
	}
	if spend.GreaterThan(fortnightNearLimit) {
		return AlertNearLimit
	}
	return StatusOK
}
