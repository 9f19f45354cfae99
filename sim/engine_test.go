package sim_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/canteen-engine/catalog"
	"github.com/warp/canteen-engine/sim"
)

// =============================================================================
// FULL-YEAR SCENARIO
// =============================================================================

func TestEngine_FullYearScenario(t *testing.T) {
	// GIVEN: The default catalog and a realistic population
	cat := catalog.Default()

	// WHEN: Running the reference scenario
	result, err := sim.Run(cat, sim.Params{Population: 2226, Seed: 42})
	require.NoError(t, err)

	// THEN: The run covers every product, every day, every fortnight
	assert.Equal(t, 2226, result.Population)
	assert.Equal(t, int64(42), result.Seed)
	assert.Len(t, result.Items, len(cat.Products))
	assert.Len(t, result.FortnightSpend, sim.FortnightsPerYear)
	for _, item := range result.Items {
		assert.Len(t, item.StockHistory, sim.DaysPerYear, "history of %s", item.Name)
	}

	// A year of institutional feeding is not free.
	assert.True(t, result.TotalSpend.IsPositive())
	assert.NotEmpty(t, result.PurchaseLog)
}

func TestEngine_TotalSpendEqualsCategoryAndFortnightSums(t *testing.T) {
	result, err := sim.Run(catalog.Default(), sim.Params{Population: 2226, Seed: 42})
	require.NoError(t, err)

	// Every debit lands in exactly one category account and one fortnight
	// bucket, so both breakdowns sum back to the grand total.
	categorySum := decimal.Zero
	for _, spend := range result.CategorySpend {
		categorySum = categorySum.Add(spend)
	}
	assert.True(t, categorySum.Equal(result.TotalSpend),
		"category sum %s != total %s", categorySum, result.TotalSpend)

	fortnightSum := decimal.Zero
	for i := 1; i <= sim.FortnightsPerYear; i++ {
		spend, ok := result.FortnightSpend[i]
		require.True(t, ok, "missing fortnight %d", i)
		fortnightSum = fortnightSum.Add(spend)
	}
	assert.True(t, fortnightSum.Equal(result.TotalSpend),
		"fortnight sum %s != total %s", fortnightSum, result.TotalSpend)
}

func TestEngine_Invariants(t *testing.T) {
	result, err := sim.Run(catalog.Default(), sim.Params{Population: 2226, Seed: 7})
	require.NoError(t, err)

	// Stock never goes negative on any day for any product.
	for _, item := range result.Items {
		for day, stock := range item.StockHistory {
			require.GreaterOrEqual(t, stock, 0.0, "%s on day %d", item.Name, day+1)
		}
	}

	// Cumulative category spend never exceeds the annual cap.
	for name, spend := range result.CategorySpend {
		limit, ok := result.CategoryCaps[name]
		require.True(t, ok, "no cap recorded for %s", name)
		assert.True(t, spend.LessThanOrEqual(limit),
			"%s spent %s over cap %s", name, spend, limit)
	}
}

// =============================================================================
// DETERMINISM
// =============================================================================

func TestEngine_SameSeedSameRun(t *testing.T) {
	// GIVEN: Two runs with identical parameters
	params := sim.Params{Population: 1500, Seed: 1234}

	first, err := sim.Run(catalog.Default(), params)
	require.NoError(t, err)
	second, err := sim.Run(catalog.Default(), params)
	require.NoError(t, err)

	// THEN: Every observable output matches exactly
	assert.True(t, first.TotalSpend.Equal(second.TotalSpend))
	assert.Equal(t, first.PurchaseLog, second.PurchaseLog)

	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Name, second.Items[i].Name)
		assert.Equal(t, first.Items[i].StockHistory, second.Items[i].StockHistory)
	}
	for i := 1; i <= sim.FortnightsPerYear; i++ {
		assert.True(t, first.FortnightSpend[i].Equal(second.FortnightSpend[i]),
			"fortnight %d diverged", i)
	}
	for name, spend := range first.CategorySpend {
		assert.True(t, spend.Equal(second.CategorySpend[name]), "category %s diverged", name)
	}
}

func TestEngine_ZeroSeedDerivesOne(t *testing.T) {
	result, err := sim.Run(catalog.Default(), sim.Params{Population: 800})
	require.NoError(t, err)

	assert.NotZero(t, result.Seed)
}

// =============================================================================
// PARAMETER VALIDATION
// =============================================================================

func TestEngine_RejectsNonPositivePopulation(t *testing.T) {
	for _, population := range []int{0, -1, -2226} {
		_, err := sim.Run(catalog.Default(), sim.Params{Population: population})
		assert.ErrorIs(t, err, sim.ErrInvalidPopulation, "population %d", population)
	}
}

func TestEngine_RejectsInvalidCatalog(t *testing.T) {
	// A product pointing at an unknown category must fail validation.
	cat := catalog.Default()
	cat.Products[0].Category = "NO SUCH CATEGORY"

	_, err := sim.Run(cat, sim.Params{Population: 1000, Seed: 1})
	assert.Error(t, err)
}

// =============================================================================
// FORTNIGHT INDEXING
// =============================================================================

func TestEngine_FortnightIndex(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1},
		{13, 1},
		{14, 2},
		{27, 2},
		{28, 3},
		{350, 26},
		{364, 26}, // clamped: day/14+1 would be 27
		{365, 26},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sim.FortnightIndex(tt.day), "day %d", tt.day)
	}
}

// =============================================================================
// EMERGENCY PATH, END TO END
// =============================================================================

func TestEngine_OutOfStockEventsAreTagged(t *testing.T) {
	// GIVEN: A lean catalog where the rotating staples start near empty
	// and demand is high, so the emergency path is certain to fire.
	result, err := sim.Run(catalog.Default(), sim.Params{Population: 5000, Seed: 3})
	require.NoError(t, err)

	tagged := 0
	for _, line := range result.PurchaseLog {
		if strings.Contains(line, "(OUT OF STOCK)") {
			require.Contains(t, line, "ORDER(R)")
			tagged++
		}
	}
	assert.Greater(t, tagged, 0, "expected at least one emergency refill in the log")
}
