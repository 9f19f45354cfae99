package store

import (
	"sort"
	"time"

	"github.com/warp/canteen-engine/sim"
)

// NewRun flattens a simulation result into storable records. Categories
// are sorted by name and fortnights by index so stored rows are stable
// regardless of map iteration order.
func NewRun(id string, createdAt time.Time, result *sim.Result) *Run {
	run := &Run{
		RunSummary: RunSummary{
			ID:         id,
			CreatedAt:  createdAt,
			Population: result.Population,
			TotalSpend: result.TotalSpend,
		},
		PurchaseLog: append([]string(nil), result.PurchaseLog...),
	}

	names := make([]string, 0, len(result.CategorySpend))
	for name := range result.CategorySpend {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spend := result.CategorySpend[name]
		cap := result.CategoryCaps[name]
		run.Categories = append(run.Categories, CategoryDetail{
			Category: name,
			Spend:    spend,
			Cap:      cap,
			Status:   ClassifyCategory(spend, cap),
		})
	}

	for q := 1; q <= sim.FortnightsPerYear; q++ {
		spend := result.FortnightSpend[q]
		run.Fortnights = append(run.Fortnights, FortnightDetail{
			Fortnight: q,
			Spend:     spend,
			Alert:     ClassifyFortnight(spend),
		})
	}

	for _, item := range result.Items {
		run.Stocks = append(run.Stocks, StockDetail{
			Product:  item.Name,
			Category: item.Category,
			Priority: item.Priority,
			History:  append([]float64(nil), item.StockHistory...),
		})
	}
	return run
}
