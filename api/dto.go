/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the internal domain
  model from the external contract. Money is rendered as float64 for
  client convenience; exact decimal values live only inside the engine
  and the archive.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - store/archive.go: The records being exposed
*/
package api

import (
	"time"

	"github.com/warp/canteen-engine/store"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// RunSimulationRequest starts a new simulation.
type RunSimulationRequest struct {
	Population int   `json:"population"`
	Seed       int64 `json:"seed,omitempty"` // 0 = random seed
}

// RunSummaryDTO is a stored run in listings.
type RunSummaryDTO struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"created_at"`
	Population int     `json:"population"`
	TotalSpend float64 `json:"total_spend"`
}

// CategoryDetailDTO is one category's annual outcome.
type CategoryDetailDTO struct {
	Category string  `json:"category"`
	Spend    float64 `json:"spend"`
	Cap      float64 `json:"cap"`
	Status   string  `json:"status"`
}

// FortnightDetailDTO is one budget period's outcome.
type FortnightDetailDTO struct {
	Fortnight int     `json:"fortnight"`
	Spend     float64 `json:"spend"`
	Alert     string  `json:"alert"`
}

// StockDetailDTO is one product's stock trajectory.
type StockDetailDTO struct {
	Product  string    `json:"product"`
	Category string    `json:"category"`
	Priority string    `json:"priority"`
	History  []float64 `json:"history"`
}

// RunDTO is a fully hydrated stored run.
type RunDTO struct {
	RunSummaryDTO
	Categories  []CategoryDetailDTO  `json:"categories"`
	Fortnights  []FortnightDetailDTO `json:"fortnights"`
	Stocks      []StockDetailDTO     `json:"stocks"`
	PurchaseLog []string             `json:"purchase_log"`
}

// SummaryDTO aggregates the archive for the home view.
type SummaryDTO struct {
	RunCount     int                  `json:"run_count"`
	AverageTotal float64              `json:"average_total"`
	Curve        []PopulationPointDTO `json:"curve"`
}

// PopulationPointDTO is one point of the population/cost curve.
type PopulationPointDTO struct {
	Population int     `json:"population"`
	TotalSpend float64 `json:"total_spend"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRunSummaryDTO(s store.RunSummary) RunSummaryDTO {
	total, _ := s.TotalSpend.Float64()
	return RunSummaryDTO{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		Population: s.Population,
		TotalSpend: total,
	}
}

func toRunDTO(run *store.Run) RunDTO {
	dto := RunDTO{
		RunSummaryDTO: toRunSummaryDTO(run.RunSummary),
		PurchaseLog:   run.PurchaseLog,
	}
	for _, c := range run.Categories {
		spend, _ := c.Spend.Float64()
		cap, _ := c.Cap.Float64()
		dto.Categories = append(dto.Categories, CategoryDetailDTO{
			Category: c.Category,
			Spend:    spend,
			Cap:      cap,
			Status:   c.Status,
		})
	}
	for _, f := range run.Fortnights {
		spend, _ := f.Spend.Float64()
		dto.Fortnights = append(dto.Fortnights, FortnightDetailDTO{
			Fortnight: f.Fortnight,
			Spend:     spend,
			Alert:     f.Alert,
		})
	}
	for _, s := range run.Stocks {
		dto.Stocks = append(dto.Stocks, StockDetailDTO{
			Product:  s.Product,
			Category: s.Category,
			Priority: string(s.Priority),
			History:  s.History,
		})
	}
	return dto
}
