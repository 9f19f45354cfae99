/*
handlers.go - HTTP handlers for the simulation service

PURPOSE:
  The thin shell between HTTP and the core: validates input (the engine
  is never handed a non-positive population), runs simulations, and
  exposes the archive.

VALIDATION CONTRACT:
  Input validation is a shell responsibility. A non-positive population
  is rejected here with 400 before the core runs; the engine's own guard
  is a backstop for library consumers, not the API's validation layer.

SEE ALSO:
  - server.go: Router wiring
  - sim/engine.go: The engine being invoked
  - store/archive.go: The persistence collaborator
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/canteen-engine/catalog"
	"github.com/warp/canteen-engine/sim"
	"github.com/warp/canteen-engine/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Archive store.Archive
	Catalog *catalog.Catalog
}

// NewHandler creates a handler running simulations against the given
// catalog and persisting them in the given archive.
func NewHandler(archive store.Archive, cat *catalog.Catalog) *Handler {
	return &Handler{Archive: archive, Catalog: cat}
}

// =============================================================================
// SIMULATION HANDLERS
// =============================================================================

// RunSimulation runs a new year-long simulation and persists it.
func (h *Handler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	var req RunSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Population <= 0 {
		writeError(w, http.StatusBadRequest, "population must be a positive integer", nil)
		return
	}

	result, err := sim.Run(h.Catalog, sim.Params{
		Population: req.Population,
		Seed:       req.Seed,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Simulation failed", err)
		return
	}

	id, err := h.Archive.Save(r.Context(), result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist simulation", err)
		return
	}

	run, err := h.Archive.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stored simulation", err)
		return
	}
	writeJSON(w, http.StatusCreated, toRunDTO(run))
}

// ListSimulations returns summaries of all stored runs, most recent first.
func (h *Handler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Archive.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list simulations", err)
		return
	}

	dtos := make([]RunSummaryDTO, len(summaries))
	for i, s := range summaries {
		dtos[i] = toRunSummaryDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetSimulation returns a fully hydrated stored run.
func (h *Handler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.Archive.Get(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "Simulation not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load simulation", err)
		return
	}
	writeJSON(w, http.StatusOK, toRunDTO(run))
}

// DeleteSimulation removes a stored run and all its details.
func (h *Handler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Archive.Delete(r.Context(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "Simulation not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete simulation", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// GetSummary returns archive-wide aggregates plus the population/cost
// curve for the home view.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Archive.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to summarize archive", err)
		return
	}
	curve, err := h.Archive.PopulationCurve(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load population curve", err)
		return
	}

	avg, _ := summary.AverageTotal.Float64()
	dto := SummaryDTO{RunCount: summary.RunCount, AverageTotal: avg}
	for _, p := range curve {
		total, _ := p.TotalSpend.Float64()
		dto.Curve = append(dto.Curve, PopulationPointDTO{Population: p.Population, TotalSpend: total})
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Code = err.Error()
	}
	writeJSON(w, status, resp)
}
