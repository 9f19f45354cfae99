package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/canteen-engine/api"
	"github.com/warp/canteen-engine/catalog"
	"github.com/warp/canteen-engine/sim"
	"github.com/warp/canteen-engine/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := api.NewHandler(store.NewMemory(), catalog.Default())
	server := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(server.Close)
	return server
}

func postSimulation(t *testing.T, server *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+"/api/simulations", "application/json",
		bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// =============================================================================
// RUN SIMULATION
// =============================================================================

func TestAPI_RunSimulation(t *testing.T) {
	// GIVEN: A server over an empty archive
	server := testServer(t)

	// WHEN: Requesting a seeded run
	resp := postSimulation(t, server, `{"population": 500, "seed": 42}`)

	// THEN: The stored run comes back fully hydrated
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	run := decodeJSON[api.RunDTO](t, resp)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 500, run.Population)
	assert.Greater(t, run.TotalSpend, 0.0)
	assert.Len(t, run.Fortnights, sim.FortnightsPerYear)
	assert.Len(t, run.Stocks, len(catalog.Default().Products))
	for _, s := range run.Stocks {
		assert.Len(t, s.History, sim.DaysPerYear, "history of %s", s.Product)
	}
}

func TestAPI_RunSimulation_RejectsBadInput(t *testing.T) {
	server := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"zero population", `{"population": 0}`},
		{"negative population", `{"population": -5}`},
		{"missing population", `{}`},
		{"malformed json", `{"population": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postSimulation(t, server, tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

// =============================================================================
// LISTING AND RETRIEVAL
// =============================================================================

func TestAPI_ListSimulations(t *testing.T) {
	server := testServer(t)

	resp := postSimulation(t, server, `{"population": 300, "seed": 1}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = postSimulation(t, server, `{"population": 400, "seed": 2}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	listResp, err := http.Get(server.URL + "/api/simulations")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	summaries := decodeJSON[[]api.RunSummaryDTO](t, listResp)
	require.Len(t, summaries, 2)
	// Most recent first.
	assert.Equal(t, 400, summaries[0].Population)
	assert.Equal(t, 300, summaries[1].Population)
}

func TestAPI_GetSimulation(t *testing.T) {
	server := testServer(t)

	created := decodeJSON[api.RunDTO](t, postSimulation(t, server, `{"population": 250, "seed": 9}`))

	resp, err := http.Get(server.URL + "/api/simulations/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	run := decodeJSON[api.RunDTO](t, resp)
	assert.Equal(t, created.ID, run.ID)
	assert.Equal(t, 250, run.Population)
	assert.InDelta(t, created.TotalSpend, run.TotalSpend, 1e-9)
}

func TestAPI_GetSimulation_NotFound(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/api/simulations/no-such-run")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// DELETION
// =============================================================================

func TestAPI_DeleteSimulation(t *testing.T) {
	server := testServer(t)

	created := decodeJSON[api.RunDTO](t, postSimulation(t, server, `{"population": 200, "seed": 5}`))

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/simulations/"+created.ID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "deleted", status["status"])
	assert.Equal(t, created.ID, status["id"])

	// Gone now.
	getResp, err := http.Get(server.URL + "/api/simulations/" + created.ID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestAPI_DeleteSimulation_NotFound(t *testing.T) {
	server := testServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/simulations/no-such-run", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestAPI_GetSummary(t *testing.T) {
	server := testServer(t)

	// Empty archive first.
	resp, err := http.Get(server.URL + "/api/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeJSON[api.SummaryDTO](t, resp)
	assert.Zero(t, summary.RunCount)
	assert.Empty(t, summary.Curve)

	postSimulation(t, server, `{"population": 600, "seed": 11}`).Body.Close()
	postSimulation(t, server, `{"population": 300, "seed": 12}`).Body.Close()

	resp, err = http.Get(server.URL + "/api/summary")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summary = decodeJSON[api.SummaryDTO](t, resp)
	assert.Equal(t, 2, summary.RunCount)
	assert.Greater(t, summary.AverageTotal, 0.0)

	// Curve sorted by ascending population.
	require.Len(t, summary.Curve, 2)
	assert.Equal(t, 300, summary.Curve[0].Population)
	assert.Equal(t, 600, summary.Curve[1].Population)
}
