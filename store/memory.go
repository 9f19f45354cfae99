/*
memory.go - In-memory Archive (for testing/dev)

Mirrors the SQLite archive's behavior without a database: same records,
same classifications, same ordering guarantees.
*/
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/warp/canteen-engine/sim"
)

// Memory is a mutex-guarded in-memory Archive.
type Memory struct {
	mu   sync.RWMutex
	runs map[string]*Run
	seq  []string // insertion order, for most-recent-first listing
}

// NewMemory returns an empty in-memory archive.
func NewMemory() *Memory {
	return &Memory{runs: make(map[string]*Run)}
}

func (m *Memory) Save(_ context.Context, result *sim.Result) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.runs[id] = NewRun(id, time.Now().UTC(), result)
	m.seq = append(m.seq, id)
	return id, nil
}

func (m *Memory) List(_ context.Context) ([]RunSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []RunSummary
	for i := len(m.seq) - 1; i >= 0; i-- {
		if run, ok := m.runs[m.seq[i]]; ok {
			out = append(out, run.RunSummary)
		}
	}
	return out, nil
}

func (m *Memory) Get(_ context.Context, id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	cp := *run
	return &cp, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[id]; !ok {
		return ErrRunNotFound
	}
	delete(m.runs, id)
	return nil
}

func (m *Memory) Summary(_ context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{RunCount: len(m.runs), AverageTotal: decimal.Zero}
	if s.RunCount == 0 {
		return s, nil
	}
	total := decimal.Zero
	for _, run := range m.runs {
		total = total.Add(run.TotalSpend)
	}
	s.AverageTotal = total.Div(decimal.NewFromInt(int64(s.RunCount)))
	return s, nil
}

func (m *Memory) PopulationCurve(_ context.Context) ([]PopulationPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []PopulationPoint
	for _, id := range m.seq {
		if run, ok := m.runs[id]; ok {
			out = append(out, PopulationPoint{Population: run.Population, TotalSpend: run.TotalSpend})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Population < out[j].Population })
	return out, nil
}

// Compile-time check that Memory implements Archive.
var _ Archive = (*Memory)(nil)
