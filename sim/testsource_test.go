package sim

// Shared test doubles for the sim package.
//
// stubSource is a deterministic RandomSource: uniform draws return the
// midpoint of their range, integer draws return the low bound, normal
// draws return the mean, and permutations are the identity. Tests that
// need exact arithmetic use it instead of a seeded source.

import "github.com/warp/canteen-engine/catalog"

type stubSource struct{}

func (stubSource) Uniform(lo, hi float64) float64      { return (lo + hi) / 2 }
func (stubSource) IntBetween(lo, hi int) int           { return lo }
func (stubSource) IntN(n int) int                      { return 0 }
func (stubSource) Normal(mean, stddev float64) float64 { return mean }
func (stubSource) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// defaultItems builds one item per default-catalog product, the way a run
// does it.
func defaultItems(rng RandomSource) []*Item {
	cat := catalog.Default()
	items := make([]*Item, 0, len(cat.Products))
	for _, p := range cat.Products {
		items = append(items, newItem(p, *cat.Category(p.Category), rng))
	}
	return items
}
