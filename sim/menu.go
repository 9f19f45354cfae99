/*
menu.go - Daily menu participation

PURPOSE:
  Once per day, assigns each product a participation fraction: the share
  of that day's patrons assumed to be served that product. The menu mixes
  fixed rules (rice and disposables always serve everyone) with randomized
  rotation and selection (one protein pick per day, rotating grain and
  pasta, three beverages without replacement).

ROTATION:
  The grain and pasta rotations advance one product per day, wrapping
  around their category lists. The day's rotating picks are exposed on the
  plan because the ordering policy force-replenishes them when they stock
  out (see policy.go).
*/
package sim

import (
	"strings"

	"github.com/warp/canteen-engine/catalog"
)

// Daily participation fractions.
const (
	proteinParticipation   = 0.75
	pastaParticipation     = 0.33
	slowGoodsParticipation = 0.20
	breakfastShareLow      = 0.10
	breakfastShareHigh     = 0.15
)

// fixedCondimentMarkers select the condiments that are served with every
// meal regardless of the daily rotation.
var fixedCondimentMarkers = []string{"SALT", "OIL", "SUGAR"}

// MenuPlan is one day's participation assignment. Products absent from
// Participation are not served that day.
type MenuPlan struct {
	Participation map[*Item]float64
	GrainOfDay    *Item
	PastaOfDay    *Item
}

// MenuPlanner builds daily menu plans and carries the grain/pasta rotation
// state across days.
type MenuPlanner struct {
	rng RandomSource

	poultry     []*Item
	meats       []*Item
	grains      []*Item
	pastas      []*Item
	beverages   []*Item
	rice        []*Item
	fixedCond   []*Item
	variableCond []*Item
	produce     []*Item
	breakfast   []*Item
	disposables []*Item
	slowGoods   []*Item // snacks, canned, dry goods

	grainIdx int
	pastaIdx int
}

// NewMenuPlanner groups the run's items by menu role, preserving catalog
// order within each group.
func NewMenuPlanner(items []*Item, rng RandomSource) *MenuPlanner {
	mp := &MenuPlanner{rng: rng}
	for _, it := range items {
		switch it.Product.Category {
		case catalog.CatPoultry:
			mp.poultry = append(mp.poultry, it)
		case catalog.CatMeats:
			mp.meats = append(mp.meats, it)
		case catalog.CatGrains:
			mp.grains = append(mp.grains, it)
		case catalog.CatPasta:
			mp.pastas = append(mp.pastas, it)
		case catalog.CatBeverages:
			mp.beverages = append(mp.beverages, it)
		case catalog.CatRice:
			mp.rice = append(mp.rice, it)
		case catalog.CatCondiments:
			if isFixedCondiment(it.Product.Name) {
				mp.fixedCond = append(mp.fixedCond, it)
			} else {
				mp.variableCond = append(mp.variableCond, it)
			}
		case catalog.CatProduce:
			mp.produce = append(mp.produce, it)
		case catalog.CatBreakfast:
			mp.breakfast = append(mp.breakfast, it)
		case catalog.CatDisposables:
			mp.disposables = append(mp.disposables, it)
		case catalog.CatSnacks, catalog.CatCanned, catalog.CatDryGoods:
			mp.slowGoods = append(mp.slowGoods, it)
		}
	}
	return mp
}

func isFixedCondiment(name string) bool {
	for _, marker := range fixedCondimentMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// Plan builds the day's participation assignment and advances the grain
// and pasta rotations by one.
func (mp *MenuPlanner) Plan() *MenuPlan {
	plan := &MenuPlan{Participation: make(map[*Item]float64)}

	// One poultry and one meat pick, each serving 75% of patrons.
	if pick := mp.randomPick(mp.poultry); pick != nil {
		plan.Participation[pick] = proteinParticipation
	}
	if pick := mp.randomPick(mp.meats); pick != nil {
		plan.Participation[pick] = proteinParticipation
	}

	// Rotating grain of the day (full participation) and pasta of the day.
	if len(mp.grains) > 0 {
		plan.GrainOfDay = mp.grains[mp.grainIdx]
		plan.Participation[plan.GrainOfDay] = 1.0
		mp.grainIdx = (mp.grainIdx + 1) % len(mp.grains)
	}
	if len(mp.pastas) > 0 {
		plan.PastaOfDay = mp.pastas[mp.pastaIdx]
		plan.Participation[plan.PastaOfDay] = pastaParticipation
		mp.pastaIdx = (mp.pastaIdx + 1) % len(mp.pastas)
	}

	// Three beverages without replacement; shares sum to 1.0, the last
	// pick takes the remainder.
	if len(mp.beverages) >= 3 {
		perm := mp.rng.Perm(len(mp.beverages))
		plan.Participation[mp.beverages[perm[0]]] = 0.33
		plan.Participation[mp.beverages[perm[1]]] = 0.33
		plan.Participation[mp.beverages[perm[2]]] = 0.34
	}

	// Rice is the staple: always served to everyone.
	for _, it := range mp.rice {
		plan.Participation[it] = 1.0
	}

	// Fixed condiments always; two rotating condiments on top.
	for _, it := range mp.fixedCond {
		plan.Participation[it] = 1.0
	}
	if len(mp.variableCond) >= 2 {
		perm := mp.rng.Perm(len(mp.variableCond))
		plan.Participation[mp.variableCond[perm[0]]] = 1.0
		plan.Participation[mp.variableCond[perm[1]]] = 1.0
	}

	// Two produce items per day.
	if len(mp.produce) >= 2 {
		perm := mp.rng.Perm(len(mp.produce))
		plan.Participation[mp.produce[perm[0]]] = 1.0
		plan.Participation[mp.produce[perm[1]]] = 1.0
	}

	// Breakfast items share one re-rolled daily fraction.
	if len(mp.breakfast) > 0 {
		share := mp.rng.Uniform(breakfastShareLow, breakfastShareHigh)
		for _, it := range mp.breakfast {
			plan.Participation[it] = share
		}
	}

	// Disposables track every patron; snacks/canned/dry goods trickle.
	for _, it := range mp.disposables {
		plan.Participation[it] = 1.0
	}
	for _, it := range mp.slowGoods {
		plan.Participation[it] = slowGoodsParticipation
	}

	return plan
}

func (mp *MenuPlanner) randomPick(items []*Item) *Item {
	if len(items) == 0 {
		return nil
	}
	return items[mp.rng.IntN(len(items))]
}
