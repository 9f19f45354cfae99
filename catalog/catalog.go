/*
Package catalog provides the static product and warehouse configuration
that feeds the simulation engine.

PURPOSE:
  Everything here is pre-validated input data, not behavior. Products carry
  purchasing attributes (price, ration, priority tier); categories carry
  warehousing parameters (capacity, reference spend, ordering cadence).
  The engine never hardcodes a category name - swapping the catalog swaps
  the whole simulated warehouse.

KEY CONCEPTS:
  - Product: one purchasable line item (immutable)
  - CategoryConfig: warehousing parameters per category (immutable)
  - Tier: product priority tier (Critical > Secondary > Luxury)
  - OrderPriority: explicit total order for the daily purchasing pass

WHY EXPLICIT ORDER PRIORITY?
  The original planning rules sorted categories by their position in an
  ad hoc list; renaming or omitting a category silently broke the order.
  Each CategoryConfig now carries its own OrderPriority with a documented
  total order (staples and perishables first).

USAGE:
  cat := catalog.Default()
  if err := cat.Validate(); err != nil { ... }
  cap := cat.Category("MEATS").AnnualCap()

SEE ALSO:
  - defaults.go: The master catalog data
  - csv.go: Loading a product list from CSV
  - sim package: The engine consuming this configuration
*/
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PRIORITY TIERS
// =============================================================================

// Tier classifies how essential a product is. Critical products always
// produce purchase-log entries; Luxury products are first to be starved
// when budgets tighten.
type Tier string

const (
	TierCritical  Tier = "Critical"
	TierSecondary Tier = "Secondary"
	TierLuxury    Tier = "Luxury"
)

// ParseTier maps a catalog string to a Tier, defaulting to Secondary.
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierCritical, TierSecondary, TierLuxury:
		return Tier(s)
	default:
		return TierSecondary
	}
}

// =============================================================================
// PRODUCT
// =============================================================================

// Product is one purchasable line item. Name is the unique key.
// Ration is the quantity consumed per patron-meal-equivalent, in the
// product's own stock units.
type Product struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Ration   float64
	Priority Tier
}

// =============================================================================
// CATEGORY CONFIGURATION
// =============================================================================

// CategoryConfig holds the warehousing parameters for one category.
//
// OrderPriority is a total order over categories for the daily purchasing
// pass: lower values are ordered first. HighRotation categories follow the
// fortnightly cadence; FastDelivery categories get short (2-6 day) lead
// times. TargetFillRatio is the steady-state fill the policy maintains
// (low for perishables, high for staples).
type CategoryConfig struct {
	Name              string
	MaxStock          float64
	RefQuarterlySpend decimal.Decimal
	OrderPriority     int
	HighRotation      bool
	FastDelivery      bool
	TargetFillRatio   float64
}

// AnnualCap derives the category's yearly spending ceiling from its
// reference quarterly spend.
func (c CategoryConfig) AnnualCap() decimal.Decimal {
	return c.RefQuarterlySpend.Mul(decimal.NewFromInt(4))
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog bundles the product list with its category configuration.
type Catalog struct {
	Products   []Product
	Categories []CategoryConfig
}

// Category returns the configuration for a category name, or nil when the
// category is unknown.
func (c *Catalog) Category(name string) *CategoryConfig {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i]
		}
	}
	return nil
}

// ProductsIn returns the products belonging to a category, in catalog order.
func (c *Catalog) ProductsIn(category string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks the catalog invariants: every product references a known
// category, prices are positive, rations are positive, names are unique.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Products))
	for _, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("catalog: product with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("catalog: duplicate product %q", p.Name)
		}
		seen[p.Name] = true
		if c.Category(p.Category) == nil {
			return fmt.Errorf("catalog: product %q references unknown category %q", p.Name, p.Category)
		}
		if !p.Price.IsPositive() {
			return fmt.Errorf("catalog: product %q has non-positive price", p.Name)
		}
		if p.Ration <= 0 {
			return fmt.Errorf("catalog: product %q has non-positive ration", p.Name)
		}
	}
	for _, cc := range c.Categories {
		if cc.MaxStock <= 0 {
			return fmt.Errorf("catalog: category %q has non-positive max stock", cc.Name)
		}
		if cc.RefQuarterlySpend.IsNegative() {
			return fmt.Errorf("catalog: category %q has negative reference spend", cc.Name)
		}
		if cc.TargetFillRatio <= 0 || cc.TargetFillRatio > 1 {
			return fmt.Errorf("catalog: category %q has target fill ratio outside (0,1]", cc.Name)
		}
	}
	return nil
}
