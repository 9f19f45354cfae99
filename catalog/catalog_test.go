package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/canteen-engine/catalog"
)

// =============================================================================
// DEFAULT CATALOG
// =============================================================================

func TestDefaultCatalog_Validates(t *testing.T) {
	cat := catalog.Default()
	require.NoError(t, cat.Validate())

	// Every category has at least one product and vice versa.
	for _, cc := range cat.Categories {
		assert.NotEmpty(t, cat.ProductsIn(cc.Name), "category %s has no products", cc.Name)
	}
	for _, p := range cat.Products {
		assert.NotNil(t, cat.Category(p.Category), "product %s", p.Name)
	}
}

func TestDefaultCatalog_OrderPrioritiesAreATotalOrder(t *testing.T) {
	cat := catalog.Default()

	seen := make(map[int]string, len(cat.Categories))
	for _, cc := range cat.Categories {
		prev, dup := seen[cc.OrderPriority]
		require.False(t, dup, "categories %s and %s share priority %d", prev, cc.Name, cc.OrderPriority)
		seen[cc.OrderPriority] = cc.Name
	}
}

func TestDefaultCatalog_CadenceFlags(t *testing.T) {
	cat := catalog.Default()

	// Staples and perishables follow the fortnightly cadence.
	for _, name := range []string{catalog.CatRice, catalog.CatGrains, catalog.CatMeats,
		catalog.CatPoultry, catalog.CatProduce, catalog.CatPasta} {
		assert.True(t, cat.Category(name).HighRotation, "%s should be high rotation", name)
	}
	assert.False(t, cat.Category(catalog.CatSnacks).HighRotation)

	// Rice rotates fast but ships on the standard schedule.
	assert.False(t, cat.Category(catalog.CatRice).FastDelivery)
	assert.True(t, cat.Category(catalog.CatMeats).FastDelivery)

	// Perishables run a lean fill, shelf-stable goods a deep one.
	assert.InDelta(t, 0.20, cat.Category(catalog.CatProduce).TargetFillRatio, 1e-9)
	assert.InDelta(t, 0.50, cat.Category(catalog.CatRice).TargetFillRatio, 1e-9)
}

func TestCategoryConfig_AnnualCap(t *testing.T) {
	cc := catalog.CategoryConfig{RefQuarterlySpend: decimal.RequireFromString("2500.50")}
	assert.True(t, cc.AnnualCap().Equal(decimal.RequireFromString("10002.00")))
}

func TestCatalog_UnknownCategoryIsNil(t *testing.T) {
	cat := catalog.Default()
	assert.Nil(t, cat.Category("NO SUCH CATEGORY"))
	assert.Empty(t, cat.ProductsIn("NO SUCH CATEGORY"))
}

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

func TestCatalog_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *catalog.Catalog)
		want   string
	}{
		{
			"duplicate product",
			func(c *catalog.Catalog) { c.Products[1].Name = c.Products[0].Name },
			"duplicate product",
		},
		{
			"unknown category",
			func(c *catalog.Catalog) { c.Products[0].Category = "UNOBTAINIUM" },
			"unknown category",
		},
		{
			"non-positive price",
			func(c *catalog.Catalog) { c.Products[0].Price = decimal.Zero },
			"non-positive price",
		},
		{
			"non-positive ration",
			func(c *catalog.Catalog) { c.Products[0].Ration = 0 },
			"non-positive ration",
		},
		{
			"bad fill ratio",
			func(c *catalog.Catalog) { c.Categories[0].TargetFillRatio = 1.5 },
			"target fill ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.Default()
			tt.mutate(cat)
			err := cat.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// =============================================================================
// TIER PARSING
// =============================================================================

func TestParseTier(t *testing.T) {
	assert.Equal(t, catalog.TierCritical, catalog.ParseTier("Critical"))
	assert.Equal(t, catalog.TierSecondary, catalog.ParseTier("Secondary"))
	assert.Equal(t, catalog.TierLuxury, catalog.ParseTier("Luxury"))
	assert.Equal(t, catalog.TierSecondary, catalog.ParseTier("whatever"))
	assert.Equal(t, catalog.TierSecondary, catalog.ParseTier(""))
}

// =============================================================================
// CSV LOADING
// =============================================================================

func TestLoadProductsCSV(t *testing.T) {
	input := strings.Join([]string{
		"Name,Price,Category,Ration,Priority",
		"WHITE RICE,1.19,RICE,0.125,Critical",
		"GROUND BEEF,5.49,MEATS,0.2,Secondary",
	}, "\n")

	products, err := catalog.LoadProductsCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "WHITE RICE", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("1.19")))
	assert.Equal(t, "RICE", products[0].Category)
	assert.InDelta(t, 0.125, products[0].Ration, 1e-9)
	assert.Equal(t, catalog.TierCritical, products[0].Priority)
	assert.Equal(t, catalog.TierSecondary, products[1].Priority)
}

func TestLoadProductsCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "Name,Price,Category,Ration,Priority"},
		{"wrong header", "Nombre,Precio,Categoria,Racion,Prioridad\nX,1,Y,1,Critical"},
		{"bad price", "Name,Price,Category,Ration,Priority\nX,abc,Y,1,Critical"},
		{"bad ration", "Name,Price,Category,Ration,Priority\nX,1.00,Y,abc,Critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.LoadProductsCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
