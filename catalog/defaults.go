/*
defaults.go - The master catalog

PURPOSE:
  The reference warehouse: 13 categories and 57 products of an
  institutional cafeteria, with real unit prices and per-serving rations.
  Tests and the default server both run against this data.

ORDER PRIORITY (documented total order):
  1 RICE, 2 GRAINS, 3 MEATS, 4 POULTRY, 5 PRODUCE, 6 PASTA,
  7 CONDIMENTS, 8 CANNED, 9 BREAKFAST, 10 DRY_GOODS, 11 SNACKS,
  12 BEVERAGES, 13 DISPOSABLES.
  Staples and perishables are purchased first each day so they see the
  freshest fortnightly budget.
*/
package catalog

import "github.com/shopspring/decimal"

// Category names used by the default catalog.
const (
	CatMeats       = "MEATS"
	CatPoultry     = "POULTRY"
	CatProduce     = "PRODUCE"
	CatBreakfast   = "BREAKFAST"
	CatRice        = "RICE"
	CatDryGoods    = "DRY_GOODS"
	CatSnacks      = "SNACKS"
	CatPasta       = "PASTA"
	CatCanned      = "CANNED"
	CatGrains      = "GRAINS"
	CatCondiments  = "CONDIMENTS"
	CatBeverages   = "BEVERAGES"
	CatDisposables = "DISPOSABLES"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Default returns the reference catalog. The returned value is freshly
// allocated on every call so callers may mutate their copy freely.
func Default() *Catalog {
	return &Catalog{
		Categories: defaultCategories(),
		Products:   defaultProducts(),
	}
}

func defaultCategories() []CategoryConfig {
	// Perishable proteins and produce keep a low steady-state fill (0.20);
	// everything else targets half capacity.
	return []CategoryConfig{
		{Name: CatRice, MaxStock: 500, RefQuarterlySpend: d("5000"), OrderPriority: 1, HighRotation: true, TargetFillRatio: 0.50},
		{Name: CatGrains, MaxStock: 300, RefQuarterlySpend: d("5000"), OrderPriority: 2, HighRotation: true, FastDelivery: true, TargetFillRatio: 0.50},
		{Name: CatMeats, MaxStock: 600, RefQuarterlySpend: d("14000"), OrderPriority: 3, HighRotation: true, FastDelivery: true, TargetFillRatio: 0.20},
		{Name: CatPoultry, MaxStock: 600, RefQuarterlySpend: d("8550"), OrderPriority: 4, HighRotation: true, FastDelivery: true, TargetFillRatio: 0.20},
		{Name: CatProduce, MaxStock: 600, RefQuarterlySpend: d("5000"), OrderPriority: 5, HighRotation: true, FastDelivery: true, TargetFillRatio: 0.20},
		{Name: CatPasta, MaxStock: 250, RefQuarterlySpend: d("2500"), OrderPriority: 6, HighRotation: true, FastDelivery: true, TargetFillRatio: 0.50},
		{Name: CatCondiments, MaxStock: 50, RefQuarterlySpend: d("5000"), OrderPriority: 7, TargetFillRatio: 0.50},
		{Name: CatCanned, MaxStock: 25, RefQuarterlySpend: d("4500"), OrderPriority: 8, TargetFillRatio: 0.50},
		{Name: CatBreakfast, MaxStock: 100, RefQuarterlySpend: d("1500"), OrderPriority: 9, TargetFillRatio: 0.50},
		{Name: CatDryGoods, MaxStock: 200, RefQuarterlySpend: d("1500"), OrderPriority: 10, TargetFillRatio: 0.50},
		{Name: CatSnacks, MaxStock: 200, RefQuarterlySpend: d("800"), OrderPriority: 11, TargetFillRatio: 0.50},
		{Name: CatBeverages, MaxStock: 500, RefQuarterlySpend: d("6500"), OrderPriority: 12, TargetFillRatio: 0.50},
		{Name: CatDisposables, MaxStock: 10, RefQuarterlySpend: d("250"), OrderPriority: 13, TargetFillRatio: 0.50},
	}
}

func defaultProducts() []Product {
	return []Product{
		{Name: "CHICKEN - WINGS", Price: d("1.76"), Category: CatPoultry, Ration: 0.40, Priority: TierCritical},
		{Name: "CHICKEN - BREAST", Price: d("1.45"), Category: CatPoultry, Ration: 0.25, Priority: TierCritical},
		{Name: "CHICKEN - THIGH QUARTER", Price: d("1.35"), Category: CatPoultry, Ration: 0.25, Priority: TierCritical},
		{Name: "PORK - FRESH CHOP", Price: d("2.38"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "PORK - LOIN", Price: d("2.83"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "PORK - SALTED TAIL", Price: d("2.35"), Category: CatMeats, Ration: 0.15, Priority: TierCritical},
		{Name: "BEEF - SHANK", Price: d("2.60"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "BEEF - LUNG", Price: d("1.51"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "BEEF - FLANK", Price: d("3.06"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "BEEF - LIVER", Price: d("1.54"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "BEEF - TRIPE", Price: d("3.06"), Category: CatMeats, Ration: 0.25, Priority: TierCritical},
		{Name: "BEEF - SPECIAL GROUND", Price: d("3.02"), Category: CatMeats, Ration: 0.20, Priority: TierCritical},
		{Name: "SPECIAL RICE (5 LB)", Price: d("3.30"), Category: CatRice, Ration: 0.05, Priority: TierCritical},
		{Name: "CORN KERNELS (10 KG CASE)", Price: d("17.50"), Category: CatCanned, Ration: 0.005, Priority: TierSecondary},
		{Name: "CRACKED CORN (5 LB)", Price: d("3.15"), Category: CatGrains, Ration: 0.06, Priority: TierSecondary},
		{Name: "LENTILS (1 LB)", Price: d("1.17"), Category: CatGrains, Ration: 0.12, Priority: TierCritical},
		{Name: "BEANS (1 LB)", Price: d("1.25"), Category: CatGrains, Ration: 0.12, Priority: TierCritical},
		{Name: "SPLIT PEAS (1 LB)", Price: d("0.85"), Category: CatGrains, Ration: 0.12, Priority: TierCritical},
		{Name: "MACARONI (454 G)", Price: d("0.80"), Category: CatPasta, Ration: 0.25, Priority: TierCritical},
		{Name: "ELBOW PASTA (10 LB)", Price: d("7.40"), Category: CatPasta, Ration: 0.025, Priority: TierCritical},
		{Name: "VEGETABLE OIL (18 L TANK)", Price: d("42.00"), Category: CatCondiments, Ration: 0.0005, Priority: TierCritical},
		{Name: "SOY SAUCE (1 GAL)", Price: d("4.50"), Category: CatCondiments, Ration: 0.002, Priority: TierSecondary},
		{Name: "SEASONED SAUCE (1 GAL)", Price: d("10.00"), Category: CatCondiments, Ration: 0.002, Priority: TierSecondary},
		{Name: "KETCHUP (1 GAL)", Price: d("7.48"), Category: CatCondiments, Ration: 0.003, Priority: TierSecondary},
		{Name: "WHITE VINEGAR (1 GAL)", Price: d("3.67"), Category: CatCondiments, Ration: 0.002, Priority: TierSecondary},
		{Name: "COOKING SALT (50 LB SACK)", Price: d("12.30"), Category: CatCondiments, Ration: 0.0001, Priority: TierCritical},
		{Name: "GROUND GARLIC (1 LB)", Price: d("3.75"), Category: CatCondiments, Ration: 0.005, Priority: TierSecondary},
		{Name: "GROUND CINNAMON (2 LB)", Price: d("3.25"), Category: CatCondiments, Ration: 0.001, Priority: TierSecondary},
		{Name: "GROUND OREGANO (1 LB)", Price: d("3.10"), Category: CatCondiments, Ration: 0.001, Priority: TierSecondary},
		{Name: "CHICKEN BOUILLON (1/2 LB)", Price: d("2.33"), Category: CatCondiments, Ration: 0.003, Priority: TierCritical},
		{Name: "MIXED SEASONING (30 G)", Price: d("4.50"), Category: CatCondiments, Ration: 0.005, Priority: TierSecondary},
		{Name: "TOMATO PASTE (681 G)", Price: d("4.20"), Category: CatCondiments, Ration: 0.05, Priority: TierSecondary},
		{Name: "WHEAT FLOUR (CASE OF 24 X 240 G)", Price: d("52.00"), Category: CatBreakfast, Ration: 0.002, Priority: TierCritical},
		{Name: "EGGS (CASE OF 30)", Price: d("5.00"), Category: CatBreakfast, Ration: 0.0333, Priority: TierSecondary},
		{Name: "BROWN SUGAR (20 KG SACK)", Price: d("36.50"), Category: CatCondiments, Ration: 0.001, Priority: TierCritical},
		{Name: "GELATIN (22 OZ)", Price: d("3.44"), Category: CatDryGoods, Ration: 0.01, Priority: TierLuxury},
		{Name: "BAKING POWDER (BOX OF 50 X 25 G)", Price: d("11.20"), Category: CatBreakfast, Ration: 0.001, Priority: TierSecondary},
		{Name: "CORN CREAM (1 LB)", Price: d("1.10"), Category: CatDryGoods, Ration: 0.05, Priority: TierSecondary},
		{Name: "TRADITIONAL COFFEE (264 G)", Price: d("5.20"), Category: CatBeverages, Ration: 0.04, Priority: TierCritical},
		{Name: "ASSORTED TEA (BOX OF 100)", Price: d("5.10"), Category: CatBeverages, Ration: 0.01, Priority: TierSecondary},
		{Name: "INSTANT DRINK MIX (96 X 13 G)", Price: d("30.05"), Category: CatBeverages, Ration: 0.005, Priority: TierLuxury},
		{Name: "NECTAR (CASE OF 24)", Price: d("6.80"), Category: CatBeverages, Ration: 0.042, Priority: TierLuxury},
		{Name: "BOTTLED WATER (CASE OF 24 X 600 ML)", Price: d("4.35"), Category: CatBeverages, Ration: 0.042, Priority: TierLuxury},
		{Name: "CANNED SODA (CASE OF 24)", Price: d("11.75"), Category: CatBeverages, Ration: 0.042, Priority: TierLuxury},
		{Name: "TUNA (140 G CASE)", Price: d("39.60"), Category: CatCanned, Ration: 0.003, Priority: TierLuxury},
		{Name: "EVAPORATED MILK (CASE OF 24 X 400 G)", Price: d("55.00"), Category: CatCanned, Ration: 0.001, Priority: TierSecondary},
		{Name: "CONDENSED MILK (CASE OF 48 X 400 G)", Price: d("61.00"), Category: CatCanned, Ration: 0.002, Priority: TierSecondary},
		{Name: "CANNED PIGEON PEAS (CASE OF 24 X 120 G)", Price: d("21.10"), Category: CatCanned, Ration: 0.005, Priority: TierSecondary},
		{Name: "MIXED VEGETABLES (CASE OF 24 X 425 G)", Price: d("19.00"), Category: CatCanned, Ration: 0.005, Priority: TierSecondary},
		{Name: "MARIA BISCUITS (48 UNITS)", Price: d("6.75"), Category: CatSnacks, Ration: 0.02, Priority: TierLuxury},
		{Name: "LOCAL ONION (LB)", Price: d("1.50"), Category: CatProduce, Ration: 0.02, Priority: TierSecondary},
		{Name: "POTATOES (LB)", Price: d("0.80"), Category: CatProduce, Ration: 0.150, Priority: TierSecondary},
		{Name: "CARROTS (LB)", Price: d("1.00"), Category: CatProduce, Ration: 0.10, Priority: TierSecondary},
		{Name: "BELL PEPPER (LB)", Price: d("2.00"), Category: CatProduce, Ration: 0.02, Priority: TierSecondary},
		{Name: "CABBAGE (LB)", Price: d("1.20"), Category: CatProduce, Ration: 0.10, Priority: TierSecondary},
		{Name: "PLUM TOMATO (2 LB)", Price: d("1.75"), Category: CatProduce, Ration: 0.10, Priority: TierSecondary},
		{Name: "NAPKINS (5000 UNITS)", Price: d("15.00"), Category: CatDisposables, Ration: 0.0004, Priority: TierCritical},
	}
}
