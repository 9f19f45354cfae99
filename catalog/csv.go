/*
csv.go - Loading a product list from CSV

PURPOSE:
  The master product list originates from a procurement spreadsheet exported
  as CSV (Name,Price,Category,Ration,Priority). This loader turns such an
  export into []Product so a warehouse can be simulated without recompiling.
  Category configuration stays in code; only the product list is loadable.
*/
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

var productHeader = []string{"Name", "Price", "Category", "Ration", "Priority"}

// LoadProductsCSV parses a product list in the procurement export format.
func LoadProductsCSV(r io.Reader) ([]Product, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read product CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("product CSV must have a header and at least one data row")
	}
	if !headerMatches(records[0]) {
		return nil, fmt.Errorf("product CSV header mismatch: expected %v, got %v", productHeader, records[0])
	}

	products := make([]Product, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(productHeader) {
			return nil, fmt.Errorf("product CSV row %d: expected %d columns, got %d", i+2, len(productHeader), len(record))
		}
		p, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("product CSV row %d: %w", i+2, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func parseProduct(record []string) (Product, error) {
	price, err := decimal.NewFromString(record[1])
	if err != nil {
		return Product{}, fmt.Errorf("invalid price %q: %w", record[1], err)
	}
	ration, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return Product{}, fmt.Errorf("invalid ration %q: %w", record[3], err)
	}
	return Product{
		Name:     record[0],
		Price:    price,
		Category: record[2],
		Ration:   ration,
		Priority: ParseTier(record[4]),
	}, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(productHeader) {
		return false
	}
	for i, h := range header {
		if h != productHeader[i] {
			return false
		}
	}
	return true
}
