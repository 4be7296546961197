// Package product finds the most expensive product in a list.
package product

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

var ErrDecode = errors.New("failed to decode products")

// Product prices are non-negative by convention; nothing enforces it.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Sentinel is the baseline MostExpensive starts its scan from.
func Sentinel() Product {
	return Product{Name: "", Price: decimal.Zero}
}

// MostExpensive returns the first product whose price is strictly greater
// than every price before it, starting from Sentinel. An empty list yields
// None.
//
// When no price exceeds zero the sentinel itself is returned, not a product
// from the list.
func MostExpensive(products []Product) mo.Option[Product] {
	if len(products) == 0 {
		return mo.None[Product]()
	}

	best := Sentinel()
	for _, p := range products {
		if p.Price.GreaterThan(best.Price) {
			best = p
		}
	}
	return mo.Some(best)
}

// Decode parses a JSON array of products. Prices may be JSON numbers or
// numeric strings.
func Decode(data []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return products, nil
}
