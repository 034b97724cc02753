// Package pricing defines the price records served by pricing-api.
//
// Prices use the legacy response format (price_jpy, product_name). The gateway may
// rewrite it into a newer format, which is why the field names must not change.
package pricing

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/gateway-delegation/lookup-services/internal/catalog"
	"github.com/gateway-delegation/lookup-services/internal/lookup"
)

// Unknown is used for product_name and category of an unknown sku.
const Unknown = "unknown"

// Price is a stored price. PriceJPY is in whole yen and may be null.
type Price struct {
	SKU         string `json:"sku" yaml:"sku"`
	PriceJPY    *int64 `json:"price_jpy" yaml:"price_jpy"`
	ProductName string `json:"product_name" yaml:"product_name"`
	Category    string `json:"category" yaml:"category"`
}

// NotFound is the response body for an unknown sku. It has the same shape as Price.
type NotFound Price

// NewNotFound returns the not-found record for sku.
func NewNotFound(sku string) NotFound {
	return NotFound{SKU: sku, PriceJPY: nil, ProductName: Unknown, Category: Unknown}
}

//go:embed prices.yaml
var seedData []byte

// Validate checks a stored price.
func Validate(p Price) error {
	if p.PriceJPY != nil && *p.PriceJPY < 0 {
		return fmt.Errorf("sku %q: negative price %d", p.SKU, *p.PriceJPY)
	}
	if p.ProductName == "" {
		return fmt.Errorf("sku %q: product_name missing", p.SKU)
	}
	if p.Category == "" {
		return fmt.Errorf("sku %q: category missing", p.SKU)
	}
	return nil
}

func key(p Price) string { return p.SKU }

// LoadCatalog loads the prices from path, or the built-in prices when path is empty.
func LoadCatalog(path string) (*catalog.Catalog[Price], error) {
	if path != "" {
		return catalog.LoadYAMLFile(path, key, Validate)
	}
	return catalog.LoadYAML(seedData, key, Validate)
}

// NewService returns the pricing-api lookup service.
// Only the caller id is logged for price lookups.
func NewService(cat *catalog.Catalog[Price]) *lookup.Service[Price] {
	return lookup.NewService(lookup.Definition[Price]{
		Name:        "pricing-api",
		ShortName:   "pricing",
		Resource:    "prices",
		Param:       "sku",
		Subject:     "price",
		DefaultPort: 8002,
		NotFound: func(sku string) any {
			return NewNotFound(sku)
		},
		Describe: func(p Price) []slog.Attr {
			if p.PriceJPY == nil {
				return nil
			}
			return []slog.Attr{slog.Int64("price_jpy", *p.PriceJPY)}
		},
	}, cat)
}
