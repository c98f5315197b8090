package catalog

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/computesales/pkg/models"
)

// PriceMap maps a product title to its unit price.
type PriceMap map[string]float64

// Lookup returns the unit price of title.
func (m PriceMap) Lookup(title string) (float64, bool) {
	price, ok := m[title]
	return price, ok
}

// Len returns the number of distinct titles.
func (m PriceMap) Len() int {
	return len(m)
}

// Build indexes the catalog document. Invalid entries are logged and skipped;
// a document that is not an array yields an empty map. Duplicate titles keep
// the last price seen.
func Build(doc models.Document, logger *log.Logger) PriceMap {
	prices := make(PriceMap)

	items, ok := doc.Items()
	if !ok {
		logger.Error("catalog must be a list of products (JSON array)", "path", doc.Path)
		return prices
	}

	for _, item := range items {
		product, err := models.DecodeProduct(item)
		if err != nil {
			warnSkipped(logger, product, item, err)
			continue
		}
		prices[product.Title] = product.Price
	}

	logger.Debug("catalog indexed", "entries", len(items), "products", len(prices))
	return prices
}

func warnSkipped(logger *log.Logger, product models.Product, item any, err error) {
	switch {
	case errors.Is(err, models.ErrNotObject):
		logger.Warn("invalid catalog entry (not an object)", "entry", item)
	case errors.Is(err, models.ErrMissingTitle):
		logger.Warn("catalog product without a valid 'title'", "entry", item)
	case errors.Is(err, models.ErrInvalidPrice):
		logger.Warn("invalid price", "title", product.Title, "error", err)
	default:
		logger.Warn("skipping catalog entry", "entry", item, "error", err)
	}
}
