package sales

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/computesales/pkg/catalog"
	"github.com/yurifrl/computesales/pkg/models"
)

// Tally is the outcome of one aggregation pass.
type Tally struct {
	Total   float64
	Errors  int
	Records int
	Matched int
}

// Aggregate prices every valid sales record and sums the result. Each
// rejected record is logged and adds one to Errors; a document that is not an
// array counts as a single error.
func Aggregate(prices catalog.PriceMap, doc models.Document, logger *log.Logger) Tally {
	var t Tally

	records, ok := doc.Items()
	if !ok {
		logger.Error("sales record must be a list (JSON array)", "path", doc.Path)
		t.Errors = 1
		return t
	}

	for _, record := range records {
		t.Records++

		sale, err := models.DecodeSale(record)
		if err != nil {
			warnRejected(logger, sale, record, err)
			t.Errors++
			continue
		}

		price, ok := prices.Lookup(sale.Product)
		if !ok {
			logger.Warn("product does not exist in catalog", "product", sale.Product)
			t.Errors++
			continue
		}

		t.Total += price * float64(sale.Quantity)
		t.Matched++
	}

	logger.Debug("sales aggregated", "records", t.Records, "matched", t.Matched, "errors", t.Errors)
	return t
}

func warnRejected(logger *log.Logger, sale models.Sale, record any, err error) {
	switch {
	case errors.Is(err, models.ErrNotObject):
		logger.Warn("invalid sale (not an object)", "record", record)
	case errors.Is(err, models.ErrMissingProduct):
		logger.Warn("sale without a valid 'Product'", "record", record)
	case errors.Is(err, models.ErrInvalidQuantity):
		logger.Warn("invalid quantity", "product", sale.Product, "error", err)
	case errors.Is(err, models.ErrNegativeQuantity):
		logger.Warn("negative quantity", "product", sale.Product, "quantity", sale.Quantity)
	default:
		logger.Warn("skipping sale", "record", record, "error", err)
	}
}
