package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingProduct   = errors.New("missing or empty 'Product'")
	ErrInvalidQuantity  = errors.New("invalid 'Quantity'")
	ErrNegativeQuantity = errors.New("negative 'Quantity'")
)

// Sale is one validated sales record. Whether the product exists in the
// catalog is checked later by the aggregator.
type Sale struct {
	Product  string
	Quantity int
}

// DecodeSale turns a raw sales element into a Sale. The returned error wraps
// ErrNotObject, ErrMissingProduct, ErrInvalidQuantity or ErrNegativeQuantity;
// the checks run in that order and the first failure wins.
func DecodeSale(raw any) (Sale, error) {
	obj, ok := asObject(raw)
	if !ok {
		return Sale{}, ErrNotObject
	}

	product, ok := obj["Product"].(string)
	if !ok || strings.TrimSpace(product) == "" {
		return Sale{}, ErrMissingProduct
	}

	qty, ok := toInt(obj["Quantity"])
	if !ok {
		return Sale{Product: product}, fmt.Errorf("%w: %v", ErrInvalidQuantity, obj["Quantity"])
	}
	if qty < 0 {
		return Sale{Product: product, Quantity: qty}, fmt.Errorf("%w: %d", ErrNegativeQuantity, qty)
	}

	return Sale{Product: product, Quantity: qty}, nil
}
