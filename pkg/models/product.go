package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotObject    = errors.New("entry is not an object")
	ErrMissingTitle = errors.New("missing or empty 'title'")
	ErrInvalidPrice = errors.New("invalid 'price'")
)

// Product is one validated catalog entry.
type Product struct {
	Title string
	Price float64
}

// DecodeProduct turns a raw catalog element into a Product. The returned
// error wraps ErrNotObject, ErrMissingTitle or ErrInvalidPrice.
func DecodeProduct(raw any) (Product, error) {
	obj, ok := asObject(raw)
	if !ok {
		return Product{}, ErrNotObject
	}

	title, ok := obj["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return Product{}, ErrMissingTitle
	}

	price, ok := toFloat(obj["price"])
	if !ok {
		return Product{Title: title}, fmt.Errorf("%w: %v", ErrInvalidPrice, obj["price"])
	}

	return Product{Title: title, Price: price}, nil
}
