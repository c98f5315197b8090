package models

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestDecodeProduct(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Product
		wantErr error
	}{
		{"json number", map[string]any{"title": "A", "price": json.Number("10")}, Product{"A", 10}, nil},
		{"float", map[string]any{"title": "B", "price": 2.5}, Product{"B", 2.5}, nil},
		{"yaml int", map[string]any{"title": "C", "price": 7}, Product{"C", 7}, nil},
		{"numeric string", map[string]any{"title": "D", "price": " 3.25 "}, Product{"D", 3.25}, nil},
		{"negative price", map[string]any{"title": "E", "price": -4}, Product{"E", -4}, nil},
		{"bool price", map[string]any{"title": "F", "price": true}, Product{"F", 1}, nil},
		{"title kept untrimmed", map[string]any{"title": " G ", "price": 1}, Product{" G ", 1}, nil},
		{"yaml any keys", map[any]any{"title": "H", "price": 2, 3: "x"}, Product{"H", 2}, nil},
		{"not an object", []any{"A", 10}, Product{}, ErrNotObject},
		{"scalar", "A", Product{}, ErrNotObject},
		{"missing title", map[string]any{"price": 1}, Product{}, ErrMissingTitle},
		{"blank title", map[string]any{"title": "   ", "price": 1}, Product{}, ErrMissingTitle},
		{"non-string title", map[string]any{"title": 12, "price": 1}, Product{}, ErrMissingTitle},
		{"non-numeric price", map[string]any{"title": "A", "price": "abc"}, Product{}, ErrInvalidPrice},
		{"missing price", map[string]any{"title": "A"}, Product{}, ErrInvalidPrice},
		{"null price", map[string]any{"title": "A", "price": nil}, Product{}, ErrInvalidPrice},
		{"object price", map[string]any{"title": "A", "price": map[string]any{}}, Product{}, ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeProduct(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodeSale(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Sale
		wantErr error
	}{
		{"json number", map[string]any{"Product": "A", "Quantity": json.Number("3")}, Sale{"A", 3}, nil},
		{"zero", map[string]any{"Product": "A", "Quantity": 0}, Sale{"A", 0}, nil},
		{"float truncates", map[string]any{"Product": "A", "Quantity": json.Number("3.9")}, Sale{"A", 3}, nil},
		{"small negative float truncates to zero", map[string]any{"Product": "A", "Quantity": -0.5}, Sale{"A", 0}, nil},
		{"integer string", map[string]any{"Product": "A", "Quantity": " 7 "}, Sale{"A", 7}, nil},
		{"bool quantity", map[string]any{"Product": "A", "Quantity": true}, Sale{"A", 1}, nil},
		{"not an object", 42, Sale{}, ErrNotObject},
		{"lowercase keys", map[string]any{"product": "A", "quantity": 1}, Sale{}, ErrMissingProduct},
		{"blank product", map[string]any{"Product": "", "Quantity": 1}, Sale{}, ErrMissingProduct},
		{"decimal string", map[string]any{"Product": "A", "Quantity": "3.5"}, Sale{}, ErrInvalidQuantity},
		{"text quantity", map[string]any{"Product": "A", "Quantity": "abc"}, Sale{}, ErrInvalidQuantity},
		{"missing quantity", map[string]any{"Product": "A"}, Sale{}, ErrInvalidQuantity},
		{"infinite quantity", map[string]any{"Product": "A", "Quantity": math.Inf(1)}, Sale{}, ErrInvalidQuantity},
		{"beyond int range", map[string]any{"Product": "A", "Quantity": json.Number("1e20")}, Sale{}, ErrInvalidQuantity},
		{"underscore separator", map[string]any{"Product": "A", "Quantity": "1_000"}, Sale{}, ErrInvalidQuantity},
		{"negative quantity", map[string]any{"Product": "A", "Quantity": json.Number("-1")}, Sale{}, ErrNegativeQuantity},
		{"negative string", map[string]any{"Product": "A", "Quantity": "-2"}, Sale{}, ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSale(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDocumentItems(t *testing.T) {
	if _, ok := (Document{Value: map[string]any{}}).Items(); ok {
		t.Error("object document reported as array")
	}
	if _, ok := (Document{}).Items(); ok {
		t.Error("empty document reported as array")
	}
	items, ok := (Document{Value: []any{1, 2}}).Items()
	if !ok || len(items) != 2 {
		t.Errorf("expected 2 items, got %v (ok=%v)", items, ok)
	}
}

func TestToFloatOverflow(t *testing.T) {
	f, ok := toFloat(json.Number("1e400"))
	if !ok || !math.IsInf(f, 1) {
		t.Errorf("expected +Inf, got %v (ok=%v)", f, ok)
	}
}
