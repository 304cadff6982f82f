// Package entity contains the core business objects of the storefront.
package entity

import (
	"strings"

	"github.com/goccy/go-json"
)

// noVariantWeight is the literal some catalogs use for products without a weight variant.
const noVariantWeight = "n/a"

// ProductSnapshot is denormalized display data captured when a line is added.
// It is used to render the cart when the catalog is unavailable.
type ProductSnapshot struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Slug   string  `json:"slug,omitempty"`
	Image  string  `json:"image,omitempty"`
	Price  float64 `json:"price,omitempty"`
	Weight string  `json:"weight,omitempty"`
}

// CartLine is one (product, weight variant) entry in a cart.
// Weight is kept in normalized form, see NormalizeWeight.
type CartLine struct {
	ProductID string           `json:"productId"`
	Weight    string           `json:"weight"`
	Quantity  int              `json:"quantity"`
	Product   *ProductSnapshot `json:"product"`
}

type cartLineJSON struct {
	ProductID string           `json:"productId"`
	Weight    *string          `json:"weight"`
	Quantity  int              `json:"quantity"`
	Product   *ProductSnapshot `json:"product"`
}

// MarshalJSON writes an empty weight as null.
func (l CartLine) MarshalJSON() ([]byte, error) {
	wire := cartLineJSON{
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Product:   l.Product,
	}
	if weight := NormalizeWeight(l.Weight); weight != "" {
		wire.Weight = &weight
	}

	return json.Marshal(wire)
}

// UnmarshalJSON accepts a null, empty or "N/A" weight as no variant.
func (l *CartLine) UnmarshalJSON(data []byte) error {
	var wire cartLineJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	l.ProductID = wire.ProductID
	l.Quantity = wire.Quantity
	l.Product = wire.Product
	l.Weight = ""
	if wire.Weight != nil {
		l.Weight = NormalizeWeight(*wire.Weight)
	}

	return nil
}

// Key returns the identity of the line inside a guest cart.
func (l CartLine) Key() LineKey {
	return NewLineKey(l.ProductID, l.Weight)
}

// LineKey identifies a cart line by product and normalized weight.
type LineKey struct {
	ProductID string
	Weight    string
}

// NewLineKey builds a LineKey, normalizing the weight.
func NewLineKey(productID, weight string) LineKey {
	return LineKey{ProductID: productID, Weight: NormalizeWeight(weight)}
}

// NormalizeWeight collapses every "no variant" representation ("", "N/A", whitespace) to "".
func NormalizeWeight(weight string) string {
	trimmed := strings.TrimSpace(weight)
	if strings.EqualFold(trimmed, noVariantWeight) {
		return ""
	}

	return trimmed
}

// TotalQuantity sums the quantity of every line.
func TotalQuantity(lines []CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}

	return total
}

// CloneLines returns a deep copy of lines so callers cannot mutate stored state.
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return []CartLine{}
	}

	cloned := make([]CartLine, len(lines))
	for i, line := range lines {
		cloned[i] = line
		if line.Product != nil {
			snapshot := *line.Product
			cloned[i].Product = &snapshot
		}
	}

	return cloned
}

// QuantityAction is the direction of a single-step quantity update on the remote cart.
type QuantityAction string

const (
	QuantityActionIncrement QuantityAction = "increment"
	QuantityActionDecrement QuantityAction = "decrement"
)

// CartMutationResult is what a cart mutation reports back to the caller.
// On the server path Message and Data are the remote response verbatim.
type CartMutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    []byte `json:"-"`
}
