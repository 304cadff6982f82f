package impl

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCartEnvelope_Shapes(t *testing.T) {
	t.Parallel()

	want := []entity.CartLine{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Weight: "500g", Quantity: 1},
	}
	items := `[{"productId":"p1","quantity":2},{"productId":"p2","weight":"500g","quantity":1}]`

	tests := []struct {
		name string
		body string
	}{
		{name: "bare list", body: items},
		{name: "data list", body: `{"success":true,"data":` + items + `}`},
		{name: "items list", body: `{"items":` + items + `}`},
		{name: "nested data", body: `{"data":{"data":` + items + `}}`},
		{name: "nested items", body: `{"data":{"items":` + items + `,"total":3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, normalizeCartEnvelope([]byte(tt.body)))
		})
	}
}

func TestNormalizeCartEnvelope_Unrecognized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "not json", body: "<html>"},
		{name: "object without list", body: `{"message":"ok"}`},
		{name: "data scalar", body: `{"data":"nope"}`},
		{name: "data object without list", body: `{"data":{"count":2}}`},
		{name: "null", body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, normalizeCartEnvelope([]byte(tt.body)))
		})
	}
}

func TestNormalizeCartEnvelope_LineFields(t *testing.T) {
	t.Parallel()

	body := `[
		{"product_id":"a","quantity":"3","weight":"N/A"},
		{"product":{"id":"b","name":"Croissant","images":["b.jpg","b2.jpg"],"price":"120.5"}},
		{"product":{"_id":"c","image":"c.jpg","price":80},"quantity":1.6},
		{"quantity":4},
		"stray"
	]`

	lines := normalizeCartEnvelope([]byte(body))

	assert.Equal(t, []entity.CartLine{
		{ProductID: "a", Quantity: 3},
		{
			ProductID: "b",
			Quantity:  1,
			Product:   &entity.ProductSnapshot{ID: "b", Name: "Croissant", Image: "b.jpg", Price: 120.5},
		},
		{
			ProductID: "c",
			Quantity:  2,
			Product:   &entity.ProductSnapshot{ID: "c", Image: "c.jpg", Price: 80},
		},
	}, lines)
}

func TestNormalizeWishlistEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "strings", body: `["a","b","a"]`, want: []string{"a", "b"}},
		{name: "objects", body: `{"data":[{"productId":"a"},{"product":{"_id":"b"}},{"id":"c"}]}`, want: []string{"a", "b", "c"}},
		{name: "blank entries dropped", body: `{"items":["", {"name":"x"}, "d"]}`, want: []string{"d"}},
		{name: "unrecognized", body: `{"wishlist":["a"]}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeWishlistEnvelope([]byte(tt.body)))
		})
	}
}
