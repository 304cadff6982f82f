package impl

import (
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain/entity"

	"github.com/goccy/go-json"
)

// Accepted response envelopes around a list of items:
//
//	[...]
//	{"data": [...]}
//	{"items": [...]}
//	{"data": {"data": [...]}}
//	{"data": {"items": [...]}}
//
// Anything else is an empty list.
func extractEnvelopeList(body []byte) []any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil
	}

	switch v := decoded.(type) {
	case []any:
		return v
	case map[string]any:
		if data, ok := v["data"]; ok {
			switch inner := data.(type) {
			case []any:
				return inner
			case map[string]any:
				if list, ok := inner["data"].([]any); ok {
					return list
				}
				if list, ok := inner["items"].([]any); ok {
					return list
				}
			}

			return nil
		}
		if list, ok := v["items"].([]any); ok {
			return list
		}
	}

	return nil
}

// normalizeCartEnvelope flattens a remote cart response into cart lines
func normalizeCartEnvelope(body []byte) []entity.CartLine {
	items := extractEnvelopeList(body)
	lines := make([]entity.CartLine, 0, len(items))

	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}

		productID := lineProductID(fields)
		if productID == "" {
			continue
		}

		lines = append(lines, entity.CartLine{
			ProductID: productID,
			Weight:    entity.NormalizeWeight(stringField(fields, "weight")),
			Quantity:  lineQuantity(fields["quantity"]),
			Product:   productSnapshot(fields["product"]),
		})
	}

	return lines
}

// normalizeWishlistEnvelope accepts the same envelopes with string ids or objects carrying an id
func normalizeWishlistEnvelope(body []byte) []string {
	items := extractEnvelopeList(body)
	ids := make([]string, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			id := lineProductID(v)
			if id == "" {
				id = firstNonEmpty(scalarString(v["_id"]), scalarString(v["id"]))
			}
			ids = append(ids, id)
		default:
			ids = append(ids, scalarString(v))
		}
	}

	return entity.Dedupe(ids)
}

// lineProductID reads productId, product_id, product.id or product._id, in that order
func lineProductID(fields map[string]any) string {
	if id := firstNonEmpty(scalarString(fields["productId"]), scalarString(fields["product_id"])); id != "" {
		return id
	}

	if product, ok := fields["product"].(map[string]any); ok {
		return firstNonEmpty(scalarString(product["id"]), scalarString(product["_id"]))
	}

	return ""
}

// lineQuantity accepts a number or a numeric string; anything else counts as 1
func lineQuantity(value any) int {
	switch v := value.(type) {
	case float64:
		return int(math.Round(v))
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int(math.Round(n))
		}
	}

	return 1
}

func productSnapshot(value any) *entity.ProductSnapshot {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil
	}

	snapshot := &entity.ProductSnapshot{
		ID:     firstNonEmpty(scalarString(fields["id"]), scalarString(fields["_id"])),
		Name:   stringField(fields, "name"),
		Slug:   stringField(fields, "slug"),
		Image:  stringField(fields, "image"),
		Weight: stringField(fields, "weight"),
	}
	if snapshot.Image == "" {
		if images, ok := fields["images"].([]any); ok && len(images) > 0 {
			snapshot.Image = scalarString(images[0])
		}
	}
	switch price := fields["price"].(type) {
	case float64:
		snapshot.Price = price
	case string:
		snapshot.Price, _ = strconv.ParseFloat(strings.TrimSpace(price), 64)
	}

	return snapshot
}

func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)

	return value
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
