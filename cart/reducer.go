package cart

import "soluciones-ferreteras/models"

const (
	// MinQuantity and MaxQuantity bound every stored line quantity.
	MinQuantity = 1
	MaxQuantity = 99
)

// ClampQuantity forces a requested quantity into [MinQuantity, MaxQuantity]
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// The functions below are pure state transitions over the item slice; the
// Store wraps them with the persistence side effect. They never mutate their
// input and always return a fresh slice.

// addItem merges the product into the items. An existing product code gets
// its quantity increased (capped at MaxQuantity) instead of a duplicate entry.
func addItem(items []models.CartLineItem, product models.CartProduct, quantity int) []models.CartLineItem {
	next := make([]models.CartLineItem, len(items))
	copy(next, items)

	for i := range next {
		if next[i].ProductCode == product.ProductCode {
			next[i].Quantity = ClampQuantity(next[i].Quantity + quantity)
			return next
		}
	}

	return append(next, models.CartLineItem{
		ProductCode: product.ProductCode,
		ProductName: product.ProductName,
		ImageRef:    product.ImageRef,
		Quantity:    ClampQuantity(quantity),
	})
}

// removeItem drops the entry with the given code; no-op if absent.
func removeItem(items []models.CartLineItem, productCode string) []models.CartLineItem {
	next := make([]models.CartLineItem, 0, len(items))
	for _, item := range items {
		if item.ProductCode != productCode {
			next = append(next, item)
		}
	}
	return next
}

// updateQuantity sets the clamped quantity on the matching entry; no-op if absent.
func updateQuantity(items []models.CartLineItem, productCode string, quantity int) []models.CartLineItem {
	next := make([]models.CartLineItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ProductCode == productCode {
			next[i].Quantity = ClampQuantity(quantity)
			break
		}
	}
	return next
}
