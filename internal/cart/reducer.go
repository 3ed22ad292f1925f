// Package cart holds the pure cart state transitions. Nothing here touches
// the database or the session cache, so the cart math is testable on its own;
// the services layer applies these transitions and mirrors the result to the
// session cache afterwards.
package cart

import (
	"strings"

	"github.com/shoplite/shoplite-backend/internal/models"
)

// NormalizeCode trims surrounding whitespace and uppercases a raw scan or
// manual entry so lookups are case-insensitive.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Add appends one unit of the product: an existing line gets quantity+1 with
// its subtotal recomputed, otherwise a new line with quantity 1 is appended.
func Add(c models.Cart, product *models.Product) models.Cart {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)

	for i, item := range items {
		if item.ProductID == product.ID {
			items[i].Quantity++
			items[i].Subtotal = float64(items[i].Quantity) * items[i].Price

			return models.Cart{Items: items}
		}
	}

	items = append(items, models.CartItem{
		ProductID:   product.ID,
		ProductName: product.ProductName,
		Price:       product.Price,
		Quantity:    1,
		Subtotal:    product.Price,
	})

	return models.Cart{Items: items}
}

// Quantity returns the current quantity of the product in the cart, 0 when absent.
func Quantity(c models.Cart, productID int64) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}

	return 0
}

// UpdateQuantity applies delta to the matching line, clamping at zero.
// A line whose quantity reaches zero is removed entirely; unknown product
// IDs leave the cart unchanged.
func UpdateQuantity(c models.Cart, productID int64, delta int) models.Cart {
	items := make([]models.CartItem, 0, len(c.Items))

	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
			continue
		}

		quantity := item.Quantity + delta
		if quantity <= 0 {
			continue
		}

		item.Quantity = quantity
		item.Subtotal = float64(quantity) * item.Price
		items = append(items, item)
	}

	return models.Cart{Items: items}
}

// Reconcile drops every cached line whose product no longer exists in the
// freshly fetched catalog. A stale cache must never resurrect a deleted or
// renamed product.
func Reconcile(c models.Cart, catalog []*models.Product) models.Cart {
	known := make(map[int64]struct{}, len(catalog))
	for _, product := range catalog {
		known[product.ID] = struct{}{}
	}

	items := make([]models.CartItem, 0, len(c.Items))

	for _, item := range c.Items {
		if _, ok := known[item.ProductID]; ok {
			items = append(items, item)
		}
	}

	return models.Cart{Items: items}
}
