package models

import "math"

type CartItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Total sums the line subtotals. Corrupt values (NaN, negatives) count as 0
// so a damaged cached cart can never produce a nonsense amount.
func (c *Cart) Total() float64 {
	var total float64

	for _, item := range c.Items {
		if math.IsNaN(item.Subtotal) || item.Subtotal < 0 {
			continue
		}

		total += item.Subtotal
	}

	return total
}

// Count sums the line quantities with the same defensive coercion as Total.
func (c *Cart) Count() int {
	var count int

	for _, item := range c.Items {
		if item.Quantity < 0 {
			continue
		}

		count += item.Quantity
	}

	return count
}

type AddItemRequest struct {
	ProductCode string `json:"product_code" validate:"max=64"`
}

type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Delta     int   `json:"delta" validate:"required"`
}

type ScanRequest struct {
	Code   string `json:"code" validate:"max=64"`
	Source string `json:"source" validate:"required,oneof=camera manual"`
}

type ScanResponse struct {
	Duplicate bool  `json:"duplicate"`
	Cart      *Cart `json:"cart,omitempty"`
}

type CartResponse struct {
	Cart  *Cart   `json:"cart"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}
