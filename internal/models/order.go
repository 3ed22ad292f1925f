package models

import (
	"time"

	"github.com/google/uuid"
)

type GateStatus string

const (
	GateStatusPending  GateStatus = "pending"
	GateStatusVerified GateStatus = "verified"
	GateStatusExited   GateStatus = "exited"
)

type Order struct {
	ID           uuid.UUID   `json:"id"`
	ShopID       int64       `json:"shop_id"`
	CustomerName string      `json:"customer_name"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []CartItem  `json:"items"`
	Status       OrderStatus `json:"status"`

	// Derived from Status, never stored independently.
	VerificationStatus GateStatus `json:"verification_status"`
	ExitStatus         GateStatus `json:"exit_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeriveGateFields recomputes the verification/exit flags the exit-gate
// screens read, from the canonical pipeline status.
func (o *Order) DeriveGateFields() {
	o.VerificationStatus = GateStatusPending
	o.ExitStatus = GateStatusPending

	switch o.Status {
	case OrderStatusVerified:
		o.VerificationStatus = GateStatusVerified
	case OrderStatusExited:
		o.VerificationStatus = GateStatusVerified
		o.ExitStatus = GateStatusExited
	}
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=100"`
}

type CheckoutResponse struct {
	Order     *Order `json:"order"`
	UPIIntent string `json:"upi_intent"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=PENDING_PAYMENT AWAITING_VERIFICATION VERIFIED EXITED"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
}

type ProductSales struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type ShopAnalytics struct {
	ShopID       int64               `json:"shop_id"`
	TotalRevenue float64             `json:"total_revenue"`
	OrderCount   int                 `json:"order_count"`
	StatusCounts map[OrderStatus]int `json:"status_counts"`
	TopProducts  []ProductSales      `json:"top_products"`
}
