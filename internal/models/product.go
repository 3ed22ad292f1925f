package models

import "time"

type Product struct {
	ID             int64     `json:"id"`
	ProductCode    string    `json:"product_code"`
	ProductName    string    `json:"product_name"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Stock          int       `json:"stock"`
	BarcodeEnabled bool      `json:"barcode_enabled"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateProductRequest struct {
	ProductName *string  `json:"product_name,omitempty" validate:"omitempty,min=1,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
}
