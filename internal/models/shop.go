package models

import "time"

type Shop struct {
	ID           int64     `json:"id"`
	ShopCode     string    `json:"shop_code"`
	ShopName     string    `json:"shop_name"`
	Location     string    `json:"location"`
	ActiveStatus bool      `json:"active_status"`
	CreatedAt    time.Time `json:"created_at"`
}

type ShopLoginRequest struct {
	ShopCode string `json:"shop_code" validate:"required,min=3,max=50"`
}
