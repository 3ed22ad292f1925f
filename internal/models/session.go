package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type CartStatus string

const (
	CartStatusActive   CartStatus = "active"
	CartStatusCheckout CartStatus = "checkout"
)

// Session is the customer's in-store session, created on shop login.
// It lives only in the session cache and is destroyed on logout.
type Session struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  string     `json:"session_id"`
	ShopID     int64      `json:"shop_id"`
	CartStatus CartStatus `json:"cart_status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// SessionState is what a restored session looks like to the storefront:
// the session itself, the shop it belongs to, and the reconciled cart.
type SessionState struct {
	Session *Session `json:"session"`
	Shop    *Shop    `json:"shop"`
	Cart    *Cart    `json:"cart"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Success        bool   `json:"success"`
	Token          string `json:"token,omitempty"`
	Message        string `json:"message,omitempty"`
	RemainingTries int    `json:"remaining_tries,omitempty"`
	RetryAfter     int    `json:"retry_after,omitempty"`
}

type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
