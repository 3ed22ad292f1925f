package models

import "fmt"

// OrderStatus is the post-checkout pipeline. It is a straight line:
// every state has at most one allowed successor, there are no back-edges
// and no cancellation path.
type OrderStatus string

const (
	OrderStatusPendingPayment       OrderStatus = "PENDING_PAYMENT"
	OrderStatusAwaitingVerification OrderStatus = "AWAITING_VERIFICATION"
	OrderStatusVerified             OrderStatus = "VERIFIED"
	OrderStatusExited               OrderStatus = "EXITED"
)

var orderStatusPipeline = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusAwaitingVerification,
	OrderStatusVerified,
	OrderStatusExited,
}

func (s OrderStatus) IsValid() bool {
	for _, candidate := range orderStatusPipeline {
		if candidate == s {
			return true
		}
	}

	return false
}

// Next returns the single allowed successor state, or false when the
// status is terminal or unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	for i, candidate := range orderStatusPipeline {
		if candidate == s && i+1 < len(orderStatusPipeline) {
			return orderStatusPipeline[i+1], true
		}
	}

	return "", false
}

// CanTransitionTo reports whether target is the immediate successor of s.
// Skipping ahead and moving backward are both rejected.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := s.Next()

	return ok && next == target
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusExited
}

func (s OrderStatus) String() string {
	return string(s)
}

func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range orderStatusPipeline {
		if string(candidate) == value {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("invalid order status %q", value)
}
