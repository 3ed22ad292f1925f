package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shoplite/shoplite-backend/internal/cache"
	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
	"github.com/shoplite/shoplite-backend/pkg/upi"
)

type OrderService interface {
	Checkout(ctx context.Context, session *models.Session, customerName string) (*models.CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target models.OrderStatus) (*models.Order, error)
	Analytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	sessions  cache.SessionStore
	payee     upi.Payee
	sanitizer *bluemonday.Policy
}

func NewOrderService(orderRepo repository.OrderRepository, sessions cache.SessionStore, payee upi.Payee) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		sessions:  sessions,
		payee:     payee,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Checkout snapshots the cart into a new order at PENDING_PAYMENT. The order
// insert and the per-line stock decrements are committed atomically by the
// repository, so a failure surfaces as PAYMENT_FAILED with inventory
// untouched. On success the session cart is cleared and its status moves to
// checkout.
func (s *orderService) Checkout(ctx context.Context, session *models.Session, customerName string) (*models.CheckoutResponse, error) {

	current, err := s.sessions.LoadCart(ctx, session.SessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	if len(current.Items) == 0 {
		return nil, appErrors.EmptyCartError("Cannot checkout with an empty cart")
	}

	items := make([]models.CartItem, len(current.Items))
	copy(items, current.Items)

	order := &models.Order{
		ID:           uuid.New(),
		ShopID:       session.ShopID,
		CustomerName: s.sanitizer.Sanitize(strings.TrimSpace(customerName)),
		TotalAmount:  current.Total(),
		Items:        items,
		Status:       models.OrderStatusPendingPayment,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.PaymentFailedError("Checkout failed, your cart was kept").WithError(err)
	}

	order.DeriveGateFields()

	session.CartStatus = models.CartStatusCheckout

	// The order is committed at this point. An error from here on would
	// invite a retry and a duplicate order, so cache write failures are
	// tolerated and the session reconciles on its next load.
	_ = s.sessions.SaveSession(ctx, session)
	_ = s.sessions.SaveCart(ctx, session.SessionID, &models.Cart{})

	return &models.CheckoutResponse{
		Order:     order,
		UPIIntent: s.payee.PaymentURI(order.ID.String(), order.TotalAmount),
	}, nil
}

// ConfirmPayment is the customer-driven first hop of the pipeline:
// PENDING_PAYMENT -> AWAITING_VERIFICATION after the UPI or counter payment.
func (s *orderService) ConfirmPayment(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.Status != models.OrderStatusPendingPayment {
		return nil, appErrors.BadRequestError("Order is not awaiting payment")
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, models.OrderStatusAwaitingVerification)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	return updated, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 50 {
		size = 20
	}

	orders, total, err := s.orderRepo.ListOrdersByShop(ctx, shopID, status, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

// UpdateStatus validates the staff-driven transition against the pipeline:
// only the immediate successor is allowed, never a skip or a back-edge.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target models.OrderStatus) (*models.Order, error) {

	if !target.IsValid() {
		return nil, appErrors.ValidationError(fmt.Sprintf("Unknown order status %q", target))
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, appErrors.BadRequestError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, target))
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, target)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	return updated, nil
}

func (s *orderService) Analytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error) {

	analytics, err := s.orderRepo.GetShopAnalytics(ctx, shopID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to compute analytics").WithError(err)
	}

	return analytics, nil
}
