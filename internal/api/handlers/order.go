package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/metrics"
	"github.com/shoplite/shoplite-backend/internal/models"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validator:    validator.New(),
	}
}

// Checkout turns the session's cart into an order and returns the UPI
// payment intent alongside it.
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		var req models.CheckoutRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.orderService.Checkout(r.Context(), session, req.CustomerName)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("session_id", session.SessionID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		metrics.RecordOrderCreated()
		logger.Info("Order created",
			slog.String("order_id", result.Order.ID.String()),
			slog.Float64("total_amount", result.Order.TotalAmount))
		response.Success(w, http.StatusCreated, result)

	}
}

// ConfirmPayment is invoked by the customer after completing the UPI or
// counter payment.
func (h *OrderHandler) ConfirmPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid order ID"))
			return
		}

		order, err := h.orderService.ConfirmPayment(r.Context(), orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)

	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid order ID"))
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), orderID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)

	}
}
