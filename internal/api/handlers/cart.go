package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session.SessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartResponse{
			Cart:  cart,
			Total: cart.Total(),
			Count: cart.Count(),
		})

	}
}

// AddItem adds one unit by product code (the manual-entry path).
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		var req models.AddItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, req.ProductCode)
		if err != nil {
			logger.Warn("Add to cart failed", slog.String("product_code", req.ProductCode), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartResponse{
			Cart:  cart,
			Total: cart.Total(),
			Count: cart.Count(),
		})

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		var req models.UpdateQuantityRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), session, req.ProductID, req.Delta)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartResponse{
			Cart:  cart,
			Total: cart.Total(),
			Count: cart.Count(),
		})

	}
}
