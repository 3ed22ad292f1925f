package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

// AdminHandler backs the staff console: login, live order progression,
// inventory edits and the analytics summary.
type AdminHandler struct {
	adminService   service.AdminService
	orderService   service.OrderService
	productService service.ProductService
	validator      *validator.Validate
}

func NewAdminHandler(adminService service.AdminService, orderService service.OrderService, productService service.ProductService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		orderService:   orderService,
		productService: productService,
		validator:      validator.New(),
	}
}

func (h *AdminHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AdminLoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.adminService.Login(r.Context(), &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		if !result.Success {
			logger.Warn("Admin login rejected", slog.String("username", req.Username))
			response.WriteJson(w, http.StatusUnauthorized, response.APIResponse{Success: false, Data: result})
			return
		}

		response.Success(w, http.StatusOK, result)

	}
}

// ListOrders is the live-orders poll: the console re-fetches the full page
// each tick, optionally filtered by pipeline state.
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shopID, err := strconv.ParseInt(r.URL.Query().Get("shop_id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid shop ID"))
			return
		}

		var status *models.OrderStatus

		if raw := r.URL.Query().Get("status"); raw != "" {
			parsed, err := models.ParseOrderStatus(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid order status"))
				return
			}
			status = &parsed
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		orders, total, err := h.orderService.ListOrders(r.Context(), shopID, status, page, size)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.OrderListResponse{
			Orders: orders,
			Total:  total,
			Page:   page,
			Size:   size,
		})

	}
}

// UpdateOrderStatus drives the staff hops of the pipeline (verify, exit).
func (h *AdminHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid order ID"))
			return
		}

		var req models.UpdateOrderStatusRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), orderID, req.Status)
		if err != nil {
			logger.Warn("Order status update rejected", slog.String("order_id", orderID.String()), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated", slog.String("order_id", orderID.String()), slog.String("status", order.Status.String()))
		response.Success(w, http.StatusOK, order)

	}
}

func (h *AdminHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid product ID"))
			return
		}

		var req models.UpdateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), productID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *AdminHandler) ToggleProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid product ID"))
			return
		}

		product, err := h.productService.ToggleStatus(r.Context(), productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *AdminHandler) Analytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shopID, err := strconv.ParseInt(r.URL.Query().Get("shop_id"), 10, 64)
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid shop ID"))
			return
		}

		analytics, err := h.orderService.Analytics(r.Context(), shopID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, analytics)

	}
}
