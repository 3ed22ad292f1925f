package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/scan"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

type SessionHandler struct {
	sessionService service.SessionService
	deduper        *scan.Deduper
	validator      *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService, deduper *scan.Deduper) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		deduper:        deduper,
		validator:      validator.New(),
	}
}

// Login starts a shop session from a shop code. Re-entry intentionally
// resets the cart.
func (h *SessionHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ShopLoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		state, err := h.sessionService.LoginShop(r.Context(), req.ShopCode)
		if err != nil {
			logger.Warn("Shop login failed", slog.String("shop_code", req.ShopCode), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop session started", slog.String("session_id", state.Session.SessionID), slog.String("shop_code", state.Shop.ShopCode))
		response.Success(w, http.StatusCreated, state)

	}
}

func (h *SessionHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		if err := h.sessionService.Logout(r.Context(), session.SessionID); err != nil {
			response.Error(w, err)
			return
		}

		h.deduper.Forget(session.SessionID)

		logger.Info("Session ended", slog.String("session_id", session.SessionID))
		response.Success(w, http.StatusOK, map[string]bool{"logged_out": true})

	}
}

// Current restores the session state, reconciling the cached cart against
// the live catalog.
func (h *SessionHandler) Current() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		state, err := h.sessionService.Restore(r.Context(), session.SessionID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)

	}
}
