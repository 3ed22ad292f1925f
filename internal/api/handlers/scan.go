package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/metrics"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/scan"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

// ScanHandler is the product intake: camera-decoded payloads and manual
// entries both land here and feed the same cart operation. Camera scans go
// through the deduplication guard, since the poller re-decodes the same
// code for as long as it stays in frame; a manual submit is deliberate and
// bypasses it.
type ScanHandler struct {
	cartService service.CartService
	deduper     *scan.Deduper
	validator   *validator.Validate
}

func NewScanHandler(cartService service.CartService, deduper *scan.Deduper) *ScanHandler {
	return &ScanHandler{
		cartService: cartService,
		deduper:     deduper,
		validator:   validator.New(),
	}
}

func (h *ScanHandler) Scan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		session, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Session not found"))
			return
		}

		var req models.ScanRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if req.Source == "camera" && !h.deduper.Allow(session.SessionID, req.Code) {
			metrics.RecordScan(req.Source, "duplicate")
			response.Success(w, http.StatusOK, models.ScanResponse{Duplicate: true})
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, req.Code)
		if err != nil {
			logger.Warn("Scan rejected", slog.String("source", req.Source), slog.String("error", err.Error()))
			metrics.RecordScan(req.Source, "rejected")
			response.Error(w, err)
			return
		}

		metrics.RecordScan(req.Source, "accepted")
		response.Success(w, http.StatusOK, models.ScanResponse{Duplicate: false, Cart: cart})

	}
}
