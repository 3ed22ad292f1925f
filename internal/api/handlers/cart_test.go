package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoplite/shoplite-backend/internal/api/handlers"
	"github.com/shoplite/shoplite-backend/internal/api/middleware"
	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/services/mocks"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withSession(r *http.Request, session *models.Session) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionContextKey, session)

	return r.WithContext(ctx)
}

func activeSession() *models.Session {
	return &models.Session{SessionID: "sess-1", ShopID: 1, CartStatus: models.CartStatusActive}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse

	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		cart := &models.Cart{Items: []models.CartItem{
			{ProductID: 10, ProductName: "Slipper", Price: 65, Quantity: 1, Subtotal: 65},
		}}

		cartService.On("AddItem", mock.Anything, mock.AnythingOfType("*models.Session"), "slp-001").Return(cart, nil)

		body := bytes.NewBufferString(`{"product_code": "slp-001"}`)
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), activeSession())
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		require.True(t, resp.Success)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 65.0, data["total"], 0.001)
		assert.InDelta(t, 1.0, data["count"], 0.001)
	})

	t.Run("Failure - unknown product code", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("AddItem", mock.Anything, mock.AnythingOfType("*models.Session"), "SLP-099").
			Return(nil, appErrors.NotFoundError("Product not found"))

		body := bytes.NewBufferString(`{"product_code": "SLP-099"}`)
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), activeSession())
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeResponse(t, rec)
		require.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Product not found", resp.Error.Message)
	})

	t.Run("Failure - empty product code", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("AddItem", mock.Anything, mock.AnythingOfType("*models.Session"), "").
			Return(nil, appErrors.EmptyCodeError("Please enter a product code"))

		body := bytes.NewBufferString(`{}`)
		req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), activeSession())
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeResponse(t, rec)
		assert.Equal(t, appErrors.ErrCodeEmptyCode, resp.Error.Code)
	})

	t.Run("Failure - no session on context", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		body := bytes.NewBufferString(`{"product_code": "SLP-001"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body)
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	t.Run("Success - decrement", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("UpdateQuantity", mock.Anything, mock.AnythingOfType("*models.Session"), int64(10), -1).
			Return(&models.Cart{}, nil)

		body := bytes.NewBufferString(`{"product_id": 10, "delta": -1}`)
		req := withSession(httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items", body), activeSession())
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		cartService.AssertExpectations(t)
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		cartService := new(mocks.MockCartService)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("GetCart", mock.Anything, "sess-1").Return(&models.Cart{}, nil)

		req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), activeSession())
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
	})
}
