package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - only provided fields change", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		svc := service.NewProductService(repo)

		newPrice := 70.0
		newStock := 80

		repo.On("GetProductByID", ctx, int64(10)).Return(slipperProduct(), nil)
		repo.On("UpdateProduct", ctx, mock.AnythingOfType("*models.Product")).Return(nil)

		// Act
		product, err := svc.UpdateProduct(ctx, 10, &models.UpdateProductRequest{
			Price: &newPrice,
			Stock: &newStock,
		})

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 70.0, product.Price, 0.001)
		assert.Equal(t, 80, product.Stock)
		assert.Equal(t, "Slipper", product.ProductName)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - product not found", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		svc := service.NewProductService(repo)

		repo.On("GetProductByID", ctx, int64(404)).Return(nil, sql.ErrNoRows)

		// Act
		_, err := svc.UpdateProduct(ctx, 404, &models.UpdateProductRequest{})

		// Assert
		require.Error(t, err)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		repo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything)
	})
}

func TestProductService_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - flip is applied remotely first", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		svc := service.NewProductService(repo)

		repo.On("GetProductByID", ctx, int64(10)).Return(slipperProduct(), nil)
		repo.On("SetBarcodeEnabled", ctx, int64(10), false).Return(nil)

		// Act
		product, err := svc.ToggleStatus(ctx, 10)

		// Assert
		require.NoError(t, err)
		assert.False(t, product.BarcodeEnabled)
		repo.AssertExpectations(t)
	})

	t.Run("Failure - remote write fails, flip is not reported", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		svc := service.NewProductService(repo)

		repo.On("GetProductByID", ctx, int64(10)).Return(slipperProduct(), nil)
		repo.On("SetBarcodeEnabled", ctx, int64(10), false).Return(errors.New("write conflict"))

		// Act
		product, err := svc.ToggleStatus(ctx, 10)

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - catalog unreachable", func(t *testing.T) {
		// Arrange
		repo := new(mockProductRepo)
		svc := service.NewProductService(repo)

		repo.On("ListProducts", ctx).Return(nil, errors.New("connection refused"))

		// Act
		_, err := svc.ListProducts(ctx)

		// Assert
		require.Error(t, err)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeConnectionFailed, appErr.Code)
	})
}
