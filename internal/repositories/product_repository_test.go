package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "product_code", "product_name", "category", "price", "stock", "barcode_enabled", "created_at", "updated_at"}
}

func slipperRow() *sqlmock.Rows {
	return sqlmock.NewRows(productColumns()).
		AddRow(10, "SLP-001", "Slipper", "Footwear", 65.0, 100, true, time.Now(), time.Now())
}

func TestProductRepository_GetProductByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE UPPER(product_code) = $1")).
			WithArgs("SLP-001").
			WillReturnRows(slipperRow())

		// Act
		product, err := repo.GetProductByCode(ctx, "SLP-001")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "SLP-001", product.ProductCode)
		assert.Equal(t, 100, product.Stock)
		assert.True(t, product.BarcodeEnabled)
	})

	t.Run("Failure - unknown code", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE UPPER(product_code) = $1")).
			WithArgs("SLP-099").
			WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByCode(ctx, "SLP-099")

		// Assert
		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, product)
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		rows := sqlmock.NewRows(productColumns()).
			AddRow(10, "SLP-001", "Slipper", "Footwear", 65.0, 100, true, time.Now(), time.Now()).
			AddRow(11, "SOA-001", "Soap", "Toiletries", 35.0, 40, true, time.Now(), time.Now())

		mock.ExpectQuery("ORDER BY product_code").WillReturnRows(rows)

		// Act
		products, err := repo.ListProducts(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "SOA-001", products[1].ProductCode)
	})
}

func TestProductRepository_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - updated_at is refreshed", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		updatedAt := time.Now()
		product := &models.Product{ID: 10, ProductName: "Slipper", Category: "Footwear", Price: 70, Stock: 90}

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET product_name = $1, category = $2, price = $3, stock = $4, updated_at = NOW()")).
			WithArgs("Slipper", "Footwear", 70.0, 90, int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

		// Act
		err := repo.UpdateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, updatedAt, product.UpdatedAt, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_SetBarcodeEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET barcode_enabled = $1, updated_at = NOW()")).
			WithArgs(false, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.SetBarcodeEnabled(ctx, 10, false)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - product does not exist", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET barcode_enabled = $1, updated_at = NOW()")).
			WithArgs(true, int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.SetBarcodeEnabled(ctx, 404, true)

		// Assert
		require.ErrorIs(t, err, sql.ErrNoRows)
	})
}
