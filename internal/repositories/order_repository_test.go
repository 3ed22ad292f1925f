package repository_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderColumns() []string {
	return []string{"id", "shop_id", "customer_name", "total_amount", "items", "status", "created_at", "updated_at"}
}

func orderFixture() *models.Order {
	return &models.Order{
		ID:           uuid.New(),
		ShopID:       1,
		CustomerName: "Asha",
		TotalAmount:  165,
		Items: []models.CartItem{
			{ProductID: 10, ProductName: "Slipper", Price: 65, Quantity: 2, Subtotal: 130},
			{ProductID: 11, ProductName: "Soap", Price: 35, Quantity: 1, Subtotal: 35},
		},
		Status: models.OrderStatusPendingPayment,
	}
}

func itemsJSON(t *testing.T, items []models.CartItem) []byte {
	t.Helper()

	data, err := json.Marshal(items)
	require.NoError(t, err)

	return data
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - insert and stock decrements commit together", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), order.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = GREATEST(stock - $1, 0)")).
			WithArgs(2, int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = GREATEST(stock - $1, 0)")).
			WithArgs(1, int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - stock decrement error rolls the order back", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), order.Status).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = GREATEST(stock - $1, 0)")).
			WithArgs(2, int64(10)).
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decrement stock for product 10")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - insert error", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
			WithArgs(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), order.Status).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		// Act
		err := repo.CreateOrder(ctx, order)

		// Assert
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - gate fields derive from status", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()

		rows := sqlmock.NewRows(orderColumns()).
			AddRow(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), string(models.OrderStatusVerified), time.Now(), time.Now())

		mock.ExpectQuery("FROM orders").WithArgs(order.ID).WillReturnRows(rows)

		// Act
		got, err := repo.GetOrderByID(ctx, order.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusVerified, got.Status)
		assert.Equal(t, models.GateStatusVerified, got.VerificationStatus)
		assert.Len(t, got.Items, 2)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		id := uuid.New()

		mock.ExpectQuery("FROM orders").WithArgs(id).WillReturnError(sql.ErrNoRows)

		// Act
		got, err := repo.GetOrderByID(ctx, id)

		// Assert
		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})
}

func TestOrderRepository_ListOrdersByShop(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - status filter and paging", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()
		status := models.OrderStatusAwaitingVerification

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
			WithArgs(int64(1), string(status)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(orderColumns()).
			AddRow(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), string(status), time.Now(), time.Now())

		mock.ExpectQuery("ORDER BY created_at DESC").
			WithArgs(int64(1), string(status), 20, 0).
			WillReturnRows(rows)

		// Act
		orders, total, err := repo.ListOrdersByShop(ctx, 1, &status, 1, 20)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, orders, 1)
		assert.Equal(t, status, orders[0].Status)
	})

	t.Run("Success - nil status lists everything", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders")).
			WithArgs(int64(1), nil).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("ORDER BY created_at DESC").
			WithArgs(int64(1), nil, 20, 0).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		// Act
		orders, total, err := repo.ListOrdersByShop(ctx, 1, nil, 1, 20)

		// Assert
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, orders)
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		order := orderFixture()

		rows := sqlmock.NewRows(orderColumns()).
			AddRow(order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON(t, order.Items), string(models.OrderStatusExited), time.Now(), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET status = $1, updated_at = NOW()")).
			WithArgs(models.OrderStatusExited, order.ID).
			WillReturnRows(rows)

		// Act
		got, err := repo.UpdateOrderStatus(ctx, order.ID, models.OrderStatusExited)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusExited, got.Status)
		assert.Equal(t, models.GateStatusExited, got.ExitStatus)
	})
}

func TestOrderRepository_GetShopAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_amount), 0), COUNT(*)")).
			WithArgs(int64(1), models.OrderStatusPendingPayment).
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(330.0, 2))

		mock.ExpectQuery("GROUP BY status").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
				AddRow(string(models.OrderStatusAwaitingVerification), 1).
				AddRow(string(models.OrderStatusExited), 1))

		mock.ExpectQuery(regexp.QuoteMeta("jsonb_array_elements(items)")).
			WithArgs(int64(1), models.OrderStatusPendingPayment).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "quantity", "revenue"}).
				AddRow(int64(10), "Slipper", 4, 260.0))

		// Act
		analytics, err := repo.GetShopAnalytics(ctx, 1)

		// Assert
		require.NoError(t, err)
		assert.InDelta(t, 330.0, analytics.TotalRevenue, 0.001)
		assert.Equal(t, 2, analytics.OrderCount)
		assert.Equal(t, 1, analytics.StatusCounts[models.OrderStatusExited])
		require.Len(t, analytics.TopProducts, 1)
		assert.Equal(t, "Slipper", analytics.TopProducts[0].ProductName)
		assert.Equal(t, 4, analytics.TopProducts[0].QuantitySold)
	})

	t.Run("Failure - revenue query error", func(t *testing.T) {
		// Arrange
		db, mock := newMockDB(t)
		repo := repository.NewOrderRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_amount), 0), COUNT(*)")).
			WithArgs(int64(1), models.OrderStatusPendingPayment).
			WillReturnError(errors.New("relation does not exist"))

		// Act
		analytics, err := repo.GetShopAnalytics(ctx, 1)

		// Assert
		require.Error(t, err)
		assert.Nil(t, analytics)
	})
}
