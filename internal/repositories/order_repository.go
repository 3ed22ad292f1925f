package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByShop(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	GetShopAnalytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder inserts the order and decrements stock for every line in one
// transaction. Stock never goes below zero; a failure anywhere rolls the
// whole checkout back, so inventory can never be partially mutated.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, shop_id, customer_name, total_amount, items, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.ID, order.ShopID, order.CustomerName, order.TotalAmount, itemsJSON, order.Status).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	stockQuery := `
		UPDATE products SET stock = GREATEST(stock - $1, 0), updated_at = NOW()
		WHERE id = $2
	`

	for _, item := range order.Items {
		if _, err := tx.ExecContext(dbCtx, stockQuery, item.Quantity, item.ProductID); err != nil {
			return fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, shop_id, customer_name, total_amount, items, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order := &models.Order{}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.ID, &order.ShopID, &order.CustomerName, &order.TotalAmount, &itemsJSON, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	order.DeriveGateFields()

	return order, nil
}

func (r *orderRepository) ListOrdersByShop(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE shop_id = $1 AND ($2::text IS NULL OR status = $2)`

	var statusArg any
	if status != nil {
		statusArg = string(*status)
	}

	err := r.DB.QueryRowContext(dbCtx, countQuery, shopID, statusArg).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, shop_id, customer_name, total_amount, items, status, created_at, updated_at
		FROM orders
		WHERE shop_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.DB.QueryContext(dbCtx, query, shopID, statusArg, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		order := models.Order{}

		var itemsJSON []byte

		err := rows.Scan(&order.ID, &order.ShopID, &order.CustomerName, &order.TotalAmount, &itemsJSON, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal order items: %w", err)
		}

		order.DeriveGateFields()
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, shop_id, customer_name, total_amount, items, status, created_at, updated_at
	`

	order := &models.Order{}

	var itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, status, id).Scan(&order.ID, &order.ShopID, &order.CustomerName, &order.TotalAmount, &itemsJSON, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	order.DeriveGateFields()

	return order, nil
}

// GetShopAnalytics aggregates revenue, counts per pipeline state and the
// best-selling products from the order item snapshots.
func (r *orderRepository) GetShopAnalytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	analytics := &models.ShopAnalytics{
		ShopID:       shopID,
		StatusCounts: make(map[models.OrderStatus]int),
	}

	revenueQuery := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM orders
		WHERE shop_id = $1 AND status <> $2
	`

	err := r.DB.QueryRowContext(dbCtx, revenueQuery, shopID, models.OrderStatusPendingPayment).Scan(&analytics.TotalRevenue, &analytics.OrderCount)
	if err != nil {
		return nil, fmt.Errorf("querying revenue: %w", err)
	}

	statusQuery := `
		SELECT status, COUNT(*)
		FROM orders
		WHERE shop_id = $1
		GROUP BY status
	`

	rows, err := r.DB.QueryContext(dbCtx, statusQuery, shopID)
	if err != nil {
		return nil, fmt.Errorf("querying status counts: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var status models.OrderStatus

		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		analytics.StatusCounts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	topQuery := `
		SELECT (item->>'product_id')::bigint,
		       item->>'product_name',
		       SUM((item->>'quantity')::int),
		       SUM((item->>'subtotal')::numeric)
		FROM orders, jsonb_array_elements(items) AS item
		WHERE shop_id = $1 AND status <> $2
		GROUP BY 1, 2
		ORDER BY 3 DESC
		LIMIT 5
	`

	topRows, err := r.DB.QueryContext(dbCtx, topQuery, shopID, models.OrderStatusPendingPayment)
	if err != nil {
		return nil, fmt.Errorf("querying top products: %w", err)
	}

	defer topRows.Close()

	for topRows.Next() {
		sales := models.ProductSales{}

		if err := topRows.Scan(&sales.ProductID, &sales.ProductName, &sales.QuantitySold, &sales.Revenue); err != nil {
			return nil, err
		}

		analytics.TopProducts = append(analytics.TopProducts, sales)
	}

	if err := topRows.Err(); err != nil {
		return nil, err
	}

	return analytics, nil
}
