package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductByCode(ctx context.Context, code string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	SetBarcodeEnabled(ctx context.Context, id int64, enabled bool) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, product_code, product_name, category, price, stock, barcode_enabled, created_at, updated_at`

func (r *productRepository) scanProduct(row *sql.Row) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.ProductCode, &product.ProductName, &product.Category, &product.Price, &product.Stock, &product.BarcodeEnabled, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_code`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(&product.ID, &product.ProductCode, &product.ProductName, &product.Category, &product.Price, &product.Stock, &product.BarcodeEnabled, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return r.scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

// GetProductByCode matches case-insensitively; callers pass the normalized
// (uppercased) code.
func (r *productRepository) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE UPPER(product_code) = $1`

	return r.scanProduct(r.DB.QueryRowContext(dbCtx, query, code))
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET product_name = $1, category = $2, price = $3, stock = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, product.ProductName, product.Category, product.Price, product.Stock, product.ID).Scan(&product.UpdatedAt)
}

func (r *productRepository) SetBarcodeEnabled(ctx context.Context, id int64, enabled bool) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET barcode_enabled = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(dbCtx, query, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update barcode status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
