package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/shoplite/shoplite-backend/internal/utils"
)

type ShopRepository interface {
	GetShopByCode(ctx context.Context, code string) (*models.Shop, error)
	ListShops(ctx context.Context) ([]*models.Shop, error)
}

type shopRepository struct {
	DB *sql.DB
}

func NewShopRepo(db *sql.DB) ShopRepository {
	return &shopRepository{DB: db}
}

// GetShopByCode matches the exact shop code and only returns active shops.
func (r *shopRepository) GetShopByCode(ctx context.Context, code string) (*models.Shop, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, shop_code, shop_name, location, active_status, created_at
		FROM shops
		WHERE shop_code = $1 AND active_status = TRUE
	`

	shop := &models.Shop{}

	err := r.DB.QueryRowContext(dbCtx, query, code).Scan(&shop.ID, &shop.ShopCode, &shop.ShopName, &shop.Location, &shop.ActiveStatus, &shop.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return shop, nil
}

func (r *shopRepository) ListShops(ctx context.Context) ([]*models.Shop, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, shop_code, shop_name, location, active_status, created_at
		FROM shops
		WHERE active_status = TRUE
		ORDER BY shop_name
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var shops []*models.Shop

	for rows.Next() {
		shop := &models.Shop{}

		err := rows.Scan(&shop.ID, &shop.ShopCode, &shop.ShopName, &shop.Location, &shop.ActiveStatus, &shop.CreatedAt)
		if err != nil {
			return nil, err
		}

		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
