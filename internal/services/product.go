package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	ToggleStatus(ctx context.Context, id int64) (*models.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not fetch the product catalog").WithError(err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

// ToggleStatus flips barcode_enabled remotely first; the returned product
// only reflects the flip when the write succeeded. There is no optimistic
// update to roll back.
func (s *productService) ToggleStatus(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.repo.SetBarcodeEnabled(ctx, id, !product.BarcodeEnabled); err != nil {
		return nil, appErrors.DatabaseError("Failed to toggle product status").WithError(err)
	}

	product.BarcodeEnabled = !product.BarcodeEnabled

	return product, nil
}
