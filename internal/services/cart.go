package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	cartstate "github.com/shoplite/shoplite-backend/internal/cart"
	"github.com/shoplite/shoplite-backend/internal/cache"
	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, session *models.Session, rawCode string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, session *models.Session, productID int64, delta int) (*models.Cart, error)
}

type cartService struct {
	productRepo repository.ProductRepository
	sessions    cache.SessionStore
}

func NewCartService(productRepo repository.ProductRepository, sessions cache.SessionStore) CartService {
	return &cartService{productRepo: productRepo, sessions: sessions}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	current, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	return current, nil
}

// AddItem validates the scanned or typed code against the live catalog and
// adds one unit to the cart. Stock is also enforced per unit: the cart can
// never hold more of a product than the shop has on the shelf.
func (s *cartService) AddItem(ctx context.Context, session *models.Session, rawCode string) (*models.Cart, error) {

	code := cartstate.NormalizeCode(rawCode)
	if code == "" {
		return nil, appErrors.EmptyCodeError("Please enter a product code")
	}

	product, err := s.productRepo.GetProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.ConnectionFailedError("Could not reach the store backend").WithError(err)
	}

	if !product.BarcodeEnabled {
		return nil, appErrors.ProductDisabledError("This product is not available for self-checkout")
	}

	if product.Stock <= 0 {
		return nil, appErrors.OutOfStockError("Product is out of stock")
	}

	current, err := s.sessions.LoadCart(ctx, session.SessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	if cartstate.Quantity(*current, product.ID)+1 > product.Stock {
		return nil, appErrors.OutOfStockError(fmt.Sprintf("Only %d left in stock", product.Stock))
	}

	updated := cartstate.Add(*current, product)

	if err := s.sessions.SaveCart(ctx, session.SessionID, &updated); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the cart").WithError(err)
	}

	return &updated, nil
}

// UpdateQuantity applies a delta to a cart line, clamped at zero; a line
// that reaches zero is removed. Unknown product IDs are a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, session *models.Session, productID int64, delta int) (*models.Cart, error) {

	current, err := s.sessions.LoadCart(ctx, session.SessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	updated := cartstate.UpdateQuantity(*current, productID, delta)

	if err := s.sessions.SaveCart(ctx, session.SessionID, &updated); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the cart").WithError(err)
	}

	return &updated, nil
}
