package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	cartstate "github.com/shoplite/shoplite-backend/internal/cart"
	"github.com/shoplite/shoplite-backend/internal/cache"
	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
)

type SessionService interface {
	LoginShop(ctx context.Context, shopCode string) (*models.SessionState, error)
	Logout(ctx context.Context, sessionID string) error
	Restore(ctx context.Context, sessionID string) (*models.SessionState, error)
}

type sessionService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	sessions    cache.SessionStore
}

func NewSessionService(shopRepo repository.ShopRepository, productRepo repository.ProductRepository, sessions cache.SessionStore) SessionService {
	return &sessionService{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		sessions:    sessions,
	}
}

// LoginShop starts a fresh session for the shop. Any prior cart state is
// discarded: entering a shop always begins with an empty cart, including on
// re-entry.
func (s *sessionService) LoginShop(ctx context.Context, shopCode string) (*models.SessionState, error) {

	shop, err := s.shopRepo.GetShopByCode(ctx, strings.TrimSpace(shopCode))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Shop not found").WithError(err)
		}

		return nil, appErrors.ConnectionFailedError("Could not reach the store backend").WithError(err)
	}

	session := &models.Session{
		ID:         uuid.New(),
		SessionID:  uuid.NewString(),
		ShopID:     shop.ID,
		CartStatus: models.CartStatusActive,
		CreatedAt:  time.Now(),
	}

	emptyCart := &models.Cart{}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the session").WithError(err)
	}

	if err := s.sessions.SaveShop(ctx, session.SessionID, shop); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the session").WithError(err)
	}

	if err := s.sessions.SaveCart(ctx, session.SessionID, emptyCart); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the session").WithError(err)
	}

	return &models.SessionState{Session: session, Shop: shop, Cart: emptyCart}, nil
}

// Logout wipes the session's whole cache namespace, not just the known keys.
func (s *sessionService) Logout(ctx context.Context, sessionID string) error {

	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		return appErrors.ConnectionFailedError("Could not clear the session").WithError(err)
	}

	return nil
}

// Restore rebuilds the session state from the cache, reconciling the cached
// cart against the freshly fetched catalog: lines whose product no longer
// exists are dropped, and a cart that cannot be decoded counts as empty.
func (s *sessionService) Restore(ctx context.Context, sessionID string) (*models.SessionState, error) {

	session, err := s.sessions.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	if session == nil {
		return nil, appErrors.UnauthorizedError("Session not found")
	}

	shop, err := s.sessions.LoadShop(ctx, sessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	current, err := s.sessions.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not reach the session cache").WithError(err)
	}

	catalog, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not fetch the product catalog").WithError(err)
	}

	reconciled := cartstate.Reconcile(*current, catalog)

	if err := s.sessions.SaveCart(ctx, sessionID, &reconciled); err != nil {
		return nil, appErrors.ConnectionFailedError("Could not persist the session").WithError(err)
	}

	return &models.SessionState{Session: session, Shop: shop, Cart: &reconciled}, nil
}
