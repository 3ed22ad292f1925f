package cache

import (
	"context"
	"errors"
	"time"

	"github.com/shoplite/shoplite-backend/internal/models"
)

// SessionStore is the persistent mirror of the customer's in-progress
// session: three keys per session (user, cart, shop), written through on
// every mutation. Storing nil removes the corresponding key.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.Session) error
	SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error
	SaveShop(ctx context.Context, sessionID string, shop *models.Shop) error

	LoadSession(ctx context.Context, sessionID string) (*models.Session, error)
	LoadCart(ctx context.Context, sessionID string) (*models.Cart, error)
	LoadShop(ctx context.Context, sessionID string) (*models.Shop, error)

	// Destroy wipes the session's entire key namespace, not just the three
	// known keys.
	Destroy(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	cache Cache
	ttl   time.Duration
}

func NewSessionStore(cache Cache, ttl time.Duration) SessionStore {
	return &sessionStore{cache: cache, ttl: ttl}
}

func (s *sessionStore) key(sessionID, suffix string) string {
	return Key(SessionKeyPrefix, sessionID, suffix)
}

func (s *sessionStore) SaveSession(ctx context.Context, session *models.Session) error {
	if session == nil {
		return nil
	}

	return s.cache.Set(ctx, s.key(session.SessionID, UserKeySuffix), session, s.ttl)
}

func (s *sessionStore) SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	if cart == nil {
		return s.cache.Delete(ctx, s.key(sessionID, CartKeySuffix))
	}

	return s.cache.Set(ctx, s.key(sessionID, CartKeySuffix), cart, s.ttl)
}

func (s *sessionStore) SaveShop(ctx context.Context, sessionID string, shop *models.Shop) error {
	if shop == nil {
		return s.cache.Delete(ctx, s.key(sessionID, ShopKeySuffix))
	}

	return s.cache.Set(ctx, s.key(sessionID, ShopKeySuffix), shop, s.ttl)
}

// LoadSession treats a payload that cannot be decoded the same as an expired
// session. Transport errors are passed through.
func (s *sessionStore) LoadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session := &models.Session{}

	found, err := s.cache.Get(ctx, s.key(sessionID, UserKeySuffix), session)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			return nil, nil
		}

		return nil, err
	}

	if !found {
		return nil, nil
	}

	return session, nil
}

// LoadCart never fails on a malformed cached payload: a cart that cannot be
// decoded is treated as no cart at all. A transport error is passed through
// so callers do not mistake an unreachable cache for an empty cart.
func (s *sessionStore) LoadCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart := &models.Cart{}

	found, err := s.cache.Get(ctx, s.key(sessionID, CartKeySuffix), cart)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			return &models.Cart{}, nil
		}

		return nil, err
	}

	if !found {
		return &models.Cart{}, nil
	}

	return cart, nil
}

func (s *sessionStore) LoadShop(ctx context.Context, sessionID string) (*models.Shop, error) {
	shop := &models.Shop{}

	found, err := s.cache.Get(ctx, s.key(sessionID, ShopKeySuffix), shop)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			return nil, nil
		}

		return nil, err
	}

	if !found {
		return nil, nil
	}

	return shop, nil
}

func (s *sessionStore) Destroy(ctx context.Context, sessionID string) error {
	return s.cache.DeletePrefix(ctx, Key(SessionKeyPrefix, sessionID)+":")
}
