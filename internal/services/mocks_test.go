package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) GetShopByCode(ctx context.Context, code string) (*models.Shop, error) {
	args := m.Called(ctx, code)

	if shop, ok := args.Get(0).(*models.Shop); ok {
		return shop, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockShopRepo) ListShops(ctx context.Context) ([]*models.Shop, error) {
	args := m.Called(ctx)

	if shops, ok := args.Get(0).([]*models.Shop); ok {
		return shops, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	args := m.Called(ctx, code)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *mockProductRepo) SetBarcodeEnabled(ctx context.Context, id int64, enabled bool) error {
	args := m.Called(ctx, id, enabled)

	return args.Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *mockOrderRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListOrdersByShop(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, shopID, status, page, size)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *mockOrderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepo) GetShopAnalytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error) {
	args := m.Called(ctx, shopID)

	if analytics, ok := args.Get(0).(*models.ShopAnalytics); ok {
		return analytics, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) SaveSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *mockSessionStore) SaveCart(ctx context.Context, sessionID string, cart *models.Cart) error {
	args := m.Called(ctx, sessionID, cart)

	return args.Error(0)
}

func (m *mockSessionStore) SaveShop(ctx context.Context, sessionID string, shop *models.Shop) error {
	args := m.Called(ctx, sessionID, shop)

	return args.Error(0)
}

func (m *mockSessionStore) LoadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)

	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) LoadCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) LoadShop(ctx context.Context, sessionID string) (*models.Shop, error) {
	args := m.Called(ctx, sessionID)

	if shop, ok := args.Get(0).(*models.Shop); ok {
		return shop, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

type mockRateLimiter struct {
	mock.Mock
}

func (m *mockRateLimiter) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}
