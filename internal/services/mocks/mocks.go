package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoplite/shoplite-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) LoginShop(ctx context.Context, shopCode string) (*models.SessionState, error) {
	args := m.Called(ctx, shopCode)

	if state, ok := args.Get(0).(*models.SessionState); ok {
		return state, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}

func (m *MockSessionService) Restore(ctx context.Context, sessionID string) (*models.SessionState, error) {
	args := m.Called(ctx, sessionID)

	if state, ok := args.Get(0).(*models.SessionState); ok {
		return state, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, session *models.Session, rawCode string) (*models.Cart, error) {
	args := m.Called(ctx, session, rawCode)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, session *models.Session, productID int64, delta int) (*models.Cart, error) {
	args := m.Called(ctx, session, productID, delta)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, session *models.Session, customerName string) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, session, customerName)

	if resp, ok := args.Get(0).(*models.CheckoutResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) ConfirmPayment(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, shopID int64, status *models.OrderStatus, page, size int) ([]models.Order, int, error) {
	args := m.Called(ctx, shopID, status, page, size)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, orderID, target)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderService) Analytics(ctx context.Context, shopID int64) (*models.ShopAnalytics, error) {
	args := m.Called(ctx, shopID)

	if analytics, ok := args.Get(0).(*models.ShopAnalytics); ok {
		return analytics, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)

	if products, ok := args.Get(0).([]*models.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductService) ToggleStatus(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminLoginResponse, error) {
	args := m.Called(ctx, req)

	if resp, ok := args.Get(0).(*models.AdminLoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

type MockShopLister struct {
	mock.Mock
}

func (m *MockShopLister) ListShops(ctx context.Context) ([]*models.Shop, error) {
	args := m.Called(ctx)

	if shops, ok := args.Get(0).([]*models.Shop); ok {
		return shops, args.Error(1)
	}

	return nil, args.Error(1)
}
