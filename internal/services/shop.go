package service

import (
	"context"

	appErrors "github.com/shoplite/shoplite-backend/internal/errors"
	"github.com/shoplite/shoplite-backend/internal/models"
	repository "github.com/shoplite/shoplite-backend/internal/repositories"
)

type ShopLister interface {
	ListShops(ctx context.Context) ([]*models.Shop, error)
}

type shopService struct {
	repo repository.ShopRepository
}

func NewShopService(repo repository.ShopRepository) ShopLister {
	return &shopService{repo: repo}
}

func (s *shopService) ListShops(ctx context.Context) ([]*models.Shop, error) {

	shops, err := s.repo.ListShops(ctx)
	if err != nil {
		return nil, appErrors.ConnectionFailedError("Could not fetch the shop list").WithError(err)
	}

	return shops, nil
}
