package handlers

import (
	"net/http"

	service "github.com/shoplite/shoplite-backend/internal/services"
	"github.com/shoplite/shoplite-backend/internal/utils/response"
)

// CatalogHandler serves the read-only shop and product listings the
// storefront loads at startup.
type CatalogHandler struct {
	productService service.ProductService
	shopLister     service.ShopLister
}

func NewCatalogHandler(productService service.ProductService, shopLister service.ShopLister) *CatalogHandler {
	return &CatalogHandler{
		productService: productService,
		shopLister:     shopLister,
	}
}

func (h *CatalogHandler) ListShops() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shops, err := h.shopLister.ListShops(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shops)

	}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.ListProducts(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)

	}
}
