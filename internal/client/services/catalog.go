package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/logging"
)

// Filter narrows a catalog listing. Zero-value fields are omitted from the
// query string.
type Filter struct {
	Category string
	Size     string
	Color    string
	Price    string
}

func (f Filter) values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Size != "" {
		v.Set("size", f.Size)
	}
	if f.Color != "" {
		v.Set("color", f.Color)
	}
	if f.Price != "" {
		v.Set("price", f.Price)
	}
	return v
}

// CatalogService exposes the read-only product surfaces: listings,
// banners, distinct inventory values for filter controls, and the user
// profile.
type CatalogService struct {
	gateway   *api.Gateway
	endpoints *api.Endpoints
	log       logging.Logger
}

func NewCatalogService(gw *api.Gateway, endpoints *api.Endpoints, log logging.Logger) *CatalogService {
	return &CatalogService{gateway: gw, endpoints: endpoints, log: log}
}

func (s *CatalogService) List(ctx context.Context, f Filter) ([]models.Product, error) {
	var resp api.Envelope[[]models.Product]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.Products(f.values()), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return resp.Data, nil
}

// Get fetches a single product with its full inventory list.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Product, error) {
	var resp api.Envelope[models.Product]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.Product(id), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return &resp.Data, nil
}

func (s *CatalogService) Banners(ctx context.Context) ([]models.Banner, error) {
	var resp api.Envelope[[]models.Banner]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.Banners(), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return resp.Data, nil
}

// UniqueInventory returns the distinct sizes and colors across the
// catalog, used to build filter menus.
func (s *CatalogService) UniqueInventory(ctx context.Context) (*models.UniqueInventory, error) {
	var resp api.Envelope[models.UniqueInventory]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.UniqueInventory(), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return &resp.Data, nil
}

func (s *CatalogService) Profile(ctx context.Context) (*models.Profile, error) {
	var resp api.Envelope[models.Profile]
	status, err := s.gateway.JSON(ctx, http.MethodGet, s.endpoints.Profile(), nil, &resp, nil)
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}
	return &resp.Data, nil
}
