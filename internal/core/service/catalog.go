package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var ErrCatalogNotLoaded = errors.New("catalog is not loaded")

var _ port.CatalogProvider = (*CatalogService)(nil)

// A CatalogService keeps the product catalog in memory and answers
// storefront reads against it. Load replaces the whole catalog, so
// admin mutations become visible by reloading.
type CatalogService struct {
	storage port.CatalogStorage

	mu      sync.RWMutex
	catalog *domain.Catalog
}

func NewCatalogService(storage port.CatalogStorage) *CatalogService {
	return &CatalogService{storage: storage}
}

// Load reads products, categories and brands from storage and swaps
// the in-memory catalog. A product referencing an unknown category
// fails the whole load.
func (s *CatalogService) Load(ctx context.Context) error {
	const op = "CatalogService.Load"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.storage.ReadProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	categories, err := s.storage.ReadCategories(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	brands, err := s.storage.ReadBrands(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	catalog, err := domain.NewCatalog(products, categories, brands)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) ListProducts(
	ctx context.Context, spec domain.FilterSpec,
) ([]domain.Product, error) {
	const op = "CatalogService.ListProducts"

	c, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return domain.FilterProducts(c.Products(), spec), nil
}

func (s *CatalogService) GetProduct(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "CatalogService.GetProduct"

	c, err := s.current(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := c.ProductByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: product %d: %w", op, id, domain.ErrNotFound,
		)
	}
	return p, nil
}

func (s *CatalogService) FeaturedProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "CatalogService.FeaturedProducts"

	c, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.Featured(), nil
}

func (s *CatalogService) ListCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CatalogService.ListCategories"

	c, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.Categories(), nil
}

func (s *CatalogService) ListBrands(
	ctx context.Context,
) ([]domain.Brand, error) {
	const op = "CatalogService.ListBrands"

	c, err := s.current(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c.Brands(), nil
}

func (s *CatalogService) current(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, ErrCatalogNotLoaded
	}
	return s.catalog, nil
}
