package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var ErrInvalidInput = errors.New("invalid input")

var _ port.AdminOperator = (*AdminService)(nil)

// An AdminService serves the admin panel: table reads and writes
// against storage, with a catalog reload after every mutation so
// the storefront sees the change.
type AdminService struct {
	storage    port.CatalogStorage
	products   port.ProductsWriter
	categories port.CategoriesWriter
	brands     port.BrandsWriter
	popularity port.PopularityReader
	catalog    *CatalogService
}

func NewAdminService(
	storage port.CatalogStorage,
	products port.ProductsWriter,
	categories port.CategoriesWriter,
	brands port.BrandsWriter,
	popularity port.PopularityReader,
	catalog *CatalogService,
) *AdminService {
	return &AdminService{
		storage:    storage,
		products:   products,
		categories: categories,
		brands:     brands,
		popularity: popularity,
		catalog:    catalog,
	}
}

// AdminProducts reads the product rows straight from storage, not
// from the in-memory catalog, so the panel always shows the table
// as persisted.
func (s *AdminService) AdminProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "AdminService.AdminProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storage.ReadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s *AdminService) AdminCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "AdminService.AdminCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.storage.ReadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s *AdminService) AdminBrands(
	ctx context.Context,
) ([]domain.Brand, error) {
	const op = "AdminService.AdminBrands"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bs, err := s.storage.ReadBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bs, nil
}

func (s *AdminService) CreateProduct(
	ctx context.Context, in domain.ProductInput,
) (int64, error) {
	const op = "AdminService.CreateProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateProductInput(in); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.products.StoreProduct(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int64) error {
	const op = "AdminService.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *AdminService) CreateCategory(
	ctx context.Context, in domain.CategoryInput,
) (int64, error) {
	const op = "AdminService.CreateCategory"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if in.Name == "" {
		return 0, fmt.Errorf("%s: name is required: %w", op, ErrInvalidInput)
	}

	id, err := s.categories.StoreCategory(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	const op = "AdminService.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *AdminService) CreateBrand(
	ctx context.Context, in domain.BrandInput,
) (int64, error) {
	const op = "AdminService.CreateBrand"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if in.Name == "" {
		return 0, fmt.Errorf("%s: name is required: %w", op, ErrInvalidInput)
	}

	id, err := s.brands.StoreBrand(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *AdminService) DeleteBrand(ctx context.Context, id int64) error {
	const op = "AdminService.DeleteBrand"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.brands.DeleteBrand(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *AdminService) ProductPopularity(
	ctx context.Context, productID int64,
) (int64, error) {
	const op = "AdminService.ProductPopularity"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := s.popularity.AddToCartCount(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// validateProductInput rejects negative price or stock and a
// non-positive sale price. The sale price may still exceed the
// regular price, that relation stays a data-entry assumption.
func validateProductInput(in domain.ProductInput) error {
	if in.Name == "" {
		return fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("price is negative: %w", ErrInvalidInput)
	}
	if in.SalePrice != nil && *in.SalePrice <= 0 {
		return fmt.Errorf("sale price is not positive: %w", ErrInvalidInput)
	}
	if in.StockCount < 0 {
		return fmt.Errorf("stock count is negative: %w", ErrInvalidInput)
	}
	if in.CategoryID == 0 {
		return fmt.Errorf("category is required: %w", ErrInvalidInput)
	}
	return nil
}
