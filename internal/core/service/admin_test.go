package service_test

import (
	"context"
	"testing"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductsWriter struct {
	storage *fakeStorage
	nextID  int64
}

func (w *fakeProductsWriter) StoreProduct(
	_ context.Context, in domain.ProductInput,
) (int64, error) {
	w.nextID++

	var categoryName string
	for _, c := range w.storage.categories {
		if c.ID == in.CategoryID {
			categoryName = c.Name
		}
	}

	p := domain.Product{
		ID:          w.nextID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.ImageURL,
		Category:    categoryName,
		InStock:     in.StockCount > 0,
		Organic:     in.IsOrganic,
		Featured:    in.IsFeatured,
	}
	if in.SalePrice != nil {
		p.Sale = true
		p.SalePrice = *in.SalePrice
	}

	w.storage.products = append(w.storage.products, p)
	return w.nextID, nil
}

func (w *fakeProductsWriter) DeleteProduct(
	_ context.Context, id int64,
) error {
	for i, p := range w.storage.products {
		if p.ID == id {
			w.storage.products = append(
				w.storage.products[:i], w.storage.products[i+1:]...,
			)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCategoriesWriter struct{}

func (fakeCategoriesWriter) StoreCategory(
	context.Context, domain.CategoryInput,
) (int64, error) {
	return 1, nil
}

func (fakeCategoriesWriter) DeleteCategory(context.Context, int64) error {
	return nil
}

type fakeBrandsWriter struct{}

func (fakeBrandsWriter) StoreBrand(
	context.Context, domain.BrandInput,
) (int64, error) {
	return 1, nil
}

func (fakeBrandsWriter) DeleteBrand(context.Context, int64) error {
	return nil
}

type fakePopularity struct {
	counts map[int64]int64
}

func (p fakePopularity) AddToCartCount(
	_ context.Context, productID int64,
) (int64, error) {
	return p.counts[productID], nil
}

func newAdminService(
	t *testing.T, storage *fakeStorage,
) (*service.AdminService, *service.CatalogService) {
	t.Helper()
	catalog := loadedCatalog(t, storage)
	admin := service.NewAdminService(
		storage,
		&fakeProductsWriter{storage: storage, nextID: 100},
		fakeCategoriesWriter{},
		fakeBrandsWriter{},
		fakePopularity{counts: map[int64]int64{3: 7}},
		catalog,
	)
	return admin, catalog
}

func TestAdminService(t *testing.T) {
	t.Run("CreateProductReloadsCatalog", func(t *testing.T) {
		storage := newFakeStorage()
		admin, catalog := newAdminService(t, storage)

		id, err := admin.CreateProduct(t.Context(), domain.ProductInput{
			Name:       "Sourdough",
			Price:      3.50,
			CategoryID: 3,
			StockCount: 10,
		})
		require.NoError(t, err)

		p, err := catalog.GetProduct(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, "Sourdough", p.Name)
		assert.True(t, p.InStock)
	})

	t.Run("CreateProductValidation", func(t *testing.T) {
		storage := newFakeStorage()
		admin, _ := newAdminService(t, storage)

		badInputs := []domain.ProductInput{
			{Name: "", Price: 1, CategoryID: 1},
			{Name: "Milk", Price: -1, CategoryID: 1},
			{Name: "Milk", Price: 1, CategoryID: 0},
			{Name: "Milk", Price: 1, CategoryID: 1, StockCount: -1},
		}
		for _, in := range badInputs {
			_, err := admin.CreateProduct(t.Context(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		}
	})

	t.Run("NonPositiveSalePriceRejected", func(t *testing.T) {
		storage := newFakeStorage()
		admin, _ := newAdminService(t, storage)

		salePrice := 0.0
		_, err := admin.CreateProduct(t.Context(), domain.ProductInput{
			Name: "Milk", Price: 2, CategoryID: 2, SalePrice: &salePrice,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("DeleteProductReloadsCatalog", func(t *testing.T) {
		storage := newFakeStorage()
		admin, catalog := newAdminService(t, storage)

		require.NoError(t, admin.DeleteProduct(t.Context(), 1))

		_, err := catalog.GetProduct(t.Context(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ProductPopularity", func(t *testing.T) {
		storage := newFakeStorage()
		admin, _ := newAdminService(t, storage)

		n, err := admin.ProductPopularity(t.Context(), 3)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)

		n, err = admin.ProductPopularity(t.Context(), 1)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

type fakeContactStorage struct {
	stored []domain.ContactMessage
}

func (s *fakeContactStorage) StoreMessage(
	_ context.Context, msg domain.ContactMessage,
) error {
	s.stored = append(s.stored, msg)
	return nil
}

func TestContactService(t *testing.T) {
	t.Run("StoresMessage", func(t *testing.T) {
		storage := &fakeContactStorage{}
		contact := service.NewContactService(storage)

		err := contact.SubmitMessage(t.Context(), domain.ContactMessage{
			Name: "Dana", Email: "dana@example.com",
			Subject: "Delivery", Message: "When do you deliver?",
		})
		require.NoError(t, err)
		require.Len(t, storage.stored, 1)
	})

	t.Run("RequiredFields", func(t *testing.T) {
		contact := service.NewContactService(&fakeContactStorage{})

		err := contact.SubmitMessage(t.Context(), domain.ContactMessage{
			Name: "Dana",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}
