package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	products   []domain.Product
	categories []domain.Category
	brands     []domain.Brand
	readErr    error
}

func (s *fakeStorage) ReadProducts(context.Context) ([]domain.Product, error) {
	return s.products, s.readErr
}

func (s *fakeStorage) ReadCategories(context.Context) ([]domain.Category, error) {
	return s.categories, s.readErr
}

func (s *fakeStorage) ReadBrands(context.Context) ([]domain.Brand, error) {
	return s.brands, s.readErr
}

type fakeEvents struct {
	produced []domain.CartEvent
	err      error
}

func (e *fakeEvents) ProduceCartEvent(
	_ context.Context, evt domain.CartEvent,
) error {
	if e.err != nil {
		return e.err
	}
	e.produced = append(e.produced, evt)
	return nil
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		products: []domain.Product{
			{ID: 1, Name: "Organic Apples", Price: 1.20,
				Category: "Fruits & Vegetables", Organic: true},
			{ID: 2, Name: "Ribeye Steak", Price: 5.50,
				Category: "Meat & Seafood"},
			{ID: 3, Name: "Cheddar Cheese", Price: 10, Sale: true,
				SalePrice: 8, Category: "Dairy"},
		},
		categories: []domain.Category{
			{ID: 1, Name: "Fruits & Vegetables"},
			{ID: 2, Name: "Meat & Seafood"},
			{ID: 3, Name: "Dairy"},
		},
	}
}

func loadedCatalog(t *testing.T, storage *fakeStorage) *service.CatalogService {
	t.Helper()
	catalog := service.NewCatalogService(storage)
	require.NoError(t, catalog.Load(t.Context()))
	return catalog
}

func TestCatalogService(t *testing.T) {
	t.Run("NotLoaded", func(t *testing.T) {
		catalog := service.NewCatalogService(newFakeStorage())

		_, err := catalog.ListProducts(t.Context(), domain.FilterSpec{})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrCatalogNotLoaded)
	})

	t.Run("LoadFailsOnUnknownCategory", func(t *testing.T) {
		storage := newFakeStorage()
		storage.products[0].Category = "Charcuterie"

		catalog := service.NewCatalogService(storage)
		err := catalog.Load(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})

	t.Run("ListProductsAppliesFilter", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())

		got, err := catalog.ListProducts(t.Context(), domain.FilterSpec{
			OrganicOnly: true,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("GetProductNotFound", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())

		_, err := catalog.GetProduct(t.Context(), 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ReloadPicksUpChanges", func(t *testing.T) {
		storage := newFakeStorage()
		catalog := loadedCatalog(t, storage)

		storage.products = append(storage.products, domain.Product{
			ID: 4, Name: "Sourdough", Price: 3, Category: "Dairy",
		})
		require.NoError(t, catalog.Load(t.Context()))

		_, err := catalog.GetProduct(t.Context(), 4)
		require.NoError(t, err)
	})
}

func TestCartService(t *testing.T) {
	t.Run("AddUnknownProduct", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())
		cart := service.NewCartService(catalog, &fakeEvents{})

		_, err := cart.AddItem(t.Context(), "s1", 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("AddRemoveSetClear", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())
		cart := service.NewCartService(catalog, &fakeEvents{})
		ctx := t.Context()

		snap, err := cart.AddItem(ctx, "s1", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.TotalItems)

		snap, err = cart.AddItem(ctx, "s1", 3)
		require.NoError(t, err)
		assert.Equal(t, 2, snap.TotalItems)
		assert.InDelta(t, 1.20+8, snap.TotalPrice, 1e-9)

		snap, err = cart.SetQuantity(ctx, "s1", 3, 4)
		require.NoError(t, err)
		assert.Equal(t, 5, snap.TotalItems)

		snap, err = cart.RemoveItem(ctx, "s1", 1)
		require.NoError(t, err)
		assert.Equal(t, 4, snap.TotalItems)
		require.Len(t, snap.Lines, 1)

		snap, err = cart.ClearCart(ctx, "s1")
		require.NoError(t, err)
		assert.Zero(t, snap.TotalItems)
		assert.Empty(t, snap.Lines)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())
		cart := service.NewCartService(catalog, &fakeEvents{})
		ctx := t.Context()

		_, err := cart.AddItem(ctx, "s1", 1)
		require.NoError(t, err)

		snap, err := cart.GetCart(ctx, "s2")
		require.NoError(t, err)
		assert.Zero(t, snap.TotalItems)
	})

	t.Run("EmitsActivityEvents", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())
		events := &fakeEvents{}
		cart := service.NewCartService(catalog, events)
		ctx := t.Context()

		_, err := cart.AddItem(ctx, "s1", 3)
		require.NoError(t, err)
		_, err = cart.RemoveItem(ctx, "s1", 3)
		require.NoError(t, err)

		require.Len(t, events.produced, 2)
		assert.Equal(t, domain.CartActionAdded, events.produced[0].Action)
		assert.InDelta(t, 8, events.produced[0].UnitPrice, 1e-9)
		assert.Equal(t, domain.CartActionRemoved, events.produced[1].Action)
	})

	t.Run("ProduceFailureDoesNotFailAction", func(t *testing.T) {
		catalog := loadedCatalog(t, newFakeStorage())
		events := &fakeEvents{err: errors.New("broker is down")}
		cart := service.NewCartService(catalog, events)

		snap, err := cart.AddItem(t.Context(), "s1", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.TotalItems)
	})

	t.Run("IssueSessionIsUnique", func(t *testing.T) {
		cart := service.NewCartService(nil, nil)
		assert.NotEqual(t, cart.IssueSession(), cart.IssueSession())
	})
}
