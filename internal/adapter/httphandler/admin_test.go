package httphandler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sarhan619/grocery-app/internal/adapter/httphandler"
	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	products   []domain.Product
	categories []domain.Category
	brands     []domain.Brand
	popularity map[int64]int64
	nextID     int64
}

func newFakeAdmin() *fakeAdmin {
	return &fakeAdmin{
		products: []domain.Product{
			{ID: 1, Name: "Organic Apples", Price: 1.20,
				Category: "Fruits & Vegetables", Organic: true},
		},
		categories: []domain.Category{{ID: 1, Name: "Fruits & Vegetables"}},
		brands:     []domain.Brand{{ID: 1, Name: "Green Farm", CategoryID: 1}},
		popularity: map[int64]int64{1: 12},
		nextID:     100,
	}
}

func (f *fakeAdmin) AdminProducts(context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeAdmin) AdminCategories(context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeAdmin) AdminBrands(context.Context) ([]domain.Brand, error) {
	return f.brands, nil
}

func (f *fakeAdmin) CreateProduct(
	_ context.Context, in domain.ProductInput,
) (int64, error) {
	if in.Name == "" || in.Price < 0 || in.CategoryID == 0 {
		return 0, fmt.Errorf("product: %w", service.ErrInvalidInput)
	}
	f.nextID++
	f.products = append(f.products, domain.Product{
		ID: f.nextID, Name: in.Name, Price: in.Price,
	})
	return f.nextID, nil
}

func (f *fakeAdmin) DeleteProduct(_ context.Context, id int64) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeAdmin) CreateCategory(
	_ context.Context, in domain.CategoryInput,
) (int64, error) {
	if in.Name == "" {
		return 0, fmt.Errorf("category: %w", service.ErrInvalidInput)
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAdmin) DeleteCategory(context.Context, int64) error { return nil }

func (f *fakeAdmin) CreateBrand(
	_ context.Context, in domain.BrandInput,
) (int64, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return 0, fmt.Errorf("brand: %w", service.ErrInvalidInput)
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAdmin) DeleteBrand(context.Context, int64) error { return nil }

func (f *fakeAdmin) ProductPopularity(
	_ context.Context, id int64,
) (int64, error) {
	return f.popularity[id], nil
}

func newAdminTestServer(t *testing.T) (*httptest.Server, *fakeAdmin) {
	t.Helper()

	admin := newFakeAdmin()
	mux := http.NewServeMux()
	httphandler.RegisterAdmin(mux, admin)

	srv := httptest.NewServer(httphandler.AllowJSON(mux))
	t.Cleanup(srv.Close)
	return srv, admin
}

func TestAdminHandler(t *testing.T) {
	srv, admin := newAdminTestServer(t)
	client := srv.Client()

	t.Run("ListProducts", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/v1/admin/products")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got []httphandler.Product
		decodeJSON(t, res, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Organic Apples", got[0].Name)
	})

	t.Run("CreateProduct", func(t *testing.T) {
		res, err := http.Post(
			srv.URL+"/v1/admin/products", "application/json",
			strings.NewReader(
				`{"name":"Sourdough","price":3.5,"category_id":1,"stock_count":10}`,
			),
		)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var got httphandler.Created
		decodeJSON(t, res, &got)
		assert.NotZero(t, got.ID)
	})

	t.Run("CreateProductInvalidInput", func(t *testing.T) {
		res, err := http.Post(
			srv.URL+"/v1/admin/products", "application/json",
			strings.NewReader(`{"name":"","price":3.5,"category_id":1}`),
		)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("DeleteProduct", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodDelete, srv.URL+"/v1/admin/products/1", nil,
		)
		require.NoError(t, err)
		res, err := client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
		assert.Empty(t, admin.products)
	})

	t.Run("DeleteProductNotFound", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodDelete, srv.URL+"/v1/admin/products/42", nil,
		)
		require.NoError(t, err)
		res, err := client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Popularity", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/v1/admin/products/1/popularity")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got httphandler.Popularity
		decodeJSON(t, res, &got)
		assert.Equal(t, int64(1), got.ProductID)
		assert.Equal(t, int64(12), got.AddToCartCount)
	})

	t.Run("CreateCategory", func(t *testing.T) {
		res, err := http.Post(
			srv.URL+"/v1/admin/categories", "application/json",
			strings.NewReader(`{"name":"Bakery","description":"Fresh bread"}`),
		)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusCreated, res.StatusCode)
	})

	t.Run("CreateBrandInvalidInput", func(t *testing.T) {
		res, err := http.Post(
			srv.URL+"/v1/admin/brands", "application/json",
			strings.NewReader(`{"name":"Green Farm"}`),
		)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("InvalidPathID", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodDelete, srv.URL+"/v1/admin/brands/abc", nil,
		)
		require.NoError(t, err)
		res, err := client.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
