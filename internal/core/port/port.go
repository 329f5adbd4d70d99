package port

import (
	"context"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
)

// Inbound ports, implemented by the core services.

type CatalogProvider interface {
	ListProducts(context.Context, domain.FilterSpec) ([]domain.Product, error)
	GetProduct(context.Context, int64) (domain.Product, error)
	FeaturedProducts(context.Context) ([]domain.Product, error)
	ListCategories(context.Context) ([]domain.Category, error)
	ListBrands(context.Context) ([]domain.Brand, error)
}

type ProductGetter interface {
	GetProduct(context.Context, int64) (domain.Product, error)
}

type CartOperator interface {
	GetCart(ctx context.Context, sessionID string) (domain.CartSnapshot, error)
	AddItem(ctx context.Context, sessionID string, productID int64) (domain.CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (domain.CartSnapshot, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartSnapshot, error)
	ClearCart(ctx context.Context, sessionID string) (domain.CartSnapshot, error)
}

type SessionIssuer interface {
	IssueSession() string
}

type AdminOperator interface {
	AdminProducts(context.Context) ([]domain.Product, error)
	AdminCategories(context.Context) ([]domain.Category, error)
	AdminBrands(context.Context) ([]domain.Brand, error)
	CreateProduct(context.Context, domain.ProductInput) (int64, error)
	DeleteProduct(context.Context, int64) error
	CreateCategory(context.Context, domain.CategoryInput) (int64, error)
	DeleteCategory(context.Context, int64) error
	CreateBrand(context.Context, domain.BrandInput) (int64, error)
	DeleteBrand(context.Context, int64) error
	ProductPopularity(context.Context, int64) (int64, error)
}

type ContactSubmitter interface {
	SubmitMessage(context.Context, domain.ContactMessage) error
}

// Outbound ports, implemented by the adapters.

type CatalogStorage interface {
	ReadProducts(context.Context) ([]domain.Product, error)
	ReadCategories(context.Context) ([]domain.Category, error)
	ReadBrands(context.Context) ([]domain.Brand, error)
}

type ProductsWriter interface {
	StoreProduct(context.Context, domain.ProductInput) (int64, error)
	DeleteProduct(context.Context, int64) error
}

type CategoriesWriter interface {
	StoreCategory(context.Context, domain.CategoryInput) (int64, error)
	DeleteCategory(context.Context, int64) error
}

type BrandsWriter interface {
	StoreBrand(context.Context, domain.BrandInput) (int64, error)
	DeleteBrand(context.Context, int64) error
}

type ContactStorage interface {
	StoreMessage(context.Context, domain.ContactMessage) error
}

type CartEventsProducer interface {
	ProduceCartEvent(context.Context, domain.CartEvent) error
}

type PopularityReader interface {
	AddToCartCount(context.Context, int64) (int64, error)
}
