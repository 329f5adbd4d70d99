package httphandler

import "github.com/Sarhan619/grocery-app/internal/core/domain"

type (
	Product struct {
		ID          int64    `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Image       string   `json:"image"`
		Category    string   `json:"category"`
		Brand       string   `json:"brand,omitempty"`
		Sale        bool     `json:"sale,omitempty"`
		SalePrice   *float64 `json:"sale_price,omitempty"`
		InStock     bool     `json:"in_stock"`
		Featured    bool     `json:"featured,omitempty"`
		Organic     bool     `json:"organic,omitempty"`
	}

	Category struct {
		ID           int64  `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description,omitempty"`
		Image        string `json:"image"`
		ProductCount int    `json:"product_count"`
	}

	Brand struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		CategoryID int64  `json:"category_id"`
	}

	CartLine struct {
		Product   Product `json:"product"`
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"line_total"`
	}

	// Order summary: flat 7% tax, free shipping.
	Cart struct {
		SessionID  string     `json:"session_id"`
		Lines      []CartLine `json:"lines"`
		TotalItems int        `json:"total_items"`
		Subtotal   float64    `json:"subtotal"`
		Tax        float64    `json:"tax"`
		Total      float64    `json:"total"`
	}

	AddCartItem struct {
		ProductID int64 `json:"product_id"`
	}

	SetCartQuantity struct {
		Quantity int `json:"quantity"`
	}

	ContactMessage struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}

	ProductInput struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		SalePrice   *float64 `json:"sale_price,omitempty"`
		ImageURL    string   `json:"image_url"`
		CategoryID  int64    `json:"category_id"`
		BrandID     *int64   `json:"brand_id,omitempty"`
		StockCount  int      `json:"stock_count"`
		IsOrganic   bool     `json:"is_organic"`
		IsFeatured  bool     `json:"is_featured"`
	}

	CategoryInput struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}

	BrandInput struct {
		Name       string `json:"name"`
		CategoryID int64  `json:"category_id"`
	}

	Created struct {
		ID int64 `json:"id"`
	}

	Popularity struct {
		ProductID      int64 `json:"product_id"`
		AddToCartCount int64 `json:"add_to_cart_count"`
	}
)

const taxRate = 0.07

func toProduct(v domain.Product) Product {
	p := Product{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		Image:       v.Image,
		Category:    v.Category,
		Brand:       v.Brand,
		Sale:        v.Sale,
		InStock:     v.InStock,
		Featured:    v.Featured,
		Organic:     v.Organic,
	}
	if v.Sale && v.SalePrice > 0 {
		sp := v.SalePrice
		p.SalePrice = &sp
	}
	return p
}

func toProducts(vs []domain.Product) []Product {
	ps := make([]Product, len(vs))
	for i, v := range vs {
		ps[i] = toProduct(v)
	}
	return ps
}

func toCategories(vs []domain.Category) []Category {
	cs := make([]Category, len(vs))
	for i, v := range vs {
		cs[i] = Category{
			ID:           v.ID,
			Name:         v.Name,
			Description:  v.Description,
			Image:        v.Image,
			ProductCount: v.ProductCount,
		}
	}
	return cs
}

func toBrands(vs []domain.Brand) []Brand {
	bs := make([]Brand, len(vs))
	for i, v := range vs {
		bs[i] = Brand{ID: v.ID, Name: v.Name, CategoryID: v.CategoryID}
	}
	return bs
}

func toCart(sessionID string, snap domain.CartSnapshot) Cart {
	lines := make([]CartLine, len(snap.Lines))
	for i, l := range snap.Lines {
		lines[i] = CartLine{
			Product:   toProduct(l.Product),
			Quantity:  l.Quantity,
			LineTotal: l.Product.EffectivePrice() * float64(l.Quantity),
		}
	}

	tax := snap.TotalPrice * taxRate
	return Cart{
		SessionID:  sessionID,
		Lines:      lines,
		TotalItems: snap.TotalItems,
		Subtotal:   snap.TotalPrice,
		Tax:        tax,
		Total:      snap.TotalPrice + tax,
	}
}
