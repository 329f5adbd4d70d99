package domain

// Admin insert rows, mirroring the storefront tables.

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	SalePrice   *float64
	ImageURL    string
	CategoryID  int64
	BrandID     *int64
	StockCount  int
	IsOrganic   bool
	IsFeatured  bool
}

type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

type BrandInput struct {
	Name       string
	CategoryID int64
}
