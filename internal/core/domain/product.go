package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotFound        = errors.New("not found")
)

type (
	Product struct {
		ID          int64
		Name        string
		Description string
		Price       float64
		Image       string
		Category    string
		Brand       string
		Sale        bool
		SalePrice   float64
		InStock     bool
		Featured    bool
		Organic     bool
	}

	Category struct {
		ID           int64
		Name         string
		Description  string
		Image        string
		ProductCount int
	}

	Brand struct {
		ID         int64
		Name       string
		CategoryID int64
	}
)

// EffectivePrice returns the sale price when the product is marked
// on sale and a sale price is supplied, otherwise the regular price.
func (p Product) EffectivePrice() float64 {
	if p.Sale && p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.Price
}

// A Catalog is the immutable product set served to the storefront.
//
// Construction resolves each product category against the category set,
// so a product referencing a missing category is rejected up front
// instead of silently matching nothing.
type Catalog struct {
	products   []Product
	categories []Category
	brands     []Brand
	byID       map[int64]Product
}

func NewCatalog(
	products []Product, categories []Category, brands []Brand,
) (*Catalog, error) {
	const op = "NewCatalog"

	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.Name] = struct{}{}
	}

	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		if _, ok := known[p.Category]; !ok {
			return nil, fmt.Errorf(
				"%s: product %d %q category %q: %w",
				op, p.ID, p.Name, p.Category, ErrUnknownCategory,
			)
		}
		byID[p.ID] = p
	}

	return &Catalog{
		products:   products,
		categories: categories,
		brands:     brands,
		byID:       byID,
	}, nil
}

func (c *Catalog) Products() []Product {
	ps := make([]Product, len(c.products))
	copy(ps, c.products)
	return ps
}

func (c *Catalog) Categories() []Category {
	cs := make([]Category, len(c.categories))
	copy(cs, c.categories)
	return cs
}

func (c *Catalog) Brands() []Brand {
	bs := make([]Brand, len(c.brands))
	copy(bs, c.brands)
	return bs
}

func (c *Catalog) ProductByID(id int64) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Featured() []Product {
	var ps []Product
	for _, p := range c.products {
		if p.Featured {
			ps = append(ps, p)
		}
	}
	return ps
}

func (c *Catalog) ByCategory(name string) []Product {
	var ps []Product
	for _, p := range c.products {
		if p.Category == name {
			ps = append(ps, p)
		}
	}
	return ps
}
