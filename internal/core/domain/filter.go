package domain

import "strings"

// A FilterSpec is the combined set of active criteria applied to
// the product list. The zero value matches every product.
//
// PriceCeil of zero disables the upper bound; PriceFloor of zero
// admits every price.
type FilterSpec struct {
	Category    string
	Search      string
	PriceFloor  float64
	PriceCeil   float64
	OrganicOnly bool
}

// Matches reports whether p satisfies every active criterion.
// All criteria are conjunctive.
func (s FilterSpec) Matches(p Product) bool {
	if s.Category != "" && p.Category != s.Category {
		return false
	}

	if s.Search != "" {
		term := strings.ToLower(s.Search)
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, term) && !strings.Contains(desc, term) {
			return false
		}
	}

	price := p.EffectivePrice()
	if price < s.PriceFloor {
		return false
	}
	if s.PriceCeil > 0 && price > s.PriceCeil {
		return false
	}

	if s.OrganicOnly && !p.Organic {
		return false
	}

	return true
}

// FilterProducts returns the subset of products matching spec.
// It is a pure function: idempotent for identical inputs, and an
// empty result is a valid outcome.
func FilterProducts(products []Product, spec FilterSpec) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if spec.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
