// Package catalog serves the static QUIRKLO product list.
package catalog

import (
	"github.com/quirklo/storefront/internal/core/domain"
	"github.com/quirklo/storefront/internal/core/port"
)

var _ port.CatalogProvider = (*Static)(nil)

// Static is the in-memory catalog. Products never change after startup.
type Static struct {
	products []domain.Product
	index    map[string]int
}

// NewStatic creates a catalog over the built-in product data.
func NewStatic() *Static {
	return newStatic(products)
}

func newStatic(ps []domain.Product) *Static {
	idx := make(map[string]int, len(ps))
	for i, p := range ps {
		idx[p.ID] = i
	}
	return &Static{products: ps, index: idx}
}

// Products returns the catalog in source order.
func (s *Static) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up by id. Absence is reported with the bool.
func (s *Static) Product(id string) (domain.Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}
