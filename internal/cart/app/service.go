package app

import (
	"context"
	"errors"
	"sort"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

type Line struct {
	Product  Product
	Qty      int
	Subtotal float64
}

type Service struct {
	catalog CatalogReader
}

func NewService(catalog CatalogReader) *Service {
	return &Service{
		catalog: catalog,
	}
}

func (s *Service) Add(cart domain.Cart, productID, qty int) {
	cart.Add(productID, qty)
}

func (s *Service) Update(cart domain.Cart, productID, qty int) {
	cart.Set(productID, qty)
}

func (s *Service) Remove(cart domain.Cart, productID int) {
	cart.Remove(productID)
}

func (s *Service) Clear(cart domain.Cart) {
	cart.Clear()
}

// Lines resolves every cart entry against the catalog and derives subtotals
// and the cart total. Entries whose product id is unknown are dropped
// silently; totals are recomputed on every call, never cached. Lines come
// back sorted by product id.
func (s *Service) Lines(ctx context.Context, cart domain.Cart) ([]Line, float64, error) {
	ids := make([]int, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]Line, 0, len(ids))
	var total float64
	for _, id := range ids {
		p, err := s.catalog.Product(ctx, id)
		if err != nil {
			// Unknown or junk product ids are a tolerated inconsistency.
			if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
				continue
			}
			return nil, 0, err
		}
		qty := cart[id]
		subtotal := p.Price * float64(qty)
		lines = append(lines, Line{Product: p, Qty: qty, Subtotal: subtotal})
		total += subtotal
	}
	return lines, total, nil
}
