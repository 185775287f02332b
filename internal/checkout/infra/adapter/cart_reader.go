package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(ctx context.Context, cart map[int]int) ([]checkoutapp.Line, float64, error) {
	lines, total, err := r.svc.Lines(ctx, cartdomain.Cart(cart))
	if err != nil {
		return nil, 0, err
	}

	out := make([]checkoutapp.Line, 0, len(lines))
	for _, line := range lines {
		out = append(out, checkoutapp.Line{
			Name:     line.Product.Name,
			Qty:      line.Qty,
			Price:    line.Product.Price,
			Subtotal: line.Subtotal,
		})
	}
	return out, total, nil
}
