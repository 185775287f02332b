package app

import (
	"context"
	"io"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type CartReader interface {
	Lines(ctx context.Context, cart map[int]int) ([]Line, float64, error)
}

type Line struct {
	Name     string
	Qty      int
	Price    float64
	Subtotal float64
}

type OrderWriter interface {
	Save(ctx context.Context, order domain.Order) error
}

// FileStore persists an uploaded blob and returns the stored name it can be
// referenced by.
type FileStore interface {
	Store(filename string, r io.Reader) (string, error)
}
