package app

import "context"

type CatalogReader interface {
	Product(ctx context.Context, productID int) (Product, error)
}

type Product struct {
	ID          int
	Name        string
	Price       float64
	Description string
	Image       string
}
