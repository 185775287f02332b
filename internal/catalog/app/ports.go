package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id int) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
