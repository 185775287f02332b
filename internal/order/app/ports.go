package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	Save(ctx context.Context, order domain.Order) error
	ListAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, orderID string) (domain.Order, error)
}
