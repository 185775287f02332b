package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// SaveOrder persists the snapshot as checkout assembled it. Line items are
// not second-guessed here: the cart layer accepts zero and negative
// quantities, and orders must record whatever the cart held.
func (s *Service) SaveOrder(ctx context.Context, order domain.Order) error {
	if strings.TrimSpace(order.OrderID) == "" {
		return fmt.Errorf("%w: empty order id", ErrInvalidInput)
	}

	return s.repo.Save(ctx, order)
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (domain.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, orderID)
}
