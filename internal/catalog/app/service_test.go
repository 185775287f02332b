package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type fakeRepo struct{}

func (fakeRepo) Get(ctx context.Context, id int) (domain.Product, error) {
	return domain.Product{ID: id}, nil
}
func (fakeRepo) List(ctx context.Context) ([]domain.Product, error) { return nil, nil }

func TestGetProductValidation(t *testing.T) {
	svc := NewService(fakeRepo{})

	t.Run("zero id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 0)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), -7)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("positive id passes through", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != 3 {
			t.Fatalf("expected product 3, got %d", p.ID)
		}
	})
}
