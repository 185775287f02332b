package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type fakeRepo struct {
	saved []domain.Order
}

func (f *fakeRepo) Save(ctx context.Context, order domain.Order) error {
	f.saved = append(f.saved, order)
	return nil
}
func (f *fakeRepo) ListAll(ctx context.Context) ([]domain.Order, error) { return f.saved, nil }
func (f *fakeRepo) GetByID(ctx context.Context, id string) (domain.Order, error) {
	return domain.Order{}, ErrNotFound
}

func TestSaveOrderValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("empty order id -> invalid", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		err := svc.SaveOrder(ctx, domain.Order{OrderID: "   "})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("zero and negative quantities are persisted as-is", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)
		err := svc.SaveOrder(ctx, domain.Order{
			OrderID: "abcd1234",
			OrderItems: []domain.OrderItem{
				{Name: "Watch", Qty: 0, Price: 200.00, Subtotal: 0},
				{Name: "Bag", Qty: -2, Price: 85.00, Subtotal: -170.00},
			},
			Total: -170.00,
		})
		require.NoError(t, err)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, 0, repo.saved[0].OrderItems[0].Qty)
		assert.Equal(t, -2, repo.saved[0].OrderItems[1].Qty)
	})

	t.Run("order is saved", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)
		err := svc.SaveOrder(ctx, domain.Order{
			OrderID: "abcd1234",
			OrderItems: []domain.OrderItem{
				{Name: "Watch", Qty: 2, Price: 200.00, Subtotal: 400.00},
			},
			Total: 400.00,
		})
		require.NoError(t, err)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, "abcd1234", repo.saved[0].OrderID)
	})
}

func TestGetOrderValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	_, err := svc.GetOrder(context.Background(), "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
