package file

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
)

func newTestRepo(t *testing.T) (*OrderRepo, string) {
	t.Helper()
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo, err := NewOrderRepo(dir, log)
	require.NoError(t, err)
	return repo, dir
}

func sampleOrder(id string) domain.Order {
	return domain.Order{
		OrderID: id,
		Name:    "Alice",
		Address: "1 Main St",
		Phone:   "555-0101",
		OrderItems: []domain.OrderItem{
			{Name: "Modern Wireless Headphones", Qty: 2, Price: 150.00, Subtotal: 300.00},
			{Name: "Smart Fitness Watch", Qty: 1, Price: 200.00, Subtotal: 200.00},
		},
		Total: 500.00,
	}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestRepo(t)

	order := sampleOrder("a1b2c3d4")
	require.NoError(t, repo.Save(ctx, order))

	t.Run("one file per order", func(t *testing.T) {
		_, err := os.Stat(filepath.Join(dir, "a1b2c3d4.json"))
		require.NoError(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "a1b2c3d4")
		require.NoError(t, err)
		assert.Equal(t, order, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ffffffff")
		assert.True(t, errors.Is(err, app.ErrNotFound))
	})

	t.Run("path-escaping id is rejected", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "../a1b2c3d4")
		assert.True(t, errors.Is(err, app.ErrInvalidInput))
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, sampleOrder("11111111")))
	require.NoError(t, repo.Save(ctx, sampleOrder("99999999")))
	require.NoError(t, repo.Save(ctx, sampleOrder("55555555")))

	t.Run("sorted by order id descending", func(t *testing.T) {
		orders, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "99999999", orders[0].OrderID)
		assert.Equal(t, "55555555", orders[1].OrderID)
		assert.Equal(t, "11111111", orders[2].OrderID)
	})

	t.Run("invalid records are skipped, valid ones kept", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

		orders, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("empty directory", func(t *testing.T) {
		empty, _ := newTestRepo(t)
		orders, err := empty.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestSavePersistedShape(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestRepo(t)

	shot := "deadbeef_receipt.png"
	order := sampleOrder("a1b2c3d4")
	order.Screenshot = &shot
	require.NoError(t, repo.Save(ctx, order))

	raw, err := os.ReadFile(filepath.Join(dir, "a1b2c3d4.json"))
	require.NoError(t, err)

	body := string(raw)
	for _, field := range []string{
		`"order_id"`, `"name"`, `"address"`, `"phone"`,
		`"order_items"`, `"qty"`, `"price"`, `"subtotal"`, `"total"`, `"screenshot"`,
	} {
		assert.Contains(t, body, field)
	}
	assert.Contains(t, body, "deadbeef_receipt.png")
}
