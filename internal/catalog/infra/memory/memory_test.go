package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
)

func TestProductRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(DefaultProducts())

	t.Run("get known product", func(t *testing.T) {
		p, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Smart Fitness Watch", p.Name)
		assert.Equal(t, 200.00, p.Price)
	})

	t.Run("get unknown product", func(t *testing.T) {
		_, err := repo.Get(ctx, 99)
		assert.True(t, errors.Is(err, app.ErrNotFound))
	})

	t.Run("list is ordered by id", func(t *testing.T) {
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		for i := 1; i < len(products); i++ {
			assert.Less(t, products[i-1].ID, products[i].ID)
		}
	})
}

func TestLoadSeed(t *testing.T) {
	t.Run("valid seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		seed := `products:
  - id: 10
    name: Desk Lamp
    price: 35.50
    description: Warm light
    image: https://example.com/lamp.jpg
  - id: 11
    name: Notebook
    price: 4.25
`
		require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

		products, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, 10, products[0].ID)
		assert.Equal(t, "Desk Lamp", products[0].Name)
		assert.Equal(t, 35.50, products[0].Price)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid product id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products:\n  - id: 0\n    name: Broken\n"), 0o644))

		_, err := LoadSeed(path)
		assert.Error(t, err)
	})

	t.Run("empty seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o644))

		_, err := LoadSeed(path)
		assert.Error(t, err)
	})
}
