package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// ProductRepo serves the catalog from memory. The product set is fixed at
// construction time, so reads need no locking.
type ProductRepo struct {
	byID    map[int]domain.Product
	ordered []domain.Product
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	byID := make(map[int]domain.Product, len(products))
	ordered := make([]domain.Product, len(products))
	copy(ordered, products)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	for _, p := range ordered {
		byID[p.ID] = p
	}
	return &ProductRepo{byID: byID, ordered: ordered}
}

func (r *ProductRepo) Get(ctx context.Context, id int) (domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, app.ErrNotFound)
	}
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
