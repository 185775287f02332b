package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront/internal/order/app"
	"github.com/dwikikusuma/storefront/internal/order/domain"
)

const maxParallelReads = 8

// OrderRepo keeps one JSON file per order under dir, named <order_id>.json.
// Writes are append-only from the caller's perspective: records are never
// updated or deleted once written.
type OrderRepo struct {
	dir string
	log *slog.Logger
}

func NewOrderRepo(dir string, log *slog.Logger) (*OrderRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create orders dir %s: %w", dir, err)
	}
	return &OrderRepo{dir: dir, log: log}, nil
}

func (r *OrderRepo) Save(ctx context.Context, order domain.Order) error {
	raw, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.OrderID, err)
	}

	path := filepath.Join(r.dir, order.OrderID+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write order %s: %w", order.OrderID, err)
	}
	return nil
}

// ListAll parses every order file in the directory. Unparseable records are
// skipped and logged rather than aborting the listing. Results come back
// sorted by order id descending, an approximation of recency.
func (r *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read orders dir %s: %w", r.dir, err)
	}

	var (
		mu     sync.Mutex
		orders []domain.Order
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			order, err := r.readOrder(name)
			if err != nil {
				r.log.Warn("skipping unreadable order record",
					slog.String("file", name), slog.Any("err", err))
				return nil
			}
			mu.Lock()
			orders = append(orders, order)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderID > orders[j].OrderID
	})
	return orders, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	if orderID != filepath.Base(orderID) {
		return domain.Order{}, fmt.Errorf("order id %q: %w", orderID, app.ErrInvalidInput)
	}

	order, err := r.readOrder(orderID + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Order{}, fmt.Errorf("order %s: %w", orderID, app.ErrNotFound)
		}
		return domain.Order{}, err
	}
	return order, nil
}

func (r *OrderRepo) readOrder(name string) (domain.Order, error) {
	raw, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return domain.Order{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return order, nil
}
