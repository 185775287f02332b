package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// Upload carries an incoming screenshot. A nil Upload or an empty Filename
// means the customer attached nothing.
type Upload struct {
	Filename string
	Data     io.Reader
}

// PlaceOrderRequest carries the raw checkout form. Customer fields are
// accepted as-is; no required-field validation happens here.
type PlaceOrderRequest struct {
	Name       string
	Address    string
	Phone      string
	Cart       map[int]int
	Screenshot *Upload
}

type Service struct {
	cart    CartReader
	orders  OrderWriter
	uploads FileStore
}

func NewService(cart CartReader, orders OrderWriter, uploads FileStore) *Service {
	return &Service{
		cart:    cart,
		orders:  orders,
		uploads: uploads,
	}
}

// PlaceOrder snapshots the cart into an immutable order record, stores the
// screenshot if one was attached, and persists the order. There is no
// rollback of an already-stored screenshot when the order write fails.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (domain.Order, error) {
	lines, total, err := s.cart.Lines(ctx, req.Cart)
	if err != nil {
		return domain.Order{}, fmt.Errorf("price cart: %w", err)
	}
	if len(lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	var screenshot *string
	if req.Screenshot != nil && req.Screenshot.Filename != "" {
		stored, err := s.uploads.Store(req.Screenshot.Filename, req.Screenshot.Data)
		if err != nil {
			return domain.Order{}, fmt.Errorf("store screenshot: %w", err)
		}
		screenshot = &stored
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			Name:     line.Name,
			Qty:      line.Qty,
			Price:    line.Price,
			Subtotal: line.Subtotal,
		})
	}

	order := domain.Order{
		OrderID:    domain.NewOrderID(),
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		OrderItems: items,
		Total:      total,
		Screenshot: screenshot,
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("save order %s: %w", order.OrderID, err)
	}
	return order, nil
}
