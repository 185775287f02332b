package domain

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Order is the immutable record of a completed checkout. Field names are the
// persisted JSON contract; existing order files must keep parsing.
type Order struct {
	OrderID    string      `json:"order_id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Phone      string      `json:"phone"`
	OrderItems []OrderItem `json:"order_items"`
	Total      float64     `json:"total"`
	Screenshot *string     `json:"screenshot"`
}

// OrderItem snapshots a cart line at checkout time, so later catalog changes
// cannot alter historical orders.
type OrderItem struct {
	Name     string  `json:"name"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// NewOrderID returns a short random token. No uniqueness check is made
// against existing orders; 32 bits of randomness is accepted at this scale.
func NewOrderID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:8]
}
