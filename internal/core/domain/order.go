package domain

import (
	"errors"
	"time"
)

// OrderStatusPending is the status every new order starts in. Further
// statuses are free-form strings set by an admin; there is no enforced
// transition graph.
const OrderStatusPending = "pending"

var ErrOrderNotFound = errors.New("order not found")

// LineItem is a single (product, quantity) entry within an order. UnitPrice
// and ProductName are copied from the product at creation time so the order
// is self-contained.
type LineItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Subtotal returns unit price × quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Order is the aggregate root for a purchase. Items are embedded so the
// order and its lines persist as a single unit. TotalAmount is computed once
// at creation and never recomputed.
type Order struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Items       []LineItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
