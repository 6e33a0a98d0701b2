package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is a customer's checkout record.
type Order struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	Items     []*Item   `json:"items,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Item is a single line item within an order. Created together with the
// order and never mutated.
type Item struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      int             `json:"quantity"`
	Customization json.RawMessage `json:"customizations,omitempty"`
	UnitPrice     float64         `json:"price"`
}

// LineItem is the wire shape of one cart line at checkout.
type LineItem struct {
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	Customization json.RawMessage `json:"customizations,omitempty"`
	Price         float64         `json:"price"`
}

// CreateOrderRequest is the payload for creating a new order.
type CreateOrderRequest struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}
