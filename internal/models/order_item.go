package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one line within an order. UnitPrice is the dish price at
// creation time; the order subtotal is never recomputed from later price
// changes.
type OrderItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	OrderID   uuid.UUID `json:"order_id" db:"order_id"`
	DishID    uuid.UUID `json:"dish_id" db:"dish_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unit_price" db:"unit_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
