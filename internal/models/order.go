package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPendiente     OrderStatus = "pendiente"
	StatusEnPreparacion OrderStatus = "en_preparacion"
	StatusListo         OrderStatus = "listo"
	StatusEntregado     OrderStatus = "entregado"
	StatusCancelado     OrderStatus = "cancelado"
	StatusRechazado     OrderStatus = "rechazado"
)

// orderTransitions holds the allowed forward transitions. Any non-terminal
// status may additionally move to cancelado. Terminal statuses (entregado,
// cancelado, rechazado) have no outgoing transitions.
var orderTransitions = map[OrderStatus]OrderStatus{
	StatusPendiente:     StatusEnPreparacion,
	StatusEnPreparacion: StatusListo,
	StatusListo:         StatusEntregado,
}

// ParseOrderStatus validates a status string
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPendiente, StatusEnPreparacion, StatusListo, StatusEntregado, StatusCancelado, StatusRechazado:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// IsTerminal reports whether no further transitions are offered
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusEntregado, StatusCancelado, StatusRechazado:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal transition
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelado {
		return true
	}
	return orderTransitions[s] == next
}

// NextStatuses returns the legal next statuses from s, forward step first
func (s OrderStatus) NextStatuses() []OrderStatus {
	if s.IsTerminal() {
		return nil
	}
	next := []OrderStatus{}
	if forward, ok := orderTransitions[s]; ok {
		next = append(next, forward)
	}
	return append(next, StatusCancelado)
}

type Order struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	Description      *string     `json:"description" db:"description"`
	Status           OrderStatus `json:"status" db:"status"`
	StartTime        time.Time   `json:"start_time" db:"start_time"`
	EstimatedEndTime time.Time   `json:"estimated_end_time" db:"estimated_end_time"`
	EndTime          *time.Time  `json:"end_time" db:"end_time"`
	Subtotal         float64     `json:"subtotal" db:"subtotal"`
	ClientID         uuid.UUID   `json:"client_id" db:"client_id"`
	TableID          *uuid.UUID  `json:"table_id" db:"table_id"`
	WaiterID         *uuid.UUID  `json:"waiter_id" db:"waiter_id"`
	Items            []OrderItem `json:"order_items"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at" db:"updated_at"`
}

// OrderSearchFilter holds filter criteria for order queries
type OrderSearchFilter struct {
	Status   *OrderStatus `json:"status,omitempty"`
	ClientID *uuid.UUID   `json:"client_id,omitempty"`
	TableID  *uuid.UUID   `json:"table_id,omitempty"`
	From     *time.Time   `json:"from,omitempty"`
	To       *time.Time   `json:"to,omitempty"`
	Limit    int          `json:"limit,omitempty"`
	Offset   int          `json:"offset,omitempty"`
}
