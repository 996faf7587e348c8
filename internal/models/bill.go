package models

import (
	"time"

	"github.com/google/uuid"
)

// Bill is the invoice issued for a delivered order. PDFObject is the
// object name of the rendered PDF in the document bucket.
type Bill struct {
	ID            uuid.UUID `json:"id" db:"id"`
	OrderID       uuid.UUID `json:"order_id" db:"order_id"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	Total         float64   `json:"total" db:"total"`
	PDFObject     *string   `json:"pdf_object,omitempty" db:"pdf_object"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
