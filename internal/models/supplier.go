package models

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID             uuid.UUID `json:"id" db:"id"`
	CompanyName    string    `json:"company_name" db:"company_name"`
	TaxID          string    `json:"tax_id" db:"tax_id"`
	Mail           string    `json:"mail" db:"mail"`
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`
	TypeIngredient string    `json:"type_ingredient" db:"type_ingredient"`
	FullName       string    `json:"full_name" db:"full_name"`
	BusinessName   string    `json:"business_name" db:"business_name"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
