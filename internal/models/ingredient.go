package models

import (
	"time"

	"github.com/google/uuid"
)

// Units of measure accepted for ingredient stock
const (
	UnitKilogramos  = "kg"
	UnitGramos      = "g"
	UnitLitros      = "L"
	UnitMililitros  = "ml"
	UnitUnidades    = "unidades"
	UnitPiezas      = "piezas"
	UnitOnzas       = "oz"
	UnitLibras      = "lb"
	UnitGalones     = "gal"
	UnitCuartos     = "qt"
)

// ValidUnitOfMeasure reports whether u is an accepted unit
func ValidUnitOfMeasure(u string) bool {
	switch u {
	case UnitKilogramos, UnitGramos, UnitLitros, UnitMililitros, UnitUnidades,
		UnitPiezas, UnitOnzas, UnitLibras, UnitGalones, UnitCuartos:
		return true
	}
	return false
}

type Ingredient struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Cod           string      `json:"cod" db:"cod"`
	Name          string      `json:"name" db:"name"`
	Description   *string     `json:"description" db:"description"`
	Stock         int         `json:"stock" db:"stock"`
	UnitOfMeasure string      `json:"unit_of_measure" db:"unit_of_measure"`
	Origin        string      `json:"origin" db:"origin"`
	StockLimit    int         `json:"stock_limit" db:"stock_limit"`
	SupplierIDs   []uuid.UUID `json:"supplier_ids"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// LowStock reports whether stock has fallen to or below the configured
// limit. The boundary counts as low.
func (i *Ingredient) LowStock() bool {
	return i.Stock <= i.StockLimit
}

// IngredientSearchFilter holds filter criteria for ingredient queries
type IngredientSearchFilter struct {
	LowStock      *bool   `json:"low_stock,omitempty"`
	SupplierID    *uuid.UUID `json:"supplier_id,omitempty"`
	UnitOfMeasure *string `json:"unit_of_measure,omitempty"`
	Limit         int     `json:"limit,omitempty"`
	Offset        int     `json:"offset,omitempty"`
}
