package models

import (
	"time"

	"github.com/google/uuid"
)

type Dish struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	Cod           string      `json:"cod" db:"cod"`
	Name          string      `json:"name" db:"name"`
	Description   *string     `json:"description" db:"description"`
	Picture       *string     `json:"picture" db:"picture"`
	Price         float64     `json:"price" db:"price"`
	Calification  *float64    `json:"calification,omitempty" db:"calification"`
	Tag           string      `json:"tag" db:"tag"`
	ChefID        *uuid.UUID  `json:"chef_id" db:"chef_id"`
	IngredientIDs []uuid.UUID `json:"ingredient_ids"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// DishSearchFilter holds filter criteria for dish queries
type DishSearchFilter struct {
	Tag             *string  `json:"tag,omitempty"`
	MinPrice        *float64 `json:"min_price,omitempty"`
	MaxPrice        *float64 `json:"max_price,omitempty"`
	MinCalification *float64 `json:"min_calification,omitempty"`
	Limit           int      `json:"limit,omitempty"`
	Offset          int      `json:"offset,omitempty"`
}
