package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Table struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Cod         string    `json:"cod" db:"cod"`
	Capacity    int       `json:"capacity" db:"capacity"`
	Description *string   `json:"description" db:"description"`
	Occupied    bool      `json:"occupied" db:"occupied"`
	Sector      string    `json:"sector" db:"sector"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Label renders the display name used in assignment selectors
func (t *Table) Label() string {
	return fmt.Sprintf("Mesa %s - %d personas", t.Cod, t.Capacity)
}

// TableSearchFilter holds filter criteria for table queries
type TableSearchFilter struct {
	Occupied *bool   `json:"occupied,omitempty"`
	Sector   *string `json:"sector,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	Offset   int     `json:"offset,omitempty"`
}
