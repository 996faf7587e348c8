package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmployeeRoleChef   = "chef"
	EmployeeRoleWaiter = "waiter"
)

const (
	ShiftManana = "mañana"
	ShiftTarde  = "tarde"
	ShiftNoche  = "noche"
)

// Salary computes the stored salary from worked hours and the hourly rate.
// Recomputed on every write that touches either factor.
func Salary(workedHours, priceHour float64) float64 {
	return workedHours * priceHour
}

type Employee struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TaxID       string    `json:"tax_id" db:"tax_id"`
	Shift       string    `json:"shift" db:"shift"`
	WorkedHours float64   `json:"worked_hours" db:"worked_hours"`
	PriceHour   float64   `json:"price_hour" db:"price_hour"`
	Salary      float64   `json:"salary" db:"salary"`
	Role        string    `json:"role" db:"role"`
	// Chef-only fields
	Hierarchy *string `json:"hierarchy,omitempty" db:"hierarchy"`
	Tag       *string `json:"tag,omitempty" db:"tag"`
	// Waiter-only fields
	Calification *float64  `json:"calification,omitempty" db:"calification"`
	Sector       *string   `json:"sector,omitempty" db:"sector"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// EmployeeSearchFilter holds filter criteria for employee queries
type EmployeeSearchFilter struct {
	Role   *string `json:"role,omitempty"`
	Shift  *string `json:"shift,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Offset int     `json:"offset,omitempty"`
}
