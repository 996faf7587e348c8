package repositories

import (
	"context"
	"errors"
	"fmt"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.EmployeeSearchFilter) ([]*models.Employee, error)
}

type employeeRepo struct {
	db Database
}

func NewEmployeeRepository(db Database) EmployeeRepository {
	return &employeeRepo{db: db}
}

const employeeColumns = `id, tax_id, shift, worked_hours, price_hour, salary, role, hierarchy, tag, calification, sector, created_at, updated_at`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	e := &models.Employee{}
	err := row.Scan(&e.ID, &e.TaxID, &e.Shift, &e.WorkedHours, &e.PriceHour, &e.Salary, &e.Role,
		&e.Hierarchy, &e.Tag, &e.Calification, &e.Sector, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (id, tax_id, shift, worked_hours, price_hour, salary, role, hierarchy, tag, calification, sector, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, employee.ID, employee.TaxID, employee.Shift, employee.WorkedHours,
		employee.PriceHour, employee.Salary, employee.Role, employee.Hierarchy, employee.Tag,
		employee.Calification, employee.Sector)
	return err
}

func (r *employeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET tax_id = $1, shift = $2, worked_hours = $3, price_hour = $4, salary = $5, role = $6,
		    hierarchy = $7, tag = $8, calification = $9, sector = $10, updated_at = NOW()
		WHERE id = $11
	`
	_, err := r.db.Exec(ctx, query, employee.TaxID, employee.Shift, employee.WorkedHours,
		employee.PriceHour, employee.Salary, employee.Role, employee.Hierarchy, employee.Tag,
		employee.Calification, employee.Sector, employee.ID)
	return err
}

func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM employees WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *employeeRepo) List(ctx context.Context, filter *models.EmployeeSearchFilter) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := []any{}
	argn := 0

	if filter.Role != nil {
		argn++
		query += fmt.Sprintf(" AND role = $%d", argn)
		args = append(args, *filter.Role)
	}
	if filter.Shift != nil {
		argn++
		query += fmt.Sprintf(" AND shift = $%d", argn)
		args = append(args, *filter.Shift)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}
