package repositories

import (
	"context"
	"errors"
	"fmt"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error)
	Update(ctx context.Context, table *models.Table) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.TableSearchFilter) ([]*models.Table, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}

type tableRepo struct {
	db Database
}

func NewTableRepository(db Database) TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) Create(ctx context.Context, table *models.Table) error {
	query := `
		INSERT INTO tables (id, cod, capacity, description, occupied, sector, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, table.ID, table.Cod, table.Capacity, table.Description, table.Occupied, table.Sector)
	return err
}

func (r *tableRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	table := &models.Table{}
	query := `
		SELECT id, cod, capacity, description, occupied, sector, created_at, updated_at
		FROM tables
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&table.ID, &table.Cod, &table.Capacity,
		&table.Description, &table.Occupied, &table.Sector, &table.CreatedAt, &table.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return table, nil
}

func (r *tableRepo) Update(ctx context.Context, table *models.Table) error {
	query := `
		UPDATE tables
		SET cod = $1, capacity = $2, description = $3, occupied = $4, sector = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, table.Cod, table.Capacity, table.Description, table.Occupied, table.Sector, table.ID)
	return err
}

func (r *tableRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tables WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *tableRepo) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	query := `UPDATE tables SET occupied = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, occupied, id)
	return err
}

func (r *tableRepo) List(ctx context.Context, filter *models.TableSearchFilter) ([]*models.Table, error) {
	query := `
		SELECT id, cod, capacity, description, occupied, sector, created_at, updated_at
		FROM tables
		WHERE 1=1
	`
	args := []any{}
	argn := 0

	if filter.Occupied != nil {
		argn++
		query += fmt.Sprintf(" AND occupied = $%d", argn)
		args = append(args, *filter.Occupied)
	}
	if filter.Sector != nil {
		argn++
		query += fmt.Sprintf(" AND sector = $%d", argn)
		args = append(args, *filter.Sector)
	}
	if filter.Capacity != nil {
		argn++
		query += fmt.Sprintf(" AND capacity >= $%d", argn)
		args = append(args, *filter.Capacity)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY cod LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*models.Table
	for rows.Next() {
		table := &models.Table{}
		if err := rows.Scan(&table.ID, &table.Cod, &table.Capacity, &table.Description,
			&table.Occupied, &table.Sector, &table.CreatedAt, &table.UpdatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, rows.Err()
}
