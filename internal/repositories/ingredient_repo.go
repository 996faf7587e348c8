package repositories

import (
	"context"
	"errors"
	"fmt"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.IngredientSearchFilter) ([]*models.Ingredient, error)
	ListLowStock(ctx context.Context) ([]*models.Ingredient, error)
}

type ingredientRepo struct {
	db Database
}

func NewIngredientRepository(db Database) IngredientRepository {
	return &ingredientRepo{db: db}
}

const ingredientColumns = `id, cod, name, description, stock, unit_of_measure, origin, stock_limit, created_at, updated_at`

func scanIngredient(row pgx.Row) (*models.Ingredient, error) {
	i := &models.Ingredient{}
	err := row.Scan(&i.ID, &i.Cod, &i.Name, &i.Description, &i.Stock, &i.UnitOfMeasure,
		&i.Origin, &i.StockLimit, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *ingredientRepo) Create(ctx context.Context, ingredient *models.Ingredient) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO ingredients (id, cod, name, description, stock, unit_of_measure, origin, stock_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, ingredient.ID, ingredient.Cod, ingredient.Name, ingredient.Description,
		ingredient.Stock, ingredient.UnitOfMeasure, ingredient.Origin, ingredient.StockLimit); err != nil {
		return err
	}

	if err := replaceIngredientSuppliers(ctx, tx, ingredient.ID, ingredient.SupplierIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ingredientRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	ingredient, err := scanIngredient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	ingredient.SupplierIDs, err = r.supplierIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (r *ingredientRepo) Update(ctx context.Context, ingredient *models.Ingredient) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE ingredients
		SET cod = $1, name = $2, description = $3, stock = $4, unit_of_measure = $5,
		    origin = $6, stock_limit = $7, updated_at = NOW()
		WHERE id = $8
	`
	if _, err := tx.Exec(ctx, query, ingredient.Cod, ingredient.Name, ingredient.Description,
		ingredient.Stock, ingredient.UnitOfMeasure, ingredient.Origin, ingredient.StockLimit, ingredient.ID); err != nil {
		return err
	}

	if err := replaceIngredientSuppliers(ctx, tx, ingredient.ID, ingredient.SupplierIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ingredientRepo) UpdateStock(ctx context.Context, id uuid.UUID, stock int) error {
	query := `UPDATE ingredients SET stock = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, stock, id)
	return err
}

func (r *ingredientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ingredients WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *ingredientRepo) List(ctx context.Context, filter *models.IngredientSearchFilter) ([]*models.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE 1=1`
	args := []any{}
	argn := 0

	if filter.LowStock != nil && *filter.LowStock {
		query += " AND stock <= stock_limit"
	}
	if filter.UnitOfMeasure != nil {
		argn++
		query += fmt.Sprintf(" AND unit_of_measure = $%d", argn)
		args = append(args, *filter.UnitOfMeasure)
	}
	if filter.SupplierID != nil {
		argn++
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM ingredient_suppliers isup
			WHERE isup.ingredient_id = ingredients.id AND isup.supplier_id = $%d
		)`, argn)
		args = append(args, *filter.SupplierID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*models.Ingredient
	for rows.Next() {
		ingredient, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, rows.Err()
}

func (r *ingredientRepo) ListLowStock(ctx context.Context) ([]*models.Ingredient, error) {
	low := true
	return r.List(ctx, &models.IngredientSearchFilter{LowStock: &low, Limit: 500})
}

func (r *ingredientRepo) supplierIDs(ctx context.Context, ingredientID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT supplier_id FROM ingredient_suppliers WHERE ingredient_id = $1`, ingredientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func replaceIngredientSuppliers(ctx context.Context, tx pgx.Tx, ingredientID uuid.UUID, supplierIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM ingredient_suppliers WHERE ingredient_id = $1`, ingredientID); err != nil {
		return err
	}
	for _, supplierID := range supplierIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO ingredient_suppliers (ingredient_id, supplier_id) VALUES ($1, $2)`,
			ingredientID, supplierID); err != nil {
			return err
		}
	}
	return nil
}
