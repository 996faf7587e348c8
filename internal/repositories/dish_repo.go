package repositories

import (
	"context"
	"errors"
	"fmt"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error)
	Update(ctx context.Context, dish *models.Dish) error
	UpdatePicture(ctx context.Context, id uuid.UUID, objectName string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error)
}

type dishRepo struct {
	db Database
}

func NewDishRepository(db Database) DishRepository {
	return &dishRepo{db: db}
}

const dishColumns = `id, cod, name, description, picture, price, calification, tag, chef_id, created_at, updated_at`

func scanDish(row pgx.Row) (*models.Dish, error) {
	d := &models.Dish{}
	err := row.Scan(&d.ID, &d.Cod, &d.Name, &d.Description, &d.Picture, &d.Price,
		&d.Calification, &d.Tag, &d.ChefID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *dishRepo) Create(ctx context.Context, dish *models.Dish) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO dishes (id, cod, name, description, picture, price, calification, tag, chef_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, dish.ID, dish.Cod, dish.Name, dish.Description, dish.Picture,
		dish.Price, dish.Calification, dish.Tag, dish.ChefID); err != nil {
		return err
	}

	if err := replaceDishIngredients(ctx, tx, dish.ID, dish.IngredientIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *dishRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE id = $1`
	dish, err := scanDish(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	dish.IngredientIDs, err = r.ingredientIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return dish, nil
}

func (r *dishRepo) Update(ctx context.Context, dish *models.Dish) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE dishes
		SET cod = $1, name = $2, description = $3, picture = $4, price = $5,
		    calification = $6, tag = $7, chef_id = $8, updated_at = NOW()
		WHERE id = $9
	`
	if _, err := tx.Exec(ctx, query, dish.Cod, dish.Name, dish.Description, dish.Picture,
		dish.Price, dish.Calification, dish.Tag, dish.ChefID, dish.ID); err != nil {
		return err
	}

	if err := replaceDishIngredients(ctx, tx, dish.ID, dish.IngredientIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *dishRepo) UpdatePicture(ctx context.Context, id uuid.UUID, objectName string) error {
	query := `UPDATE dishes SET picture = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, objectName, id)
	return err
}

func (r *dishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM dishes WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *dishRepo) List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE 1=1`
	args := []any{}
	argn := 0

	if filter.Tag != nil {
		argn++
		query += fmt.Sprintf(" AND tag = $%d", argn)
		args = append(args, *filter.Tag)
	}
	if filter.MinPrice != nil {
		argn++
		query += fmt.Sprintf(" AND price >= $%d", argn)
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		argn++
		query += fmt.Sprintf(" AND price <= $%d", argn)
		args = append(args, *filter.MaxPrice)
	}
	if filter.MinCalification != nil {
		argn++
		query += fmt.Sprintf(" AND calification >= $%d", argn)
		args = append(args, *filter.MinCalification)
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

	var dishes []*models.Dish
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *dishRepo) ingredientIDs(ctx context.Context, dishID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT ingredient_id FROM dish_ingredients WHERE dish_id = $1`, dishID)
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

func replaceDishIngredients(ctx context.Context, tx pgx.Tx, dishID uuid.UUID, ingredientIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM dish_ingredients WHERE dish_id = $1`, dishID); err != nil {
		return err
	}
	for _, ingredientID := range ingredientIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO dish_ingredients (dish_id, ingredient_id) VALUES ($1, $2)`,
			dishID, ingredientID); err != nil {
			return err
		}
	}
	return nil
}
