package repositories

import (
	"context"
	"errors"
	"fmt"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.OrderSearchFilter) ([]*models.Order, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepository(db Database) OrderRepository {
	return &orderRepo{db: db}
}

const orderColumns = `id, description, status, start_time, estimated_end_time, end_time, subtotal, client_id, table_id, waiter_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(&o.ID, &o.Description, &o.Status, &o.StartTime, &o.EstimatedEndTime, &o.EndTime,
		&o.Subtotal, &o.ClientID, &o.TableID, &o.WaiterID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create persists the order and its items in one transaction
func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, description, status, start_time, estimated_end_time, end_time, subtotal, client_id, table_id, waiter_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, order.ID, order.Description, order.Status, order.StartTime,
		order.EstimatedEndTime, order.EndTime, order.Subtotal, order.ClientID, order.TableID, order.WaiterID); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, dish_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery, item.ID, order.ID, item.DishID, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	order.Items, err = r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) Update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET description = $1, status = $2, estimated_end_time = $3, end_time = $4,
		    table_id = $5, waiter_id = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, order.Description, order.Status, order.EstimatedEndTime,
		order.EndTime, order.TableID, order.WaiterID, order.ID)
	return err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *orderRepo) List(ctx context.Context, filter *models.OrderSearchFilter) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argn := 0

	if filter.Status != nil {
		argn++
		query += fmt.Sprintf(" AND status = $%d", argn)
		args = append(args, *filter.Status)
	}
	if filter.ClientID != nil {
		argn++
		query += fmt.Sprintf(" AND client_id = $%d", argn)
		args = append(args, *filter.ClientID)
	}
	if filter.TableID != nil {
		argn++
		query += fmt.Sprintf(" AND table_id = $%d", argn)
		args = append(args, *filter.TableID)
	}
	if filter.From != nil {
		argn++
		query += fmt.Sprintf(" AND start_time >= $%d", argn)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		argn++
		query += fmt.Sprintf(" AND start_time <= $%d", argn)
		args = append(args, *filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY start_time DESC LIMIT $%d OFFSET $%d", argn+1, argn+2)
	args = append(args, limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		order.Items, err = r.items(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepo) items(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	query := `
		SELECT id, order_id, dish_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		item := models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.DishID, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
