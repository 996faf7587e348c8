package repositories

import (
	"context"
	"errors"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*models.Client, error)
}

type clientRepo struct {
	db Database
}

func NewClientRepository(db Database) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (id, dni, penalty, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, client.ID, client.DNI, client.Penalty)
	return err
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&client.ID, &client.DNI, &client.Penalty, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

func (r *clientRepo) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET dni = $1, penalty = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, client.DNI, client.Penalty, client.ID)
	return err
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *clientRepo) List(ctx context.Context, limit, offset int) ([]*models.Client, error) {
	query := `
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(&client.ID, &client.DNI, &client.Penalty, &client.CreatedAt, &client.UpdatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}
