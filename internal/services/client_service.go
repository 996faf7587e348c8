package services

import (
	"context"
	"errors"

	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

type ClientService interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ClientSearchFilter) ([]*models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
	}
}

func (s *clientService) Create(ctx context.Context, client *models.Client) error {
	if client.DNI <= 0 {
		return errors.New("client DNI is required")
	}
	if client.Penalty < 0 {
		return errors.New("client penalty cannot be negative")
	}

	client.ID = uuid.New()
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) Update(ctx context.Context, client *models.Client) error {
	if client.DNI <= 0 {
		return errors.New("client DNI is required")
	}
	if client.Penalty < 0 {
		return errors.New("client penalty cannot be negative")
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clientRepo.Delete(ctx, id)
}

// List returns clients, optionally narrowed to one penalty tier. Tier
// bucketing is derived rather than stored, so the database cannot apply
// the filter; limit and offset have to count filtered rows, not raw
// rows, or filtered pages come back short.
func (s *clientService) List(ctx context.Context, filter *models.ClientSearchFilter) ([]*models.Client, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	if filter.Tier == nil {
		return s.clientRepo.List(ctx, limit, filter.Offset)
	}

	const batchSize = 500
	filtered := make([]*models.Client, 0, limit)
	skip := filter.Offset
	for batchOffset := 0; ; batchOffset += batchSize {
		batch, err := s.clientRepo.List(ctx, batchSize, batchOffset)
		if err != nil {
			return nil, err
		}
		for _, client := range batch {
			if client.Tier() != *filter.Tier {
				continue
			}
			if skip > 0 {
				skip--
				continue
			}
			filtered = append(filtered, client)
			if len(filtered) == limit {
				return filtered, nil
			}
		}
		if len(batch) < batchSize {
			return filtered, nil
		}
	}
}
