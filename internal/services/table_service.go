package services

import (
	"context"
	"errors"

	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

type TableService interface {
	Create(ctx context.Context, table *models.Table) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error)
	Update(ctx context.Context, table *models.Table) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.TableSearchFilter) ([]*models.Table, error)
	SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error
}

type tableService struct {
	tableRepo repositories.TableRepository
}

func NewTableService(tableRepo repositories.TableRepository) TableService {
	return &tableService{
		tableRepo: tableRepo,
	}
}

func (s *tableService) Create(ctx context.Context, table *models.Table) error {
	if table.Cod == "" {
		return errors.New("table cod is required")
	}
	if table.Capacity <= 0 {
		return errors.New("table capacity must be positive")
	}

	table.ID = uuid.New()
	return s.tableRepo.Create(ctx, table)
}

func (s *tableService) GetByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	return s.tableRepo.GetByID(ctx, id)
}

func (s *tableService) Update(ctx context.Context, table *models.Table) error {
	if table.Cod == "" {
		return errors.New("table cod is required")
	}
	if table.Capacity <= 0 {
		return errors.New("table capacity must be positive")
	}
	return s.tableRepo.Update(ctx, table)
}

func (s *tableService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tableRepo.Delete(ctx, id)
}

func (s *tableService) List(ctx context.Context, filter *models.TableSearchFilter) ([]*models.Table, error) {
	return s.tableRepo.List(ctx, filter)
}

func (s *tableService) SetOccupied(ctx context.Context, id uuid.UUID, occupied bool) error {
	return s.tableRepo.SetOccupied(ctx, id, occupied)
}
