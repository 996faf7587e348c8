package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ukitchen/internal/caching"
	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

const ingredientCacheTTL = 10 * time.Minute

type IngredientService interface {
	Create(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	Update(ctx context.Context, ingredient *models.Ingredient) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*models.Ingredient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.IngredientSearchFilter) ([]*models.Ingredient, error)
	ListLowStock(ctx context.Context) ([]*models.Ingredient, error)
}

type ingredientService struct {
	ingredientRepo repositories.IngredientRepository
	cacheSvc       caching.CacheService
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository, cacheSvc caching.CacheService) IngredientService {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		cacheSvc:       cacheSvc,
	}
}

func validateIngredient(ingredient *models.Ingredient) error {
	if ingredient.Cod == "" {
		return errors.New("ingredient cod is required")
	}
	if ingredient.Name == "" {
		return errors.New("ingredient name is required")
	}
	if !models.ValidUnitOfMeasure(ingredient.UnitOfMeasure) {
		return fmt.Errorf("invalid unit of measure %q", ingredient.UnitOfMeasure)
	}
	if ingredient.Stock < 0 {
		return errors.New("stock cannot be negative")
	}
	if ingredient.StockLimit < 0 {
		return errors.New("stock limit cannot be negative")
	}
	return nil
}

func (s *ingredientService) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	ingredient.ID = uuid.New()
	return s.ingredientRepo.Create(ctx, ingredient)
}

func (s *ingredientService) GetByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	if cached, err := s.cacheSvc.GetIngredient(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, nil
	}

	if err := s.cacheSvc.SetIngredient(ctx, ingredient, ingredientCacheTTL); err != nil {
		log.Printf("Failed to cache ingredient %s: %v", id, err)
	}
	return ingredient, nil
}

func (s *ingredientService) Update(ctx context.Context, ingredient *models.Ingredient) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return err
	}
	return s.cacheSvc.DeleteIngredient(ctx, ingredient.ID)
}

// UpdateStock is the partial stock write used by delivery intake. Returns
// the refreshed record so callers can render the low-stock badge.
func (s *ingredientService) UpdateStock(ctx context.Context, id uuid.UUID, stock int) (*models.Ingredient, error) {
	if stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	existing, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("ingredient not found")
	}

	if err := s.ingredientRepo.UpdateStock(ctx, id, stock); err != nil {
		return nil, err
	}
	if err := s.cacheSvc.DeleteIngredient(ctx, id); err != nil {
		log.Printf("Failed to invalidate ingredient cache %s: %v", id, err)
	}

	existing.Stock = stock
	return existing, nil
}

func (s *ingredientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.cacheSvc.DeleteIngredient(ctx, id)
}

func (s *ingredientService) List(ctx context.Context, filter *models.IngredientSearchFilter) ([]*models.Ingredient, error) {
	return s.ingredientRepo.List(ctx, filter)
}

func (s *ingredientService) ListLowStock(ctx context.Context) ([]*models.Ingredient, error) {
	return s.ingredientRepo.ListLowStock(ctx)
}
