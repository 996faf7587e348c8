package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"ukitchen/internal/caching"
	"ukitchen/internal/models"
	"ukitchen/internal/repositories"

	"github.com/google/uuid"
)

const (
	dishCacheTTL    = 10 * time.Minute
	catalogCacheTTL = 5 * time.Minute
)

type DishService interface {
	Create(ctx context.Context, dish *models.Dish) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error)
	Update(ctx context.Context, dish *models.Dish) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error)
	Catalog(ctx context.Context) ([]*models.Dish, error)
	UploadPicture(ctx context.Context, id uuid.UUID, contentType string, reader io.Reader, size int64) (string, error)
	PictureURL(ctx context.Context, id uuid.UUID) (string, error)
}

type dishService struct {
	dishRepo repositories.DishRepository
	minioSvc MinioService
	cacheSvc caching.CacheService
	bucket   string
}

func NewDishService(dishRepo repositories.DishRepository, minioSvc MinioService, cacheSvc caching.CacheService, bucket string) DishService {
	return &dishService{
		dishRepo: dishRepo,
		minioSvc: minioSvc,
		cacheSvc: cacheSvc,
		bucket:   bucket,
	}
}

func validateDish(dish *models.Dish) error {
	if dish.Cod == "" {
		return errors.New("dish cod is required")
	}
	if dish.Name == "" {
		return errors.New("dish name is required")
	}
	if dish.Price <= 0 {
		return errors.New("dish price must be positive")
	}
	return nil
}

func (s *dishService) Create(ctx context.Context, dish *models.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}

	dish.ID = uuid.New()
	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return err
	}
	return s.cacheSvc.InvalidateDishCatalog(ctx)
}

func (s *dishService) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	if cached, err := s.cacheSvc.GetDish(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, nil
	}

	if err := s.cacheSvc.SetDish(ctx, dish, dishCacheTTL); err != nil {
		log.Printf("Failed to cache dish %s: %v", id, err)
	}
	return dish, nil
}

func (s *dishService) Update(ctx context.Context, dish *models.Dish) error {
	if err := validateDish(dish); err != nil {
		return err
	}

	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return err
	}
	if err := s.cacheSvc.DeleteDish(ctx, dish.ID); err != nil {
		log.Printf("Failed to invalidate dish cache %s: %v", dish.ID, err)
	}
	return s.cacheSvc.InvalidateDishCatalog(ctx)
}

func (s *dishService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.dishRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cacheSvc.DeleteDish(ctx, id); err != nil {
		log.Printf("Failed to invalidate dish cache %s: %v", id, err)
	}
	return s.cacheSvc.InvalidateDishCatalog(ctx)
}

func (s *dishService) List(ctx context.Context, filter *models.DishSearchFilter) ([]*models.Dish, error) {
	return s.dishRepo.List(ctx, filter)
}

// Catalog returns the full dish list served to the menu screen. Checkout
// prices are looked up against this catalog, so it is cached briefly and
// invalidated on every dish write.
func (s *dishService) Catalog(ctx context.Context) ([]*models.Dish, error) {
	if cached, err := s.cacheSvc.GetDishCatalog(ctx); err == nil && cached != nil {
		return cached, nil
	}

	dishes, err := s.dishRepo.List(ctx, &models.DishSearchFilter{Limit: 500})
	if err != nil {
		return nil, err
	}

	if err := s.cacheSvc.SetDishCatalog(ctx, dishes, catalogCacheTTL); err != nil {
		log.Printf("Failed to cache dish catalog: %v", err)
	}
	return dishes, nil
}

func (s *dishService) UploadPicture(ctx context.Context, id uuid.UUID, contentType string, reader io.Reader, size int64) (string, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if dish == nil {
		return "", errors.New("dish not found")
	}

	objectName := fmt.Sprintf("dishes/%s/picture", id.String())
	if err := s.minioSvc.UploadObject(ctx, s.bucket, objectName, contentType, reader, size); err != nil {
		return "", fmt.Errorf("failed to upload dish picture: %w", err)
	}

	if err := s.dishRepo.UpdatePicture(ctx, id, objectName); err != nil {
		return "", err
	}
	if err := s.cacheSvc.DeleteDish(ctx, id); err != nil {
		log.Printf("Failed to invalidate dish cache %s: %v", id, err)
	}
	if err := s.cacheSvc.InvalidateDishCatalog(ctx); err != nil {
		log.Printf("Failed to invalidate dish catalog: %v", err)
	}
	return objectName, nil
}

func (s *dishService) PictureURL(ctx context.Context, id uuid.UUID) (string, error) {
	dish, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if dish == nil || dish.Picture == nil {
		return "", errors.New("dish has no picture")
	}
	return s.minioSvc.GetPresignedURL(s.bucket, *dish.Picture, time.Hour)
}
