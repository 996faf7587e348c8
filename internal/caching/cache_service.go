package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Dish catalog caching
	GetDish(ctx context.Context, dishID uuid.UUID) (*models.Dish, error)
	SetDish(ctx context.Context, dish *models.Dish, ttl time.Duration) error
	DeleteDish(ctx context.Context, dishID uuid.UUID) error
	GetDishCatalog(ctx context.Context) ([]*models.Dish, error)
	SetDishCatalog(ctx context.Context, dishes []*models.Dish, ttl time.Duration) error
	InvalidateDishCatalog(ctx context.Context) error

	// Ingredient caching
	GetIngredient(ctx context.Context, ingredientID uuid.UUID) (*models.Ingredient, error)
	SetIngredient(ctx context.Context, ingredient *models.Ingredient, ttl time.Duration) error
	DeleteIngredient(ctx context.Context, ingredientID uuid.UUID) error

	// Per-client cart storage
	GetCart(ctx context.Context, clientID uuid.UUID) (models.Cart, error)
	SetCart(ctx context.Context, clientID uuid.UUID, cart models.Cart, ttl time.Duration) error
	DeleteCart(ctx context.Context, clientID uuid.UUID) error

	// Generic string operations for token management
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetDish(ctx context.Context, dishID uuid.UUID) (*models.Dish, error) {
	key := fmt.Sprintf("ukitchen:dish:%s", dishID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var dish models.Dish
	if err := json.Unmarshal(data, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *redisCacheService) SetDish(ctx context.Context, dish *models.Dish, ttl time.Duration) error {
	key := fmt.Sprintf("ukitchen:dish:%s", dish.ID.String())
	data, err := json.Marshal(dish)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteDish(ctx context.Context, dishID uuid.UUID) error {
	key := fmt.Sprintf("ukitchen:dish:%s", dishID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetDishCatalog(ctx context.Context) ([]*models.Dish, error) {
	data, err := r.client.Get(ctx, "ukitchen:dishes:catalog").Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var dishes []*models.Dish
	if err := json.Unmarshal(data, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *redisCacheService) SetDishCatalog(ctx context.Context, dishes []*models.Dish, ttl time.Duration) error {
	data, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "ukitchen:dishes:catalog", data, ttl).Err()
}

func (r *redisCacheService) InvalidateDishCatalog(ctx context.Context) error {
	return r.client.Del(ctx, "ukitchen:dishes:catalog").Err()
}

func (r *redisCacheService) GetIngredient(ctx context.Context, ingredientID uuid.UUID) (*models.Ingredient, error) {
	key := fmt.Sprintf("ukitchen:ingredient:%s", ingredientID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var ingredient models.Ingredient
	if err := json.Unmarshal(data, &ingredient); err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *redisCacheService) SetIngredient(ctx context.Context, ingredient *models.Ingredient, ttl time.Duration) error {
	key := fmt.Sprintf("ukitchen:ingredient:%s", ingredient.ID.String())
	data, err := json.Marshal(ingredient)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteIngredient(ctx context.Context, ingredientID uuid.UUID) error {
	key := fmt.Sprintf("ukitchen:ingredient:%s", ingredientID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetCart(ctx context.Context, clientID uuid.UUID) (models.Cart, error) {
	key := fmt.Sprintf("ukitchen:cart:%s", clientID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.Cart{}, nil // empty cart
		}
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *redisCacheService) SetCart(ctx context.Context, clientID uuid.UUID, cart models.Cart, ttl time.Duration) error {
	key := fmt.Sprintf("ukitchen:cart:%s", clientID.String())
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteCart(ctx context.Context, clientID uuid.UUID) error {
	key := fmt.Sprintf("ukitchen:cart:%s", clientID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
